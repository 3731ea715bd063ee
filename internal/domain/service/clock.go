package service

import "time"

// Clock is the time source used for OTP expiry and "today" boundaries.
// Abstracted so the credential and reporting logic can be tested against a
// fixed instant.
type Clock interface {
	Now() time.Time
}
