// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account of the back office itself: the person who signs in,
// manages the catalogue and issues invoices. Customers of the shop are a
// separate entity.
type User struct {
	ID           string     // Document id, hex-encoded by the persistence layer.
	FullName     string     // The user's display name or real name.
	Email        string     // Unique login identifier.
	Username     string     // Unique public handle.
	PasswordHash string     // bcrypt hash. The plaintext password is never stored.
	Policy       bool       // Whether the user accepted the usage policy at signup.
	OTP          *string    // Pending one-time passcode, nil when no reset is in flight.
	OTPExpires   *time.Time // Expiry of the pending passcode. Set and cleared together with OTP.
}

// HasPendingOTP reports whether a password-reset passcode is currently issued.
func (u *User) HasPendingOTP() bool {
	return u.OTP != nil && u.OTPExpires != nil
}

// SetOTP moves the user into the pending-verification state.
func (u *User) SetOTP(code string, expires time.Time) {
	u.OTP = &code
	u.OTPExpires = &expires
}

// ClearOTP moves the user back to the idle state after a successful
// verification. Both fields are cleared together.
func (u *User) ClearOTP() {
	u.OTP = nil
	u.OTPExpires = nil
}
