package entity

import "time"

// FileRef is a reference to an uploaded attachment: the stored file name plus
// the public URL it is served from. The upload transport itself lives outside
// this core; entities only keep the reference.
type FileRef struct {
	FileName string
	FilePath string
}

// Customer is a person the shop sells to, kept in the back office's address
// book. Not to be confused with User, which is a back-office account.
type Customer struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Gender      string
	File        FileRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
