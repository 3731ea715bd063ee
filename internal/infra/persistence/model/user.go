// Package model contains the MongoDB document shapes of the domain entities
// and the mapping between them. ObjectIDs never leave this package; entities
// carry them as hex strings.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backoffice/internal/domain/entity"
)

// UserDocument is the stored form of a back-office account.
type UserDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FullName     string             `bson:"full_name"`
	Email        string             `bson:"email"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password"`
	Policy       bool               `bson:"policy"`
	OTP          *string            `bson:"otp,omitempty"`
	OTPExpires   *time.Time         `bson:"otp_expires,omitempty"`
}

// ToEntity converts the document to a domain entity.
func (d *UserDocument) ToEntity() *entity.User {
	return &entity.User{
		ID:           d.ID.Hex(),
		FullName:     d.FullName,
		Email:        d.Email,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Policy:       d.Policy,
		OTP:          d.OTP,
		OTPExpires:   d.OTPExpires,
	}
}

// UserDocumentFromEntity converts a domain entity to its stored form. A blank
// or malformed entity id maps to the zero ObjectID, letting the driver assign
// one on insert.
func UserDocumentFromEntity(user *entity.User) *UserDocument {
	oid, _ := primitive.ObjectIDFromHex(user.ID)

	return &UserDocument{
		ID:           oid,
		FullName:     user.FullName,
		Email:        user.Email,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Policy:       user.Policy,
		OTP:          user.OTP,
		OTPExpires:   user.OTPExpires,
	}
}
