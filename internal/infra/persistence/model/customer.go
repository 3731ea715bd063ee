package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backoffice/internal/domain/entity"
)

// FileRefDocument is the embedded attachment reference.
type FileRefDocument struct {
	FileName string `bson:"fileName"`
	FilePath string `bson:"filePath"`
}

// CustomerDocument is the stored form of an address-book customer.
type CustomerDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   string             `bson:"first_name"`
	LastName    string             `bson:"last_name"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phone_number"`
	Gender      string             `bson:"gender"`
	File        FileRefDocument    `bson:"file"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// ToEntity converts the document to a domain entity.
func (d *CustomerDocument) ToEntity() *entity.Customer {
	return &entity.Customer{
		ID:          d.ID.Hex(),
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Gender:      d.Gender,
		File: entity.FileRef{
			FileName: d.File.FileName,
			FilePath: d.File.FilePath,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// CustomerDocumentFromEntity converts a domain entity to its stored form.
func CustomerDocumentFromEntity(customer *entity.Customer) *CustomerDocument {
	oid, _ := primitive.ObjectIDFromHex(customer.ID)

	return &CustomerDocument{
		ID:          oid,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber,
		Gender:      customer.Gender,
		File: FileRefDocument{
			FileName: customer.File.FileName,
			FilePath: customer.File.FilePath,
		},
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}
