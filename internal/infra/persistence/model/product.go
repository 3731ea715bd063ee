package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backoffice/internal/domain/entity"
)

// ProductDocument is the stored form of a catalogue entry.
type ProductDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Brand       string             `bson:"brand"`
	Price       string             `bson:"price"`
	Negotiable  bool               `bson:"negotiable"`
	Description string             `bson:"description,omitempty"`
	File        FileRefDocument    `bson:"file"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// ToEntity converts the document to a domain entity.
func (d *ProductDocument) ToEntity() *entity.Product {
	return &entity.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Brand:       d.Brand,
		Price:       d.Price,
		Negotiable:  d.Negotiable,
		Description: d.Description,
		File: entity.FileRef{
			FileName: d.File.FileName,
			FilePath: d.File.FilePath,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ProductDocumentFromEntity converts a domain entity to its stored form.
func ProductDocumentFromEntity(product *entity.Product) *ProductDocument {
	oid, _ := primitive.ObjectIDFromHex(product.ID)

	return &ProductDocument{
		ID:          oid,
		Name:        product.Name,
		Brand:       product.Brand,
		Price:       product.Price,
		Negotiable:  product.Negotiable,
		Description: product.Description,
		File: FileRefDocument{
			FileName: product.File.FileName,
			FilePath: product.File.FilePath,
		},
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}
