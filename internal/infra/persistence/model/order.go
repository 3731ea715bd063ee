package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backoffice/internal/domain/entity"
)

// LineItemDocument is one embedded product entry of an order. Quantity and
// price stay strings in storage, exactly as they arrived.
type LineItemDocument struct {
	ProductID primitive.ObjectID `bson:"productId"`
	Quantity  string             `bson:"quantity"`
	Price     string             `bson:"price"`
}

// OrderDocument is the stored form of an invoice.
type OrderDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Address    string             `bson:"address"`
	InvoiceID  string             `bson:"invoice_id"`
	UserID     primitive.ObjectID `bson:"userId"`
	Products   []LineItemDocument `bson:"products"`
	OrderTotal string             `bson:"order_total"`
	Status     string             `bson:"status"`
	OrderDate  time.Time          `bson:"order_date"`
}

// ToEntity converts the document to a domain entity.
func (d *OrderDocument) ToEntity() *entity.Order {
	items := make([]entity.LineItem, 0, len(d.Products))
	for _, item := range d.Products {
		items = append(items, entity.LineItem{
			ProductID: item.ProductID.Hex(),
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &entity.Order{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Email:      d.Email,
		Address:    d.Address,
		InvoiceID:  d.InvoiceID,
		UserID:     d.UserID.Hex(),
		Products:   items,
		OrderTotal: d.OrderTotal,
		Status:     d.Status,
		OrderDate:  d.OrderDate,
	}
}

// OrderDocumentFromEntity converts a domain entity to its stored form.
func OrderDocumentFromEntity(order *entity.Order) *OrderDocument {
	oid, _ := primitive.ObjectIDFromHex(order.ID)
	userID, _ := primitive.ObjectIDFromHex(order.UserID)

	items := make([]LineItemDocument, 0, len(order.Products))
	for _, item := range order.Products {
		productID, _ := primitive.ObjectIDFromHex(item.ProductID)
		items = append(items, LineItemDocument{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &OrderDocument{
		ID:         oid,
		Name:       order.Name,
		Email:      order.Email,
		Address:    order.Address,
		InvoiceID:  order.InvoiceID,
		UserID:     userID,
		Products:   items,
		OrderTotal: order.OrderTotal,
		Status:     order.Status,
		OrderDate:  order.OrderDate,
	}
}
