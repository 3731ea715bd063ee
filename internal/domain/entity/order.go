package entity

import "time"

// Order statuses. Only completed orders count toward sales totals.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// LineItem is one product/quantity/price entry within an order. Quantity and
// price are stored as strings, exactly as they arrive on the wire; the unit
// price is a snapshot taken at order creation, not a live product reference.
type LineItem struct {
	ProductID string
	Quantity  string
	Price     string
}

// Order is an invoice issued at checkout. The buyer contact fields are a
// snapshot, the line-item list is owned by the order and immutable after
// creation, and OrderTotal is the currency-formatted sum of quantity x price
// over the line items, computed once when the order is placed.
type Order struct {
	ID         string
	Name       string // Buyer name snapshot.
	Email      string
	Address    string
	InvoiceID  string // External invoice identifier supplied by the caller.
	UserID     string // Back-office user who placed the order.
	Products   []LineItem
	OrderTotal string
	Status     string
	OrderDate  time.Time
}
