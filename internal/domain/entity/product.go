package entity

import "time"

// Product is a catalogue entry. Price is kept as a currency-formatted string
// (e.g. "$12.50"), matching how it travels through the API; the money package
// parses it when arithmetic is needed.
type Product struct {
	ID          string
	Name        string
	Brand       string
	Price       string
	Negotiable  bool
	Description string
	File        FileRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
