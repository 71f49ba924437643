package model

import "time"

// Item represents one tracked electronics part.
type Item struct {
	ID          int64     `db:"id" json:"id"`
	Category    string    `db:"category" json:"category"`
	Name        string    `db:"item_name" json:"item_name"`
	Quantity    int       `db:"quantity" json:"quantity"`
	Notes       string    `db:"notes" json:"notes,omitempty"`
	Price       float64   `db:"price" json:"price"`
	Image       []byte    `db:"image_data" json:"image_data,omitempty"`
	DateAdded   time.Time `db:"date_added" json:"date_added"`
	LastUpdated time.Time `db:"last_updated" json:"last_updated"`

	// Computed on read (image_data IS NOT NULL); list queries skip the
	// blob itself, so this is the only image signal they carry.
	HasImage bool `db:"has_image" json:"has_image"`
}

// Categories is the fixed selection list offered when creating an item, in
// display order. The store accepts any string, so the list is advisory.
var Categories = []string{
	"Tools & Accessories",
	"Microcontrollers & Boards",
	"Display Modules",
	"Keypads & Buttons",
	"Sensors & Modules",
	"Motors & Drivers",
	"Power & Battery",
	"Integrated Circuits (ICs)",
	"Basic Components",
	"Boards & Prototyping",
	"Wires & Connectors",
	"Other",
}

// ValidCategory reports whether name is one of the fixed category labels.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
