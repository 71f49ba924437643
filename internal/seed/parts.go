// Package seed holds the fixed bulk-import datasets and applies them to the
// store. The lists are intentionally hardcoded; importing one appends every
// entry as a fresh row, duplicates included.
package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/partsbin/internal/store"
)

// Part is one seed entry. Seeded parts never carry an image.
type Part struct {
	Category string
	Name     string
	Quantity int
	Notes    string
	Price    float64
}

// NewParts is the "new parts" dataset: a typical starter haul of boxed
// components.
var NewParts = []Part{
	{"Tools & Accessories", "Soldering iron kit (60W, adjustable)", 1, "includes stand and tips", 22.99},
	{"Tools & Accessories", "Digital multimeter", 1, "auto-ranging", 18.50},
	{"Microcontrollers & Boards", "ESP32 DevKit V1", 3, "WiFi + BT", 6.80},
	{"Microcontrollers & Boards", "Arduino Nano (clone)", 5, "CH340 USB", 3.20},
	{"Microcontrollers & Boards", "Raspberry Pi Pico", 2, "", 4.00},
	{"Display Modules", "0.96\" OLED 128x64 (I2C)", 4, "SSD1306", 2.90},
	{"Display Modules", "LCD 16x2 with I2C backpack", 2, "", 3.50},
	{"Keypads & Buttons", "4x4 membrane keypad", 2, "", 1.80},
	{"Keypads & Buttons", "Tactile push buttons", 50, "6x6mm, assorted caps", 0.04},
	{"Sensors & Modules", "DHT22 temperature/humidity sensor", 2, "", 4.20},
	{"Sensors & Modules", "HC-SR04 ultrasonic sensor", 3, "", 1.50},
	{"Sensors & Modules", "PIR motion sensor (HC-SR501)", 2, "", 1.90},
	{"Motors & Drivers", "SG90 micro servo", 4, "9g", 2.40},
	{"Motors & Drivers", "28BYJ-48 stepper + ULN2003 driver", 2, "5V", 3.10},
	{"Power & Battery", "LM2596 buck converter", 3, "adjustable output", 1.60},
	{"Power & Battery", "18650 battery holder (2-slot)", 2, "", 1.20},
	{"Integrated Circuits (ICs)", "NE555 timer", 10, "DIP-8", 0.25},
	{"Integrated Circuits (ICs)", "ATmega328P-PU", 2, "with Arduino bootloader", 3.90},
	{"Basic Components", "Resistor kit (600 pcs)", 1, "1/4W, 10R-1M", 7.99},
	{"Basic Components", "Electrolytic capacitor kit", 1, "120 pcs, assorted", 6.50},
	{"Boards & Prototyping", "830-point breadboard", 3, "", 3.80},
	{"Boards & Prototyping", "5x7cm perfboard (10 pack)", 1, "", 4.20},
	{"Wires & Connectors", "Dupont jumper wires (120 pcs)", 1, "M-M, M-F, F-F", 4.50},
	{"Wires & Connectors", "JST-XH connector kit", 1, "2/3/4 pin", 5.90},
}

// OldParts is the "old parts" dataset: salvage and leftovers from earlier
// projects.
var OldParts = []Part{
	{"Microcontrollers & Boards", "Arduino Uno R3 (used)", 1, "USB port a bit loose", 0.00},
	{"Display Modules", "Nokia 5110 LCD", 2, "salvaged, both working", 0.00},
	{"Keypads & Buttons", "Arcade button, red", 3, "from old cabinet build", 0.50},
	{"Sensors & Modules", "DS18B20 temperature probe", 4, "pulled from aquarium controller", 1.00},
	{"Motors & Drivers", "DC hobby motors", 6, "mixed sizes, untested", 0.00},
	{"Power & Battery", "12V wall adapter", 3, "assorted plugs", 0.00},
	{"Integrated Circuits (ICs)", "LM358 op-amp", 8, "desoldered, legs trimmed", 0.00},
	{"Basic Components", "Assorted LEDs", 100, "pulled, mixed colors", 0.00},
	{"Boards & Prototyping", "Stripboard offcuts", 5, "", 0.00},
	{"Wires & Connectors", "Ribbon cable", 2, "from old IDE drives", 0.00},
	{"Tools & Accessories", "Helping hands stand", 1, "missing one clip", 0.00},
	{"Other", "Mystery parts box", 1, "unsorted salvage", 0.00},
}

// BySet returns the dataset for a set name: "new", "old" or "all".
func BySet(set string) ([]Part, bool) {
	switch set {
	case "new":
		return NewParts, true
	case "old":
		return OldParts, true
	case "all":
		all := make([]Part, 0, len(NewParts)+len(OldParts))
		all = append(all, NewParts...)
		all = append(all, OldParts...)
		return all, true
	}
	return nil, false
}

// Apply inserts every part in listed order and reports how many made it in.
// Nothing is rolled back on failure; the count tells the caller where the
// run stopped.
func Apply(ctx context.Context, db *sqlx.DB, parts []Part) (int, error) {
	for i, part := range parts {
		_, err := store.Insert(ctx, db, part.Category, part.Name, part.Quantity, part.Notes, part.Price, nil)
		if err != nil {
			return i, fmt.Errorf("seeding %q: %w", part.Name, err)
		}
	}
	return len(parts), nil
}
