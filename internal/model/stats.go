package model

// CategoryStat is one row of the per-category inventory aggregate.
type CategoryStat struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"count" json:"count"`
	TotalQty int    `db:"total_qty" json:"total_qty"`
}

// Stats summarises the whole inventory.
type Stats struct {
	TotalItems int            `json:"total_items"`
	Categories []CategoryStat `json:"categories"`
}

// TotalQuantity sums the tracked quantity across every category.
func (s *Stats) TotalQuantity() int {
	total := 0
	for _, c := range s.Categories {
		total += c.TotalQty
	}
	return total
}
