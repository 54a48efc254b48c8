package domain

// Item is one sellable course in the inventory store, keyed by Formname.
// A nil NumberOfItems means unlimited stock; it is never decremented.
type Item struct {
	NumberOfItems *int    `json:"number_of_items"`
	Price         float64 `json:"price"`
	Discount      float64 `json:"discount"`
	Name          string  `json:"name"`
	Formname      string  `json:"formname"`
	Image         string  `json:"image"`
	Dates         string  `json:"dates"`
}

// SoldOut reports whether the item has limited stock and none left.
func (i Item) SoldOut() bool {
	return i.NumberOfItems != nil && *i.NumberOfItems < 1
}
