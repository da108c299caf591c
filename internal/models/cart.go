package models

// CartItem pairs a product snapshot with the quantity selected by the buyer.
// A cart holds at most one CartItem per product id.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
