package cart

import (
	"campuseats_back_end/internal/models"

	"github.com/gocql/gocql"
)

// Cart is the buyer's in-progress selection: an insertion-ordered sequence
// with at most one item per product id. All mutation goes through the
// methods below; callers must treat Items as a snapshot.
type Cart struct {
	Items []models.CartItem `json:"items"`
}

// AddItem merges a product into the cart. If the product is already present
// its quantity is incremented, otherwise a new item is appended at the end.
// A non-positive quantity counts as 1.
func (c *Cart) AddItem(product models.Product, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, models.CartItem{Product: product, Quantity: quantity})
}

// RemoveItem deletes the item for productID. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID gocql.UUID) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for productID. A quantity of zero or less
// removes the item. Unknown product ids are ignored.
func (c *Cart) UpdateQuantity(productID gocql.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total is recomputed on every call so it can never drift from the items.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Count returns the number of distinct products in the cart.
func (c *Cart) Count() int {
	return len(c.Items)
}
