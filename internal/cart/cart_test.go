package cart

import (
	"testing"

	"campuseats_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id byte, name string, price float64) models.Product {
	return models.Product{
		ID:        gocql.UUID{id},
		Name:      name,
		Price:     price,
		Available: true,
	}
}

func TestAddItemMergesDuplicates(t *testing.T) {
	var c Cart
	coffee := testProduct(1, "Coffee", 15)

	c.AddItem(coffee, 1)
	c.AddItem(coffee, 1)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestAddItemDefaultsToOne(t *testing.T) {
	var c Cart
	c.AddItem(testProduct(1, "Coffee", 15), 0)
	c.AddItem(testProduct(2, "Muffin", 12), -3)

	require.Len(t, c.Items, 2)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	var c Cart
	c.AddItem(testProduct(1, "Coffee", 15), 1)
	c.AddItem(testProduct(2, "Muffin", 12), 1)
	c.AddItem(testProduct(1, "Coffee", 15), 1)
	c.AddItem(testProduct(3, "Wrap", 35), 1)

	require.Len(t, c.Items, 3)
	assert.Equal(t, "Coffee", c.Items[0].Product.Name)
	assert.Equal(t, "Muffin", c.Items[1].Product.Name)
	assert.Equal(t, "Wrap", c.Items[2].Product.Name)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int // remaining quantity, 0 means removed
	}{
		{"positive quantity sets it", 5, 5},
		{"zero removes the item", 0, 0},
		{"negative removes the item", -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			coffee := testProduct(1, "Coffee", 15)
			c.AddItem(coffee, 2)

			c.UpdateQuantity(coffee.ID, tt.quantity)

			if tt.want == 0 {
				assert.Empty(t, c.Items)
				assert.Zero(t, c.Total())
			} else {
				require.Len(t, c.Items, 1)
				assert.Equal(t, tt.want, c.Items[0].Quantity)
			}
		})
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	var c Cart
	c.AddItem(testProduct(1, "Coffee", 15), 2)

	c.UpdateQuantity(gocql.UUID{99}, 7)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	var c Cart
	coffee := testProduct(1, "Coffee", 15)
	muffin := testProduct(2, "Muffin", 12)
	c.AddItem(coffee, 1)
	c.AddItem(muffin, 1)

	c.RemoveItem(gocql.UUID{42}) // absent id
	require.Len(t, c.Items, 2)

	c.RemoveItem(coffee.ID)
	c.RemoveItem(coffee.ID) // already gone
	require.Len(t, c.Items, 1)
	assert.Equal(t, "Muffin", c.Items[0].Product.Name)
}

func TestClear(t *testing.T) {
	var c Cart
	c.AddItem(testProduct(1, "Coffee", 15), 3)
	c.AddItem(testProduct(2, "Muffin", 12), 1)

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total())
	assert.Zero(t, c.Count())
}

// Total must always match an independent recalculation, whatever sequence of
// operations produced the cart.
func TestTotalMatchesIndependentRecalculation(t *testing.T) {
	var c Cart
	coffee := testProduct(1, "Coffee", 15)
	muffin := testProduct(2, "Muffin", 12.5)
	wrap := testProduct(3, "Wrap", 35)

	c.AddItem(coffee, 2)
	c.AddItem(muffin, 1)
	c.AddItem(wrap, 1)
	c.UpdateQuantity(muffin.ID, 4)
	c.RemoveItem(wrap.ID)
	c.AddItem(coffee, 1)

	expected := 0.0
	for _, item := range c.Items {
		expected += item.Product.Price * float64(item.Quantity)
	}

	assert.InDelta(t, expected, c.Total(), 1e-9)
	assert.InDelta(t, 3*15+4*12.5, c.Total(), 1e-9)
}
