package checkout

import (
	"testing"

	"campuseats_back_end/internal/cart"
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

func validInput() Input {
	return Input{
		BuyerName:        "Thabo",
		BuyerPhone:       "0821234567",
		DeliveryLocation: "Res Block C, Room 12",
		PaymentMethod:    "Capitec",
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0821234567", true},
		{"+27821234567", true},
		{"0612345678", true},
		{"0712345678", true},
		{"12345", false},
		{"0521234567", false},   // 5 is not a mobile prefix
		{"082123456", false},    // too short
		{"08212345678", false},  // too long
		{"+2782123456", false},  // too short after +27
		{"27821234567", false},  // missing + or 0
		{"082 123 4567", false}, // no auto-correction of spacing
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPhone(tt.phone))
		})
	}
}

func TestBuildDraftEmptyCart(t *testing.T) {
	var c cart.Cart

	_, fieldErr := BuildDraft(c, validInput())

	require.NotNil(t, fieldErr)
	assert.Equal(t, "cart", fieldErr.Field)
}

func TestBuildDraftFieldValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Input)
		wantField string
	}{
		{"missing name", func(in *Input) { in.BuyerName = "  " }, "buyerName"},
		{"invalid phone", func(in *Input) { in.BuyerPhone = "12345" }, "buyerPhone"},
		{"missing location", func(in *Input) { in.DeliveryLocation = "" }, "deliveryLocation"},
		{"unknown method", func(in *Input) { in.PaymentMethod = "Bitcoin" }, "paymentMethod"},
		{"empty method", func(in *Input) { in.PaymentMethod = "" }, "paymentMethod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c cart.Cart
			c.AddItem(testProduct(1, "Coffee", 15), 1)

			in := validInput()
			tt.mutate(&in)

			_, fieldErr := BuildDraft(c, in)
			require.NotNil(t, fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestBuildDraftCashTendering(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		wantField  string  // "" means accepted
		wantAmount float64 // only checked when accepted
	}{
		{"under the total is rejected", "40.00", "paymentAmount", 0},
		{"exactly the total is accepted", "45.00", "", 45},
		{"over the total is accepted", "50.00", "", 50},
		{"not a number is rejected", "fifty", "paymentAmount", 0},
		{"empty amount is rejected", "", "paymentAmount", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c cart.Cart
			c.AddItem(testProduct(1, "Wrap", 45), 1)

			in := validInput()
			in.PaymentMethod = "Cash"
			in.PaymentAmount = tt.amount

			draft, fieldErr := BuildDraft(c, in)
			if tt.wantField != "" {
				require.NotNil(t, fieldErr)
				assert.Equal(t, tt.wantField, fieldErr.Field)
				return
			}

			require.Nil(t, fieldErr)
			assert.InDelta(t, tt.wantAmount, draft.PaymentAmount, 1e-9)
			assert.InDelta(t, 45, draft.Total, 1e-9)
		})
	}
}

func TestBuildDraftNonCashForcesAmountToTotal(t *testing.T) {
	var c cart.Cart
	c.AddItem(testProduct(1, "Wrap", 45), 1)

	in := validInput()
	in.PaymentMethod = "eWallet"
	in.PaymentAmount = "999.00" // must be ignored

	draft, fieldErr := BuildDraft(c, in)

	require.Nil(t, fieldErr)
	assert.InDelta(t, 45, draft.PaymentAmount, 1e-9)
	assert.InDelta(t, 45, draft.Total, 1e-9)
}

func TestBuildDraftSnapshotsCartItems(t *testing.T) {
	var c cart.Cart
	coffee := testProduct(1, "Coffee", 15)
	c.AddItem(coffee, 2)

	in := validInput()
	draft, fieldErr := BuildDraft(c, in)
	require.Nil(t, fieldErr)

	// Later cart mutations must not leak into the draft.
	c.UpdateQuantity(coffee.ID, 9)

	require.Len(t, draft.Items, 1)
	assert.Equal(t, 2, draft.Items[0].Quantity)
}

func TestBuildDraftFullOrder(t *testing.T) {
	var c cart.Cart
	c.AddItem(testProduct(1, "Chicken Wrap", 15), 2)
	c.AddItem(testProduct(2, "Smoothie", 20), 1)

	in := Input{
		BuyerName:        "Lerato",
		BuyerPhone:       "+27821234567",
		DeliveryLocation: "Engineering Building",
		PaymentMethod:    "Cash",
		PaymentAmount:    "60.00",
	}

	draft, fieldErr := BuildDraft(c, in)
	require.Nil(t, fieldErr)

	assert.InDelta(t, 50, draft.Total, 1e-9)
	assert.InDelta(t, 60, draft.PaymentAmount, 1e-9)
	assert.InDelta(t, 10, draft.PaymentAmount-draft.Total, 1e-9) // change due
	assert.Equal(t, "Lerato", draft.BuyerName)
	assert.Equal(t, "Cash", draft.PaymentMethod)
	require.Len(t, draft.Items, 2)
}
