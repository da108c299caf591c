package whatsapp

import (
	"math"
	"net/url"
	"strings"
	"testing"

	"campuseats_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkNormalisesLocalNumbers(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string // expected digits in the link
	}{
		{"local trunk zero", "0821234567", "27821234567"},
		{"international form", "+27821234567", "27821234567"},
		{"already has country code", "27821234567", "27821234567"},
		{"spaces and dashes stripped", "082 123-4567", "27821234567"},
		{"only the first zero is dropped", "0601234567", "27601234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := Link(tt.phone, "Hi")
			assert.True(t, strings.HasPrefix(link, "https://wa.me/"+tt.want+"?text="), link)
		})
	}
}

func TestLinkEncodesMessage(t *testing.T) {
	link := Link("0821234567", "Hi")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/27821234567", u.Path)
	assert.Equal(t, "Hi", u.Query().Get("text"))
}

func TestLinkEncodesMultilineMessage(t *testing.T) {
	message := "🛒 *New Order from Thabo*\n📍 Delivery to: Res Block C\nTotal: R50.00 & change"

	link := Link("0821234567", message)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, message, u.Query().Get("text"))
}

func TestLinkEmptyPhone(t *testing.T) {
	assert.Equal(t, "", Link("", "Hi"))
	assert.Equal(t, "", Link("+- ", "Hi"))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "R0.00"},
		{"whole rand", 45, "R45.00"},
		{"cents", 12.5, "R12.50"},
		{"thousands separator", 1234.56, "R1,234.56"},
		{"millions", 1234567.89, "R1,234,567.89"},
		{"rounds to cents", 9.999, "R10.00"},
		{"negative", -45.5, "-R45.50"},
		{"nan falls back", math.NaN(), "R0.00"},
		{"infinity falls back", math.Inf(1), "R0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestOrderMessage(t *testing.T) {
	draft := models.OrderDraft{
		Items: []models.CartItem{
			{Product: models.Product{Name: "Chicken Wrap", Price: 15}, Quantity: 2},
			{Product: models.Product{Name: "Smoothie", Price: 20}, Quantity: 1},
		},
		BuyerName:        "Lerato",
		BuyerPhone:       "0821234567",
		DeliveryLocation: "Engineering Building",
		PaymentMethod:    "Cash",
		PaymentAmount:    60,
		Total:            50,
	}

	msg := OrderMessage(draft)

	assert.Contains(t, msg, "🛒 *New Order from Lerato*")
	assert.Contains(t, msg, "📍 Delivery to: Engineering Building")
	assert.Contains(t, msg, "📞 Phone: 0821234567")
	assert.Contains(t, msg, "- Chicken Wrap x2 (R30.00)")
	assert.Contains(t, msg, "- Smoothie x1 (R20.00)")
	assert.Contains(t, msg, "💰 *Total: R50.00*")
	assert.Contains(t, msg, "💳 *Payment: Cash*")
	assert.Contains(t, msg, "💵 *Customer will pay with: R60.00*")
}

func TestOrderMessageNonCashOmitsTenderLine(t *testing.T) {
	draft := models.OrderDraft{
		Items: []models.CartItem{
			{Product: models.Product{Name: "Coffee", Price: 15}, Quantity: 1},
		},
		BuyerName:        "Thabo",
		BuyerPhone:       "0821234567",
		DeliveryLocation: "Library",
		PaymentMethod:    "Capitec",
		PaymentAmount:    15,
		Total:            15,
	}

	msg := OrderMessage(draft)

	assert.Contains(t, msg, "💳 *Payment: Capitec*")
	assert.NotContains(t, msg, "Customer will pay with")
}
