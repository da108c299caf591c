package whatsapp

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"

	"campuseats_back_end/internal/models"
)

const linkBase = "https://wa.me/"

var nonDigits = regexp.MustCompile(`\D`)

// Link builds a wa.me deep link opening a chat with phone, pre-filled with
// message. The number is normalised to the South African calling code: a
// single local trunk "0" is dropped and "27" prepended unless already
// present. An empty number yields an empty string, never a malformed URL.
func Link(phone, message string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if digits == "" {
		return ""
	}

	if !strings.HasPrefix(digits, "27") {
		digits = "27" + strings.TrimPrefix(digits, "0")
	}

	return linkBase + digits + "?text=" + url.QueryEscape(message)
}

// FormatCurrency renders an amount as South African Rand, e.g. "R1,234.56".
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "R0.00"
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	whole, cents := s[:len(s)-3], s[len(s)-3:]
	for i := len(whole) - 3; i > 0; i -= 3 {
		whole = whole[:i] + "," + whole[i:]
	}

	return sign + "R" + whole + cents
}

// OrderMessage renders the human-readable order text the buyer sends to the
// vendor: buyer details, itemised lines with line totals, grand total,
// payment method and, for cash, the tendered amount.
func OrderMessage(draft models.OrderDraft) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *New Order from %s*\n", draft.BuyerName)
	fmt.Fprintf(&b, "📍 Delivery to: %s\n", draft.DeliveryLocation)
	fmt.Fprintf(&b, "📞 Phone: %s\n\n", draft.BuyerPhone)

	b.WriteString("*Ordered Items:*\n")
	for _, item := range draft.Items {
		lineTotal := item.Product.Price * float64(item.Quantity)
		fmt.Fprintf(&b, "- %s x%d (%s)\n", item.Product.Name, item.Quantity, FormatCurrency(lineTotal))
	}

	fmt.Fprintf(&b, "\n💰 *Total: %s*\n", FormatCurrency(draft.Total))
	fmt.Fprintf(&b, "💳 *Payment: %s*", draft.PaymentMethod)
	if draft.PaymentMethod == "Cash" {
		fmt.Fprintf(&b, "\n💵 *Customer will pay with: %s*", FormatCurrency(draft.PaymentAmount))
	}

	return b.String()
}
