package checkout

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"campuseats_back_end/internal/cart"
	"campuseats_back_end/internal/models"
)

// PaymentMethods the checkout form accepts. Everything except Cash is paid
// exactly at the cart total, so tendering only applies to Cash.
var PaymentMethods = []string{
	"Cash",
	"eWallet",
	"Capitec",
	"FNB",
	"Standard Bank",
	"Absa",
	"Nedbank",
}

// South African mobile numbers: +27 or local trunk 0, then 6/7/8 and eight
// more digits. Invalid input blocks submission; nothing is auto-corrected.
var phonePattern = regexp.MustCompile(`^(\+27|0)[6-8][0-9]{8}$`)

// ValidPhone reports whether s is a valid SA mobile number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func validMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Input carries the raw checkout form fields. PaymentAmount stays a string
// until validated because it arrives straight from a form field.
type Input struct {
	BuyerName        string `json:"buyerName"`
	BuyerPhone       string `json:"buyerPhone"`
	DeliveryLocation string `json:"deliveryLocation"`
	PaymentMethod    string `json:"paymentMethod"`
	PaymentAmount    string `json:"paymentAmount"`
}

// FieldError reports which form field blocked the submission.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// BuildDraft validates the form against the cart visible at submission time
// and assembles the order snapshot. All rules must pass; the first failure
// rejects the whole submission and nothing is written anywhere.
func BuildDraft(c cart.Cart, in Input) (models.OrderDraft, *FieldError) {
	var draft models.OrderDraft

	if c.Count() == 0 {
		return draft, &FieldError{Field: "cart", Message: "Your cart is empty"}
	}
	if strings.TrimSpace(in.BuyerName) == "" {
		return draft, &FieldError{Field: "buyerName", Message: "Name is required"}
	}
	if !ValidPhone(in.BuyerPhone) {
		return draft, &FieldError{Field: "buyerPhone", Message: "Enter a valid South African phone number"}
	}
	if strings.TrimSpace(in.DeliveryLocation) == "" {
		return draft, &FieldError{Field: "deliveryLocation", Message: "Delivery location is required"}
	}
	if !validMethod(in.PaymentMethod) {
		return draft, &FieldError{Field: "paymentMethod", Message: "Select a valid payment method"}
	}

	total := c.Total()

	// Non-cash payments are always exactly the total; tendering only makes
	// sense when the buyer hands over physical cash.
	amount := total
	if in.PaymentMethod == "Cash" {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(in.PaymentAmount), 64)
		if err != nil || math.IsNaN(parsed) || parsed < total {
			return draft, &FieldError{Field: "paymentAmount", Message: "Enter an amount equal to or more than the total"}
		}
		amount = parsed
	}

	draft = models.OrderDraft{
		Items:            append([]models.CartItem(nil), c.Items...),
		BuyerName:        in.BuyerName,
		BuyerPhone:       in.BuyerPhone,
		DeliveryLocation: in.DeliveryLocation,
		PaymentMethod:    in.PaymentMethod,
		PaymentAmount:    amount,
		Total:            total,
	}
	return draft, nil
}
