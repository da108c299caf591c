package user

import (
	"encoding/base64"
	"log"
	"net/http"
	"time"

	"campuseats_back_end/internal/cache"
	"campuseats_back_end/internal/cart"
	"campuseats_back_end/internal/checkout"
	"campuseats_back_end/internal/database"
	"campuseats_back_end/internal/models"
	"campuseats_back_end/internal/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	qrcode "github.com/skip2/go-qrcode"
)

// CheckoutHandler turns the cart into an order draft and, on the
// confirmation step, into a WhatsApp handoff to the vendor.
type CheckoutHandler struct {
	Carts  *cart.Store
	Drafts *checkout.DraftSlot
}

func NewCheckoutHandler(carts *cart.Store, drafts *checkout.DraftSlot) *CheckoutHandler {
	return &CheckoutHandler{Carts: carts, Drafts: drafts}
}

//
// 🟢 POST /api/checkout
//
// Validates the delivery form against the cart visible right now, stores the
// draft in the one-shot slot and directs the client to the confirmation
// step. The cart itself is left untouched; it is cleared when the draft is
// consumed.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := c.GetString("user_id")

	var input checkout.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	ctx := c.Request.Context()
	userCart := h.Carts.Load(ctx, userID)

	draft, fieldErr := checkout.BuildDraft(userCart, input)
	if fieldErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Message, "field": fieldErr.Field})
		return
	}

	if err := h.Drafts.Put(ctx, userID, draft); err != nil {
		log.Println("❌ Draft store failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not place order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order placed!",
		"redirect": "/confirmation",
	})
}

//
// 🟢 GET /api/checkout/confirmation
//
// Consumes the draft exactly once (a refresh finds nothing and is redirected
// home), resolves the vendor of the first item, renders the order message
// and the wa.me deep link, persists the order and clears the cart.
func (h *CheckoutHandler) Confirmation(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	draft, err := h.Drafts.Take(ctx, userID)
	if err != nil {
		log.Println("❌ Draft read failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not read order"})
		return
	}
	if draft == nil || len(draft.Items) == 0 {
		// Nothing to confirm.
		c.JSON(http.StatusNotFound, gin.H{"redirect": "/"})
		return
	}

	vendorID := draft.Items[0].Product.VendorID
	vendor, err := cache.GetVendorFromCache(ctx, vendorID.String())
	if err != nil {
		log.Printf("⚠️ Vendor %s not found for confirmation: %v", vendorID, err)
		c.JSON(http.StatusNotFound, gin.H{"redirect": "/"})
		return
	}

	message := whatsapp.OrderMessage(*draft)
	link := whatsapp.Link(vendor.WhatsappNumber, message)

	// QR of the deep link, for buyers confirming on a desktop browser.
	qr := ""
	if link != "" {
		if png, err := qrcode.Encode(link, qrcode.Medium, 256); err == nil {
			qr = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
		}
	}

	persistOrder(vendor.ID, *draft)

	// The draft has been consumed; the cart's job is done.
	if err := h.Carts.Clear(ctx, userID); err != nil {
		log.Println("⚠️ Cart clear failed:", err)
	}

	response := gin.H{
		"order":        draft,
		"vendor":       gin.H{"id": vendor.ID, "name": vendor.Name},
		"message":      message,
		"whatsappLink": link,
		"qrCode":       qr,
	}
	if draft.PaymentMethod == "Cash" {
		response["expectedChange"] = draft.PaymentAmount - draft.Total
	}

	c.JSON(http.StatusOK, response)
}

// persistOrder records the order for vendor history and admin statistics.
// Failure is logged, not surfaced: the handoff to the vendor is the WhatsApp
// message, not this row.
func persistOrder(vendorID gocql.UUID, draft models.OrderDraft) {
	session, err := database.GetOrdersSession()
	if err != nil {
		log.Println("⚠️ Orders session unavailable:", err)
		return
	}

	orderID := gocql.TimeUUID()
	now := time.Now()

	if err := session.Query(`INSERT INTO orders (order_id, vendor_id, buyer_name, buyer_phone,
		delivery_location, payment_method, payment_amount, total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		orderID, vendorID, draft.BuyerName, draft.BuyerPhone, draft.DeliveryLocation,
		draft.PaymentMethod, draft.PaymentAmount, draft.Total,
		models.OrderStatusPending, now).Exec(); err != nil {
		log.Println("⚠️ Order insert failed:", err)
		return
	}

	// Denormalised copy for the vendor's recent-orders view.
	if err := session.Query(`INSERT INTO orders_by_vendor (vendor_id, created_at, order_id,
		buyer_name, total, status) VALUES (?, ?, ?, ?, ?, ?)`,
		vendorID, now, orderID, draft.BuyerName, draft.Total,
		models.OrderStatusPending).Exec(); err != nil {
		log.Println("⚠️ orders_by_vendor insert failed:", err)
	}
}
