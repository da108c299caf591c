package user

import (
	"net/http"

	"campuseats_back_end/internal/cart"
	"campuseats_back_end/internal/database"
	"campuseats_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// CartHandler serves the buyer's cart. The store is injected so the cart has
// exactly one owner and all mutation funnels through its operations.
type CartHandler struct {
	Store *cart.Store
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{Store: store}
}

func cartResponse(c cart.Cart) gin.H {
	items := c.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return gin.H{
		"items": items,
		"total": c.Total(),
		"count": c.Count(),
	}
}

// fetchProduct loads the product snapshot stored inside cart items.
func fetchProduct(productID gocql.UUID) (models.Product, error) {
	var p models.Product
	err := database.GetPreparedGetProductByID().Bind(productID).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category,
		&p.VendorID, &p.Available, &p.AvailableFrom, &p.AvailableTo,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

//
// 🟢 GET /api/cart
//
func (h *CartHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	c.JSON(http.StatusOK, cartResponse(h.Store.Load(c.Request.Context(), userID)))
}

//
// 🟢 POST /api/cart/add
//
func (h *CartHandler) Add(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	productID, err := gocql.ParseUUID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := fetchProduct(productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if !product.Available {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product is currently unavailable"})
		return
	}

	ctx := c.Request.Context()
	userCart := h.Store.Load(ctx, userID)
	userCart.AddItem(product, input.Quantity)

	if err := h.Store.Save(ctx, userID, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(userCart))
}

//
// 🔵 PUT /api/cart/quantity
//
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	productID, err := gocql.ParseUUID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	ctx := c.Request.Context()
	userCart := h.Store.Load(ctx, userID)
	userCart.UpdateQuantity(productID, input.Quantity)

	if err := h.Store.Save(ctx, userID, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(userCart))
}

//
// ❌ DELETE /api/cart/:productId
//
func (h *CartHandler) Remove(c *gin.Context) {
	userID := c.GetString("user_id")

	productID, err := gocql.ParseUUID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	ctx := c.Request.Context()
	userCart := h.Store.Load(ctx, userID)
	userCart.RemoveItem(productID)

	if err := h.Store.Save(ctx, userID, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(userCart))
}

//
// 🧹 DELETE /api/cart
//
func (h *CartHandler) Clear(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.Store.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
