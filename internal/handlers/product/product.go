package product

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"campuseats_back_end/internal/cache"
	"campuseats_back_end/internal/database"
	"campuseats_back_end/internal/models"
	"campuseats_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// vendorForUser resolves the vendor record owned by the logged-in user.
func vendorForUser(userID string) (*models.Vendor, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	var vendorID gocql.UUID
	if err := session.Query(`SELECT vendor_id FROM vendors_by_user WHERE user_id = ?`,
		userID).Scan(&vendorID); err != nil {
		return nil, err
	}

	return cache.GetVendorFromCache(context.Background(), vendorID.String())
}

//
// 🟢 POST /api/vendor/products
//
func CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if p.Name == "" || p.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'name' and 'category' are required"})
		return
	}
	if p.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
		return
	}

	vendor, err := vendorForUser(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No vendor profile for this account"})
		return
	}
	if !vendor.Verified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vendor is not approved yet"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	// The category must exist in the global list.
	var categoryID gocql.UUID
	if err := session.Query(`SELECT category_id FROM categories_by_name WHERE name = ?`,
		p.Category).Scan(&categoryID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return
	}

	p.ID = gocql.TimeUUID()
	p.VendorID = vendor.ID
	now := time.Now()
	p.CreatedAt = &now
	p.UpdatedAt = &now

	if err := session.Query(`INSERT INTO products (product_id, name, description, price, image,
		category, vendor_id, available, available_from, available_to, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Image, p.Category, p.VendorID,
		p.Available, p.AvailableFrom, p.AvailableTo, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product creation failed: " + err.Error()})
		return
	}

	// Denormalised copy for the vendor's own listing.
	if err := session.Query(`INSERT INTO products_by_vendor (vendor_id, product_id, name, price, available)
		VALUES (?, ?, ?, ?, ?)`,
		p.VendorID, p.ID, p.Name, p.Price, p.Available).Exec(); err != nil {
		log.Printf("⚠️ products_by_vendor insert failed: %v", err)
	}

	go services.IndexProduct(p)
	cache.InvalidateLists(c.Request.Context())

	c.JSON(http.StatusOK, p)
}

//
// 🔵 GET /api/products
//
// Public market listing with optional filters: category, q (text match),
// available=true, max_price. The unfiltered list is served from Redis.
func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()
	cacheKey := "products:all"

	var products []models.Product

	if val, err := database.RedisClient.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		if err := json.Unmarshal([]byte(val), &products); err != nil {
			products = nil
		}
	}

	if products == nil {
		var err error
		products, err = scanAllProducts()
		if err != nil {
			log.Println("❌ Product scan failed:", err)
			// Degrade to an empty market rather than an error page.
			c.JSON(http.StatusOK, []models.Product{})
			return
		}

		if data, err := json.Marshal(products); err == nil {
			database.RedisClient.Set(ctx, cacheKey, data, cache.ProductCacheTTL)
		}
	}

	c.JSON(http.StatusOK, applyFilters(products, c))
}

func scanAllProducts() ([]models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, name, description, price, image, category,
		vendor_id, available, available_from, available_to, created_at, updated_at
		FROM products`).Iter()

	products := []models.Product{}
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category,
		&p.VendorID, &p.Available, &p.AvailableFrom, &p.AvailableTo, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

func applyFilters(products []models.Product, c *gin.Context) []models.Product {
	category := c.Query("category")
	query := strings.ToLower(c.Query("q"))
	availableOnly := c.Query("available") == "true"
	maxPrice, hasMaxPrice := 0.0, false
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			maxPrice, hasMaxPrice = v, true
		}
	}

	filtered := []models.Product{}
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if availableOnly && !p.Available {
			continue
		}
		if hasMaxPrice && p.Price > maxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

//
// 🔵 GET /api/products/search?q=
//
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'q' parameter"})
		return
	}

	products, err := services.SearchProducts(query)
	if err != nil {
		log.Println("❌ Elasticsearch search failed:", err)
		c.JSON(http.StatusOK, []models.Product{})
		return
	}

	c.JSON(http.StatusOK, products)
}

//
// 🔵 GET /api/products/:id
//
func GetProduct(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var p models.Product
	if err := database.GetPreparedGetProductByID().Bind(productID).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category,
		&p.VendorID, &p.Available, &p.AvailableFrom, &p.AvailableTo,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

//
// 🔵 GET /api/vendor/products
//
func GetMyProducts(c *gin.Context) {
	vendor, err := vendorForUser(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No vendor profile for this account"})
		return
	}

	products, err := scanAllProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load products"})
		return
	}

	mine := []models.Product{}
	for _, p := range products {
		if p.VendorID == vendor.ID {
			mine = append(mine, p)
		}
	}

	c.JSON(http.StatusOK, mine)
}

//
// 🟠 PUT /api/vendor/products/:id
//
func UpdateProduct(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	existing, err := loadProduct(productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if !mayManage(c, existing.VendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this product"})
		return
	}

	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	now := time.Now()
	input.ID = existing.ID
	input.VendorID = existing.VendorID
	input.CreatedAt = existing.CreatedAt
	input.UpdatedAt = &now

	if err := session.Query(`UPDATE products SET name = ?, description = ?, price = ?, image = ?,
		category = ?, available = ?, available_from = ?, available_to = ?, updated_at = ?
		WHERE product_id = ?`,
		input.Name, input.Description, input.Price, input.Image, input.Category,
		input.Available, input.AvailableFrom, input.AvailableTo, input.UpdatedAt,
		input.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product update failed"})
		return
	}

	if err := session.Query(`UPDATE products_by_vendor SET name = ?, price = ?, available = ?
		WHERE vendor_id = ? AND product_id = ?`,
		input.Name, input.Price, input.Available, input.VendorID, input.ID).Exec(); err != nil {
		log.Printf("⚠️ products_by_vendor update failed: %v", err)
	}

	go services.IndexProduct(input)
	cache.InvalidateLists(c.Request.Context())

	c.JSON(http.StatusOK, input)
}

//
// ❌ DELETE /api/vendor/products/:id
//
func DeleteProduct(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	existing, err := loadProduct(productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if !mayManage(c, existing.VendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this product"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, productID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Product deletion failed"})
		return
	}
	if err := session.Query(`DELETE FROM products_by_vendor WHERE vendor_id = ? AND product_id = ?`,
		existing.VendorID, productID).Exec(); err != nil {
		log.Printf("⚠️ products_by_vendor delete failed: %v", err)
	}

	go services.RemoveProduct(productID.String())
	cache.InvalidateLists(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func loadProduct(productID gocql.UUID) (models.Product, error) {
	var p models.Product
	err := database.GetPreparedGetProductByID().Bind(productID).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category,
		&p.VendorID, &p.Available, &p.AvailableFrom, &p.AvailableTo,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// mayManage allows the owning vendor or an admin.
func mayManage(c *gin.Context, ownerID gocql.UUID) bool {
	if role, _ := c.Get("role"); role == models.RoleAdmin {
		return true
	}
	vendor, err := vendorForUser(c.GetString("user_id"))
	return err == nil && vendor.ID == ownerID
}
