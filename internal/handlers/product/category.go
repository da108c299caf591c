package product

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"campuseats_back_end/internal/cache"
	"campuseats_back_end/internal/database"
	"campuseats_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

//
// 🟢 POST /api/categories
//
func CreateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'name' is required"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	// Category names are globally unique.
	var existingID gocql.UUID
	if err := session.Query(`SELECT category_id FROM categories_by_name WHERE name = ?`,
		cat.Name).Scan(&existingID); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
		return
	}

	cat.ID = gocql.TimeUUID()
	now := time.Now()
	cat.CreatedAt = &now

	if err := session.Query(`INSERT INTO categories (category_id, name, created_at) VALUES (?, ?, ?)`,
		cat.ID, cat.Name, cat.CreatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := session.Query(`INSERT INTO categories_by_name (name, category_id) VALUES (?, ?)`,
		cat.Name, cat.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	database.RedisClient.Del(c.Request.Context(), "categories:all")

	c.JSON(http.StatusOK, cat)
}

//
// 🔵 GET /api/categories
//
func GetAllCategories(c *gin.Context) {
	ctx := c.Request.Context()
	cacheKey := "categories:all"

	if val, err := database.RedisClient.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		var cached []models.Category
		if json.Unmarshal([]byte(val), &cached) == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	iter := session.Query(`SELECT category_id, name, created_at FROM categories`).Iter()

	cats := []models.Category{}
	var cat models.Category
	for iter.Scan(&cat.ID, &cat.Name, &cat.CreatedAt) {
		cats = append(cats, cat)
		cat = models.Category{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusOK, []models.Category{})
		return
	}

	if data, err := json.Marshal(cats); err == nil {
		database.RedisClient.Set(ctx, cacheKey, data, cache.CategoryCacheTTL)
	}

	c.JSON(http.StatusOK, cats)
}

//
// ❌ DELETE /api/categories/:id
//
func DeleteCategory(c *gin.Context) {
	categoryID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	var name string
	if err := session.Query(`SELECT name FROM categories WHERE category_id = ?`,
		categoryID).Scan(&name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := session.Query(`DELETE FROM categories WHERE category_id = ?`, categoryID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	session.Query(`DELETE FROM categories_by_name WHERE name = ?`, name).Exec()

	database.RedisClient.Del(c.Request.Context(), "categories:all")

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
