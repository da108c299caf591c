package user

import (
	"log"
	"net/http"
	"strings"
	"time"

	"campuseats_back_end/internal/database"
	"campuseats_back_end/internal/middleware"
	"campuseats_back_end/internal/models"
	"campuseats_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// ================== LOCAL AUTH ==================

// Register creates a buyer account. Vendor and admin roles are granted
// elsewhere (vendor approval, seeding), never at registration.
func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and password are required"})
		return
	}

	// Email already taken?
	var existingID gocql.UUID
	if err := database.GetPreparedGetUserByEmail().Bind(input.Email).Scan(&existingID); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account"})
		return
	}

	userID := gocql.TimeUUID()
	now := time.Now()

	if err := database.GetPreparedInsertUser().Bind(
		userID, input.Email, hashed, input.Name, models.RoleBuyer, input.Phone, now).Exec(); err != nil {
		log.Println("❌ User insert failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account"})
		return
	}

	session, err := database.GetUsersSession()
	if err == nil {
		if err := session.Query(`INSERT INTO users_by_email (email, user_id) VALUES (?, ?)`,
			input.Email, userID).Exec(); err != nil {
			log.Println("⚠️ users_by_email insert failed:", err)
		}
	}

	user := models.User{
		ID:    userID.String(),
		Name:  input.Name,
		Email: input.Email,
		Role:  models.RoleBuyer,
		Phone: input.Phone,
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"role":   user.Role,
	})
}

// Login authenticates against the local users table.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	var userID gocql.UUID
	if err := database.GetPreparedGetUserByEmail().Bind(input.Email).Scan(&userID); err != nil {
		middleware.RecordFailedLogin(input.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	var user models.User
	if err := database.GetPreparedGetUserByID().Bind(userID).Scan(
		&user.Email, &user.Password, &user.Name, &user.Role, &user.Phone); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	user.ID = userID.String()

	ok, err := utils.VerifyPassword(input.Password, user.Password)
	if err != nil || !ok {
		middleware.RecordFailedLogin(input.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	middleware.ClearLoginAttempts(input.Email)

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"role":   user.Role,
	})
}
