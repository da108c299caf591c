package database

import (
	"log"
	"sync"

	"github.com/gocql/gocql"
)

var (
	// Prepared statements for the hot auth/catalog paths.
	stmtGetUserByEmail *gocql.Query
	stmtGetUserByID    *gocql.Query
	stmtInsertUser     *gocql.Query
	stmtGetProductByID *gocql.Query
	stmtGetVendorByID  *gocql.Query

	preparedOnce sync.Once
)

// InitPreparedStatements prepares the frequent queries once at startup.
func InitPreparedStatements() {
	preparedOnce.Do(func() {
		users, err := GetUsersSession()
		if err != nil {
			log.Printf("⚠️ Could not prepare user statements: %v", err)
			return
		}

		stmtGetUserByEmail = users.Query("SELECT user_id FROM users_by_email WHERE email = ?")
		stmtGetUserByID = users.Query(`SELECT email, password, name, role, phone FROM users WHERE user_id = ?`)
		stmtInsertUser = users.Query(`INSERT INTO users (user_id, email, password, name, role, phone, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		stmtGetVendorByID = users.Query(`SELECT vendor_id, user_id, name, email, whatsapp_number, description,
			student_id, verified, rejection_reason, is_promoted, total_sales, total_orders, rating, created_at
			FROM vendors WHERE vendor_id = ?`)

		products, err := GetProductsSession()
		if err != nil {
			log.Printf("⚠️ Could not prepare product statements: %v", err)
			return
		}

		stmtGetProductByID = products.Query(`SELECT product_id, name, description, price, image, category,
			vendor_id, available, available_from, available_to, created_at, updated_at
			FROM products WHERE product_id = ?`)

		log.Println("✅ Prepared statements initialised")
	})
}

func GetPreparedGetUserByEmail() *gocql.Query { return stmtGetUserByEmail }
func GetPreparedGetUserByID() *gocql.Query    { return stmtGetUserByID }
func GetPreparedInsertUser() *gocql.Query     { return stmtInsertUser }
func GetPreparedGetProductByID() *gocql.Query { return stmtGetProductByID }
func GetPreparedGetVendorByID() *gocql.Query  { return stmtGetVendorByID }
