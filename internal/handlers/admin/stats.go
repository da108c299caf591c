package admin

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"time"

	"campuseats_back_end/internal/database"
	"campuseats_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

const statsCacheTTL = 5 * time.Minute

// MonthlyBucket is one point of the six-month sales chart.
type MonthlyBucket struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

// StatusCount is one slice of the vendor status distribution.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// orderStat is the slice of an order the aggregation needs.
type orderStat struct {
	Total     float64
	Status    string
	CreatedAt time.Time
}

// vendorStat is the slice of a vendor the distribution needs.
type vendorStat struct {
	Verified        bool
	RejectionReason *string
}

//
// 🔵 GET /api/admin/stats
//
func GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	cacheKey := "admin:stats"

	if val, err := database.RedisClient.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		var cached gin.H
		if json.Unmarshal([]byte(val), &cached) == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	orders, err := scanOrderStats()
	if err != nil {
		log.Println("❌ Order stats scan failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load statistics"})
		return
	}

	vendors, err := scanVendorStats()
	if err != nil {
		log.Println("❌ Vendor stats scan failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load statistics"})
		return
	}

	totalSales, totalOrders := completedTotals(orders)

	stats := gin.H{
		"totalSales":   totalSales,
		"totalOrders":  totalOrders,
		"totalVendors": len(vendors),
		"salesData":    aggregateMonthly(orders, time.Now()),
		"vendorStats":  vendorDistribution(vendors),
	}

	if data, err := json.Marshal(stats); err == nil {
		database.RedisClient.Set(ctx, cacheKey, data, statsCacheTTL)
	}

	c.JSON(http.StatusOK, stats)
}

func scanOrderStats() ([]orderStat, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT total, status, created_at FROM orders`).Iter()

	orders := []orderStat{}
	var o orderStat
	for iter.Scan(&o.Total, &o.Status, &o.CreatedAt) {
		orders = append(orders, o)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return orders, nil
}

func scanVendorStats() ([]vendorStat, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT verified, rejection_reason FROM vendors`).Iter()

	vendors := []vendorStat{}
	var v vendorStat
	for iter.Scan(&v.Verified, &v.RejectionReason) {
		vendors = append(vendors, v)
		v = vendorStat{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return vendors, nil
}

// completedTotals sums sales and counts over completed orders only.
func completedTotals(orders []orderStat) (float64, int) {
	sales := 0.0
	count := 0
	for _, o := range orders {
		if o.Status == models.OrderStatusCompleted {
			sales += o.Total
			count++
		}
	}
	return sales, count
}

// aggregateMonthly buckets completed orders into the last six calendar
// months (oldest first). Orders outside the window are ignored.
func aggregateMonthly(orders []orderStat, now time.Time) []MonthlyBucket {
	type key struct{ year int; month time.Month }

	// Anchor on the first of the month so subtracting months never
	// normalises into a neighbouring month.
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	keys := make([]key, 0, 6)
	buckets := make(map[key]*MonthlyBucket, 6)
	for i := 5; i >= 0; i-- {
		t := base.AddDate(0, -i, 0)
		k := key{t.Year(), t.Month()}
		keys = append(keys, k)
		buckets[k] = &MonthlyBucket{Month: t.Format("Jan")}
	}

	for _, o := range orders {
		if o.Status != models.OrderStatusCompleted {
			continue
		}
		k := key{o.CreatedAt.Year(), o.CreatedAt.Month()}
		if b, ok := buckets[k]; ok {
			b.Sales += o.Total
			b.Orders++
		}
	}

	result := make([]MonthlyBucket, 0, len(keys))
	for _, k := range keys {
		b := *buckets[k]
		b.Sales = math.Round(b.Sales*100) / 100
		result = append(result, b)
	}
	return result
}

// vendorDistribution counts applications per review status.
func vendorDistribution(vendors []vendorStat) []StatusCount {
	verified, pending, rejected := 0, 0, 0
	for _, v := range vendors {
		switch {
		case v.Verified:
			verified++
		case v.RejectionReason != nil && *v.RejectionReason != "":
			rejected++
		default:
			pending++
		}
	}

	return []StatusCount{
		{Status: "verified", Count: verified},
		{Status: "pending", Count: pending},
		{Status: "rejected", Count: rejected},
	}
}
