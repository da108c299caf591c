package cache

import (
	"context"
	"encoding/json"
	"time"

	"campuseats_back_end/internal/database"
	"campuseats_back_end/internal/models"
)

const (
	VendorCacheTTL   = 10 * time.Minute
	CategoryCacheTTL = time.Hour
	ProductCacheTTL  = 10 * time.Minute
)

func vendorKey(vendorID string) string {
	return "vendor:" + vendorID
}

// GetVendorFromCache resolves a vendor from Redis, falling back to ScyllaDB.
// The confirmation step uses this to find the checkout recipient.
func GetVendorFromCache(ctx context.Context, vendorID string) (*models.Vendor, error) {
	key := vendorKey(vendorID)

	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var vendor models.Vendor
		if json.Unmarshal([]byte(data), &vendor) == nil {
			return &vendor, nil
		}
	}

	var vendor models.Vendor
	err = database.GetPreparedGetVendorByID().Bind(vendorID).Scan(
		&vendor.ID, &vendor.UserID, &vendor.Name, &vendor.Email, &vendor.WhatsappNumber,
		&vendor.Description, &vendor.StudentID, &vendor.Verified, &vendor.RejectionReason,
		&vendor.IsPromoted, &vendor.TotalSales, &vendor.TotalOrders, &vendor.Rating,
		&vendor.CreatedAt)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(vendor); err == nil {
		database.Redis.Set(ctx, key, encoded, VendorCacheTTL)
	}

	return &vendor, nil
}

// InvalidateVendor drops a vendor's cache entry after a mutation.
func InvalidateVendor(ctx context.Context, vendorID string) {
	database.Redis.Del(ctx, vendorKey(vendorID))
}

// InvalidateLists drops the cached public listings after catalog mutations.
func InvalidateLists(ctx context.Context) {
	database.Redis.Del(ctx, "products:all", "categories:all", "vendors:directory")
}
