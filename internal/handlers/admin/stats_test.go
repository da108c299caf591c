package admin

import (
	"testing"
	"time"

	"campuseats_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletedTotals(t *testing.T) {
	orders := []orderStat{
		{Total: 50, Status: models.OrderStatusCompleted},
		{Total: 30, Status: models.OrderStatusCompleted},
		{Total: 100, Status: models.OrderStatusPending},
		{Total: 25, Status: models.OrderStatusCancelled},
	}

	sales, count := completedTotals(orders)

	assert.InDelta(t, 80, sales, 1e-9)
	assert.Equal(t, 2, count)
}

func TestAggregateMonthly(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	at := func(year int, month time.Month) time.Time {
		return time.Date(year, month, 10, 9, 0, 0, 0, time.UTC)
	}

	orders := []orderStat{
		{Total: 50, Status: models.OrderStatusCompleted, CreatedAt: at(2026, time.August)},
		{Total: 30.555, Status: models.OrderStatusCompleted, CreatedAt: at(2026, time.August)},
		{Total: 20, Status: models.OrderStatusCompleted, CreatedAt: at(2026, time.July)},
		{Total: 40, Status: models.OrderStatusPending, CreatedAt: at(2026, time.July)},   // not completed
		{Total: 15, Status: models.OrderStatusCompleted, CreatedAt: at(2026, time.January)}, // outside window
		{Total: 10, Status: models.OrderStatusCompleted, CreatedAt: at(2026, time.March)},
	}

	buckets := aggregateMonthly(orders, now)

	require.Len(t, buckets, 6)
	assert.Equal(t, []string{"Mar", "Apr", "May", "Jun", "Jul", "Aug"}, []string{
		buckets[0].Month, buckets[1].Month, buckets[2].Month,
		buckets[3].Month, buckets[4].Month, buckets[5].Month,
	})

	assert.InDelta(t, 10, buckets[0].Sales, 1e-9)
	assert.Equal(t, 1, buckets[0].Orders)

	assert.Zero(t, buckets[1].Sales)
	assert.Zero(t, buckets[1].Orders)

	assert.InDelta(t, 20, buckets[4].Sales, 1e-9)
	assert.Equal(t, 1, buckets[4].Orders)

	// Rounded to cents.
	assert.InDelta(t, 80.56, buckets[5].Sales, 1e-9)
	assert.Equal(t, 2, buckets[5].Orders)
}

// Subtracting calendar months from a late day of the month must not skip a
// month (e.g. Jul 31 minus one month is still June, not July).
func TestAggregateMonthlyMonthEndAnchor(t *testing.T) {
	now := time.Date(2026, time.July, 31, 23, 0, 0, 0, time.UTC)

	buckets := aggregateMonthly(nil, now)

	require.Len(t, buckets, 6)
	assert.Equal(t, "Feb", buckets[0].Month)
	assert.Equal(t, "Jul", buckets[5].Month)
}

func TestAggregateMonthlyWindowSpansYearBoundary(t *testing.T) {
	now := time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)

	orders := []orderStat{
		{Total: 25, Status: models.OrderStatusCompleted, CreatedAt: time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC)},
		{Total: 75, Status: models.OrderStatusCompleted, CreatedAt: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)},
	}

	buckets := aggregateMonthly(orders, now)

	require.Len(t, buckets, 6)
	assert.Equal(t, "Sep", buckets[0].Month)
	assert.InDelta(t, 25, buckets[0].Sales, 1e-9)
	assert.Equal(t, "Feb", buckets[5].Month)
	assert.InDelta(t, 75, buckets[5].Sales, 1e-9)
}

func TestVendorDistribution(t *testing.T) {
	reason := "Incomplete student card"
	empty := ""

	vendors := []vendorStat{
		{Verified: true},
		{Verified: true},
		{Verified: false, RejectionReason: &reason},
		{Verified: false, RejectionReason: &empty}, // empty reason counts as pending
		{Verified: false},
	}

	dist := vendorDistribution(vendors)

	require.Len(t, dist, 3)
	assert.Equal(t, StatusCount{Status: "verified", Count: 2}, dist[0])
	assert.Equal(t, StatusCount{Status: "pending", Count: 2}, dist[1])
	assert.Equal(t, StatusCount{Status: "rejected", Count: 1}, dist[2])
}

func TestVendorDistributionEmpty(t *testing.T) {
	dist := vendorDistribution(nil)

	require.Len(t, dist, 3)
	for _, s := range dist {
		assert.Zero(t, s.Count)
	}
}
