package metrics

import (
	"testing"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Registered via promauto on package init.
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, PublishAttemptsTotal)
	assert.NotNil(t, PublishStepRetriesTotal)
	assert.NotNil(t, PublishDuration)
	assert.NotNil(t, ListingsCreatedTotal)
	assert.NotNil(t, TokenRefreshesTotal)
	assert.NotNil(t, CategoryResolutionsTotal)
	assert.NotNil(t, CategoryCacheRefreshesTotal)
	assert.NotNil(t, DeletionNotificationsTotal)
	assert.NotNil(t, NotificationDuration)
	assert.NotNil(t, EbayAPICallsTotal)
	assert.NotNil(t, EbayAPIErrorsTotal)
	assert.NotNil(t, EbayDailyUsage)
	assert.NotNil(t, EbayDailyLimitHits)
}

func TestCounterVecLabels(t *testing.T) {
	t.Parallel()

	before := ptestutil.ToFloat64(CategoryResolutionsTotal.WithLabelValues("test-label"))
	CategoryResolutionsTotal.WithLabelValues("test-label").Inc()
	after := ptestutil.ToFloat64(CategoryResolutionsTotal.WithLabelValues("test-label"))

	assert.InDelta(t, 1.0, after-before, 0.001)
}
