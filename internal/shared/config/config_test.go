package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
	assert.True(t, cfg.IsDevelopment())

	assert.Equal(t, time.Second, cfg.Booking.InterLegDelay)
	assert.Equal(t, 149.0, cfg.Pricing.ConvenienceFee)
	assert.Equal(t, "INR", cfg.Pricing.Currency)
	assert.Equal(t, 2*time.Hour, cfg.Redis.SessionTTL)
	assert.False(t, cfg.Kafka.Enabled)

	assert.Contains(t, cfg.Database.DSN, "dbname=aerobook")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("INTER_LEG_DELAY", "2s")
	t.Setenv("CONVENIENCE_FEE", "99")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("REDIS_HOST", "cache.internal")

	cfg := Load()

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 2*time.Second, cfg.Booking.InterLegDelay)
	assert.Equal(t, 99.0, cfg.Pricing.ConvenienceFee)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr)
}

func TestEnvHelpersFallBackOnBadValues(t *testing.T) {
	t.Setenv("INTER_LEG_DELAY", "not-a-duration")
	t.Setenv("CONVENIENCE_FEE", "not-a-number")
	t.Setenv("RATE_LIMIT_DEFAULT", "oops")

	cfg := Load()

	assert.Equal(t, time.Second, cfg.Booking.InterLegDelay)
	assert.Equal(t, 149.0, cfg.Pricing.ConvenienceFee)
	assert.Equal(t, 100, cfg.RateLimit.DefaultRequests)
}
