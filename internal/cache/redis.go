package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys
const (
	ThemeKey             = "theme"
	DashboardSnapshotKey = "dashboard:snapshot"
)

var client *redis.Client

// Init initializes the Redis connection. On failure the package stays
// disabled and every helper below becomes a no-op.
func Init(host, port, password string) error {
	if host == "" {
		host = "redis" // fallback to service name
	}
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// SetClient installs an existing client, used by tests.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the Redis client
func GetClient() *redis.Client {
	return client
}

// Enabled reports whether a Redis connection is configured.
func Enabled() bool {
	return client != nil
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL. A zero TTL keeps the key forever.
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, data, ttl).Err()
}

// InvalidateKeys removes specific cache keys
func InvalidateKeys(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// IsHealthy returns true if Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}

// Close releases the connection.
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
