// Package cache provides an optional Redis read-through cache for the
// product list. The cache is disabled unless REDIS_ADDR is set; every method
// is safe to call on a nil client so callers need no feature checks.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prodcat-api/models"
)

const (
	productListKey = "products:all"
	productListTTL = 5 * time.Minute
)

// Client wraps the Redis connection used for product list caching
type Client struct {
	rdb *redis.Client
}

var (
	defaultClient *Client
	defaultOnce   sync.Once
)

// Default returns the process-wide client, connecting on first use so the
// environment is already loaded by the time it runs.
func Default() *Client {
	defaultOnce.Do(func() {
		defaultClient = New()
	})
	return defaultClient
}

// New connects to Redis when REDIS_ADDR is set. Returns nil (cache
// disabled) when the variable is absent or the server is unreachable.
func New() *Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: failed to connect to Redis at %s, caching disabled: %v", addr, err)
		return nil
	}

	log.Printf("✅ Connected to Redis at %s", addr)
	return &Client{rdb: rdb}
}

// GetProducts returns the cached product list, reporting a miss on any
// error so callers fall back to the database.
func (c *Client) GetProducts(ctx context.Context) ([]models.Product, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, productListKey).Bytes()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProducts stores the product list. Failures are logged and ignored.
func (c *Client) SetProducts(ctx context.Context, products []models.Product) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, productListKey, payload, productListTTL).Err(); err != nil {
		log.Printf("Warning: failed to cache product list: %v", err)
	}
}

// InvalidateProducts drops the cached list after any product mutation.
func (c *Client) InvalidateProducts(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, productListKey).Err(); err != nil {
		log.Printf("Warning: failed to invalidate product list cache: %v", err)
	}
}
