package redisclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/lazaroperez207/agro-en-casa/internal/models"
)

const (
	logoKey        = "settings:logo"
	socialLinksKey = "settings:social_links"
)

// Client persists the two settings blobs that survive restarts: the logo
// data URL and the social links. Everything else is memory-only.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a Redis client and verifies connectivity
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// SaveLogo stores the logo URL or data URL
func (c *Client) SaveLogo(ctx context.Context, logoURL string) error {
	return c.rdb.Set(ctx, logoKey, logoURL, 0).Err()
}

// LoadLogo retrieves the stored logo. An empty string means nothing is
// stored yet.
func (c *Client) LoadLogo(ctx context.Context) (string, error) {
	val, err := c.rdb.Get(ctx, logoKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load logo: %w", err)
	}
	return val, nil
}

// SaveSocialLinks stores the social links blob as JSON
func (c *Client) SaveSocialLinks(ctx context.Context, links models.SocialLinks) error {
	data, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("failed to marshal social links: %w", err)
	}
	return c.rdb.Set(ctx, socialLinksKey, data, 0).Err()
}

// LoadSocialLinks retrieves the stored social links. The boolean reports
// whether a blob was present.
func (c *Client) LoadSocialLinks(ctx context.Context) (models.SocialLinks, bool, error) {
	var links models.SocialLinks

	data, err := c.rdb.Get(ctx, socialLinksKey).Bytes()
	if err == redis.Nil {
		return links, false, nil
	}
	if err != nil {
		return links, false, fmt.Errorf("failed to load social links: %w", err)
	}

	if err := json.Unmarshal(data, &links); err != nil {
		return links, false, fmt.Errorf("failed to unmarshal social links: %w", err)
	}
	return links, true, nil
}
