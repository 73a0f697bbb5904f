package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"aicomply/internal/model"
)

// SummaryCache keeps the org dashboard aggregate warm so every dashboard
// poll does not fan out into Mongo counts.
type SummaryCache interface {
	Set(ctx context.Context, summary *model.ComplianceSummary) error
	Get(ctx context.Context, orgID string) (*model.ComplianceSummary, error)
	Invalidate(ctx context.Context, orgID string) error
}

type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSummaryCache(client *redis.Client) SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *summaryCache) key(orgID string) string {
	return "org:" + orgID + ":summary"
}

func (c *summaryCache) Set(ctx context.Context, summary *model.ComplianceSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(summary.OrgID), data, c.ttl).Err()
}

// Get returns nil without error on a cache miss.
func (c *summaryCache) Get(ctx context.Context, orgID string) (*model.ComplianceSummary, error) {
	data, err := c.client.Get(ctx, c.key(orgID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary model.ComplianceSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *summaryCache) Invalidate(ctx context.Context, orgID string) error {
	return c.client.Del(ctx, c.key(orgID)).Err()
}
