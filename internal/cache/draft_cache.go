package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"aicomply/internal/model"
)

// Draft holds the in-progress answers of a collecting assessment. Answers
// live here until classification; the Mongo document only gets the answer
// set once the run is classified.
type Draft struct {
	AssessmentID string         `json:"assessmentId"`
	Answers      []model.Answer `json:"answers"`
	Locale       model.Locale   `json:"locale"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type DraftCache interface {
	Set(ctx context.Context, draft *Draft) error
	Get(ctx context.Context, assessmentID string) (*Draft, error)
	Delete(ctx context.Context, assessmentID string) error
}

type draftCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftCache(client *redis.Client) DraftCache {
	return &draftCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *draftCache) key(assessmentID string) string {
	return "assessment:" + assessmentID + ":draft"
}

func (c *draftCache) Set(ctx context.Context, draft *Draft) error {
	draft.UpdatedAt = time.Now()
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(draft.AssessmentID), data, c.ttl).Err()
}

// Get returns nil without error when no draft exists.
func (c *draftCache) Get(ctx context.Context, assessmentID string) (*Draft, error) {
	data, err := c.client.Get(ctx, c.key(assessmentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var draft Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (c *draftCache) Delete(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, c.key(assessmentID)).Err()
}
