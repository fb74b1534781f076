package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anand2468/easyeval/internal/model"
	"github.com/go-redis/redis/v8"
)

const summaryCacheTTL = 10 * time.Minute

// SummaryCache keeps per-exam response statistics in Redis so the teacher
// dashboard does not recompute aggregates on every page load.
type SummaryCache struct {
	Redis *redis.Client
}

func NewSummaryCache(rdb *redis.Client) *SummaryCache {
	return &SummaryCache{Redis: rdb}
}

func summaryKey(examID uint) string {
	return fmt.Sprintf("easyeval:exam:%d:summary", examID)
}

// Get returns the cached summary, or nil on a cache miss.
func (c *SummaryCache) Get(ctx context.Context, examID uint) (*model.ExamSummary, error) {
	val, err := c.Redis.Get(ctx, summaryKey(examID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summary model.ExamSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *SummaryCache) Set(ctx context.Context, summary *model.ExamSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, summaryKey(summary.ExamID), data, summaryCacheTTL).Err()
}

func (c *SummaryCache) Invalidate(ctx context.Context, examID uint) error {
	return c.Redis.Del(ctx, summaryKey(examID)).Err()
}
