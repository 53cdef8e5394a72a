package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"surf-server/db"
	"surf-server/models"
)

// SURF_REPORT_KEY_FORMAT is used to cache the latest report per spot.
const SURF_REPORT_KEY_FORMAT = "surf_report_v1:%s"

// RedisReportDAO handles surf-report caching using Redis.
type RedisReportDAO struct {
	client db.RedisClient
}

// NewRedisReportDAO initializes a RedisReportDAO with the Redis client.
func NewRedisReportDAO(client db.RedisClient) *RedisReportDAO {
	return &RedisReportDAO{client: client}
}

// SetReport caches the report for its spot. The TTL should match the
// report's cache-validity window so stale entries age out on their own.
func (dao *RedisReportDAO) SetReport(r *models.SurfReport) error {
	key := reportKey(r.Location)
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report for %s: %w", r.Location, err)
	}
	ttl := r.CachedUntil.Sub(r.GeneratedAt)
	if err := dao.client.SetWithTTL(key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set report in redis: %w", err)
	}
	return nil
}

// GetReport retrieves the cached report for a spot. A cache miss returns
// (nil, nil).
func (dao *RedisReportDAO) GetReport(location string) (*models.SurfReport, error) {
	key := reportKey(location)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("failed to get report from redis: %w", err)
	}
	var r models.SurfReport
	if err := json.Unmarshal([]byte(str), &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report JSON: %w", err)
	}
	return &r, nil
}

// ListCachedReportLocations returns the location slugs for all cached reports.
func (dao *RedisReportDAO) ListCachedReportLocations() ([]string, error) {
	pattern := fmt.Sprintf(SURF_REPORT_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list report keys: %w", err)
	}
	prefix := fmt.Sprintf(SURF_REPORT_KEY_FORMAT, "")
	locations := make([]string, 0, len(keys))
	for _, k := range keys {
		locations = append(locations, strings.TrimPrefix(k, prefix))
	}
	return locations, nil
}

// DeleteReport drops the cached report for a spot.
func (dao *RedisReportDAO) DeleteReport(location string) error {
	key := reportKey(location)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete report key %s: %w", key, err)
	}
	log.Printf("[RedisReportDAO] Deleted cached report for %s", location)
	return nil
}

// reportKey slugs the location into a stable cache key.
func reportKey(location string) string {
	slug := strings.ToLower(strings.TrimSpace(location))
	slug = strings.ReplaceAll(slug, " ", "_")
	return fmt.Sprintf(SURF_REPORT_KEY_FORMAT, slug)
}
