package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/bookmycut/salon-scheduler/internal/models"
)

const scheduleTTL = 60 * time.Second

// ScheduleCache keeps short-lived snapshots of a stylist's weekly rows and
// date exceptions in redis. Every redis failure falls through to the
// database, so a cache outage only costs latency.
type ScheduleCache struct {
	rdb *redis.Client
}

func NewScheduleCache(rdb *redis.Client) *ScheduleCache {
	return &ScheduleCache{rdb: rdb}
}

func availabilityKey(stylistID uint, weekday time.Weekday) string {
	return fmt.Sprintf("schedule:availability:%d:%d", stylistID, int(weekday))
}

func exceptionsKey(stylistID uint, date time.Time) string {
	return fmt.Sprintf("schedule:exceptions:%d:%s", stylistID, date.Format("2006-01-02"))
}

func (c *ScheduleCache) GetAvailability(ctx context.Context, stylistID uint, weekday time.Weekday) ([]models.Availability, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, availabilityKey(stylistID, weekday)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("schedule cache read failed")
		}
		return nil, false
	}

	var rows []models.Availability
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (c *ScheduleCache) SetAvailability(ctx context.Context, stylistID uint, weekday time.Weekday, rows []models.Availability) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, availabilityKey(stylistID, weekday), raw, scheduleTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("schedule cache write failed")
	}
}

func (c *ScheduleCache) GetExceptions(ctx context.Context, stylistID uint, date time.Time) ([]models.ScheduleException, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, exceptionsKey(stylistID, date)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("schedule cache read failed")
		}
		return nil, false
	}

	var rows []models.ScheduleException
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (c *ScheduleCache) SetExceptions(ctx context.Context, stylistID uint, date time.Time, rows []models.ScheduleException) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, exceptionsKey(stylistID, date), raw, scheduleTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("schedule cache write failed")
	}
}

// InvalidateStylist drops every cached snapshot for one stylist. Called after
// availability or exception writes.
func (c *ScheduleCache) InvalidateStylist(ctx context.Context, stylistID uint) {
	if c == nil || c.rdb == nil {
		return
	}

	for _, pattern := range []string{
		fmt.Sprintf("schedule:availability:%d:*", stylistID),
		fmt.Sprintf("schedule:exceptions:%d:*", stylistID),
	} {
		keys, err := c.rdb.Keys(ctx, pattern).Result()
		if err != nil {
			log.Warn().Err(err).Msg("schedule cache invalidation failed")
			continue
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				log.Warn().Err(err).Msg("schedule cache invalidation failed")
			}
		}
	}
}

// InvalidateAll flushes the schedule namespace. Used for global exceptions
// that apply to every stylist.
func (c *ScheduleCache) InvalidateAll(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}

	keys, err := c.rdb.Keys(ctx, "schedule:*").Result()
	if err != nil {
		log.Warn().Err(err).Msg("schedule cache invalidation failed")
		return
	}
	if len(keys) > 0 {
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			log.Warn().Err(err).Msg("schedule cache invalidation failed")
		}
	}
}
