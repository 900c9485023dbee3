package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

const weekViewTTL = 24 * time.Hour

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// weekViewKey identifies a week by its Monday's epoch day rather than the
// ISO week number: week numbers repeat every year, so a user paging a full
// year back or forward would land on the same number with different dates.
// The weekday keeps the "today" column from going stale within a week.
func weekViewKey(userID int, mondayDay int64, weekday int) string {
	return fmt.Sprintf("weekview:%d:%d:%d", userID, mondayDay, weekday)
}

// CacheWeekView stores a rendered week snapshot. Failures are logged and
// swallowed; the cache never fails a request.
func CacheWeekView(ctx context.Context, userID int, mondayDay int64, weekday int, payload []byte) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Set(ctx, weekViewKey(userID, mondayDay, weekday), payload, weekViewTTL).Err(); err != nil {
		log.Error().Err(err).Int("user_id", userID).Int64("monday_day", mondayDay).Msg("failed to cache week view")
	}
}

// GetCachedWeekView returns the cached snapshot, or nil on miss or error.
func GetCachedWeekView(ctx context.Context, userID int, mondayDay int64, weekday int) []byte {
	if Rdb == nil {
		return nil
	}
	payload, err := Rdb.Get(ctx, weekViewKey(userID, mondayDay, weekday)).Bytes()
	if err != nil {
		return nil
	}
	return payload
}

// InvalidateWeekViews drops every cached week of a user, called after a save
// replaces the course list.
func InvalidateWeekViews(ctx context.Context, userID int) {
	if Rdb == nil {
		return
	}
	pattern := fmt.Sprintf("weekview:%d:*", userID)
	iter := Rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := Rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Error().Err(err).Str("key", iter.Val()).Msg("failed to drop cached week view")
		}
	}
	if err := iter.Err(); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("week view invalidation scan failed")
	}
}
