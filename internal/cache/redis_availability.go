// Package cache holds short-lived Redis copies of availability maps.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/metinatakli/hall-seat-booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultAvailabilityTTL = 5 * time.Second

	// Must outlive the slowest read that builds a map.
	versionTTL = time.Hour
)

var storeIfCurrentScript = redis.NewScript(`
    -- KEYS = [availability key, version key]
    -- ARGV = [version seen before the map was built, encoded map, ttl in ms]

    local current = redis.call("GET", KEYS[2]) or "0"
    if current ~= ARGV[1] then
        return 0
    end

    redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
    return 1
`)

var invalidateScript = redis.NewScript(`
    -- KEYS = [availability key, version key]
    -- ARGV = [version ttl in ms]

    redis.call("INCR", KEYS[2])
    redis.call("PEXPIRE", KEYS[2], ARGV[1])
    redis.call("DEL", KEYS[1])
    return 1
`)

// RedisAvailabilityCache stores availability maps under a per (hall, show time)
// version counter. Every booking bumps the counter, and a map built against an
// older version is never written back.
type RedisAvailabilityCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
}

func NewRedisAvailabilityCache(client redis.UniversalClient, ttl time.Duration, prefix string) *RedisAvailabilityCache {
	if ttl <= 0 {
		ttl = DefaultAvailabilityTTL
	}

	return &RedisAvailabilityCache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}
}

// Get returns the cached map, or nil on a miss together with the version a
// later Set must present.
func (c *RedisAvailabilityCache) Get(
	ctx context.Context,
	hallID int,
	showTime time.Time) (map[int]domain.SeatState, int64, error) {

	values, err := c.client.MGet(ctx, c.key(hallID, showTime), c.versionKey(hallID, showTime)).Result()
	if err != nil {
		return nil, 0, err
	}

	version, err := parseVersion(values[1])
	if err != nil {
		return nil, 0, err
	}

	if values[0] == nil {
		return nil, version, nil
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, 0, fmt.Errorf("unexpected cached availability type %T", values[0])
	}

	var states map[int]domain.SeatState
	if err := json.Unmarshal([]byte(raw), &states); err != nil {
		return nil, 0, fmt.Errorf("decode cached availability: %w", err)
	}

	return states, version, nil
}

// Set stores the map unless a booking for the same hall and show time was
// recorded after version was read.
func (c *RedisAvailabilityCache) Set(
	ctx context.Context,
	hallID int,
	showTime time.Time,
	version int64,
	states map[int]domain.SeatState) error {

	raw, err := json.Marshal(states)
	if err != nil {
		return err
	}

	keys := []string{c.key(hallID, showTime), c.versionKey(hallID, showTime)}

	return storeIfCurrentScript.Run(ctx, c.client, keys, version, raw, c.ttl.Milliseconds()).Err()
}

// BookingCreated bumps the version of the booking's hall and show time and
// drops the cached map.
func (c *RedisAvailabilityCache) BookingCreated(ctx context.Context, booking domain.Booking) error {
	keys := []string{c.key(booking.HallID, booking.ShowTime), c.versionKey(booking.HallID, booking.ShowTime)}

	return invalidateScript.Run(ctx, c.client, keys, versionTTL.Milliseconds()).Err()
}

func (c *RedisAvailabilityCache) key(hallID int, showTime time.Time) string {
	return fmt.Sprintf("%s:availability:{%d:%d}", c.prefix, hallID, showTime.UTC().UnixMicro())
}

func (c *RedisAvailabilityCache) versionKey(hallID int, showTime time.Time) string {
	return fmt.Sprintf("%s:availability-version:{%d:%d}", c.prefix, hallID, showTime.UTC().UnixMicro())
}

func parseVersion(value any) (int64, error) {
	if value == nil {
		return 0, nil
	}

	raw, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected availability version type %T", value)
	}

	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode availability version: %w", err)
	}

	return version, nil
}
