// Package cache is the Redis read-through cache for rating reads.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"agrorent-backend/internal/domain"
)

const defaultTTL = 10 * time.Minute

type Config struct {
	Addr      string
	Password  string
	DB        int
	TTL       time.Duration
	KeyPrefix string
}

// NewClient opens a Redis client and checks it answers.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

type RedisRatingCache struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	prefix string
}

func NewRedisRatingCache(rdb redis.UniversalClient, ttl time.Duration, prefix string) *RedisRatingCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisRatingCache{rdb: rdb, ttl: ttl, prefix: prefix}
}

func (c *RedisRatingCache) subjectKey(id uuid.UUID, p domain.Perspective) string {
	return fmt.Sprintf("%srating:subject:%s:%s", c.prefix, id, p)
}

func (c *RedisRatingCache) machineKey(id uuid.UUID) string {
	return fmt.Sprintf("%srating:machine:%s", c.prefix, id)
}

// genKey holds the invalidation counter of key. It has no expiry: letting it
// lapse while a fill is in flight would let that fill through.
func genKey(key string) string { return key + ":gen" }

// GetSubjectRating returns nil on a miss, with the generation to hand back to
// SetSubjectRating.
func (c *RedisRatingCache) GetSubjectRating(ctx context.Context, subjectID uuid.UUID, p domain.Perspective) (*domain.SubjectRating, int64, error) {
	var r domain.SubjectRating
	ok, gen, err := c.get(ctx, c.subjectKey(subjectID, p), &r)
	if !ok || err != nil {
		return nil, gen, err
	}
	return &r, gen, nil
}

// SetSubjectRating stores r unless the entry was invalidated after the miss
// that produced gen.
func (c *RedisRatingCache) SetSubjectRating(ctx context.Context, r *domain.SubjectRating, gen int64) error {
	return c.set(ctx, c.subjectKey(r.SubjectID, r.Perspective), r, gen)
}

func (c *RedisRatingCache) GetMachineRating(ctx context.Context, machineID uuid.UUID) (*domain.MachineRating, int64, error) {
	var r domain.MachineRating
	ok, gen, err := c.get(ctx, c.machineKey(machineID), &r)
	if !ok || err != nil {
		return nil, gen, err
	}
	return &r, gen, nil
}

func (c *RedisRatingCache) SetMachineRating(ctx context.Context, r *domain.MachineRating, gen int64) error {
	return c.set(ctx, c.machineKey(r.MachineID), r, gen)
}

func (c *RedisRatingCache) InvalidateSubject(ctx context.Context, subjectID uuid.UUID, p domain.Perspective) error {
	return c.invalidate(ctx, c.subjectKey(subjectID, p))
}

func (c *RedisRatingCache) InvalidateMachine(ctx context.Context, machineID uuid.UUID) error {
	return c.invalidate(ctx, c.machineKey(machineID))
}

func (c *RedisRatingCache) get(ctx context.Context, key string, dst any) (bool, int64, error) {
	vals, err := c.rdb.MGet(ctx, key, genKey(key)).Result()
	if err != nil {
		return false, 0, err
	}
	gen, err := parseGen(vals[1])
	if err != nil {
		return false, 0, err
	}
	raw, ok := vals[0].(string)
	if !ok {
		return false, gen, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		// a bad entry is treated as a miss and overwritten on the next fill
		return false, gen, nil
	}
	return true, gen, nil
}

func (c *RedisRatingCache) set(ctx context.Context, key string, v any, gen int64) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	g := genKey(key)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, g).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		now, err := parseGen(cur)
		if err != nil {
			return err
		}
		if now != gen {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}, g)
	if errors.Is(err, errStaleFill) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *RedisRatingCache) invalidate(ctx context.Context, key string) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey(key))
		pipe.Del(ctx, key)
		return nil
	})
	return err
}

var errStaleFill = errors.New("cache: entry invalidated since the miss")

func parseGen(v any) (int64, error) {
	switch s := v.(type) {
	case nil:
		return 0, nil
	case string:
		if s == "" {
			return 0, nil
		}
		return strconv.ParseInt(s, 10, 64)
	default:
		return 0, fmt.Errorf("cache: unexpected generation %T", v)
	}
}
