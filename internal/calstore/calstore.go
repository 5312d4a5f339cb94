// Package calstore keeps each user's latest workout calorie map in Redis.
package calstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"lg/fitcoach-go-api/internal/workout"
)

// maxWatchRetries bounds SetDay when concurrent writers keep invalidating
// the watched key.
const maxWatchRetries = 5

// ErrConflict is returned when SetDay loses every optimistic retry.
var ErrConflict = errors.New("calorie map changed concurrently")

type Store struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// New returns a store writing through rdb. A zero ttl keeps maps forever.
func New(rdb redis.UniversalClient, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Key is the Redis key holding userID's calorie map.
func Key(userID string) string {
	return fmt.Sprintf("user:%s:workout_calories", userID)
}

// Save replaces the user's calorie map.
func (s *Store) Save(ctx context.Context, userID string, m workout.CalorieMap) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal calorie map: %w", err)
	}
	if err := s.rdb.Set(ctx, Key(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save calorie map to Redis: %w", err)
	}
	return nil
}

// Load returns the user's calorie map. A missing key is an empty map.
func (s *Store) Load(ctx context.Context, userID string) (workout.CalorieMap, error) {
	data, err := s.rdb.Get(ctx, Key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return workout.CalorieMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get calorie map from Redis: %w", err)
	}
	return decode(data)
}

// SetDay updates a single day inside a WATCH/MULTI transaction so concurrent
// updates to other days are not lost. kcal is rounded to a multiple of 5;
// a result of zero removes the day.
func (s *Store) SetDay(ctx context.Context, userID string, day workout.Day, kcal int) (workout.CalorieMap, error) {
	if !day.Valid() {
		return nil, fmt.Errorf("invalid day %d", int(day))
	}
	if kcal < 0 {
		return nil, fmt.Errorf("kcal must be non-negative, got %d", kcal)
	}

	kcal = workout.RoundKcal(kcal)

	key := Key(userID)
	var result workout.CalorieMap
	txf := func(tx *redis.Tx) error {
		m := workout.CalorieMap{}
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			if m, err = decode(data); err != nil {
				return err
			}
		}

		if kcal == 0 {
			delete(m, day)
		} else {
			m[day] = kcal
		}
		out, err := json.Marshal(m)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, s.ttl)
			return nil
		})
		if err == nil {
			result = m
		}
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := s.rdb.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, fmt.Errorf("failed to update calorie map in Redis: %w", err)
	}
	return nil, ErrConflict
}

// Delete removes the user's calorie map.
func (s *Store) Delete(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, Key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete calorie map from Redis: %w", err)
	}
	return nil
}

func decode(data []byte) (workout.CalorieMap, error) {
	m := workout.CalorieMap{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal calorie map: %w", err)
	}
	return m, nil
}
