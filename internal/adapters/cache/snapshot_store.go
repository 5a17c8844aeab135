package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

var _ domain.SnapshotStore = (*RedisSnapshotStore)(nil)

// RedisSnapshotStore keeps a user's outcome matrices in one hash, one field
// per civil date, so a single DEL drops all of them. The hash expires ttl
// after the last write.
type RedisSnapshotStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSnapshotStore(rdb *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{rdb: rdb, ttl: ttl}
}

func snapshotKey(userID domain.ID) string {
	return fmt.Sprintf("outcomes:%s", userID)
}

func (s *RedisSnapshotStore) Get(ctx context.Context, userID domain.ID, date string) (*domain.OutcomeMatrix, error) {
	key := snapshotKey(userID)

	val, err := s.rdb.HGet(ctx, key, date).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("snapshot read: %w", err)
	}

	var matrix domain.OutcomeMatrix
	if err := json.Unmarshal(val, &matrix); err != nil {
		log.Printf("[SNAPSHOT] corrupted entry %s/%s dropped: %v", key, date, err)
		s.rdb.HDel(ctx, key, date)
		return nil, domain.ErrSnapshotNotFound
	}
	return &matrix, nil
}

func (s *RedisSnapshotStore) Set(ctx context.Context, userID domain.ID, date string, matrix *domain.OutcomeMatrix) error {
	data, err := json.Marshal(matrix)
	if err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}

	key := snapshotKey(userID)
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, date, data)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Invalidate(ctx context.Context, userID domain.ID) error {
	if err := s.rdb.Del(ctx, snapshotKey(userID)).Err(); err != nil {
		return fmt.Errorf("snapshot invalidate: %w", err)
	}
	return nil
}
