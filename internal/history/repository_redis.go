package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	rdb *redis.Client
}

func NewRedisRepo(rdb *redis.Client) Repo {
	return &redisRepo{rdb: rdb}
}

// key 约定：
//
//	list: bj:session:{sessionID}:rounds -> JSON(Round),...
//	整个列表随会话 TTL 过期，不跨会话恢复
func roundsKey(sessionID string) string {
	return fmt.Sprintf("bj:session:%s:rounds", sessionID)
}

func (r *redisRepo) Append(ctx context.Context, sessionID string, round Round, ttlSeconds int) error {
	data, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("encode round: %w", err)
	}
	key := roundsKey(sessionID)
	p := r.rdb.Pipeline()
	p.RPush(ctx, key, data)
	if ttlSeconds > 0 {
		p.Expire(ctx, key, time.Duration(ttlSeconds)*time.Second)
	}
	_, err = p.Exec(ctx)
	return err
}

func (r *redisRepo) List(ctx context.Context, sessionID string) ([]Round, error) {
	vals, err := r.rdb.LRange(ctx, roundsKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Round, 0, len(vals))
	for _, v := range vals {
		var round Round
		if err := json.Unmarshal([]byte(v), &round); err != nil {
			return nil, fmt.Errorf("decode round: %w", err)
		}
		out = append(out, round)
	}
	return out, nil
}

func (r *redisRepo) Count(ctx context.Context, sessionID string) (int64, error) {
	return r.rdb.LLen(ctx, roundsKey(sessionID)).Result()
}
