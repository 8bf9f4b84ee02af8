package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*State, error) {

	data, err := s.client.Get(ctx, keyPrefix+sid).Bytes()
	if err == redis.Nil {
		return &State{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sid, err)
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", sid, err)
	}

	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, sid string, state *State) error {

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", sid, err)
	}

	if err := s.client.Set(ctx, keyPrefix+sid, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", sid, err)
	}

	return nil
}
