package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:token:"

// Store keeps one serialized token per console session. Missing or corrupt
// entries read back as logged-out, never as an error.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, sessionID string) *Token {
	if sessionID == "" {
		return nil
	}
	raw, err := s.rdb.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		return nil
	}
	var tok Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil
	}
	if tok.Token == "" {
		return nil
	}
	return &tok
}

func (s *Store) Set(ctx context.Context, sessionID string, tok *Token) error {
	raw, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+sessionID, raw, s.ttl).Err()
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
