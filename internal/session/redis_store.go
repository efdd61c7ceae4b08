package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/cart"
	"storefront/internal/model"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each persistent part of a session under its own key.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store. Keys expire after ttl
// without a save.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Load restores the cart, account and auth marker of a session. The cart key
// marks the session as existing.
func (r *RedisStore) Load(ctx context.Context, id string) (*State, error) {
	values, err := r.client.MGet(ctx, cartKey(id), userKey(id), authKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget failed: %w", err)
	}

	rawCart, ok := values[0].(string)
	if !ok {
		return nil, ErrNotFound
	}

	s := NewState(id)

	var items cart.Cart
	if err := json.Unmarshal([]byte(rawCart), &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	if items != nil {
		s.Cart = items
	}

	if rawUser, ok := values[1].(string); ok {
		var user model.UserAccount
		if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
			return nil, fmt.Errorf("unmarshal user failed: %w", err)
		}
		s.User = &user
	}

	if rawAuth, ok := values[2].(string); ok {
		var marker AuthMarker
		if err := json.Unmarshal([]byte(rawAuth), &marker); err != nil {
			return nil, fmt.Errorf("unmarshal auth marker failed: %w", err)
		}
		s.Auth = &marker
		s.View = ViewHome
	}

	return s, nil
}

// Save writes all parts of the session in one transaction. Absent parts are
// deleted.
func (r *RedisStore) Save(ctx context.Context, s *State) error {
	items := s.Cart
	if items == nil {
		items = cart.Cart{}
	}
	cartJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	var userJSON, authJSON []byte
	if s.User != nil {
		if userJSON, err = json.Marshal(s.User); err != nil {
			return fmt.Errorf("marshal user failed: %w", err)
		}
	}
	if s.Auth != nil {
		if authJSON, err = json.Marshal(s.Auth); err != nil {
			return fmt.Errorf("marshal auth marker failed: %w", err)
		}
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, cartKey(s.ID), string(cartJSON), r.ttl)
		if userJSON != nil {
			pipe.Set(ctx, userKey(s.ID), string(userJSON), r.ttl)
		} else {
			pipe.Del(ctx, userKey(s.ID))
		}
		if authJSON != nil {
			pipe.Set(ctx, authKey(s.ID), string(authJSON), r.ttl)
		} else {
			pipe.Del(ctx, authKey(s.ID))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save failed: %w", err)
	}
	return nil
}

// Delete removes every key of the session.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, cartKey(id), userKey(id), authKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// Ping checks the connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func cartKey(id string) string {
	return fmt.Sprintf("session:%s:cart", id)
}

func userKey(id string) string {
	return fmt.Sprintf("session:%s:user", id)
}

func authKey(id string) string {
	return fmt.Sprintf("session:%s:auth", id)
}
