package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

var _ repository.CartStore = (*RedisStore)(nil)

const keyPrefix = "pedidos:cart:"

// RedisStore sesiones serializadas en JSON con TTL; compartidas entre instancias de la API.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore ttl <= 0 guarda sin vencimiento.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Get devuelve nil, nil si la clave no existe o ya venció.
func (s *RedisStore) Get(ctx context.Context, id string) (*entity.CartSession, error) {
	data, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart %s: %w", id, err)
	}
	var session entity.CartSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", id, err)
	}
	return &session, nil
}

// Save reescribe la sesión y renueva el TTL.
func (s *RedisStore) Save(ctx context.Context, session *entity.CartSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", session.ID, err)
	}
	if err := s.client.Set(ctx, key(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", session.ID, err)
	}
	return nil
}

// Delete borra la sesión.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("delete cart %s: %w", id, err)
	}
	return nil
}

func key(id string) string { return keyPrefix + id }
