// Package cartstore guarda las sesiones de carrito en armado (memoria o Redis).
package cartstore

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.CartStore = (*MemoryStore)(nil)

type memoryEntry struct {
	session   entity.CartSession
	expiresAt time.Time // cero = no expira
}

// MemoryStore sesiones en memoria del proceso. Sirve para una sola instancia y para tests.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryEntry
}

// NewMemoryStore ttl <= 0 deja las sesiones sin vencimiento.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, sessions: make(map[string]memoryEntry)}
}

// Get devuelve una copia de la sesión; nil si no existe o venció.
func (s *MemoryStore) Get(_ context.Context, id string) (*entity.CartSession, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, nil
	}
	out := e.session
	return &out, nil
}

// Save guarda una copia y renueva el vencimiento.
func (s *MemoryStore) Save(_ context.Context, session *entity.CartSession) error {
	e := memoryEntry{session: *session}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.sessions[session.ID] = e
	s.mu.Unlock()
	return nil
}

// Delete borra la sesión (no falla si no existe).
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
