package repository

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// CartStore guarda las sesiones de carrito en armado. Get devuelve nil, nil si no existe o expiró.
type CartStore interface {
	Get(ctx context.Context, id string) (*entity.CartSession, error)
	Save(ctx context.Context, session *entity.CartSession) error
	Delete(ctx context.Context, id string) error
}
