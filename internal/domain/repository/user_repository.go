package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
