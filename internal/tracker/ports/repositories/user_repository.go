// Package repositories определяет контракты хранилищ доменных сущностей.
package repositories

import (
	"context"

	"planboard/internal/tracker/domain/entities"
)

// UserRepository определяет интерфейс хранилища пользователей.
// Естественный ключ - CPF (точное совпадение).
type UserRepository interface {
	Add(ctx context.Context, user *entities.User) error
	FindByCPF(ctx context.Context, cpf string) (*entities.User, error)
	FindByLogin(ctx context.Context, login string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	ListAll(ctx context.Context) ([]*entities.User, error)
	ListByRole(ctx context.Context, role entities.Role) ([]*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Remove(ctx context.Context, cpf string) error
	Authenticate(ctx context.Context, login, password string) (*entities.User, error)
	Count(ctx context.Context) int
}
