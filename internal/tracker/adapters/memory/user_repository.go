// Package memory реализует хранилища сущностей в памяти процесса.
// Каждое хранилище единолично владеет каноническими экземплярами;
// наружу всегда отдаются защитные копии.
package memory

import (
	"context"
	"slices"

	"planboard/internal/tracker/domain/entities"
	"planboard/internal/tracker/ports/repositories"
)

// UserRepository хранит пользователей в упорядоченном срезе.
// Рассчитан на одного логического вызывающего и не синхронизирован.
type UserRepository struct {
	users []*entities.User
}

// NewUserRepository создает пустое хранилище пользователей.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: []*entities.User{}}
}

var _ repositories.UserRepository = (*UserRepository)(nil)

// Add добавляет пользователя, отклоняя дубликат CPF.
func (r *UserRepository) Add(_ context.Context, user *entities.User) error {
	for _, u := range r.users {
		if u.CPF == user.CPF {
			return entities.ErrCPFTaken
		}
	}
	r.users = append(r.users, user.Clone())
	return nil
}

// FindByCPF ищет пользователя по точному совпадению CPF.
func (r *UserRepository) FindByCPF(_ context.Context, cpf string) (*entities.User, error) {
	for _, u := range r.users {
		if u.CPF == cpf {
			return u.Clone(), nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// FindByLogin ищет пользователя по точному совпадению логина.
func (r *UserRepository) FindByLogin(_ context.Context, login string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Login == login {
			return u.Clone(), nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// FindByID ищет пользователя по идентификатору.
func (r *UserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// ListAll возвращает снимок всех пользователей в порядке добавления.
func (r *UserRepository) ListAll(_ context.Context) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	return out, nil
}

// ListByRole возвращает пользователей с заданным профилем.
func (r *UserRepository) ListByRole(_ context.Context, role entities.Role) ([]*entities.User, error) {
	out := []*entities.User{}
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u.Clone())
		}
	}
	return out, nil
}

// Update полностью заменяет сохраненного пользователя с тем же ID.
func (r *UserRepository) Update(_ context.Context, user *entities.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user.Clone()
			return nil
		}
	}
	return entities.ErrUserNotFound
}

// Remove удаляет пользователя по CPF.
func (r *UserRepository) Remove(_ context.Context, cpf string) error {
	for i, u := range r.users {
		if u.CPF == cpf {
			r.users = slices.Delete(r.users, i, i+1)
			return nil
		}
	}
	return entities.ErrUserNotFound
}

// Authenticate возвращает пользователя при точном совпадении логина и
// пароля, иначе ErrInvalidCredentials.
func (r *UserRepository) Authenticate(_ context.Context, login, password string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Login == login && u.CheckPassword(password) {
			return u.Clone(), nil
		}
	}
	return nil, entities.ErrInvalidCredentials
}

// Count возвращает число пользователей.
func (r *UserRepository) Count(_ context.Context) int {
	return len(r.users)
}
