package repositories

import (
	"context"

	"planboard/internal/tracker/domain/entities"
)

// TeamRepository определяет интерфейс хранилища команд.
// Естественный ключ - имя (без учета регистра).
type TeamRepository interface {
	Add(ctx context.Context, team *entities.Team) error
	FindByName(ctx context.Context, name string) (*entities.Team, error)
	FindByID(ctx context.Context, id string) (*entities.Team, error)
	ListAll(ctx context.Context) ([]*entities.Team, error)
	ListByMember(ctx context.Context, userID string) ([]*entities.Team, error)
	ListBySizeDesc(ctx context.Context) ([]*entities.Team, error)
	Update(ctx context.Context, team *entities.Team) error
	Remove(ctx context.Context, name string) error
	Count(ctx context.Context) int
}
