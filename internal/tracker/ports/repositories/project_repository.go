package repositories

import (
	"context"
	"time"

	"planboard/internal/tracker/domain/entities"
)

// ProjectRepository определяет интерфейс хранилища проектов.
// Естественный ключ - имя (без учета регистра).
type ProjectRepository interface {
	Add(ctx context.Context, project *entities.Project) error
	FindByName(ctx context.Context, name string) (*entities.Project, error)
	FindByID(ctx context.Context, id string) (*entities.Project, error)
	ListAll(ctx context.Context) ([]*entities.Project, error)
	ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]*entities.Project, error)
	ListByManager(ctx context.Context, managerID string) ([]*entities.Project, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*entities.Project, error)
	ListLate(ctx context.Context, now time.Time) ([]*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	Remove(ctx context.Context, name string) error
	Count(ctx context.Context) int
	CountByStatus(ctx context.Context, status entities.ProjectStatus) int
}
