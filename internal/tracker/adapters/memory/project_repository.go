package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"planboard/internal/tracker/domain/entities"
	"planboard/internal/tracker/ports/repositories"
)

// ProjectRepository хранит проекты в упорядоченном срезе.
type ProjectRepository struct {
	projects []*entities.Project
}

// NewProjectRepository создает пустое хранилище проектов.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: []*entities.Project{}}
}

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)

// Add добавляет проект, отклоняя дубликат имени без учета регистра.
func (r *ProjectRepository) Add(_ context.Context, project *entities.Project) error {
	for _, p := range r.projects {
		if strings.EqualFold(p.Name, project.Name) {
			return entities.ErrProjectNameTaken
		}
	}
	r.projects = append(r.projects, project.Clone())
	return nil
}

// FindByName ищет проект по имени без учета регистра.
func (r *ProjectRepository) FindByName(_ context.Context, name string) (*entities.Project, error) {
	for _, p := range r.projects {
		if strings.EqualFold(p.Name, name) {
			return p.Clone(), nil
		}
	}
	return nil, entities.ErrProjectNotFound
}

// FindByID ищет проект по идентификатору.
func (r *ProjectRepository) FindByID(_ context.Context, id string) (*entities.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, entities.ErrProjectNotFound
}

// ListAll возвращает снимок всех проектов в порядке добавления.
func (r *ProjectRepository) ListAll(_ context.Context) ([]*entities.Project, error) {
	out := make([]*entities.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p.Clone())
	}
	return out, nil
}

// ListByStatus возвращает проекты в заданном состоянии.
func (r *ProjectRepository) ListByStatus(_ context.Context, status entities.ProjectStatus) ([]*entities.Project, error) {
	out := []*entities.Project{}
	for _, p := range r.projects {
		if p.Status == status {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// ListByManager возвращает проекты заданного руководителя.
func (r *ProjectRepository) ListByManager(_ context.Context, managerID string) ([]*entities.Project, error) {
	out := []*entities.Project{}
	for _, p := range r.projects {
		if p.ManagerID == managerID {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// ListByDateRange возвращает проекты, целиком попадающие в интервал:
// дата начала не раньше from и ожидаемое завершение не позже to.
func (r *ProjectRepository) ListByDateRange(_ context.Context, from, to time.Time) ([]*entities.Project, error) {
	out := []*entities.Project{}
	for _, p := range r.projects {
		if !p.StartDate.Before(from) && !p.ExpectedEndDate.After(to) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// ListLate возвращает проекты, просроченные на момент now.
func (r *ProjectRepository) ListLate(_ context.Context, now time.Time) ([]*entities.Project, error) {
	out := []*entities.Project{}
	for _, p := range r.projects {
		if p.IsLateAt(now) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// Update полностью заменяет сохраненный проект с тем же ID.
func (r *ProjectRepository) Update(_ context.Context, project *entities.Project) error {
	for i, p := range r.projects {
		if p.ID == project.ID {
			r.projects[i] = project.Clone()
			return nil
		}
	}
	return entities.ErrProjectNotFound
}

// Remove удаляет проект по имени без учета регистра.
func (r *ProjectRepository) Remove(_ context.Context, name string) error {
	for i, p := range r.projects {
		if strings.EqualFold(p.Name, name) {
			r.projects = slices.Delete(r.projects, i, i+1)
			return nil
		}
	}
	return entities.ErrProjectNotFound
}

// Count возвращает число проектов.
func (r *ProjectRepository) Count(_ context.Context) int {
	return len(r.projects)
}

// CountByStatus возвращает число проектов в заданном состоянии.
func (r *ProjectRepository) CountByStatus(_ context.Context, status entities.ProjectStatus) int {
	count := 0
	for _, p := range r.projects {
		if p.Status == status {
			count++
		}
	}
	return count
}
