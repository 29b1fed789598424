package memory

import (
	"context"
	"slices"
	"strings"

	"planboard/internal/tracker/domain/entities"
	"planboard/internal/tracker/ports/repositories"
)

// TeamRepository хранит команды в упорядоченном срезе.
type TeamRepository struct {
	teams []*entities.Team
}

// NewTeamRepository создает пустое хранилище команд.
func NewTeamRepository() *TeamRepository {
	return &TeamRepository{teams: []*entities.Team{}}
}

var _ repositories.TeamRepository = (*TeamRepository)(nil)

// Add добавляет команду, отклоняя дубликат имени без учета регистра.
func (r *TeamRepository) Add(_ context.Context, team *entities.Team) error {
	for _, t := range r.teams {
		if strings.EqualFold(t.Name, team.Name) {
			return entities.ErrTeamNameTaken
		}
	}
	r.teams = append(r.teams, team.Clone())
	return nil
}

// FindByName ищет команду по имени без учета регистра.
func (r *TeamRepository) FindByName(_ context.Context, name string) (*entities.Team, error) {
	for _, t := range r.teams {
		if strings.EqualFold(t.Name, name) {
			return t.Clone(), nil
		}
	}
	return nil, entities.ErrTeamNotFound
}

// FindByID ищет команду по идентификатору.
func (r *TeamRepository) FindByID(_ context.Context, id string) (*entities.Team, error) {
	for _, t := range r.teams {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return nil, entities.ErrTeamNotFound
}

// ListAll возвращает снимок всех команд в порядке добавления.
func (r *TeamRepository) ListAll(_ context.Context) ([]*entities.Team, error) {
	out := make([]*entities.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t.Clone())
	}
	return out, nil
}

// ListByMember возвращает команды, содержащие заданного участника.
func (r *TeamRepository) ListByMember(_ context.Context, userID string) ([]*entities.Team, error) {
	out := []*entities.Team{}
	for _, t := range r.teams {
		if t.HasMember(userID) {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

// ListBySizeDesc возвращает команды по убыванию численности.
// Сортировка устойчива: команды равного размера сохраняют порядок добавления.
func (r *TeamRepository) ListBySizeDesc(ctx context.Context) ([]*entities.Team, error) {
	out, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(out, func(a, b *entities.Team) int {
		return b.Size() - a.Size()
	})
	return out, nil
}

// Update полностью заменяет сохраненную команду с тем же ID.
func (r *TeamRepository) Update(_ context.Context, team *entities.Team) error {
	for i, t := range r.teams {
		if t.ID == team.ID {
			r.teams[i] = team.Clone()
			return nil
		}
	}
	return entities.ErrTeamNotFound
}

// Remove удаляет команду по имени без учета регистра.
func (r *TeamRepository) Remove(_ context.Context, name string) error {
	for i, t := range r.teams {
		if strings.EqualFold(t.Name, name) {
			r.teams = slices.Delete(r.teams, i, i+1)
			return nil
		}
	}
	return entities.ErrTeamNotFound
}

// Count возвращает число команд.
func (r *TeamRepository) Count(_ context.Context) int {
	return len(r.teams)
}
