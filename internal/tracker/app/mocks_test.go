package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"planboard/internal/tracker/domain/entities"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Add(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByCPF(ctx context.Context, cpf string) (*entities.User, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) ListAll(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role entities.Role) ([]*entities.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Remove(ctx context.Context, cpf string) error {
	args := m.Called(ctx, cpf)
	return args.Error(0)
}

func (m *mockUserRepository) Authenticate(ctx context.Context, login, password string) (*entities.User, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Add(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) FindByName(ctx context.Context, name string) (*entities.Project, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *mockProjectRepository) FindByID(ctx context.Context, id string) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *mockProjectRepository) ListAll(ctx context.Context) ([]*entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *mockProjectRepository) ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]*entities.Project, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *mockProjectRepository) ListByManager(ctx context.Context, managerID string) ([]*entities.Project, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *mockProjectRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*entities.Project, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *mockProjectRepository) ListLate(ctx context.Context, now time.Time) ([]*entities.Project, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *mockProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *mockProjectRepository) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *mockProjectRepository) CountByStatus(ctx context.Context, status entities.ProjectStatus) int {
	args := m.Called(ctx, status)
	return args.Int(0)
}

type mockTeamRepository struct {
	mock.Mock
}

func (m *mockTeamRepository) Add(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *mockTeamRepository) FindByName(ctx context.Context, name string) (*entities.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *mockTeamRepository) FindByID(ctx context.Context, id string) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *mockTeamRepository) ListAll(ctx context.Context) ([]*entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *mockTeamRepository) ListByMember(ctx context.Context, userID string) ([]*entities.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *mockTeamRepository) ListBySizeDesc(ctx context.Context) ([]*entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *mockTeamRepository) Update(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *mockTeamRepository) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *mockTeamRepository) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}
