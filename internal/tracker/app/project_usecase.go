package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"planboard/internal/tracker/domain/entities"
	"planboard/internal/tracker/ports/repositories"
	"planboard/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodRegisterProject = "Register"
	methodUpdateStatus    = "UpdateStatus"
	methodRemoveProject   = "Remove"

	msgStartProjectRegistration = "starting project registration"
	msgInvalidProjectData       = "project data failed validation"
	msgProjectNameExists        = "project with this name already exists"
	msgProjectRegistered        = "project registered successfully"
	msgProjectStatusUpdated     = "project status updated"
	msgProjectRemoved           = "project removed successfully"

	errCtxValidatingProject  = "validating project"
	errCtxCheckingName       = "checking project name uniqueness"
	errCtxAddingProject      = "adding project"
	errCtxFindingProject     = "finding project"
	errCtxResolvingManager   = "resolving manager"
	errCtxUpdatingProject    = "updating project"
	errCtxRemovingProject    = "removing project"
	errCtxListingLate        = "listing late projects"
	errCtxListingProjectList = "listing projects"
)

const (
	minNameLen        = 3
	minDescriptionLen = 10
)

// ProjectUseCase реализует операции над проектами. Хранилище
// пользователей нужно для разрешения невладеющей ссылки на руководителя.
type ProjectUseCase struct {
	projects repositories.ProjectRepository
	users    repositories.UserRepository
}

// NewProjectUseCase создает новый экземпляр ProjectUseCase.
func NewProjectUseCase(projects repositories.ProjectRepository, users repositories.UserRepository) *ProjectUseCase {
	return &ProjectUseCase{
		projects: projects,
		users:    users,
	}
}

// Register проверяет данные кандидата и добавляет проект в хранилище.
// Руководитель обязан быть уже зарегистрированным пользователем.
func (uc *ProjectUseCase) Register(ctx context.Context, project *entities.Project) error {
	log := logger.Log(ctx).With(zap.String("method", methodRegisterProject), zap.String("name", project.Name))
	log.Debug(ctx, msgStartProjectRegistration)

	if err := uc.validateProject(ctx, project); err != nil {
		log.Debug(ctx, msgInvalidProjectData, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingProject, err)
	}

	if _, err := uc.projects.FindByName(ctx, project.Name); err == nil {
		log.Debug(ctx, msgProjectNameExists)
		return fmt.Errorf("%s: %w", errCtxCheckingName, entities.ErrProjectNameTaken)
	} else if !errors.Is(err, entities.ErrNotFound) {
		return fmt.Errorf("%s: %w", errCtxCheckingName, err)
	}

	if err := uc.projects.Add(ctx, project); err != nil {
		return fmt.Errorf("%s: %w", errCtxAddingProject, err)
	}

	log.Info(ctx, msgProjectRegistered, zap.String("projectID", project.ID))
	return nil
}

// UpdateStatus переводит проект в новое состояние: поиск по имени, затем
// полная замена. Переходы между состояниями не ограничены.
func (uc *ProjectUseCase) UpdateStatus(ctx context.Context, name string, status entities.ProjectStatus) error {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateStatus), zap.String("name", name))

	if _, err := entities.ParseProjectStatus(string(status)); err != nil {
		return fmt.Errorf("%s: %w", errCtxValidatingProject, err)
	}

	project, err := uc.projects.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxFindingProject, err)
	}

	project.Status = status
	if err := uc.projects.Update(ctx, project); err != nil {
		return fmt.Errorf("%s: %w", errCtxUpdatingProject, err)
	}

	log.Info(ctx, msgProjectStatusUpdated, zap.String("status", string(status)))
	return nil
}

// FindByName возвращает проект по естественному ключу.
func (uc *ProjectUseCase) FindByName(ctx context.Context, name string) (*entities.Project, error) {
	project, err := uc.projects.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingProject, err)
	}
	return project, nil
}

// List возвращает снимок всех проектов.
func (uc *ProjectUseCase) List(ctx context.Context) ([]*entities.Project, error) {
	projects, err := uc.projects.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingProjectList, err)
	}
	return projects, nil
}

// ListByStatus возвращает проекты в заданном состоянии.
func (uc *ProjectUseCase) ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]*entities.Project, error) {
	projects, err := uc.projects.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingProjectList, err)
	}
	return projects, nil
}

// ListByManager возвращает проекты руководителя, заданного своим CPF.
func (uc *ProjectUseCase) ListByManager(ctx context.Context, managerCPF string) ([]*entities.Project, error) {
	manager, err := uc.users.FindByCPF(ctx, managerCPF)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolvingManager, err)
	}

	projects, err := uc.projects.ListByManager(ctx, manager.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingProjectList, err)
	}
	return projects, nil
}

// ListByDateRange возвращает проекты, целиком попадающие в интервал дат.
func (uc *ProjectUseCase) ListByDateRange(ctx context.Context, from, to time.Time) ([]*entities.Project, error) {
	projects, err := uc.projects.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingProjectList, err)
	}
	return projects, nil
}

// ListLate возвращает проекты, просроченные на текущий момент.
func (uc *ProjectUseCase) ListLate(ctx context.Context) ([]*entities.Project, error) {
	projects, err := uc.projects.ListLate(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingLate, err)
	}
	return projects, nil
}

// Remove удаляет проект по имени.
func (uc *ProjectUseCase) Remove(ctx context.Context, name string) error {
	log := logger.Log(ctx).With(zap.String("method", methodRemoveProject), zap.String("name", name))

	if err := uc.projects.Remove(ctx, name); err != nil {
		return fmt.Errorf("%s: %w", errCtxRemovingProject, err)
	}

	log.Info(ctx, msgProjectRemoved)
	return nil
}

// Count возвращает число проектов.
func (uc *ProjectUseCase) Count(ctx context.Context) int {
	return uc.projects.Count(ctx)
}

// CountByStatus возвращает число проектов в заданном состоянии.
func (uc *ProjectUseCase) CountByStatus(ctx context.Context, status entities.ProjectStatus) int {
	return uc.projects.CountByStatus(ctx, status)
}

func (uc *ProjectUseCase) validateProject(ctx context.Context, project *entities.Project) error {
	if len(strings.TrimSpace(project.Name)) < minNameLen {
		return entities.ErrInvalidName
	}
	if len(strings.TrimSpace(project.Description)) < minDescriptionLen {
		return entities.ErrInvalidDescription
	}
	if err := validateProjectDates(project.StartDate, project.ExpectedEndDate); err != nil {
		return err
	}
	if project.ManagerID == "" {
		return entities.ErrManagerRequired
	}
	if _, err := uc.users.FindByID(ctx, project.ManagerID); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return entities.ErrManagerNotFound
		}
		return err
	}
	return nil
}

// validateProjectDates проверяет порядок дат и запрет старта в прошлом.
// Сравнение ведется с точностью до календарного дня: проект может
// начинаться сегодня.
func validateProjectDates(start, expectedEnd time.Time) error {
	if start.IsZero() || expectedEnd.IsZero() {
		return entities.ErrMissingDates
	}
	if start.After(expectedEnd) {
		return entities.ErrStartAfterEnd
	}
	today := truncateToDay(time.Now())
	if truncateToDay(start).Before(today) {
		return entities.ErrStartInPast
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
