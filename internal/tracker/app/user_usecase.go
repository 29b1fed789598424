// Package app реализует бизнес-логику системы управления проектами
// и командами: валидацию, контроль уникальности и политики изменений.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"planboard/internal/tracker/domain/entities"
	"planboard/internal/tracker/ports/repositories"
	"planboard/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodRegisterUser     = "Register"
	methodAuthenticateUser = "Authenticate"
	methodUpdateUser       = "Update"
	methodRemoveUser       = "Remove"

	msgStartUserRegistration = "starting user registration"
	msgInvalidUserData       = "user data failed validation"
	msgCPFExists             = "user with this identifier already exists"
	msgLoginExists           = "user with this login already exists"
	msgUserRegistered        = "user registered successfully"
	msgAuthAttempt           = "authentication attempt"
	msgAuthFailed            = "authentication failed"
	msgAuthSucceeded         = "user authenticated"
	msgUserUpdated           = "user updated successfully"
	msgUserStillReferenced   = "user removal blocked by references"
	msgUserRemoved           = "user removed successfully"

	errCtxValidatingUser  = "validating user"
	errCtxCheckingCPF     = "checking identifier uniqueness"
	errCtxCheckingLogin   = "checking login uniqueness"
	errCtxAddingUser      = "adding user"
	errCtxAuthenticating  = "authenticating user"
	errCtxUpdatingUser    = "updating user"
	errCtxFindingUser     = "finding user"
	errCtxCheckingRefs    = "checking user references"
	errCtxRemovingUser    = "removing user"
	errCtxListingUsers    = "listing users"
	errCtxListingProjects = "listing projects"
	errCtxListingTeams    = "listing teams"
)

const (
	minFullNameLen = 3
	minLoginLen    = 4
	minPasswordLen = 6
	cpfDigits      = 11
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

// UserUseCase реализует операции над пользователями. Хранилища проектов
// и команд нужны для политики удаления: пользователь, на которого
// ссылается проект или команда, не может быть удален.
type UserUseCase struct {
	users    repositories.UserRepository
	projects repositories.ProjectRepository
	teams    repositories.TeamRepository
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(
	users repositories.UserRepository,
	projects repositories.ProjectRepository,
	teams repositories.TeamRepository,
) *UserUseCase {
	return &UserUseCase{
		users:    users,
		projects: projects,
		teams:    teams,
	}
}

// Register проверяет данные кандидата и добавляет его в хранилище.
func (uc *UserUseCase) Register(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("method", methodRegisterUser), zap.String("login", user.Login))
	log.Debug(ctx, msgStartUserRegistration)

	if err := validateUser(user); err != nil {
		log.Debug(ctx, msgInvalidUserData, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingUser, err)
	}

	if _, err := uc.users.FindByCPF(ctx, user.CPF); err == nil {
		log.Debug(ctx, msgCPFExists)
		return fmt.Errorf("%s: %w", errCtxCheckingCPF, entities.ErrCPFTaken)
	} else if !errors.Is(err, entities.ErrNotFound) {
		return fmt.Errorf("%s: %w", errCtxCheckingCPF, err)
	}

	if _, err := uc.users.FindByLogin(ctx, user.Login); err == nil {
		log.Debug(ctx, msgLoginExists)
		return fmt.Errorf("%s: %w", errCtxCheckingLogin, entities.ErrLoginTaken)
	} else if !errors.Is(err, entities.ErrNotFound) {
		return fmt.Errorf("%s: %w", errCtxCheckingLogin, err)
	}

	if err := uc.users.Add(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", errCtxAddingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", user.ID))
	return nil
}

// Authenticate возвращает пользователя при точном совпадении логина и
// пароля. Любое несовпадение дает ErrInvalidCredentials.
func (uc *UserUseCase) Authenticate(ctx context.Context, login, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticateUser), zap.String("login", login))
	log.Debug(ctx, msgAuthAttempt)

	user, err := uc.users.Authenticate(ctx, login, password)
	if err != nil {
		log.Debug(ctx, msgAuthFailed)
		return nil, fmt.Errorf("%s: %w", errCtxAuthenticating, err)
	}

	log.Info(ctx, msgAuthSucceeded, zap.String("userID", user.ID))
	return user, nil
}

// FindByCPF возвращает пользователя по естественному ключу.
func (uc *UserUseCase) FindByCPF(ctx context.Context, cpf string) (*entities.User, error) {
	user, err := uc.users.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	return user, nil
}

// FindByID возвращает пользователя по внутреннему идентификатору.
// Используется для разрешения невладеющих ссылок при отображении.
func (uc *UserUseCase) FindByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	return user, nil
}

// List возвращает снимок всех пользователей.
func (uc *UserUseCase) List(ctx context.Context) ([]*entities.User, error) {
	users, err := uc.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}
	return users, nil
}

// ListByRole возвращает пользователей с заданным профилем.
func (uc *UserUseCase) ListByRole(ctx context.Context, role entities.Role) ([]*entities.User, error) {
	users, err := uc.users.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}
	return users, nil
}

// Update повторно проверяет данные и полностью заменяет пользователя.
func (uc *UserUseCase) Update(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateUser), zap.String("userID", user.ID))

	if err := validateUser(user); err != nil {
		log.Debug(ctx, msgInvalidUserData, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingUser, err)
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgUserUpdated)
	return nil
}

// Remove удаляет пользователя по CPF. Удаление запрещено, пока на
// пользователя ссылается проект или команда.
func (uc *UserUseCase) Remove(ctx context.Context, cpf string) error {
	log := logger.Log(ctx).With(zap.String("method", methodRemoveUser))

	user, err := uc.users.FindByCPF(ctx, cpf)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	managed, err := uc.projects.ListByManager(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxListingProjects, err)
	}
	memberships, err := uc.teams.ListByMember(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxListingTeams, err)
	}
	if len(managed) > 0 || len(memberships) > 0 {
		log.Debug(ctx, msgUserStillReferenced,
			zap.String("userID", user.ID),
			zap.Int("projects", len(managed)),
			zap.Int("teams", len(memberships)))
		return fmt.Errorf("%s: %w", errCtxCheckingRefs, entities.ErrUserReferenced)
	}

	if err := uc.users.Remove(ctx, cpf); err != nil {
		return fmt.Errorf("%s: %w", errCtxRemovingUser, err)
	}

	log.Info(ctx, msgUserRemoved, zap.String("userID", user.ID))
	return nil
}

// Count возвращает число зарегистрированных пользователей.
func (uc *UserUseCase) Count(ctx context.Context) int {
	return uc.users.Count(ctx)
}

func validateUser(user *entities.User) error {
	if len(strings.TrimSpace(user.FullName)) < minFullNameLen {
		return entities.ErrInvalidFullName
	}
	if len(user.NormalizedCPF()) != cpfDigits {
		return entities.ErrInvalidCPF
	}
	if !emailPattern.MatchString(user.Email) {
		return entities.ErrInvalidEmail
	}
	if len(user.Login) < minLoginLen {
		return entities.ErrLoginTooShort
	}
	if len(user.Password) < minPasswordLen {
		return entities.ErrPasswordTooShort
	}
	if _, err := entities.ParseRole(string(user.Role)); err != nil {
		return err
	}
	return nil
}
