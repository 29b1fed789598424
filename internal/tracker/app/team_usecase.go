package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"planboard/internal/tracker/domain/entities"
	"planboard/internal/tracker/ports/repositories"
	"planboard/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodRegisterTeam = "Register"
	methodAddMember    = "AddMember"
	methodRemoveMember = "RemoveMember"
	methodRemoveTeam   = "Remove"

	msgStartTeamRegistration = "starting team registration"
	msgInvalidTeamData       = "team data failed validation"
	msgTeamNameExists        = "team with this name already exists"
	msgTeamRegistered        = "team registered successfully"
	msgMemberAlreadyInTeam   = "user is already a team member"
	msgTeamAtCapacity        = "team member limit reached"
	msgMemberAdded           = "team member added"
	msgMemberNotInTeam       = "user is not a team member"
	msgMemberRemoved         = "team member removed"
	msgTeamRemoved           = "team removed successfully"

	errCtxValidatingTeam   = "validating team"
	errCtxCheckingTeamName = "checking team name uniqueness"
	errCtxAddingTeam       = "adding team"
	errCtxFindingTeam      = "finding team"
	errCtxResolvingMember  = "resolving member"
	errCtxMembershipCheck  = "checking membership"
	errCtxPersistingTeam   = "persisting team"
	errCtxRemovingTeam     = "removing team"
	errCtxListingTeamList  = "listing teams"
)

// TeamUseCase реализует операции над командами. Участники задаются CPF
// и хранятся как невладеющие ссылки на пользователей.
type TeamUseCase struct {
	teams repositories.TeamRepository
	users repositories.UserRepository
}

// NewTeamUseCase создает новый экземпляр TeamUseCase.
func NewTeamUseCase(teams repositories.TeamRepository, users repositories.UserRepository) *TeamUseCase {
	return &TeamUseCase{
		teams: teams,
		users: users,
	}
}

// Register проверяет данные кандидата и добавляет команду в хранилище.
func (uc *TeamUseCase) Register(ctx context.Context, team *entities.Team) error {
	log := logger.Log(ctx).With(zap.String("method", methodRegisterTeam), zap.String("name", team.Name))
	log.Debug(ctx, msgStartTeamRegistration)

	if err := validateTeam(team); err != nil {
		log.Debug(ctx, msgInvalidTeamData, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingTeam, err)
	}

	if _, err := uc.teams.FindByName(ctx, team.Name); err == nil {
		log.Debug(ctx, msgTeamNameExists)
		return fmt.Errorf("%s: %w", errCtxCheckingTeamName, entities.ErrTeamNameTaken)
	} else if !errors.Is(err, entities.ErrNotFound) {
		return fmt.Errorf("%s: %w", errCtxCheckingTeamName, err)
	}

	if err := uc.teams.Add(ctx, team); err != nil {
		return fmt.Errorf("%s: %w", errCtxAddingTeam, err)
	}

	log.Info(ctx, msgTeamRegistered, zap.String("teamID", team.ID))
	return nil
}

// AddMember добавляет пользователя в команду. Состав меняется только
// через полную замену команды в хранилище: проверки выполняются на
// копии, поэтому отказ на любом шаге не оставляет следов.
func (uc *TeamUseCase) AddMember(ctx context.Context, teamName, memberCPF string) error {
	log := logger.Log(ctx).With(zap.String("method", methodAddMember), zap.String("team", teamName))

	team, err := uc.teams.FindByName(ctx, teamName)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxFindingTeam, err)
	}

	member, err := uc.users.FindByCPF(ctx, memberCPF)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxResolvingMember, err)
	}

	if team.HasMember(member.ID) {
		log.Debug(ctx, msgMemberAlreadyInTeam, zap.String("userID", member.ID))
		return fmt.Errorf("%s: %w", errCtxMembershipCheck, entities.ErrAlreadyMember)
	}
	if team.Size() >= entities.MaxTeamMembers {
		log.Debug(ctx, msgTeamAtCapacity, zap.Int("size", team.Size()))
		return fmt.Errorf("%s: %w", errCtxMembershipCheck, entities.ErrTeamFull)
	}

	team.MemberIDs = append(team.MemberIDs, member.ID)
	if err := uc.teams.Update(ctx, team); err != nil {
		return fmt.Errorf("%s: %w", errCtxPersistingTeam, err)
	}

	log.Info(ctx, msgMemberAdded, zap.String("userID", member.ID), zap.Int("size", team.Size()))
	return nil
}

// RemoveMember исключает пользователя из команды.
func (uc *TeamUseCase) RemoveMember(ctx context.Context, teamName, memberCPF string) error {
	log := logger.Log(ctx).With(zap.String("method", methodRemoveMember), zap.String("team", teamName))

	team, err := uc.teams.FindByName(ctx, teamName)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxFindingTeam, err)
	}

	member, err := uc.users.FindByCPF(ctx, memberCPF)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxResolvingMember, err)
	}

	if !team.HasMember(member.ID) {
		log.Debug(ctx, msgMemberNotInTeam, zap.String("userID", member.ID))
		return fmt.Errorf("%s: %w", errCtxMembershipCheck, entities.ErrNotMember)
	}

	kept := make([]string, 0, len(team.MemberIDs)-1)
	for _, id := range team.MemberIDs {
		if id != member.ID {
			kept = append(kept, id)
		}
	}
	team.MemberIDs = kept

	if err := uc.teams.Update(ctx, team); err != nil {
		return fmt.Errorf("%s: %w", errCtxPersistingTeam, err)
	}

	log.Info(ctx, msgMemberRemoved, zap.String("userID", member.ID), zap.Int("size", team.Size()))
	return nil
}

// FindByName возвращает команду по естественному ключу.
func (uc *TeamUseCase) FindByName(ctx context.Context, name string) (*entities.Team, error) {
	team, err := uc.teams.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingTeam, err)
	}
	return team, nil
}

// List возвращает снимок всех команд.
func (uc *TeamUseCase) List(ctx context.Context) ([]*entities.Team, error) {
	teams, err := uc.teams.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingTeamList, err)
	}
	return teams, nil
}

// ListByMember возвращает команды, в которые входит пользователь с
// заданным CPF.
func (uc *TeamUseCase) ListByMember(ctx context.Context, memberCPF string) ([]*entities.Team, error) {
	member, err := uc.users.FindByCPF(ctx, memberCPF)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolvingMember, err)
	}

	teams, err := uc.teams.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingTeamList, err)
	}
	return teams, nil
}

// ListBySize возвращает команды по убыванию численности.
func (uc *TeamUseCase) ListBySize(ctx context.Context) ([]*entities.Team, error) {
	teams, err := uc.teams.ListBySizeDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingTeamList, err)
	}
	return teams, nil
}

// Managers возвращает участников команды с профилем руководителя.
// Неразрешимые ссылки пропускаются.
func (uc *TeamUseCase) Managers(ctx context.Context, teamName string) ([]*entities.User, error) {
	team, err := uc.teams.FindByName(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingTeam, err)
	}

	managers := []*entities.User{}
	for _, id := range team.MemberIDs {
		member, err := uc.users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, entities.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("%s: %w", errCtxResolvingMember, err)
		}
		if member.Role == entities.RoleManager {
			managers = append(managers, member)
		}
	}
	return managers, nil
}

// Remove удаляет команду по имени.
func (uc *TeamUseCase) Remove(ctx context.Context, name string) error {
	log := logger.Log(ctx).With(zap.String("method", methodRemoveTeam), zap.String("name", name))

	if err := uc.teams.Remove(ctx, name); err != nil {
		return fmt.Errorf("%s: %w", errCtxRemovingTeam, err)
	}

	log.Info(ctx, msgTeamRemoved)
	return nil
}

// Count возвращает число команд.
func (uc *TeamUseCase) Count(ctx context.Context) int {
	return uc.teams.Count(ctx)
}

func validateTeam(team *entities.Team) error {
	if len(strings.TrimSpace(team.Name)) < minNameLen {
		return entities.ErrInvalidName
	}
	if len(strings.TrimSpace(team.Description)) < minDescriptionLen {
		return entities.ErrInvalidDescription
	}
	return nil
}
