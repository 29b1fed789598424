package entities

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// MaxTeamMembers - предел численности команды, проверяемый при добавлении.
const MaxTeamMembers = 10

// Team представляет команду. MemberIDs - упорядоченный список невладеющих
// ссылок на пользователей без дубликатов.
type Team struct {
	ID          string
	Name        string
	Description string
	MemberIDs   []string
	CreatedAt   time.Time
}

// NewTeam создает команду без участников.
func NewTeam(name, description string) *Team {
	return &Team{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		MemberIDs:   []string{},
		CreatedAt:   time.Now(),
	}
}

// HasMember сообщает, входит ли пользователь в команду.
func (t *Team) HasMember(userID string) bool {
	return slices.Contains(t.MemberIDs, userID)
}

// Size возвращает численность команды.
func (t *Team) Size() int {
	return len(t.MemberIDs)
}

// Clone возвращает независимую копию команды вместе со списком участников.
func (t *Team) Clone() *Team {
	clone := *t
	clone.MemberIDs = slices.Clone(t.MemberIDs)
	return &clone
}
