package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProjectStatus определяет состояние жизненного цикла проекта.
type ProjectStatus string

// Состояния проекта. Переходы между ними не ограничены; начальное
// состояние всегда StatusPlanned.
const (
	StatusPlanned    ProjectStatus = "PLANNED"
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusCompleted  ProjectStatus = "COMPLETED"
	StatusCancelled  ProjectStatus = "CANCELLED"
)

// ParseProjectStatus преобразует строку в ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPlanned:
		return StatusPlanned, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", ErrUnknownStatus
	}
}

// Project представляет проект. ManagerID - невладеющая ссылка на
// пользователя, разрешаемая через хранилище пользователей.
type Project struct {
	ID              string
	Name            string
	Description     string
	StartDate       time.Time
	ExpectedEndDate time.Time
	Status          ProjectStatus
	ManagerID       string
}

// NewProject создает проект в начальном состоянии StatusPlanned.
func NewProject(name, description string, start, expectedEnd time.Time, managerID string) *Project {
	return &Project{
		ID:              uuid.NewString(),
		Name:            name,
		Description:     description,
		StartDate:       start,
		ExpectedEndDate: expectedEnd,
		Status:          StatusPlanned,
		ManagerID:       managerID,
	}
}

// IsLateAt сообщает, просрочен ли проект на момент now: статус отличен
// от StatusCompleted и now строго позже ожидаемой даты завершения.
func (p *Project) IsLateAt(now time.Time) bool {
	return p.Status != StatusCompleted && now.After(p.ExpectedEndDate)
}

// IsLate проверяет просрочку относительно текущего времени.
func (p *Project) IsLate() bool {
	return p.IsLateAt(time.Now())
}

// PlannedDuration возвращает плановую длительность в календарных днях.
func (p *Project) PlannedDuration() int {
	return int(p.ExpectedEndDate.Sub(p.StartDate).Hours() / 24)
}

// Clone возвращает независимую копию проекта.
func (p *Project) Clone() *Project {
	clone := *p
	return &clone
}
