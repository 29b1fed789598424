// Package entities определяет доменные сущности системы управления
// проектами и командами.
package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role определяет профиль доступа пользователя.
type Role string

// Поддерживаемые профили.
const (
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleManager       Role = "MANAGER"
	RoleMember        Role = "MEMBER"
)

// ParseRole преобразует строку в Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdministrator:
		return RoleAdministrator, nil
	case RoleManager:
		return RoleManager, nil
	case RoleMember:
		return RoleMember, nil
	default:
		return "", ErrUnknownRole
	}
}

// User представляет пользователя системы. CPF и Login уникальны среди
// всех пользователей; CPF служит внешним естественным ключом.
type User struct {
	ID        string
	FullName  string
	CPF       string
	Email     string
	JobTitle  string
	Login     string
	Password  string
	Role      Role
	CreatedAt time.Time
}

// NewUser создает пользователя со сгенерированным идентификатором.
func NewUser(fullName, cpf, email, jobTitle, login, password string, role Role) *User {
	return &User{
		ID:        uuid.NewString(),
		FullName:  fullName,
		CPF:       cpf,
		Email:     email,
		JobTitle:  jobTitle,
		Login:     login,
		Password:  password,
		Role:      role,
		CreatedAt: time.Now(),
	}
}

// NormalizedCPF возвращает CPF без нецифровых символов.
func (u *User) NormalizedCPF() string {
	var b strings.Builder
	for _, r := range u.CPF {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckPassword сравнивает пароль без хеширования.
func (u *User) CheckPassword(candidate string) bool {
	return u.Password == candidate
}

// Clone возвращает независимую копию пользователя.
func (u *User) Clone() *User {
	clone := *u
	return &clone
}
