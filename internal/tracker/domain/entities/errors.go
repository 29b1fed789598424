package entities

import (
	"errors"
	"fmt"
)

// Категории отказов доменного уровня. Конкретные ошибки ниже оборачивают
// одну из категорий, поэтому errors.Is позволяет проверять и условие,
// и класс отказа.
var (
	ErrValidation = errors.New("validation")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrPolicy     = errors.New("policy")
)

// Ошибки валидации пользователя.
var (
	ErrInvalidFullName  = fmt.Errorf("%w: full name must contain at least 3 characters", ErrValidation)
	ErrInvalidCPF       = fmt.Errorf("%w: identifier must contain exactly 11 digits", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrLoginTooShort    = fmt.Errorf("%w: login must contain at least 4 characters", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must contain at least 6 characters", ErrValidation)
	ErrUnknownRole      = fmt.Errorf("%w: unknown role", ErrValidation)
)

// Ошибки валидации проекта и команды.
var (
	ErrInvalidName        = fmt.Errorf("%w: name must contain at least 3 characters", ErrValidation)
	ErrInvalidDescription = fmt.Errorf("%w: description must contain at least 10 characters", ErrValidation)
	ErrMissingDates       = fmt.Errorf("%w: start and expected end dates are required", ErrValidation)
	ErrStartAfterEnd      = fmt.Errorf("%w: start date cannot be after the expected end date", ErrValidation)
	ErrStartInPast        = fmt.Errorf("%w: start date cannot be in the past", ErrValidation)
	ErrManagerRequired    = fmt.Errorf("%w: project manager is required", ErrValidation)
	ErrManagerNotFound    = fmt.Errorf("%w: manager is not a registered user", ErrValidation)
	ErrUnknownStatus      = fmt.Errorf("%w: unknown project status", ErrValidation)
)

// Конфликты уникальности.
var (
	ErrCPFTaken         = fmt.Errorf("%w: identifier already registered", ErrConflict)
	ErrLoginTaken       = fmt.Errorf("%w: login already exists", ErrConflict)
	ErrProjectNameTaken = fmt.Errorf("%w: project with this name already exists", ErrConflict)
	ErrTeamNameTaken    = fmt.Errorf("%w: team with this name already exists", ErrConflict)
)

// Отсутствующие сущности.
var (
	ErrUserNotFound       = fmt.Errorf("%w: user does not exist", ErrNotFound)
	ErrProjectNotFound    = fmt.Errorf("%w: project does not exist", ErrNotFound)
	ErrTeamNotFound       = fmt.Errorf("%w: team does not exist", ErrNotFound)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid login or password", ErrNotFound)
)

// Нарушения бизнес-правил.
var (
	ErrAlreadyMember  = fmt.Errorf("%w: user is already a team member", ErrPolicy)
	ErrNotMember      = fmt.Errorf("%w: user is not a team member", ErrPolicy)
	ErrTeamFull       = fmt.Errorf("%w: team member limit reached", ErrPolicy)
	ErrUserReferenced = fmt.Errorf("%w: user is referenced by a project or team", ErrPolicy)
)
