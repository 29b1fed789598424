package console

import (
	"context"

	"planboard/internal/tracker/domain/entities"
)

func (m *Menu) userMenu(ctx context.Context) {
	for {
		m.printf("\n--- Users ---\n")
		m.printf("1 - Register\n")
		m.printf("2 - List all\n")
		m.printf("3 - List by role\n")
		m.printf("4 - Update\n")
		m.printf("5 - Remove\n")
		m.printf("6 - Authenticate\n")
		m.printf("0 - Back\n")

		choice, ok := m.readLine("Option: ")
		if !ok || choice == "0" {
			return
		}

		switch choice {
		case "1":
			m.registerUser(ctx)
		case "2":
			m.listUsers(ctx)
		case "3":
			m.listUsersByRole(ctx)
		case "4":
			m.updateUser(ctx)
		case "5":
			m.removeUser(ctx)
		case "6":
			m.authenticate(ctx)
		default:
			m.printf("Unknown option.\n")
		}
	}
}

func (m *Menu) registerUser(ctx context.Context) {
	fullName, ok := m.readLine("Full name: ")
	if !ok {
		return
	}
	cpf, ok := m.readLine("CPF: ")
	if !ok {
		return
	}
	email, ok := m.readLine("Email: ")
	if !ok {
		return
	}
	jobTitle, ok := m.readLine("Job title: ")
	if !ok {
		return
	}
	login, ok := m.readLine("Login: ")
	if !ok {
		return
	}
	password, ok := m.readLine("Password: ")
	if !ok {
		return
	}
	role, ok := m.readRole()
	if !ok {
		return
	}

	user := entities.NewUser(fullName, cpf, email, jobTitle, login, password, role)
	if err := m.users.Register(ctx, user); err != nil {
		m.fail(err)
		return
	}
	m.printf("User registered.\n")
}

func (m *Menu) listUsers(ctx context.Context) {
	users, err := m.users.List(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderUsers(users)
}

func (m *Menu) listUsersByRole(ctx context.Context) {
	role, ok := m.readRole()
	if !ok {
		return
	}
	users, err := m.users.ListByRole(ctx, role)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderUsers(users)
}

// updateUser меняет только изменяемые поля: email, должность, пароль и
// профиль. Пустой ввод оставляет прежнее значение.
func (m *Menu) updateUser(ctx context.Context) {
	cpf, ok := m.readLine("CPF of the user to update: ")
	if !ok {
		return
	}
	user, err := m.users.FindByCPF(ctx, cpf)
	if err != nil {
		m.fail(err)
		return
	}

	if email, ok := m.readLine("New email (empty keeps current): "); ok && email != "" {
		user.Email = email
	}
	if jobTitle, ok := m.readLine("New job title (empty keeps current): "); ok && jobTitle != "" {
		user.JobTitle = jobTitle
	}
	if password, ok := m.readLine("New password (empty keeps current): "); ok && password != "" {
		user.Password = password
	}
	if raw, ok := m.readLine("New role (empty keeps current): "); ok && raw != "" {
		role, err := entities.ParseRole(raw)
		if err != nil {
			m.fail(err)
			return
		}
		user.Role = role
	}

	if err := m.users.Update(ctx, user); err != nil {
		m.fail(err)
		return
	}
	m.printf("User updated.\n")
}

func (m *Menu) removeUser(ctx context.Context) {
	cpf, ok := m.readLine("CPF of the user to remove: ")
	if !ok {
		return
	}
	if err := m.users.Remove(ctx, cpf); err != nil {
		m.fail(err)
		return
	}
	m.printf("User removed.\n")
}

func (m *Menu) authenticate(ctx context.Context) {
	login, ok := m.readLine("Login: ")
	if !ok {
		return
	}
	password, ok := m.readLine("Password: ")
	if !ok {
		return
	}

	user, err := m.users.Authenticate(ctx, login, password)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("Welcome, %s (%s).\n", user.FullName, user.Role)
}
