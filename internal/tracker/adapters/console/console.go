// Package console реализует текстовое меню поверх доменных сервисов.
// Слой намеренно тонкий: чтение ввода, вызов сервиса, печать результата.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"planboard/internal/tracker/app"
	"planboard/pkg/logger"
)

// Menu управляет интерактивной сессией.
type Menu struct {
	users    *app.UserUseCase
	projects *app.ProjectUseCase
	teams    *app.TeamUseCase
	in       *bufio.Scanner
	out      io.Writer
}

// NewMenu создает меню поверх доменных сервисов.
func NewMenu(users *app.UserUseCase, projects *app.ProjectUseCase, teams *app.TeamUseCase, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		users:    users,
		projects: projects,
		teams:    teams,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run запускает главный цикл меню и возвращается при выборе выхода
// или исчерпании ввода.
func (m *Menu) Run(ctx context.Context) {
	log := logger.Log(ctx)
	log.Info(ctx, "interactive session started")

	for {
		m.printf("\n===== Project & Team Management =====\n")
		m.printf("1 - Users\n")
		m.printf("2 - Projects\n")
		m.printf("3 - Teams\n")
		m.printf("4 - Summary\n")
		m.printf("0 - Exit\n")

		choice, ok := m.readLine("Option: ")
		if !ok || choice == "0" {
			break
		}

		switch choice {
		case "1":
			m.userMenu(ctx)
		case "2":
			m.projectMenu(ctx)
		case "3":
			m.teamMenu(ctx)
		case "4":
			m.summary(ctx)
		default:
			m.printf("Unknown option.\n")
		}
	}

	log.Info(ctx, "interactive session finished")
}

// fail печатает сообщение отказа. Все категории отказов ядра
// обрабатываются одинаково.
func (m *Menu) fail(err error) {
	m.printf("Error: %v\n", err)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) summary(ctx context.Context) {
	m.printf("Users: %d\n", m.users.Count(ctx))
	m.printf("Projects: %d\n", m.projects.Count(ctx))
	m.printf("Teams: %d\n", m.teams.Count(ctx))
}
