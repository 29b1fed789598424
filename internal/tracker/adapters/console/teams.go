package console

import (
	"context"

	"planboard/internal/tracker/domain/entities"
)

func (m *Menu) teamMenu(ctx context.Context) {
	for {
		m.printf("\n--- Teams ---\n")
		m.printf("1 - Register\n")
		m.printf("2 - List all\n")
		m.printf("3 - Add member\n")
		m.printf("4 - Remove member\n")
		m.printf("5 - Teams of a user\n")
		m.printf("6 - List by size\n")
		m.printf("7 - Team managers\n")
		m.printf("8 - Remove\n")
		m.printf("0 - Back\n")

		choice, ok := m.readLine("Option: ")
		if !ok || choice == "0" {
			return
		}

		switch choice {
		case "1":
			m.registerTeam(ctx)
		case "2":
			m.listTeams(ctx)
		case "3":
			m.addTeamMember(ctx)
		case "4":
			m.removeTeamMember(ctx)
		case "5":
			m.listTeamsByMember(ctx)
		case "6":
			m.listTeamsBySize(ctx)
		case "7":
			m.listTeamManagers(ctx)
		case "8":
			m.removeTeam(ctx)
		default:
			m.printf("Unknown option.\n")
		}
	}
}

func (m *Menu) registerTeam(ctx context.Context) {
	name, ok := m.readLine("Name: ")
	if !ok {
		return
	}
	description, ok := m.readLine("Description: ")
	if !ok {
		return
	}

	team := entities.NewTeam(name, description)
	if err := m.teams.Register(ctx, team); err != nil {
		m.fail(err)
		return
	}
	m.printf("Team registered.\n")
}

func (m *Menu) listTeams(ctx context.Context) {
	teams, err := m.teams.List(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderTeams(teams)
}

func (m *Menu) addTeamMember(ctx context.Context) {
	name, ok := m.readLine("Team name: ")
	if !ok {
		return
	}
	cpf, ok := m.readLine("Member CPF: ")
	if !ok {
		return
	}
	if err := m.teams.AddMember(ctx, name, cpf); err != nil {
		m.fail(err)
		return
	}
	m.printf("Member added.\n")
}

func (m *Menu) removeTeamMember(ctx context.Context) {
	name, ok := m.readLine("Team name: ")
	if !ok {
		return
	}
	cpf, ok := m.readLine("Member CPF: ")
	if !ok {
		return
	}
	if err := m.teams.RemoveMember(ctx, name, cpf); err != nil {
		m.fail(err)
		return
	}
	m.printf("Member removed.\n")
}

func (m *Menu) listTeamsByMember(ctx context.Context) {
	cpf, ok := m.readLine("Member CPF: ")
	if !ok {
		return
	}
	teams, err := m.teams.ListByMember(ctx, cpf)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderTeams(teams)
}

func (m *Menu) listTeamsBySize(ctx context.Context) {
	teams, err := m.teams.ListBySize(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderTeams(teams)
}

func (m *Menu) listTeamManagers(ctx context.Context) {
	name, ok := m.readLine("Team name: ")
	if !ok {
		return
	}
	managers, err := m.teams.Managers(ctx, name)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderUsers(managers)
}

func (m *Menu) removeTeam(ctx context.Context) {
	name, ok := m.readLine("Team name: ")
	if !ok {
		return
	}
	if err := m.teams.Remove(ctx, name); err != nil {
		m.fail(err)
		return
	}
	m.printf("Team removed.\n")
}
