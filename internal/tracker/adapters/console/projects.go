package console

import (
	"context"

	"planboard/internal/tracker/domain/entities"
)

func (m *Menu) projectMenu(ctx context.Context) {
	for {
		m.printf("\n--- Projects ---\n")
		m.printf("1 - Register\n")
		m.printf("2 - List all\n")
		m.printf("3 - List by status\n")
		m.printf("4 - List by manager\n")
		m.printf("5 - List by date range\n")
		m.printf("6 - List late\n")
		m.printf("7 - Update status\n")
		m.printf("8 - Remove\n")
		m.printf("0 - Back\n")

		choice, ok := m.readLine("Option: ")
		if !ok || choice == "0" {
			return
		}

		switch choice {
		case "1":
			m.registerProject(ctx)
		case "2":
			m.listProjects(ctx)
		case "3":
			m.listProjectsByStatus(ctx)
		case "4":
			m.listProjectsByManager(ctx)
		case "5":
			m.listProjectsByDateRange(ctx)
		case "6":
			m.listLateProjects(ctx)
		case "7":
			m.updateProjectStatus(ctx)
		case "8":
			m.removeProject(ctx)
		default:
			m.printf("Unknown option.\n")
		}
	}
}

func (m *Menu) registerProject(ctx context.Context) {
	name, ok := m.readLine("Name: ")
	if !ok {
		return
	}
	description, ok := m.readLine("Description: ")
	if !ok {
		return
	}
	start, ok := m.readDate("Start date")
	if !ok {
		return
	}
	end, ok := m.readDate("Expected end date")
	if !ok {
		return
	}
	managerCPF, ok := m.readLine("Manager CPF: ")
	if !ok {
		return
	}

	manager, err := m.users.FindByCPF(ctx, managerCPF)
	if err != nil {
		m.fail(err)
		return
	}

	project := entities.NewProject(name, description, start, end, manager.ID)
	if err := m.projects.Register(ctx, project); err != nil {
		m.fail(err)
		return
	}
	m.printf("Project registered with status %s.\n", project.Status)
}

func (m *Menu) listProjects(ctx context.Context) {
	projects, err := m.projects.List(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderProjects(ctx, projects)
}

func (m *Menu) listProjectsByStatus(ctx context.Context) {
	status, ok := m.readStatus()
	if !ok {
		return
	}
	projects, err := m.projects.ListByStatus(ctx, status)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderProjects(ctx, projects)
	m.printf("  total with status %s: %d\n", status, m.projects.CountByStatus(ctx, status))
}

func (m *Menu) listProjectsByManager(ctx context.Context) {
	cpf, ok := m.readLine("Manager CPF: ")
	if !ok {
		return
	}
	projects, err := m.projects.ListByManager(ctx, cpf)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderProjects(ctx, projects)
}

func (m *Menu) listProjectsByDateRange(ctx context.Context) {
	from, ok := m.readDate("From")
	if !ok {
		return
	}
	to, ok := m.readDate("To")
	if !ok {
		return
	}
	projects, err := m.projects.ListByDateRange(ctx, from, to)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderProjects(ctx, projects)
}

func (m *Menu) listLateProjects(ctx context.Context) {
	projects, err := m.projects.ListLate(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.renderProjects(ctx, projects)
}

func (m *Menu) updateProjectStatus(ctx context.Context) {
	name, ok := m.readLine("Project name: ")
	if !ok {
		return
	}
	status, ok := m.readStatus()
	if !ok {
		return
	}
	if err := m.projects.UpdateStatus(ctx, name, status); err != nil {
		m.fail(err)
		return
	}
	m.printf("Status updated.\n")
}

func (m *Menu) removeProject(ctx context.Context) {
	name, ok := m.readLine("Project name: ")
	if !ok {
		return
	}
	if err := m.projects.Remove(ctx, name); err != nil {
		m.fail(err)
		return
	}
	m.printf("Project removed.\n")
}
