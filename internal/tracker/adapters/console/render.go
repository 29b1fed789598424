package console

import (
	"context"
	"time"

	"planboard/internal/tracker/domain/entities"
)

func (m *Menu) renderUser(u *entities.User) {
	m.printf("  %s | %s | %s | %s | %s\n", u.FullName, u.CPF, u.Email, u.JobTitle, u.Role)
}

func (m *Menu) renderUsers(users []*entities.User) {
	if len(users) == 0 {
		m.printf("  (none)\n")
		return
	}
	for _, u := range users {
		m.renderUser(u)
	}
}

func (m *Menu) renderProject(ctx context.Context, p *entities.Project) {
	managerName := p.ManagerID
	if manager, err := m.users.FindByID(ctx, p.ManagerID); err == nil {
		managerName = manager.FullName
	}

	late := ""
	if p.IsLateAt(time.Now()) {
		late = " [LATE]"
	}
	m.printf("  %s | %s | %s -> %s (%d days) | manager: %s%s\n",
		p.Name, p.Status,
		p.StartDate.Format(dateLayout), p.ExpectedEndDate.Format(dateLayout),
		p.PlannedDuration(), managerName, late)
}

func (m *Menu) renderProjects(ctx context.Context, projects []*entities.Project) {
	if len(projects) == 0 {
		m.printf("  (none)\n")
		return
	}
	for _, p := range projects {
		m.renderProject(ctx, p)
	}
}

func (m *Menu) renderTeam(t *entities.Team) {
	m.printf("  %s | %d member(s) | created %s\n", t.Name, t.Size(), t.CreatedAt.Format(dateLayout))
}

func (m *Menu) renderTeams(teams []*entities.Team) {
	if len(teams) == 0 {
		m.printf("  (none)\n")
		return
	}
	for _, t := range teams {
		m.renderTeam(t)
	}
}
