package console

import (
	"strings"
	"time"

	"planboard/internal/tracker/domain/entities"
)

// dateLayout - формат дат, ожидаемый от пользователя.
const dateLayout = "2006-01-02"

// readLine печатает приглашение и возвращает строку без краевых пробелов.
// Второе значение ложно при исчерпании ввода.
func (m *Menu) readLine(prompt string) (string, bool) {
	m.printf("%s", prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// readDate запрашивает дату до тех пор, пока она не распарсится.
func (m *Menu) readDate(prompt string) (time.Time, bool) {
	for {
		raw, ok := m.readLine(prompt + " (" + dateLayout + "): ")
		if !ok {
			return time.Time{}, false
		}
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			m.printf("Invalid date, try again.\n")
			continue
		}
		return date, true
	}
}

// readRole запрашивает профиль пользователя.
func (m *Menu) readRole() (entities.Role, bool) {
	for {
		raw, ok := m.readLine("Role (administrator/manager/member): ")
		if !ok {
			return "", false
		}
		role, err := entities.ParseRole(raw)
		if err != nil {
			m.printf("Invalid role, try again.\n")
			continue
		}
		return role, true
	}
}

// readStatus запрашивает состояние проекта.
func (m *Menu) readStatus() (entities.ProjectStatus, bool) {
	for {
		raw, ok := m.readLine("Status (planned/in_progress/completed/cancelled): ")
		if !ok {
			return "", false
		}
		status, err := entities.ParseProjectStatus(raw)
		if err != nil {
			m.printf("Invalid status, try again.\n")
			continue
		}
		return status, true
	}
}
