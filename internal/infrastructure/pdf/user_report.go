package pdf

import (
	"fmt"

	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

var userColumns = []float64{40, 35, 50, 22, 18, 25}

// RenderUserReport renders the visible user roster as a table.
func (r *Renderer) RenderUserReport(users []*domain.User) (*ports.ExportFile, error) {
	b := newBuilder("User Roster")

	b.subheader(fmt.Sprintf("%d users", len(users)))
	b.tableHeader(userColumns, "ID", "Name", "Email", "Role", "Pref. h/day", "Created")
	for _, u := range users {
		pref := "-"
		if u.PreferredWorkingHours != nil {
			pref = formatHours(*u.PreferredWorkingHours)
		}
		b.tableRow(userColumns,
			u.ID,
			u.FirstName+" "+u.LastName,
			u.Email,
			u.Role.String(),
			pref,
			u.CreatedAt.UTC().Format("2006-01-02"),
		)
	}

	data, err := b.bytes()
	if err != nil {
		return nil, err
	}
	return &ports.ExportFile{Name: reportName("user_export"), Data: data}, nil
}
