package ports

import "github.com/clockline/timetrack-api/internal/core/domain"

// ExportFile is a rendered report ready to be handed to the client.
type ExportFile struct {
	Name string
	Data []byte
}

// TimeReportRenderer renders a date-grouped report of time entries.
type TimeReportRenderer interface {
	RenderTimeReport(items []TimeEntryItem) (*ExportFile, error)
}

// UserReportRenderer renders the user roster report.
type UserReportRenderer interface {
	RenderUserReport(users []*domain.User) (*ExportFile, error)
}
