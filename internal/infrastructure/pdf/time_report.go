package pdf

import (
	"fmt"

	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

// Renderer implements the report renderer ports on top of fpdf.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var timeColumns = []float64{30, 25, 80, 55}

// RenderTimeReport renders entries grouped by date, one section per calendar
// day with its summed hours. Items are expected in date order.
func (r *Renderer) RenderTimeReport(items []ports.TimeEntryItem) (*ports.ExportFile, error) {
	b := newBuilder("Time Report")

	if len(items) == 0 {
		b.subheader("No time entries in the selected range.")
	}

	for start := 0; start < len(items); {
		end := start
		total := 0.0
		for end < len(items) && items[end].Entry.Date == items[start].Entry.Date {
			total += items[end].Entry.Length
			end++
		}

		b.subheader(fmt.Sprintf("%s  (total: %s h)", items[start].Entry.Date, formatHours(total)))
		b.tableHeader(timeColumns, "Date", "Hours", "Note", "User")
		for _, it := range items[start:end] {
			b.tableRow(timeColumns,
				it.Entry.Date,
				formatHours(it.Entry.Length),
				it.Entry.Note,
				ownerName(it.Owner),
			)
		}
		b.spacer()

		start = end
	}

	data, err := b.bytes()
	if err != nil {
		return nil, err
	}
	return &ports.ExportFile{Name: reportName("time_export"), Data: data}, nil
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

func ownerName(u *domain.User) string {
	if u == nil {
		return "unknown"
	}
	return u.FirstName + " " + u.LastName
}
