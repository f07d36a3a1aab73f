package pdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

func TestRenderTimeReport(t *testing.T) {
	r := NewRenderer()
	owner := &domain.User{ID: "w1", FirstName: "Walt", LastName: "Hours", Role: domain.RoleUser}

	file, err := r.RenderTimeReport([]ports.TimeEntryItem{
		{Entry: &domain.TimeEntry{ID: "e1", Date: "2024-03-01", Length: 8, Note: "api work"}, Owner: owner},
		{Entry: &domain.TimeEntry{ID: "e2", Date: "2024-03-01", Length: 2, Note: "review"}, Owner: owner},
		{Entry: &domain.TimeEntry{ID: "e3", Date: "2024-03-02", Length: 6}, Owner: nil},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !bytes.HasPrefix(file.Data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.HasPrefix(file.Name, "time_export_") || !strings.HasSuffix(file.Name, ".pdf") {
		t.Fatalf("unexpected file name: %q", file.Name)
	}
}

func TestRenderTimeReport_Empty(t *testing.T) {
	file, err := NewRenderer().RenderTimeReport(nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(file.Data) == 0 {
		t.Fatalf("empty report must still render a document")
	}
}

func TestRenderUserReport(t *testing.T) {
	hours := 7.5
	file, err := NewRenderer().RenderUserReport([]*domain.User{
		{ID: "u1", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", Role: domain.RoleAdmin},
		{ID: "u2", FirstName: "Bob", LastName: "Jones", Email: "bob@example.com", Role: domain.RoleUser, PreferredWorkingHours: &hours},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !bytes.HasPrefix(file.Data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.HasPrefix(file.Name, "user_export_") {
		t.Fatalf("unexpected file name: %q", file.Name)
	}
}
