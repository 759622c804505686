package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/models"
)

func TestAuditTimestamp(t *testing.T) {
	at := time.Date(2024, 3, 5, 8, 30, 15, 123_000_000, time.UTC)
	assert.Equal(t, "2024-03-05T08:30:15.123Z", AuditTimestamp(at))

	// Rendered in UTC regardless of the source location.
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	local := time.Date(2024, 3, 5, 9, 30, 15, 123_000_000, berlin)
	assert.Equal(t, "2024-03-05T08:30:15.123Z", AuditTimestamp(local))
}

func TestAuditDescription(t *testing.T) {
	entry := models.CalendarAuditEntry{
		Actor:       "Martina Meier",
		CourseLabel: "TIF22A",
		ModuleLabel: "Algorithms",
	}
	assert.Equal(t, "Martina Meier | TIF22A | Algorithms", AuditDescription(entry))
}

func TestAuditTrailView(t *testing.T) {
	first := models.CalendarAuditEntry{
		LoggedAt:    time.Date(2024, 3, 5, 8, 30, 15, 123_000_000, time.UTC),
		Actor:       "Martina Meier",
		CourseLabel: "TIF22A",
		ModuleLabel: "Algorithms",
	}
	second := models.CalendarAuditEntry{
		LoggedAt:    time.Date(2024, 3, 5, 8, 30, 16, 500_000_000, time.UTC),
		Actor:       "Jan Schulz",
		CourseLabel: "TIF22B",
		ModuleLabel: "Databases",
	}
	view := AuditTrailView([]models.CalendarAuditEntry{first, second})
	assert.Len(t, view, 2)
	assert.Equal(t, "Martina Meier | TIF22A | Algorithms", view["2024-03-05T08:30:15.123Z"])
	assert.Equal(t, "Jan Schulz | TIF22B | Databases", view["2024-03-05T08:30:16.500Z"])
}
