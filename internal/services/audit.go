package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/models"
)

// AppendAudit records one calendar-modifying action. Each action gets its
// own row, so entries logged within the same millisecond no longer clobber
// each other the way the old timestamp-keyed document did.
func AppendAudit(db *sqlx.DB, actor, courseLabel, moduleLabel string) error {
	_, err := db.Exec(`
INSERT INTO calendar_audit (id, logged_at, actor, course_label, module_label)
VALUES ($1,$2,$3,$4,$5)
`, uuid.NewString(), time.Now().UTC(), actor, courseLabel, moduleLabel)
	return WrapError(err, "append audit entry")
}

// ListAudit returns the full trail, oldest first. The trail grows unbounded
// and is never pruned.
func ListAudit(db *sqlx.DB) ([]models.CalendarAuditEntry, error) {
	entries := []models.CalendarAuditEntry{}
	err := db.Select(&entries, `
SELECT id, logged_at, actor, course_label, module_label
FROM calendar_audit
ORDER BY logged_at ASC, id ASC
`)
	return entries, WrapError(err, "list audit entries")
}

// AuditTimestamp renders the legacy wire key: ISO-8601 with millisecond
// precision, UTC.
func AuditTimestamp(at time.Time) string {
	return at.UTC().Format("2006-01-02T15:04:05.000Z")
}

// AuditDescription renders the legacy wire value.
func AuditDescription(e models.CalendarAuditEntry) string {
	return e.Actor + " | " + e.CourseLabel + " | " + e.ModuleLabel
}

// AuditTrailView renders the trail as the timestamp-keyed mapping the
// frontend consumes.
func AuditTrailView(entries []models.CalendarAuditEntry) map[string]string {
	view := make(map[string]string, len(entries))
	for _, entry := range entries {
		view[AuditTimestamp(entry.LoggedAt)] = AuditDescription(entry)
	}
	return view
}
