package models

import "time"

// User is a staff record. PrivilegeLevel ranges 1..3; level 3 may modify
// any course calendar.
type User struct {
	ID             string    `db:"id"`
	Username       string    `db:"username"`
	PasswordHash   string    `db:"password_hash"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	PrivilegeLevel int       `db:"privilege_level"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Module is a single teaching unit. AssignedStaff holds a JSON array of
// user ids; references are weak and never cascade-validated.
type Module struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	LectureHours  int       `db:"lecture_hours"`
	AssignedStaff []byte    `db:"assigned_staff"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// StudyProgram is a curriculum of modules split into exactly six semesters,
// plus the scheduling-window bounds a timetable for it must respect.
// SemesterModules holds a JSON array of six arrays of module ids.
type StudyProgram struct {
	ID                string    `db:"id"`
	Name              string    `db:"name"`
	SemesterModules   []byte    `db:"semester_modules"`
	EarliestHour      string    `db:"earliest_hour"`
	LatestHour        string    `db:"latest_hour"`
	MaxBlockMinutes   int       `db:"max_block_minutes"`
	LunchBreakMinutes int       `db:"lunch_break_minutes"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// Course is an offering of a program semester. Calendar holds a JSON object
// mapping a time-slot key to the module id scheduled in that slot.
type Course struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	ProgramID     string    `db:"program_id"`
	Semester      int       `db:"semester"`
	AssignedStaff []byte    `db:"assigned_staff"`
	Calendar      []byte    `db:"calendar"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// CalendarAuditEntry is one row of the append-only calendar audit trail.
type CalendarAuditEntry struct {
	ID          string    `db:"id"`
	LoggedAt    time.Time `db:"logged_at"`
	Actor       string    `db:"actor"`
	CourseLabel string    `db:"course_label"`
	ModuleLabel string    `db:"module_label"`
}

// ServerMetricSample is a persisted resource-usage snapshot shown on the
// admin dashboard.
type ServerMetricSample struct {
	ID                string    `db:"id"`
	CapturedAt        time.Time `db:"captured_at"`
	ProcessRSSBytes   int64     `db:"process_rss_bytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load"`
	SystemCpuLoad     float64   `db:"system_cpu_load"`
}
