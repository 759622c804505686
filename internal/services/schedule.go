package services

import (
	"encoding/json"

	"github.com/google/uuid"
)

// TopPrivilegeLevel marks users who may modify any course calendar.
const TopPrivilegeLevel = 3

// Calendar maps an opaque time-slot key to the module id scheduled in
// that slot.
type Calendar map[string]string

// CalendarModified reports whether next changes or removes anything the
// current calendar already holds. Adding a brand-new slot is not a
// modification.
func CalendarModified(current, next Calendar) bool {
	for key, value := range next {
		if existing, ok := current[key]; ok && existing != value {
			return true
		}
	}
	for key := range current {
		if _, ok := next[key]; !ok {
			return true
		}
	}
	return false
}

// CanModifyCalendar is the authorization policy for calendar modifications:
// top-level privilege, or membership in the course's assigned staff.
// Pure additions never reach this check.
func CanModifyCalendar(actorID string, actorPrivilege int, assignedStaff []string) bool {
	if actorPrivilege == TopPrivilegeLevel {
		return true
	}
	for _, id := range assignedStaff {
		if id == actorID {
			return true
		}
	}
	return false
}

// FilterIDs drops entries that are not syntactically valid ids. Invalid
// references are silently discarded, never rejected.
func FilterIDs(ids []string) []string {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	return valid
}

// DecodeIDList reads a JSONB id array column, treating NULL or empty as an
// empty list.
func DecodeIDList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	ids := []string{}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return []string{}
	}
	return ids
}

// DecodeCalendar reads a JSONB calendar column, treating NULL or empty as an
// empty mapping.
func DecodeCalendar(raw []byte) Calendar {
	if len(raw) == 0 {
		return Calendar{}
	}
	cal := Calendar{}
	if err := json.Unmarshal(raw, &cal); err != nil {
		return Calendar{}
	}
	return cal
}

// DecodeSemesterLists reads the per-program semester module lists. The
// result always has exactly six entries.
func DecodeSemesterLists(raw []byte) [][]string {
	lists := [][]string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &lists)
	}
	for len(lists) < 6 {
		lists = append(lists, []string{})
	}
	return lists[:6]
}
