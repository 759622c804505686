package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCalendarModified(t *testing.T) {
	tests := []struct {
		name    string
		current Calendar
		next    Calendar
		want    bool
	}{
		{
			name:    "both empty",
			current: Calendar{},
			next:    Calendar{},
			want:    false,
		},
		{
			name:    "pure addition to empty calendar",
			current: Calendar{},
			next:    Calendar{"Mon-08": "mod-1"},
			want:    false,
		},
		{
			name:    "pure addition alongside unchanged entries",
			current: Calendar{"Mon-08": "mod-1"},
			next:    Calendar{"Mon-08": "mod-1", "Tue-10": "mod-2"},
			want:    false,
		},
		{
			name:    "identical calendars",
			current: Calendar{"Mon-08": "mod-1", "Tue-10": "mod-2"},
			next:    Calendar{"Mon-08": "mod-1", "Tue-10": "mod-2"},
			want:    false,
		},
		{
			name:    "existing slot reassigned",
			current: Calendar{"Mon-08": "mod-1"},
			next:    Calendar{"Mon-08": "mod-2"},
			want:    true,
		},
		{
			name:    "slot removed",
			current: Calendar{"Mon-08": "mod-1", "Tue-10": "mod-2"},
			next:    Calendar{"Mon-08": "mod-1"},
			want:    true,
		},
		{
			name:    "everything removed",
			current: Calendar{"Mon-08": "mod-1"},
			next:    Calendar{},
			want:    true,
		},
		{
			name:    "addition combined with a change",
			current: Calendar{"Mon-08": "mod-1"},
			next:    Calendar{"Mon-08": "mod-2", "Tue-10": "mod-3"},
			want:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalendarModified(tt.current, tt.next))
		})
	}
}

func TestCanModifyCalendar(t *testing.T) {
	actor := uuid.NewString()
	other := uuid.NewString()

	tests := []struct {
		name      string
		privilege int
		assigned  []string
		want      bool
	}{
		{"top privilege always allowed", TopPrivilegeLevel, nil, true},
		{"assigned staff allowed", 1, []string{other, actor}, true},
		{"unassigned low privilege denied", 1, []string{other}, false},
		{"unassigned mid privilege denied", 2, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyCalendar(actor, tt.privilege, tt.assigned))
		})
	}
}

func TestFilterIDs(t *testing.T) {
	valid1 := uuid.NewString()
	valid2 := uuid.NewString()

	got := FilterIDs([]string{valid1, "not-an-id", "", valid2, "1234"})
	assert.Equal(t, []string{valid1, valid2}, got)

	assert.Empty(t, FilterIDs(nil))
	assert.Empty(t, FilterIDs([]string{"garbage"}))
}

func TestDecodeIDList(t *testing.T) {
	assert.Equal(t, []string{}, DecodeIDList(nil))
	assert.Equal(t, []string{}, DecodeIDList([]byte(`not json`)))
	assert.Equal(t, []string{"a", "b"}, DecodeIDList([]byte(`["a","b"]`)))
}

func TestDecodeCalendar(t *testing.T) {
	assert.Equal(t, Calendar{}, DecodeCalendar(nil))
	assert.Equal(t, Calendar{}, DecodeCalendar([]byte(`broken`)))
	assert.Equal(t, Calendar{"Mon-08": "mod-1"}, DecodeCalendar([]byte(`{"Mon-08":"mod-1"}`)))
}

func TestDecodeSemesterLists(t *testing.T) {
	lists := DecodeSemesterLists(nil)
	assert.Len(t, lists, 6)
	for _, list := range lists {
		assert.Empty(t, list)
	}

	lists = DecodeSemesterLists([]byte(`[["a"],["b","c"]]`))
	assert.Len(t, lists, 6)
	assert.Equal(t, []string{"a"}, lists[0])
	assert.Equal(t, []string{"b", "c"}, lists[1])
	assert.Empty(t, lists[2])

	lists = DecodeSemesterLists([]byte(`[[],[],[],[],[],[],["extra"]]`))
	assert.Len(t, lists, 6)
}
