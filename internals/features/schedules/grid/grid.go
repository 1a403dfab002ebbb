// Package grid turns weekly schedule slots into timetable placements: a
// column per weekday and row offsets measured in hours from the grid start.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Days is the teaching week, in column order.
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

const (
	// GridStartHour is the first row of the timetable.
	GridStartHour = 8
	// GridEndHour bounds the last slot end.
	GridEndHour = 18
)

// Placement locates one slot on the grid. Column is 1-based (monday=1),
// Offset is hours below the grid start, Extent the slot length in hours.
type Placement struct {
	Column int     `json:"column"`
	Offset float64 `json:"offset"`
	Extent float64 `json:"extent"`
}

// DayIndex returns the 0-based column of a lowercase english day name, or -1.
func DayIndex(day string) int {
	day = strings.ToLower(strings.TrimSpace(day))
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// ParseStart reads "HH:MM" into fractional hours.
func ParseStart(start string) (float64, error) {
	parts := strings.SplitN(strings.TrimSpace(start), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("bad start time %q", start)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("bad start time %q", start)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad start time %q", start)
	}
	return float64(h) + float64(m)/60, nil
}

// Place computes the grid placement of one slot.
func Place(day, start string, duration float64) (Placement, error) {
	col := DayIndex(day)
	if col < 0 {
		return Placement{}, fmt.Errorf("unknown day %q", day)
	}
	h, err := ParseStart(start)
	if err != nil {
		return Placement{}, err
	}
	if duration <= 0 {
		return Placement{}, fmt.Errorf("bad duration %v", duration)
	}
	return Placement{
		Column: col + 1,
		Offset: h - GridStartHour,
		Extent: duration,
	}, nil
}

// Perspective selects which link of a slot the viewer pivots on.
type Perspective string

const (
	PerspectiveClass   Perspective = "class"
	PerspectiveTeacher Perspective = "teacher"
	PerspectiveRoom    Perspective = "room"
)

// ParsePerspective validates the query value; class is the default.
func ParsePerspective(s string) (Perspective, bool) {
	switch Perspective(strings.ToLower(strings.TrimSpace(s))) {
	case "", PerspectiveClass:
		return PerspectiveClass, true
	case PerspectiveTeacher:
		return PerspectiveTeacher, true
	case PerspectiveRoom:
		return PerspectiveRoom, true
	}
	return "", false
}

// Visible reports whether a slot with the given link ids belongs on the grid
// for the selected perspective entity. No selection means an empty grid.
func Visible(p Perspective, selectedID int, classID, teacherID, roomID *int) bool {
	if selectedID == 0 {
		return false
	}
	var linked *int
	switch p {
	case PerspectiveClass:
		linked = classID
	case PerspectiveTeacher:
		linked = teacherID
	case PerspectiveRoom:
		linked = roomID
	default:
		return false
	}
	return linked != nil && *linked == selectedID
}

// palette cycles per-entity accent colors.
var palette = []string{"indigo", "pink", "emerald", "amber", "sky"}

// ColorFor assigns a stable accent color to an entity id.
func ColorFor(id int) string {
	if id < 0 {
		id = -id
	}
	return palette[id%len(palette)]
}
