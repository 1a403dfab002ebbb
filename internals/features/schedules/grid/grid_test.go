package grid

import "testing"

func TestPlace(t *testing.T) {
	tests := []struct {
		name     string
		day      string
		start    string
		duration float64
		want     Placement
		wantErr  bool
	}{
		{name: "monday at grid start", day: "monday", start: "08:00", duration: 1, want: Placement{Column: 1, Offset: 0, Extent: 1}},
		{name: "wednesday mid morning", day: "wednesday", start: "10:30", duration: 1.5, want: Placement{Column: 3, Offset: 2.5, Extent: 1.5}},
		{name: "saturday afternoon", day: "Saturday", start: "14:00", duration: 2, want: Placement{Column: 6, Offset: 6, Extent: 2}},
		{name: "sunday rejected", day: "sunday", start: "08:00", duration: 1, wantErr: true},
		{name: "bad time rejected", day: "monday", start: "8h00", duration: 1, wantErr: true},
		{name: "zero duration rejected", day: "monday", start: "08:00", duration: 0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Place(tt.day, tt.start, tt.duration)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Place() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Place() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseStart(t *testing.T) {
	if h, err := ParseStart("09:45"); err != nil || h != 9.75 {
		t.Errorf("ParseStart(09:45) = %v, %v", h, err)
	}
	for _, bad := range []string{"", "25:00", "10:61", "noon"} {
		if _, err := ParseStart(bad); err == nil {
			t.Errorf("ParseStart(%q) expected error", bad)
		}
	}
}

func TestVisible(t *testing.T) {
	three, seven := 3, 7

	if Visible(PerspectiveClass, 0, &three, nil, nil) {
		t.Error("no selection must hide every slot")
	}
	if !Visible(PerspectiveClass, 3, &three, &seven, nil) {
		t.Error("matching class link must be visible")
	}
	if Visible(PerspectiveClass, 7, &three, &seven, nil) {
		t.Error("mismatched class link must be hidden")
	}
	if !Visible(PerspectiveTeacher, 7, &three, &seven, nil) {
		t.Error("matching teacher link must be visible")
	}
	if Visible(PerspectiveRoom, 7, &three, &seven, nil) {
		t.Error("nil room link must be hidden")
	}
}

func TestParsePerspective(t *testing.T) {
	if p, ok := ParsePerspective(""); !ok || p != PerspectiveClass {
		t.Errorf("empty perspective should default to class, got %v %v", p, ok)
	}
	if p, ok := ParsePerspective("Teacher"); !ok || p != PerspectiveTeacher {
		t.Errorf("ParsePerspective(Teacher) = %v %v", p, ok)
	}
	if _, ok := ParsePerspective("student"); ok {
		t.Error("unknown perspective should be rejected")
	}
}

func TestColorFor(t *testing.T) {
	if ColorFor(0) != "indigo" || ColorFor(1) != "pink" || ColorFor(5) != "indigo" {
		t.Errorf("unexpected palette cycle: %s %s %s", ColorFor(0), ColorFor(1), ColorFor(5))
	}
	if ColorFor(12) != ColorFor(7) {
		t.Error("ids congruent mod palette size must share a color")
	}
}
