package booking

import (
	"testing"
	"time"
)

func TestNewWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantErr   string
		wantStart int
		wantEnd   int
	}{
		{name: "valid", start: "10:00", end: "11:00", wantStart: 600, wantEnd: 660},
		{name: "midnight start", start: "00:00", end: "00:30", wantStart: 0, wantEnd: 30},
		{name: "end before start", start: "11:00", end: "10:00", wantErr: "invalid_time_order"},
		{name: "zero length", start: "10:00", end: "10:00", wantErr: "invalid_time_order"},
		{name: "garbage start", start: "ten", end: "11:00", wantErr: "invalid_time"},
		{name: "garbage end", start: "10:00", end: "25:99", wantErr: "invalid_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWindow(tt.start, tt.end)
			if tt.wantErr != "" {
				if !hasCode(err, tt.wantErr) {
					t.Fatalf("got err %v, want code %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w.Start != tt.wantStart || w.End != tt.wantEnd {
				t.Fatalf("got %+v, want [%d, %d)", w, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestWindowOverlaps(t *testing.T) {
	base := Window{Start: 600, End: 660} // 10:00-11:00

	tests := []struct {
		name  string
		other Window
		want  bool
	}{
		{name: "identical", other: Window{600, 660}, want: true},
		{name: "contained", other: Window{615, 645}, want: true},
		{name: "partial left", other: Window{570, 630}, want: true},
		{name: "partial right", other: Window{630, 690}, want: true},
		{name: "touching before", other: Window{540, 600}, want: false},
		{name: "touching after", other: Window{660, 720}, want: false},
		{name: "disjoint", other: Window{720, 780}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Fatalf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Fatalf("reverse Overlaps(%+v) = %v, want %v", base, got, tt.want)
			}
		})
	}
}

func TestWindowClockRoundTrip(t *testing.T) {
	w, err := NewWindow("09:05", "18:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.StartClock() != "09:05" || w.EndClock() != "18:30" {
		t.Fatalf("got %s-%s, want 09:05-18:30", w.StartClock(), w.EndClock())
	}
}

func TestInPast(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) // Tuesday noon
	w := Window{Start: 600, End: 660}                    // 10:00-11:00

	tests := []struct {
		name string
		date time.Time
		win  Window
		want bool
	}{
		{name: "yesterday", date: now.AddDate(0, 0, -1), win: w, want: true},
		{name: "tomorrow", date: now.AddDate(0, 0, 1), win: w, want: false},
		{name: "today earlier", date: now, win: w, want: true},
		{name: "today later", date: now, win: Window{Start: 840, End: 900}, want: false},
		{name: "today exactly now", date: now, win: Window{Start: 720, End: 780}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InPast(tt.date, tt.win, now); got != tt.want {
				t.Fatalf("InPast = %v, want %v", got, tt.want)
			}
		})
	}
}
