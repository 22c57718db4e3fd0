package schedule

import "testing"

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", want: 1440},
		{in: "9:30", wantErr: true},
		{in: "9:3", wantErr: true},
		{in: "09.30", wantErr: true},
		{in: "24:01", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		got, err := MinutesOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestFormatMinutes_RoundTrips(t *testing.T) {
	for m := 0; m < 1440; m += 15 {
		back, err := MinutesOfDay(FormatMinutes(m))
		if err != nil {
			t.Fatalf("minute %d: %v", m, err)
		}
		if back != m {
			t.Errorf("minute %d round-tripped to %d", m, back)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd int
		want                           bool
	}{
		{name: "disjoint", aStart: 60, aEnd: 120, bStart: 180, bEnd: 240, want: false},
		{name: "touching end to start", aStart: 60, aEnd: 120, bStart: 120, bEnd: 180, want: false},
		{name: "touching start to end", aStart: 120, aEnd: 180, bStart: 60, bEnd: 120, want: false},
		{name: "partial", aStart: 60, aEnd: 150, bStart: 120, bEnd: 180, want: true},
		{name: "contained", aStart: 60, aEnd: 240, bStart: 120, bEnd: 180, want: true},
		{name: "identical", aStart: 60, aEnd: 120, bStart: 60, bEnd: 120, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
