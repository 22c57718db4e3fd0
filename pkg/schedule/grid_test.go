package schedule

import "testing"

func TestBuildGrid_SlotCount(t *testing.T) {
	tests := []struct {
		name        string
		startHour   int
		endHour     int
		granularity int
		wantSlots   int
	}{
		{
			name:        "full business day half hour slots",
			startHour:   8,
			endHour:     22,
			granularity: 30,
			wantSlots:   29,
		},
		{
			name:        "standard office hours",
			startHour:   9,
			endHour:     17,
			granularity: 30,
			wantSlots:   17,
		},
		{
			name:        "single hour",
			startHour:   9,
			endHour:     10,
			granularity: 30,
			wantSlots:   3,
		},
		{
			name:        "quarter hour granularity",
			startHour:   9,
			endHour:     12,
			granularity: 15,
			wantSlots:   13,
		},
		{
			name:        "hourly granularity",
			startHour:   0,
			endHour:     24,
			granularity: 60,
			wantSlots:   25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := BuildGrid(tt.startHour, tt.endHour, tt.granularity)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want := (tt.endHour-tt.startHour)*60/tt.granularity + 1
			if want != tt.wantSlots {
				t.Fatalf("test fixture is inconsistent: formula gives %d, fixture says %d", want, tt.wantSlots)
			}
			if len(slots) != tt.wantSlots {
				t.Errorf("expected %d slots, got %d", tt.wantSlots, len(slots))
			}

			first := slots[0]
			if first.Hour != tt.startHour || first.Minute != 0 || !first.IsHour {
				t.Errorf("unexpected first slot: %+v", first)
			}

			last := slots[len(slots)-1]
			if last.Hour != tt.endHour || last.Minute != 0 {
				t.Errorf("expected closing boundary slot %02d:00, got %+v", tt.endHour, last)
			}
			if !last.IsHour {
				t.Errorf("closing boundary slot must have IsHour=true, got %+v", last)
			}
		})
	}
}

func TestBuildGrid_SlotShape(t *testing.T) {
	slots, err := BuildGrid(8, 22, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, slot := range slots {
		wantMin := 8*60 + i*30
		if slot.Hour != wantMin/60 || slot.Minute != wantMin%60 {
			t.Errorf("slot %d: expected %02d:%02d, got %02d:%02d", i, wantMin/60, wantMin%60, slot.Hour, slot.Minute)
		}
		if slot.IsHour != (slot.Minute == 0) {
			t.Errorf("slot %d: IsHour flag does not match minute %d", i, slot.Minute)
		}
		if slot.Label != FormatMinutes(wantMin) {
			t.Errorf("slot %d: expected label %s, got %s", i, FormatMinutes(wantMin), slot.Label)
		}
	}
}

func TestBuildGrid_Deterministic(t *testing.T) {
	a, err := BuildGrid(9, 18, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BuildGrid(9, 18, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("slot %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestBuildGrid_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		startHour   int
		endHour     int
		granularity int
	}{
		{name: "start after end", startHour: 18, endHour: 9, granularity: 30},
		{name: "start equals end", startHour: 9, endHour: 9, granularity: 30},
		{name: "negative start", startHour: -1, endHour: 9, granularity: 30},
		{name: "end past midnight", startHour: 9, endHour: 25, granularity: 30},
		{name: "zero granularity", startHour: 9, endHour: 18, granularity: 0},
		{name: "granularity not dividing 60", startHour: 9, endHour: 18, granularity: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildGrid(tt.startHour, tt.endHour, tt.granularity); err == nil {
				t.Errorf("expected error for (%d, %d, %d)", tt.startHour, tt.endHour, tt.granularity)
			}
		})
	}
}
