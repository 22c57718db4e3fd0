package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Haircut", want: "Haircut"},
		{name: "surrounding whitespace", in: "  Haircut  ", want: "Haircut"},
		{name: "internal runs collapse", in: "Deep   Tissue\tMassage", want: "Deep Tissue Massage"},
		{name: "newlines collapse", in: "line\none", want: "line one"},
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: "   \t\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already E164", in: "+972541234567", want: "+972541234567"},
		{name: "israeli local format", in: "054-123-4567", want: "+972541234567"},
		{name: "whitespace trimmed", in: " +972541234567 ", want: "+972541234567"},
		{name: "empty", in: "", want: ""},
		{name: "unparseable kept for validation", in: "not-a-phone", want: "not-a-phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
