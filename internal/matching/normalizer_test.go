package matching

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Toyota Corolla", "toyota corolla"},
		{"  Tóyota   Corólla  ", "toyota corolla"},
		{"MERCEDES-BENZ C-CLASS", "mercedes-benz c-class"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"toyota corolla", "Toyota corolla"},
		{"Yugo GV", "Yugo gv"},
		{"  bmw 3 series ", "Bmw 3 series"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
