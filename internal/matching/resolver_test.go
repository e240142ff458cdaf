package matching

import "testing"

var testKeys = []string{
	"toyota corolla",
	"honda vezel",
	"ford mustang",
	"nissan rogue",
	"mercedes-benz c-class",
	"bmw 3 series",
	"audi a4",
	"tesla model 3",
}

func TestResolverExactAndFuzzy(t *testing.T) {
	r := NewResolver(testKeys)

	tests := []struct {
		query   string
		want    string
		wantHit bool
	}{
		{"toyota corolla", "toyota corolla", true},
		{"Toyota Corolla", "toyota corolla", true},
		{"toyota corola", "toyota corolla", true}, // one letter dropped
		{"hond vezel", "honda vezel", true},
		{"TESLA MODEL 3", "tesla model 3", true},
		{"zzz", "", false},
		{"yugo gv", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, hit := r.Resolve(tt.query)
		if hit != tt.wantHit || got != tt.want {
			t.Errorf("Resolve(%q) = (%q, %v); want (%q, %v)", tt.query, got, hit, tt.want, tt.wantHit)
		}
	}
}

func TestResolverDeterminism(t *testing.T) {
	r := NewResolver(testKeys)

	first, firstHit := r.Resolve("toyota corola")
	for i := 0; i < 50; i++ {
		got, hit := r.Resolve("toyota corola")
		if got != first || hit != firstHit {
			t.Fatalf("Resolve not deterministic: iteration %d got (%q, %v), want (%q, %v)", i, got, hit, first, firstHit)
		}
	}
}

func TestResolverTieKeepsFirstSeenKey(t *testing.T) {
	// Two keys equally similar to the query: the first-registered wins.
	r := NewResolver([]string{"car ab", "car ba"})

	got, hit := r.Resolve("car aa")
	if !hit {
		t.Fatal("expected a match")
	}
	if got != "car ab" {
		t.Errorf("tie broken to %q, want first-seen key %q", got, "car ab")
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"abc", "abc", 1.0},
		{"abc", "xyz", 0.0},
		{"abcd", "bcde", 0.75}, // 2*3/8
	}

	for _, tt := range tests {
		if got := Ratio(tt.a, tt.b); got != tt.want {
			t.Errorf("Ratio(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatioThresholdExamples(t *testing.T) {
	if got := Ratio("toyota corola", "toyota corolla"); got < MatchThreshold {
		t.Errorf("Ratio(toyota corola, toyota corolla) = %v; want >= %v", got, MatchThreshold)
	}
	if got := Ratio("zzz", "toyota corolla"); got >= MatchThreshold {
		t.Errorf("Ratio(zzz, toyota corolla) = %v; want < %v", got, MatchThreshold)
	}
}
