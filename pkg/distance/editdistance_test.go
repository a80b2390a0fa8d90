package distance

import "testing"

func TestDistanceBasics(t *testing.T) {
	cases := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"ca", "abc", 2},
		{"book", "books", 1},
		{"book", "back", 2},
	}

	for _, tc := range cases {
		t.Run(tc.a+"->"+tc.b, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); got != tc.expected {
				t.Errorf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestDistanceTransposition(t *testing.T) {
	// "ca" -> "ac" is a single adjacent transposition under true DL.
	if got := Distance("ca", "ac"); got != 1 {
		t.Errorf("Distance(ca, ac) = %d, want 1", got)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{{"kitten", "sitting"}, {"book", "back"}, {"", "x"}, {"same", "same"}}
	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Errorf("Distance(%q, %q) != Distance(%q, %q)", p[0], p[1], p[1], p[0])
		}
	}
}

func TestDistanceIdentity(t *testing.T) {
	words := []string{"", "a", "hello", "transposition"}
	for _, w := range words {
		if got := Distance(w, w); got != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", w, w, got)
		}
	}
}

func TestDistanceWildcard(t *testing.T) {
	cases := []struct {
		a, b     string
		expected int
	}{
		{"c*t", "cat", 0},
		{"c*t", "dog", 3},
		{"*", "x", 0},
		{"**", "xy", 0},
	}

	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.expected {
			t.Errorf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.expected)
		}
	}
}
