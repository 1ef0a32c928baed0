package rope

import "testing"

func TestLimitsValid(t *testing.T) {
	cases := []struct {
		name  string
		l     Limits
		valid bool
	}{
		{"defaults", DefaultLimits(), true},
		{"equality boundary", Limits{Min: 4, Max: 8}, true},
		{"max below twice min", Limits{Min: 4, Max: 7}, false},
		{"zero min", Limits{Min: 0, Max: 8}, false},
		{"negative min", Limits{Min: -1, Max: 8}, false},
	}
	for _, c := range cases {
		if got := c.l.Valid(); got != c.valid {
			t.Errorf("%s: Limits%+v.Valid() = %v, want %v", c.name, c.l, got, c.valid)
		}
	}
}
