package picolog

import "testing"

var allLevels = []Level{Trace, Debug, Info, Warning, Error, Critical, Always}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Trace, "TRACE"},
		{Debug, "DEBUG"},
		{Info, "INFO"},
		{Warning, "WARNING"},
		{Error, "ERROR"},
		{Critical, "CRITICAL"},
		{Always, "ALWAYS"},
		{Level(0), "UNKNOWN"},
		{Level(99), "UNKNOWN"},
		{Always + 1, "UNKNOWN"},
		{Level(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	for i := 1; i < len(allLevels); i++ {
		if allLevels[i-1] >= allLevels[i] {
			t.Errorf("%s (%d) should rank strictly below %s (%d)",
				allLevels[i-1], int(allLevels[i-1]), allLevels[i], int(allLevels[i]))
		}
	}

	if Always != allLevels[len(allLevels)-1] {
		t.Error("Always must be the maximum rank")
	}
}

func TestParseLevel(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		for _, lv := range allLevels {
			got, err := ParseLevel(lv.String())
			if err != nil {
				t.Fatalf("ParseLevel(%q) failed: %v", lv.String(), err)
			}
			if got != lv {
				t.Errorf("ParseLevel(%q) = %v, want %v", lv.String(), got, lv)
			}
		}
	})

	t.Run("Case insensitive", func(t *testing.T) {
		got, err := ParseLevel("warning")
		if err != nil {
			t.Fatalf("ParseLevel(\"warning\") failed: %v", err)
		}
		if got != Warning {
			t.Errorf("ParseLevel(\"warning\") = %v, want Warning", got)
		}
	})

	t.Run("Unknown name", func(t *testing.T) {
		if _, err := ParseLevel("VERBOSE"); err == nil {
			t.Error("ParseLevel(\"VERBOSE\") should fail")
		}
		if _, err := ParseLevel("UNKNOWN"); err == nil {
			t.Error("ParseLevel(\"UNKNOWN\") should fail; it is a sentinel, not a level")
		}
	})
}
