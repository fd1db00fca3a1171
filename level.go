package picolog

import (
	"fmt"
	"strings"
)

// Level is the ordered severity rank of a log message. Higher values are
// more severe. A subscriber receives a message when the message's level is
// at or above the subscriber's threshold.
type Level int

// Severity levels, strictly increasing. The ranks start at 100 so that the
// zero Level is never a valid rank.
//
// Always is the maximum rank. As a message severity it marks output that
// should never be filtered; as a subscriber threshold it admits nothing but
// Always messages.
const (
	Trace Level = iota + 100
	Debug
	Info
	Warning
	Error
	Critical
	Always
)

// String returns the fixed name of the level ("TRACE" through "ALWAYS"),
// or "UNKNOWN" for any value outside the enumerated set.
func (l Level) String() string {
	switch l {
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Critical:
		return "CRITICAL"
	case Always:
		return "ALWAYS"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name, case-insensitively, to its Level.
// It accepts exactly the names String returns.
func ParseLevel(name string) (Level, error) {
	for lv := Trace; lv <= Always; lv++ {
		if strings.EqualFold(name, lv.String()) {
			return lv, nil
		}
	}
	return 0, fmt.Errorf("picolog: unknown level %q", name)
}
