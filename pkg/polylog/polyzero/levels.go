package polyzero

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/ojo-network/contractMonitor/pkg/polylog"
)

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in
	// production.
	DebugLevel = Level(iota)
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual
	// human review.
	WarnLevel
	// ErrorLevel logs are high-priority. A healthy gateway should only emit
	// them for failed queries.
	ErrorLevel
)

var _ polylog.Level = Level(0)

// Level implements the polylog.Level interface for zerolog levels.
type Level int

// Levels is a convenience function to return all supported levels.
func Levels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
	}
}

// ParseLevel maps a level name (case-insensitive) to a Level. Unknown names
// fall back to InfoLevel.
func ParseLevel(name string) Level {
	for _, lvl := range Levels() {
		if strings.EqualFold(lvl.String(), name) {
			return lvl
		}
	}
	return InfoLevel
}

// String implements polylog.Level#String().
func (lvl Level) String() string {
	return zerolog.Level(lvl).String()
}

// Int implements polylog.Level#Int().
func (lvl Level) Int() int {
	return int(lvl)
}
