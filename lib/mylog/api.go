package mylog

import (
	"context"
	"os"
	"strings"
)

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

var severityRanks = map[Severity]int{
	SeverityDebug: 0,
	SeverityInfo:  1,
	SeverityWarn:  2,
	SeverityError: 3,
}

// New creates a logger for one component. The backend is chosen at init time.
var New func(name string) Logger

type Logger interface {
	Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any)
}

// minimumSeverity is read from LOG_LEVEL and defaults to INFO.
func minimumSeverity() Severity {
	level := Severity(strings.ToUpper(os.Getenv("LOG_LEVEL")))
	if _, known := severityRanks[level]; known {
		return level
	}
	return SeverityInfo
}

func (s Severity) enabled(minimum Severity) bool {
	return severityRanks[s] >= severityRanks[minimum]
}
