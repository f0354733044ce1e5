package mylog

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

const wideEventMessage = "wide_event"

// WideEventLogger writes exactly one structured line per handled request, carrying
// everything that was learned while handling it.
type WideEventLogger struct {
	logger *zap.Logger
}

func NewWideEventLogger(logger *zap.Logger) *WideEventLogger {
	return &WideEventLogger{
		logger: logger,
	}
}

func NewProductionWideEventLogger() (*WideEventLogger, func(), error) {
	config := zap.NewProductionConfig()
	config.Sampling = nil
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.OutputPaths = []string{"stdout"}

	logger, err := config.Build()
	if err != nil {
		return nil, func() {}, err
	}

	return NewWideEventLogger(logger), func() {
		_ = logger.Sync()
	}, nil
}

func (l *WideEventLogger) Start(path string, method string, startedAt time.Time) *WideEvent {
	return &WideEvent{
		logger:    l.logger,
		startedAt: startedAt,
		fields: map[string]any{
			"path":      path,
			"method":    method,
			"timestamp": startedAt.UTC().Format(time.RFC3339Nano),
		},
	}
}

type WideEvent struct {
	sync.Mutex
	logger    *zap.Logger
	startedAt time.Time
	fields    map[string]any
	emitted   bool
}

func (e *WideEvent) Set(key string, value any) {
	e.Lock()
	defer e.Unlock()

	e.fields[key] = value
}

func (e *WideEvent) Get(key string) (any, bool) {
	e.Lock()
	defer e.Unlock()

	value, found := e.fields[key]
	return value, found
}

// Emit writes the line; only the first call has effect.
func (e *WideEvent) Emit(now time.Time) {
	e.Lock()
	defer e.Unlock()

	if e.emitted {
		return
	}
	e.emitted = true

	e.fields["duration_ms"] = now.Sub(e.startedAt).Milliseconds()

	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, e.fields[k]))
	}

	e.logger.Info(wideEventMessage, fields...)
}
