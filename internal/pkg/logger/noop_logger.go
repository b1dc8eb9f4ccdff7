package logger

// NoopLogger discards everything. Handy for tests and optional wiring.
type NoopLogger struct{}

func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(module, message string, details map[string]interface{}) {}

func (l *NoopLogger) Info(module, message string, details map[string]interface{}) {}

func (l *NoopLogger) Warn(module, message string, details map[string]interface{}) {}

func (l *NoopLogger) Error(module, message string, details map[string]interface{}) {}

func (l *NoopLogger) Sync() error { return nil }
