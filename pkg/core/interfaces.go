package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything, handy for tests and quiet renders
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}
