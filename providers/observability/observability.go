package observability

// Logger provides structured, levelled logging for the parsing pipeline.
// Parsing itself is pure and synchronous, so the interface is deliberately
// small: no tracing, no context plumbing, just levelled events with
// attributes. A nil-safe no-op implementation is available via [Nop].
type Logger interface {
	Debug(msg string, attrs ...Attribute)
	Info(msg string, attrs ...Attribute)
	Warn(msg string, attrs ...Attribute)
	Error(msg string, attrs ...Attribute)
}

// Attribute represents a key-value pair for metadata
type Attribute struct {
	Key   string
	Value interface{}
}

// String creates a string attribute
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an error attribute
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: "error", Value: ""}
	}
	return Attribute{Key: "error", Value: err.Error()}
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(string, ...Attribute) {}
func (nopLogger) Info(string, ...Attribute)  {}
func (nopLogger) Warn(string, ...Attribute)  {}
func (nopLogger) Error(string, ...Attribute) {}
