package primary

// Logger is the structured logging port; implementations take alternating
// key/value pairs after the message.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
}
