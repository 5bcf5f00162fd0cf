package i

// Logger is the levelled logger components report through.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
