package logs

// Span identifies a unit of work in log records and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey
