package configs

// Configurable is implemented by typed config values.
// ConfigExpr returns the CUE path the value is read from.
type Configurable interface {
	ConfigExpr() string
}
