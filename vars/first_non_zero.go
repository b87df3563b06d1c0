package vars

// FirstNonZero returns the first value that is not the zero T.
// Callers list sources from most to least specific: flag, config, default.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
