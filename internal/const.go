package internal

// regexp pattern
const (
	NameRegex = `^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`
	CodeRegex = `^[0-9]+$`
)
