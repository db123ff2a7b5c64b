package validator

// Default codes reported by the built-in rules. Callers usually override
// them with Rule.WithError to expose domain specific codes.
const (
	CodeRequired     = 1
	CodeInvalidValue = 2
	CodeInvalidDate  = 4
)
