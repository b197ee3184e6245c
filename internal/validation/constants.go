package validation

// Form precision
const (
	PriceDecimals      = 2
	MultiplierDecimals = 1
)

// User-facing field messages
const (
	MsgNameRequired   = "Item name cannot be empty."
	MsgRequired       = "This field is required"
	MsgGreaterThanFmt = "Must be greater than %s"
	MsgAtLeastFmt     = "Must be at least %s"
	MsgAtMostFmt      = "Must be at most %s"
	MsgMaxLengthFmt   = "Must be at most %s characters"
	MsgInvalidValue   = "Invalid value"
	MsgInvalidForm    = "Invalid item form"
)
