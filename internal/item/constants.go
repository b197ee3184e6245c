package item

// Output layout
const (
	// IndentString matches the four-space indent of files written by earlier versions
	IndentString = "    "

	// PriceDecimals is the fixed number of decimals written for prices
	PriceDecimals = 2

	// FilePermission is applied to exported files
	FilePermission = 0o644

	// DirPermission is applied to directories created under the catalog directory
	DirPermission = 0o755
)

// Error messages
const (
	ErrMsgNotArray        = "top-level JSON value is not an array"
	ErrFmtNotObject       = "item %d is not an object: %w"
	ErrFmtBadRecord       = "item %d: %v: %w"
	ErrMsgInvalidNumber   = "not a finite number"
	ErrMsgNegativePrice   = "price must not be negative"
	ErrMsgNegativeQty     = "quantity must not be negative"
	ErrMsgNonPositiveMult = "buy_multiplier must be greater than 0"
	ErrFmtReadFile        = "%w: read %s: %w"
	ErrFmtWriteFile       = "%w: write %s: %w"
	ErrFmtEncode          = "failed to encode items: %w"
	ErrFmtPathOutsideDir  = "%w: %q must be a relative path inside the catalog directory"
)

// Log messages
const (
	LogMsgImported = "Items imported"
	LogMsgExported = "Items exported"
)
