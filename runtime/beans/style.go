package beans

// Style classifies how a property is stored, read and written.
type Style int

const (
	// StyleReadWrite is a plain stored property with getter and setter.
	StyleReadWrite Style = iota
	// StyleReadWriteValidated is a stored property whose setter rejects nil.
	StyleReadWriteValidated
	// StyleFieldOnlyGet is a stored property read through the field directly;
	// only a setter is generated.
	StyleFieldOnlyGet
	// StyleOptionalWrapped is a stored pointer property whose getter wraps the
	// value in an Optional.
	StyleOptionalWrapped
	// StyleDerived is a read-only property computed from other state.
	StyleDerived
	// StyleCollection is a slice or map property whose setter replaces the
	// contents in place and rejects nil.
	StyleCollection
)

// String returns the marker spelling of the style.
func (s Style) String() string {
	switch s {
	case StyleReadWrite:
		return "readWrite"
	case StyleReadWriteValidated:
		return "readWriteValidated"
	case StyleFieldOnlyGet:
		return "fieldOnlyGet"
	case StyleOptionalWrapped:
		return "optionalWrapped"
	case StyleDerived:
		return "derived"
	case StyleCollection:
		return "collection"
	default:
		return "unknown"
	}
}
