package ixml

// Flag configures Parser behavior. Flags combine with bitwise OR.
type Flag uint32

const (
	// None parses with no whitespace trimming, no normalization, no
	// entity decoding, and requires the closing tag to match the opening
	// tag byte-for-byte.
	None Flag = 0
	// TrimSpace strips leading and trailing whitespace from each text run.
	TrimSpace Flag = 1 << (iota - 1)
	// NormalizeSpace collapses internal whitespace runs in text to a
	// single ' '.
	NormalizeSpace
	// EntityTranslation decodes the five predefined entities and numeric
	// character references inside attribute values and text.
	EntityTranslation
	// ClosingTagValidate accepts any well-formed name in a closing tag
	// instead of requiring it to match the opening name.
	ClosingTagValidate
)

// Default matches the reference parser's default configuration.
const Default = TrimSpace | EntityTranslation

// Has reports whether all bits of other are set in f.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}
