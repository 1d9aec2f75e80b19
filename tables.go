package ixml

// Character-class tables (C1). Each table classifies every possible byte
// value 0-255 as a member or non-member of a set used by the scanner.
// They are built once at package init from the generating predicates in
// spec.md's character-class table rather than hand-transcribed as 256-line
// literals — the same kind of 256-entry lookup arrays the teacher writes by
// hand in runxml.go (though not the same exclusion sets), just generated
// instead of typed out, which keeps the 11 sets and their near-duplicate
// exclusion lists in sync with each other.
type byteTable [256]bool

func newExcludeTable(excluded ...byte) *byteTable {
	var t byteTable
	for i := range t {
		t[i] = true
	}
	for _, b := range excluded {
		t[b] = false
	}
	return &t
}

func newIncludeTable(included ...byte) *byteTable {
	var t byteTable
	for _, b := range included {
		t[b] = true
	}
	return &t
}

var (
	// tableSpace: \t \n \r ' '
	tableSpace = newIncludeTable('\t', '\n', '\r', ' ')
	// tableName: anything but \0 \t \n \r ' ' / > ?
	tableName = newExcludeTable(0, '\t', '\n', '\r', ' ', '/', '>', '?')
	// tableAttrName: anything but \0 \t \n \r ' ' ! / < = > ?
	tableAttrName = newExcludeTable(0, '\t', '\n', '\r', ' ', '!', '/', '<', '=', '>', '?')
	// tableAttrVal1: anything but \0 "
	tableAttrVal1 = newExcludeTable(0, '"')
	// tableAttrValNoRef1: anything but \0 " &
	tableAttrValNoRef1 = newExcludeTable(0, '"', '&')
	// tableAttrVal2: anything but \0 '
	tableAttrVal2 = newExcludeTable(0, '\'')
	// tableAttrValNoRef2: anything but \0 ' &
	tableAttrValNoRef2 = newExcludeTable(0, '\'', '&')
	// tableText: anything but \0 <
	tableText = newExcludeTable(0, '<')
	// tableTextNoSpace: anything but \0 \t \n \r ' ' <
	tableTextNoSpace = newExcludeTable(0, '\t', '\n', '\r', ' ', '<')
	// tableTextNoRef: anything but \0 & <
	tableTextNoRef = newExcludeTable(0, '&', '<')
	// tableTextNoSpaceRef: anything but \0 \t \n \r ' ' & <
	tableTextNoSpaceRef = newExcludeTable(0, '\t', '\n', '\r', ' ', '&', '<')
)

// decimalValue maps '0'..'9' to 0..9, else 255.
func decimalValue(b byte) byte {
	if b >= '0' && b <= '9' {
		return b - '0'
	}
	return 255
}

// hexValue maps '0'..'9'|'A'..'F'|'a'..'f' to 0..15, else 255.
func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return 255
	}
}

// skip advances p while table holds for *p, relying on the buffer being
// null-terminated: '\0' is excluded from every table, so the scan always
// stops at or before the sentinel without a bounds check on every byte.
func skip(data []byte, p int, t *byteTable) int {
	for t[data[p]] {
		p++
	}
	return p
}
