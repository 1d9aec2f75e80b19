package ixml

import "testing"

func TestSkipStopsAtSentinel(t *testing.T) {
	data := []byte("abc\x00")
	p := skip(data, 0, tableName)
	if p != 3 {
		t.Fatalf("skip(tableName) = %d, want 3", p)
	}
}

func TestSkipEmptyRun(t *testing.T) {
	data := []byte(" \x00")
	p := skip(data, 0, tableName)
	if p != 0 {
		t.Fatalf("skip(tableName) on leading space = %d, want 0", p)
	}
}

func TestTableSpaceMembers(t *testing.T) {
	for _, b := range []byte{'\t', '\n', '\r', ' '} {
		if !tableSpace[b] {
			t.Errorf("tableSpace[%q] = false, want true", b)
		}
	}
	if tableSpace['a'] {
		t.Errorf("tableSpace['a'] = true, want false")
	}
}

func TestTableNameExcludesDelimiters(t *testing.T) {
	for _, b := range []byte{0, '\t', '\n', '\r', ' ', '/', '>', '?'} {
		if tableName[b] {
			t.Errorf("tableName[%q] = true, want false", b)
		}
	}
	if !tableName['x'] {
		t.Errorf("tableName['x'] = false, want true")
	}
}

func TestTableAttrValNoRefExcludesAmpersand(t *testing.T) {
	if tableAttrValNoRef1['&'] {
		t.Errorf("tableAttrValNoRef1['&'] = true, want false")
	}
	if !tableAttrVal1['&'] {
		t.Errorf("tableAttrVal1['&'] = false, want true")
	}
}

func TestDecimalValue(t *testing.T) {
	cases := map[byte]byte{'0': 0, '5': 5, '9': 9, 'a': 255, ';': 255}
	for in, want := range cases {
		if got := decimalValue(in); got != want {
			t.Errorf("decimalValue(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestHexValue(t *testing.T) {
	cases := map[byte]byte{'0': 0, '9': 9, 'a': 10, 'f': 15, 'A': 10, 'F': 15, 'g': 255}
	for in, want := range cases {
		if got := hexValue(in); got != want {
			t.Errorf("hexValue(%q) = %d, want %d", in, got, want)
		}
	}
}
