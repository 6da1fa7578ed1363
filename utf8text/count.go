package utf8text

import "unicode/utf8"

func isASCII(b byte) bool { return b&0x80 == 0 }

// isCont reports whether b has the continuation layout 10xxxxxx.
func isCont(b byte) bool { return b&0xC0 == 0x80 }

// CountChars returns the character length of p.
//
// ASCII bytes count one each. A continuation-pattern byte counts one when it
// is the last byte of p or when the byte after it is not a continuation
// pattern. Lead bytes (11xxxxxx) count zero.
func CountChars(p []byte) int {
	n := 0
	for i, b := range p {
		switch {
		case isASCII(b):
			n++
		case isCont(b):
			if i == len(p)-1 || !isCont(p[i+1]) {
				n++
			}
		}
	}
	return n
}

// RuneCount returns the number of runes in t as decoded by unicode/utf8.
// It is reported next to Len for comparison and does not affect it.
func (t Text) RuneCount() int {
	return utf8.RuneCount(t.buf)
}
