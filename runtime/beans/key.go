package beans

import "unicode/utf16"

// DispatchKey returns the 32-bit dispatch key of a property name. The key is
// the classic polynomial string hash (h = 31*h + c over UTF-16 code units),
// so keys are stable across processes and platforms. Distinct names may share
// a key ("Aa" and "BB" do); lookups always confirm the name after the key.
func DispatchKey(name string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = 31*h + int32(c)
	}
	return h
}
