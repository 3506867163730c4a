// Package hostile defines the "hostile byte" set S shared by the image
// preparer (spec.md §4.C step 4, IHDR sanitization) and the script builder
// (spec.md §4.F step 3, iCCP length-byte sanitization): bytes whose
// character, read by a Bourne shell as part of the file's preamble, opens
// unterminated quoting, introduces a redirection, or terminates parsing
// before the real extraction script begins.
package hostile

// Set is the 7-byte hostile set: " ' ( ) ; > `
var Set = map[byte]bool{
	0x22: true, // "
	0x27: true, // '
	0x28: true, // (
	0x29: true, // )
	0x3B: true, // ;
	0x3E: true, // >
	0x60: true, // `
}

// Contains reports whether any byte in buf is in Set.
func Contains(buf []byte) bool {
	for _, b := range buf {
		if Set[b] {
			return true
		}
	}
	return false
}

// FirstHostile reports whether b is a hostile byte.
func FirstHostile(b byte) bool { return Set[b] }
