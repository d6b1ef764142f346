package sanitizer

import (
	"path"
	"strings"
)

// Replacement is a single literal substitution applied by Name.
type Replacement struct {
	Old string
	New string
}

// nameReplacements is applied in order, each entry over the whole string.
// Order matters: "__" is rewritten before "+" and "°" introduce new underscores,
// so underscores produced by those two entries survive.
var nameReplacements = []Replacement{
	{"à", "a"},
	{"è", "e"},
	{"é", "e"},
	{"ì", "i"},
	{"ò", "o"},
	{"ù", "u"},
	{"'", "-"},
	{"?", "-"},
	{" ", "-"},
	{"__", "-"},
	{"&", "e"},
	{"%", "-per-cento-"},
	{"#", "-"},
	{"(", ""},
	{")", ""},
	{"/", "-"},
	{"+", "_"},
	{"°", "_"},
}

// Replacements returns a copy of the ordered substitution table used by Name.
func Replacements() []Replacement {
	out := make([]Replacement, len(nameReplacements))
	copy(out, nameReplacements)
	return out
}

// Name turns an arbitrary display name into a filesystem-safe slug.
//
// The input is trimmed and lower-cased, then every entry of the replacement
// table is applied in order with a literal, non-overlapping ReplaceAll. A final
// single pass rewrites "---" to "-". That last pass is not a general collapse:
// "a-------b" becomes "a---b", so Name is not idempotent on inputs with long
// hyphen runs or on "+"/"°" pairs that turn into "__".
//
// Characters outside the table, such as "!" or ".", are left untouched.
//
// Example:
//
//	sanitizer.Name("50% è bello") // "50-per-cento--e-bello"
func Name(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, r := range nameReplacements {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}
	return strings.ReplaceAll(s, "---", "-")
}

// BaseName removes any directory components and NUL bytes from a filename.
// Both "/" and "\" are treated as separators. Returns "unnamed" for empty
// names and special directory references.
//
// Example:
//
//	sanitizer.BaseName("../../../etc/passwd")    // "passwd"
//	sanitizer.BaseName("C:\\Windows\\file.txt") // "file.txt"
func BaseName(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = strings.ReplaceAll(filename, "\x00", "")
	filename = path.Base(filename)

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		return "unnamed"
	}

	return filename
}
