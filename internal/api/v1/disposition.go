package v1

import (
	"fmt"
	"strings"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/parser"
)

// contentDisposition builds an attachment header with an ASCII filename and
// the exact name as RFC 5987 filename*.
func contentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s",
		asciiFilename(filename), encodeExtValue(filename))
}

// asciiFilename folds diacritics and replaces what is left outside
// printable ASCII, plus quotes and backslashes, with "_".
func asciiFilename(name string) string {
	folded := parser.FoldDiacritics(name)
	var b strings.Builder
	for _, r := range folded {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('_')
		case r < 0x20 || r > 0x7e:
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}

func encodeExtValue(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
