package excel

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	// MaxSheetNameLen spreadsheet limit on sheet name length, in characters
	MaxSheetNameLen = 31
	// FallbackSheetName used when sanitizing leaves nothing
	FallbackSheetName = "Sheet"
)

// Invalid in sheet names: : \ / ? * [ ]
var sheetNameReplacer = strings.NewReplacer(
	":", "-",
	`\`, "-",
	"/", "-",
	"?", "-",
	"*", "-",
	"[", "-",
	"]", "-",
)

// SanitizeSheetName turns a warehouse key into a valid sheet name:
// trim, replace forbidden characters with "-", collapse whitespace,
// truncate to 31 characters. A leading or trailing apostrophe is also
// replaced since workbooks reject it.
func SanitizeSheetName(name string) string {
	s := strings.TrimSpace(name)
	s = sheetNameReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	s = truncateRunes(s, MaxSheetNameLen)
	s = replaceEdgeApostrophes(s)
	if s == "" {
		return FallbackSheetName
	}
	return s
}

// SheetNames names already used in one workbook. Comparison uses Unicode
// case folding, so "s" and "ſ" or "σ" and "ς" count as the same name, as they
// do when the workbook looks a sheet up.
// Create one per workbook with NewSheetNames.
type SheetNames map[string]struct{}

// NewSheetNames returns an empty accumulator.
func NewSheetNames() SheetNames {
	return make(SheetNames)
}

// Has reports whether name is taken.
func (s SheetNames) Has(name string) bool {
	_, ok := s[foldSheetName(name)]
	return ok
}

// Claim sanitizes key, appends _1, _2, ... until the result is free, records it and returns it.
func (s SheetNames) Claim(key string) string {
	base := SanitizeSheetName(key)
	name := base
	for i := 1; s.Has(name); i++ {
		suffix := "_" + strconv.Itoa(i)
		name = truncateRunes(base, MaxSheetNameLen-utf8.RuneCountInString(suffix)) + suffix
	}
	s[foldSheetName(name)] = struct{}{}
	return name
}

// UniqueSheetName is Claim in function form: used is updated in place.
func UniqueSheetName(key string, used SheetNames) string {
	return used.Claim(key)
}

// foldSheetName full case folding; it equates at least every pair that
// strings.EqualFold does.
func foldSheetName(name string) string {
	return cases.Fold().String(name)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

func replaceEdgeApostrophes(s string) string {
	if strings.HasPrefix(s, "'") {
		s = "-" + s[1:]
	}
	if strings.HasSuffix(s, "'") {
		s = s[:len(s)-1] + "-"
	}
	return s
}
