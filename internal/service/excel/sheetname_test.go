package excel_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/service/excel"
)

func TestSanitizeSheetName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"102":                          "102",
		"  Central  ":                  "Central",
		"A/B:C":                        "A-B-C",
		`x\y?z*[1]`:                    "x-y-z--1-",
		"Depozit   Nord\tVest":         "Depozit Nord Vest",
		"":                             "Sheet",
		"   ":                          "Sheet",
		"'quoted'":                     "-quoted-",
		strings.Repeat("a", 40):        strings.Repeat("a", 31),
		strings.Repeat("ș", 35):        strings.Repeat("ș", 31),
		"Magazin " + strings.Repeat("x", 30): "Magazin " + strings.Repeat("x", 23),
	}
	for in, want := range cases {
		assert.Equal(t, want, excel.SanitizeSheetName(in), "input %q", in)
	}
}

func TestSanitizeSheetName_Total(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", " ", "'", "''", "[]", "::::", "a\n\nb", strings.Repeat("/", 50),
		strings.Repeat("ab cd ", 20), "日本語の倉庫名前がとても長い場合のテストケースです、はい",
		"Warehouse ' ", " ' x",
	}
	for _, in := range inputs {
		got := excel.SanitizeSheetName(in)
		require.NotEmpty(t, got, "input %q", in)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), excel.MaxSheetNameLen, "input %q", in)
		assert.False(t, strings.ContainsAny(got, `:\/?*[]`), "input %q -> %q", in, got)
		assert.False(t, strings.HasPrefix(got, "'") || strings.HasSuffix(got, "'"), "input %q -> %q", in, got)
		assert.Equal(t, got, excel.SanitizeSheetName(in), "deterministic")
	}
}

func TestUniqueSheetName_TruncationCollision(t *testing.T) {
	t.Parallel()

	prefix := strings.Repeat("A", 31)
	used := excel.NewSheetNames()

	first := excel.UniqueSheetName(prefix+"/DEF", used)
	second := excel.UniqueSheetName(prefix+":XYZ", used)

	assert.Equal(t, prefix, first)
	assert.Equal(t, strings.Repeat("A", 29)+"_1", second)
	assert.NotEqual(t, first, second)
}

func TestUniqueSheetName_SuffixSequence(t *testing.T) {
	t.Parallel()

	used := excel.NewSheetNames()
	got := []string{
		used.Claim("A/B"),
		used.Claim("A:B"),
		used.Claim("A?B"),
		used.Claim("a-b"),
	}
	assert.Equal(t, []string{"A-B", "A-B_1", "A-B_2", "a-b_3"}, got)
}

func TestUniqueSheetName_SuffixAlreadyTaken(t *testing.T) {
	t.Parallel()

	used := excel.NewSheetNames()
	assert.Equal(t, "X_1", used.Claim("X_1"))
	assert.Equal(t, "X", used.Claim("X"))
	assert.Equal(t, "X_2", used.Claim("X"))
}

func TestUniqueSheetName_PathologicalCollisions(t *testing.T) {
	t.Parallel()

	used := excel.NewSheetNames()
	seen := make(map[string]struct{})
	base := strings.Repeat("Z", 31)
	for i := 0; i < 1200; i++ {
		name := used.Claim(base + strings.Repeat("?", i%3))
		lower := strings.ToLower(name)
		_, dup := seen[lower]
		require.False(t, dup, "duplicate name %q at %d", name, i)
		seen[lower] = struct{}{}
		require.LessOrEqual(t, utf8.RuneCountInString(name), excel.MaxSheetNameLen)
	}
}

func TestSheetNames_UnicodeCaseFolding(t *testing.T) {
	used := excel.NewSheetNames()
	assert.Equal(t, "straße", used.Claim("straße"))
	assert.True(t, used.Has("STRASSE"))
	assert.True(t, used.Has("Straße"))

	assert.Equal(t, "s", used.Claim("s"))
	assert.True(t, used.Has("ſ"))
	assert.Equal(t, "ſ_1", used.Claim("ſ"))
	assert.False(t, used.Has("t"))
}
