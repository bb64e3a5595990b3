package tegaki

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphName_IsTarget(t *testing.T) {
	cases := map[string]bool{
		"u4e00":             true,
		"u4e00-j":           true,
		"u4e00-var-001":     true,
		"u3400":             true,
		"u20000":            true,
		"u2f00":             true,
		"uf900":             true,
		"u0041":             false,
		"u3042":             false,
		"u2ff0":             false,
		"u2ff0-u4e00-u4e8c": true,
		"u31ef":             true,
		"aj1-01125":         true,
		"aj1-00656":         true,
		"aj1-00001":         false,
		"aj1-20317":         false,
		"parts-01":          false,
		"pinyin-a1":         false,
		"koseki-000010":     true,
		"koseki-900010":     false,
		"juki-a1b2":         true,
		"juki-0123":         false,
		"juki-ac01":         false,
		"irg2015-00001":     true,
		"someone_u4e00":     false,
		"hitsujun-u4e00":    false,
	}

	for name, want := range cases {
		assert.Equalf(t, want, IsTargetGlyphName(name), "glyph name %q", name)
	}
}
