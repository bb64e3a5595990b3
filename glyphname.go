package tegaki

import (
	"regexp"
	"strconv"
	"strings"
)

type codeRange struct{ lo, hi uint32 }

func inRanges(v uint32, ranges []codeRange) bool {
	for _, r := range ranges {
		if r.lo <= v && v <= r.hi {
			return true
		}
	}
	return false
}

var (
	// CJK unified ideographs, compatibility ideographs, radicals and strokes.
	kanjiRangesUCS = []codeRange{
		{0x3400, 0x4dbf},
		{0x4e00, 0x9fff},
		{0x20000, 0x2a6df},
		{0x2a700, 0x2b73f},
		{0x2b740, 0x2b81f},
		{0x2b820, 0x2ceaf},
		{0x2ceb0, 0x2ebef},
		{0x2ebf0, 0x2ee5f},
		{0x30000, 0x3134f},
		{0x31350, 0x323af},
		{0xf900, 0xfa6d},
		{0xfa70, 0xfad9},
		{0x2f800, 0x2fa1d},
		{0x2e80, 0x2eff},
		{0x2f00, 0x2fdf},
		{0x31c0, 0x31ef},
	}

	// Ideographic description characters.
	idcRangesUCS = []codeRange{
		{0x2ff0, 0x2fff},
		{0x31ef, 0x31ef},
	}

	// Adobe-Japan1 CIDs of kanji glyphs.
	kanjiRangesAJ1 = []codeRange{
		{656, 656},
		{1125, 7477},
		{7633, 7886},
		{7961, 8004},
		{8266, 8267},
		{8284, 8285},
		{8359, 8717},
		{13320, 15443},
		{16779, 20316},
		{21071, 23057},
	}

	ucsNameRe      = regexp.MustCompile(`^u([0-9a-f]{4,})(?:-|$)`)
	aj1NameRe      = regexp.MustCompile(`^aj1-(\d{5})(?:-|$)`)
	nonKanjiNameRe = regexp.MustCompile(`^parts-|^pinyin-|^koseki-9|^juki-([0-2][0-9a-f]|3[0-2]|ac|ff)`)
)

// IsTargetGlyphName reports whether the named glyph is a kanji-like glyph
// worth indexing. User glyphs (containing "_") and stroke order diagrams are
// excluded.
func IsTargetGlyphName(name string) bool {
	if strings.Contains(name, "_") || strings.HasPrefix(name, "hitsujun-") {
		return false
	}
	return isKanjiGlyphName(name)
}

func isKanjiGlyphName(name string) bool {
	if m := ucsNameRe.FindStringSubmatch(name); m != nil {
		cp, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			return false
		}
		if inRanges(uint32(cp), idcRangesUCS) && strings.Contains(name, "-") {
			return true
		}
		return inRanges(uint32(cp), kanjiRangesUCS)
	}

	if m := aj1NameRe.FindStringSubmatch(name); m != nil {
		cid, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			return false
		}
		return inRanges(uint32(cid), kanjiRangesAJ1)
	}

	return !nonKanjiNameRe.MatchString(name)
}
