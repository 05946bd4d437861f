package resumegen

import "regexp"

// Inline anchor scanning. This is the single place in the package where
// regular-expression matching happens; everything downstream works on
// typed run sequences.
//
// Matching is non-greedy per anchor, left-to-right, non-overlapping.
// Attribute order and extra attributes before href are ignored, and the
// quote characters around the URL may be single or double (the two are
// not required to match each other).
// Malformed or unterminated tags never match and stay literal text.
var (
	anchorPattern = regexp.MustCompile(`<a\s+[^>]*href=['"](.*?)['"][^>]*>(.*?)</a>`)
	stripPattern  = regexp.MustCompile(`<a\s+[^>]*>(.*?)</a>`)
)

// ToRuns splits text into an ordered sequence of plain and hyperlink
// runs, preserving original character order and all non-anchor text
// verbatim. Text with no anchors yields a single plain run.
func ToRuns(text string) []Run {
	matches := anchorPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Run{textRun(text)}
	}

	runs := make([]Run, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			runs = append(runs, textRun(text[last:start]))
		}
		url := text[m[2]:m[3]]
		label := text[m[4]:m[5]]
		runs = append(runs, linkRun(label, url))
		last = end
	}
	if last < len(text) {
		runs = append(runs, textRun(text[last:]))
	}
	return runs
}

// StripAnchors removes anchor markup from text, keeping only the inner
// label. Used where a value must appear in a non-hyperlink-capable
// context, such as a heading. Note the strip pattern is looser than the
// run pattern: it accepts anchors without an href attribute.
func StripAnchors(text string) string {
	return stripPattern.ReplaceAllString(text, "$1")
}
