// Package highlight classifies Turtle text into styled spans.
//
// Classification is driven by an ordered table of (pattern, capture
// group, tag) rules. Rules are evaluated independently over the scan
// region; overlapping spans from different rules are allowed, and the
// host decides how to resolve them.
package highlight

import (
	"regexp"
	"sort"
	"strings"

	"github.com/riverfjs/turtlemode-go/internal/types"
)

// rule binds one capture group of a pattern to a style tag. Group 0
// tags the whole match.
type rule struct {
	re     *regexp.Regexp
	groups []groupTag
}

type groupTag struct {
	group int
	tag   types.StyleTag
}

// longQuote is the delimiter of a multi-line string literal.
const longQuote = `"""`

// rules is evaluated in order; first-match wins per rule, not globally.
var rules = []rule{
	// @prefix keyword and the namespace prefix it declares.
	{regexp.MustCompile(`(@prefix)\s+([A-Za-z0-9_.-]*:)`), []groupTag{
		{1, types.TagDirective},
		{2, types.TagNamespace},
	}},
	// @base keyword.
	{regexp.MustCompile(`(@base)\s`), []groupTag{
		{1, types.TagDirective},
	}},
	// Triple-quoted string, possibly spanning lines. Evaluated before
	// the single-line string rule so the host can prefer the wider span.
	{regexp.MustCompile(`(?s)""".*?"""`), []groupTag{
		{0, types.TagLongString},
	}},
	// Single-line quoted string.
	{regexp.MustCompile(`"[^"\n]*"`), []groupTag{
		{0, types.TagString},
	}},
	// Typed literal with a full IRI datatype.
	{regexp.MustCompile(`"[^"\n]*"\^\^(<[^<>\s]*>)`), []groupTag{
		{1, types.TagDatatypeIRI},
	}},
	// Typed literal with a prefixed-name datatype.
	{regexp.MustCompile(`"[^"\n]*"\^\^([A-Za-z0-9_.-]*:[A-Za-z0-9_.-]+)`), []groupTag{
		{1, types.TagDatatypeName},
	}},
	// IRI reference.
	{regexp.MustCompile(`<[^<>\s]*>`), []groupTag{
		{0, types.TagIRI},
	}},
	// Blank-node label.
	{regexp.MustCompile(`_:[A-Za-z0-9_.-]+`), []groupTag{
		{0, types.TagBlankNode},
	}},
	// Prefixed name.
	{regexp.MustCompile(`(?:^|[\s\[(,;])([A-Za-z][A-Za-z0-9_.-]*:[A-Za-z0-9_.-]*)`), []groupTag{
		{1, types.TagPrefixedName},
	}},
}

// isPunct reports whether b is a single-character grammar token.
func isPunct(b byte) bool {
	switch b {
	case 'a', '[', ']', ',', ';', '.':
		return true
	}
	return false
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// punctuationSpans finds the whitespace-delimited one-character grammar
// tokens. A plain byte scan instead of a table rule: adjacent tokens
// share their separating whitespace, which a single regexp pass over
// non-overlapping matches would miss.
func punctuationSpans(text string) []types.StyleSpan {
	var spans []types.StyleSpan
	for i := 0; i < len(text); i++ {
		if !isPunct(text[i]) {
			continue
		}
		if i > 0 && !isSpaceByte(text[i-1]) {
			continue
		}
		if i+1 < len(text) && !isSpaceByte(text[i+1]) {
			continue
		}
		spans = append(spans, types.StyleSpan{Start: i, End: i + 1, Tag: types.TagPunctuation})
	}
	return spans
}

// Classify 对文本区域运行规则表，返回按起点排序的样式区间
//
// 每条规则独立扫描整个区域；不同规则的区间允许重叠。所有输入都会
// 得到一个（可能为空的）结果，不会失败。
func Classify(text string) []types.StyleSpan {
	var spans []types.StyleSpan
	for _, r := range rules {
		for _, m := range r.re.FindAllStringSubmatchIndex(text, -1) {
			for _, gt := range r.groups {
				start, end := m[2*gt.group], m[2*gt.group+1]
				if start < 0 || end <= start {
					continue
				}
				spans = append(spans, types.StyleSpan{Start: start, End: end, Tag: gt.tag})
			}
		}
	}
	spans = append(spans, punctuationSpans(text)...)
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})
	return spans
}

// ExtendRegion 扩展重扫描区域，保证区域边界不会落在未闭合的
// 三引号字符串内部
//
// 向后扩展到最近的前置 """（没有则到缓冲区开头）；向前扩展到最近的
// 后继 """ 所在行的行尾（没有则保持不变）。
func ExtendRegion(text string, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if end < start {
		end = start
	}

	if idx := strings.LastIndex(text[:start], longQuote); idx >= 0 {
		start = idx
	} else {
		start = 0
	}

	if idx := strings.Index(text[end:], longQuote); idx >= 0 {
		delimEnd := end + idx + len(longQuote)
		if nl := strings.IndexByte(text[delimEnd:], '\n'); nl >= 0 {
			end = delimEnd + nl
		} else {
			end = len(text)
		}
	}

	return start, end
}
