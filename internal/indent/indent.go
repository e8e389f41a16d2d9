// Package indent infers the indentation level of a line of Turtle text.
//
// The inference is a backward walk over raw buffer lines, not a parse:
// each line is classified by its trailing or leading shape alone, and
// the walk never looks more than one extra line back from the line
// under inspection. The result is a best-effort approximation of the
// nesting depth of anonymous-node blocks and predicate/object lists.
package indent

import (
	"regexp"
	"strings"

	"github.com/riverfjs/turtlemode-go/internal/types"
)

// LineClass is the shape of a single line, judged without any
// surrounding parse state.
type LineClass int

const (
	// ClassOther matches any line no other class claims.
	ClassOther LineClass = iota
	// ClassSubjectHeader is a bare IRI or prefixed name alone on a line.
	ClassSubjectHeader
	// ClassStatementEnd ends with '.' -- a statement or directive terminated.
	ClassStatementEnd
	// ClassPredicateEnd ends with ';' -- more predicates follow for this subject.
	ClassPredicateEnd
	// ClassListComma ends with ',' -- more objects follow for this predicate.
	ClassListComma
	// ClassBlockOpen ends with '[' -- an anonymous node was opened.
	ClassBlockOpen
)

func (c LineClass) String() string {
	switch c {
	case ClassSubjectHeader:
		return "subject-header"
	case ClassStatementEnd:
		return "statement-end"
	case ClassPredicateEnd:
		return "predicate-end"
	case ClassListComma:
		return "list-comma"
	case ClassBlockOpen:
		return "block-open"
	default:
		return "other"
	}
}

var (
	// A line that closes an anonymous node, optionally followed by a
	// single ',' or ';'.
	reBlockClose = regexp.MustCompile(`\]\s*[,;]?\s*$`)

	// Close one anonymous node, comma, then immediately open another.
	// Treated exactly like a plain close.
	reCloseReopen = regexp.MustCompile(`\]\s*,\s*\[\s*$`)

	// A resource header standing alone: a full IRI reference or a
	// prefixed-name pair (either side may be empty, the ':' may not).
	// A local name may contain dots but not end with one, so a line
	// like "ex:o." stays a statement terminator.
	reSubjectHeader = regexp.MustCompile(`^\s*(?:<[^>]*>|[A-Za-z0-9_.-]*:(?:[A-Za-z0-9_.-]*[A-Za-z0-9_-])?)\s*$`)
)

// Classify judges a single line by its shape. The subject-header check
// runs before the trailing-character checks; a header line cannot end
// with any of the list/terminator characters, so the order only matters
// for degenerate content.
func Classify(line string) LineClass {
	trimmed := strings.TrimRight(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return ClassOther
	}
	if reSubjectHeader.MatchString(trimmed) {
		return ClassSubjectHeader
	}
	switch trimmed[len(trimmed)-1] {
	case '.':
		return ClassStatementEnd
	case ';':
		return ClassPredicateEnd
	case ',':
		return ClassListComma
	case '[':
		return ClassBlockOpen
	}
	return ClassOther
}

// ClosesBlock reports whether line closes an anonymous node. This check
// applies to the line being indented itself and takes priority over any
// analysis of the preceding lines.
func ClosesBlock(line string) bool {
	return reBlockClose.MatchString(line) || reCloseReopen.MatchString(line)
}

// LeadingUnits measures the existing indentation of a physical line in
// units of width columns. Tabs advance to the next multiple of width.
// This reads real buffer state; it is never a recomputed value.
func LeadingUnits(line string, width int) int {
	if width <= 0 {
		width = types.DefaultIndentWidth
	}
	cols := 0
	for _, r := range line {
		switch r {
		case ' ':
			cols++
		case '\t':
			cols += width - cols%width
		default:
			return cols / width
		}
	}
	return cols / width
}

// Infer 计算第 line 行应有的缩进级别（单位数，非负）
//
// 判定优先级与规则：
//  1. 当前行本身闭合匿名节点（]、],、]; 或 ],[）→ 当前行现有缩进减一；
//  2. 否则检查上一行：位于缓冲区开头 → 0；裸资源头 → 上一行缩进加一；
//     以 '.' 结尾 → 0；以 ';' 结尾 → 再看前一行是否以 ',' 结尾决定是否回退一级；
//     以 ',' 结尾 → 再看前一行是否也以 ',' 结尾决定是否进一级；
//     以 '[' 结尾 → 上一行缩进加一；其余 → 与上一行持平。
//
// 对任意输入都有定义，结果恒为非负。
func Infer(src types.LineSource, line int, width int) int {
	if src == nil || line < 0 || line >= src.LineCount() {
		return 0
	}
	if width <= 0 {
		width = types.DefaultIndentWidth
	}

	cur := src.Line(line)
	if ClosesBlock(cur) {
		return clamp(LeadingUnits(cur, width) - 1)
	}
	return fromHistory(src, line, width)
}

// InferDocument 面向整篇重排版的推断变体
//
// 与 Infer 的唯一区别：闭合匿名节点的行不再以自身现有缩进为基准，
// 而是取上方各行推出的延续级别再减一。逐行重排版时上方各行已经
// 就位，这样对已排版文本再次排版结果不变。
//
// 参数与返回同 Infer。
func InferDocument(src types.LineSource, line int, width int) int {
	if src == nil || line < 0 || line >= src.LineCount() {
		return 0
	}
	if width <= 0 {
		width = types.DefaultIndentWidth
	}

	if ClosesBlock(src.Line(line)) {
		return clamp(fromHistory(src, line, width) - 1)
	}
	return fromHistory(src, line, width)
}

// fromHistory resolves a line's level from the preceding lines alone,
// ignoring the line's own content.
func fromHistory(src types.LineSource, line int, width int) int {
	prev := line - 1
	if prev < 0 {
		return 0
	}
	prevText := src.Line(prev)
	prevUnits := LeadingUnits(prevText, width)

	switch Classify(prevText) {
	case ClassSubjectHeader:
		return prevUnits + 1
	case ClassStatementEnd:
		return 0
	case ClassPredicateEnd:
		// An open comma-list above outdents back before the
		// semicolon continuation.
		if prev > 0 && Classify(src.Line(prev-1)) == ClassListComma {
			return clamp(prevUnits - 1)
		}
		return prevUnits
	case ClassListComma:
		// Still inside a multi-value list: already at the right depth.
		if prev > 0 && Classify(src.Line(prev-1)) == ClassListComma {
			return prevUnits
		}
		// First comma in a list, indent in once.
		return prevUnits + 1
	case ClassBlockOpen:
		return prevUnits + 1
	default:
		return prevUnits
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
