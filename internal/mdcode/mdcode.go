// Package mdcode locates fenced Turtle code blocks inside Markdown so
// they can be reformatted in place without touching the prose around
// them.
package mdcode

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Segment 记录一个 Turtle 围栏代码块在原文中的位置
type Segment struct {
	Start    int    // 代码内容起始位置（字节）
	End      int    // 代码内容结束位置（字节，不含）
	Language string // 围栏语言标注
	Code     string // 原始代码内容
}

// turtleLanguages are the fence info strings that activate reformatting.
var turtleLanguages = map[string]bool{
	"turtle": true,
	"ttl":    true,
	"n3":     true,
}

// IsTurtleLanguage reports whether a fence language label names Turtle.
func IsTurtleLanguage(lang string) bool {
	return turtleLanguages[strings.ToLower(strings.TrimSpace(lang))]
}

// Extract 解析 Markdown 并返回其中所有 Turtle 围栏代码块
//
// 只识别 ```turtle、```ttl、```n3 三种语言标注；其余代码块保持不动。
func Extract(source []byte) []Segment {
	md := goldmark.New()
	node := md.Parser().Parse(text.NewReader(source))

	var segments []Segment
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		lang := string(fenced.Language(source))
		if !IsTurtleLanguage(lang) {
			return ast.WalkSkipChildren, nil
		}

		lines := fenced.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		start := lines.At(0).Start
		end := lines.At(lines.Len() - 1).Stop

		segments = append(segments, Segment{
			Start:    start,
			End:      end,
			Language: lang,
			Code:     string(source[start:end]),
		})
		return ast.WalkSkipChildren, nil
	})
	return segments
}

// Replace 将每个 segment 的内容替换为 rewrite 的返回值，其余字节原样保留
//
// segments 必须按 Start 升序且互不重叠（Extract 的输出满足此条件）。
func Replace(source []byte, segments []Segment, rewrite func(Segment) string) string {
	var b strings.Builder
	b.Grow(len(source))
	pos := 0
	for _, seg := range segments {
		if seg.Start < pos || seg.End > len(source) {
			continue
		}
		b.Write(source[pos:seg.Start])
		b.WriteString(rewrite(seg))
		pos = seg.End
	}
	b.Write(source[pos:])
	return b.String()
}
