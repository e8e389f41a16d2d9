package turtlemode

import (
	"context"
	"strings"

	"github.com/riverfjs/turtlemode-go/internal/indent"
	"github.com/riverfjs/turtlemode-go/internal/mdcode"
)

// ctxCheckInterval is how many lines are processed between context checks.
const ctxCheckInterval = 256

// ProcessDocument 逐行重排版整个 Turtle 文档
//
// 自上而下处理：每一行的推断以上方已重排版的行为准；闭合匿名节点
// 的行按上方推出的延续级别回退一级，因此对已排版文本再次排版结果
// 不变。行尾换行符的有无保持不变。
//
// 参数:
//   - ctx: 上下文，取消时中止处理
//   - content: 原始 Turtle 文本
//   - opts: 配置选项
//
// 返回:
//   - string: 重排版后的文本
//   - error: 仅在 ctx 取消时返回错误
func ProcessDocument(ctx context.Context, content string, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	width := options.indentWidth()

	trailingNewline := strings.HasSuffix(content, "\n")
	lines := NewBufferString(content)

	for i := 0; i < len(lines); i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		units := indent.InferDocument(lines, i, width)
		lines[i] = applyIndent(lines[i], units, width)
	}

	out := strings.Join(lines, "\n")
	if trailingNewline && out != "" {
		out += "\n"
	}
	return out, nil
}

// FormatMarkdown 重排版 Markdown 文档中的 Turtle 围栏代码块
//
// 只有 ```turtle、```ttl、```n3 标注的代码块被处理；文档的其余
// 字节原样保留。
//
// 参数:
//   - ctx: 上下文
//   - markdown: 原始 Markdown 文本
//   - opts: 配置选项
//
// 返回:
//   - string: 代码块重排版后的 Markdown 文本
//   - error: 仅在 ctx 取消时返回错误
func FormatMarkdown(ctx context.Context, markdown string, opts ...Option) (string, error) {
	source := []byte(markdown)
	segments := mdcode.Extract(source)
	if len(segments) == 0 {
		return markdown, nil
	}

	var procErr error
	out := mdcode.Replace(source, segments, func(seg mdcode.Segment) string {
		if procErr != nil {
			return seg.Code
		}
		formatted, err := ProcessDocument(ctx, seg.Code, opts...)
		if err != nil {
			procErr = err
			return seg.Code
		}
		return formatted
	})
	if procErr != nil {
		return "", procErr
	}
	return out, nil
}
