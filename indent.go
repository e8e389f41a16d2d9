package turtlemode

import (
	"strings"

	"github.com/riverfjs/turtlemode-go/internal/indent"
)

// InferIndent 推断第 line 行应有的缩进级别
//
// 这是纯函数：只读取 src 的当前内容，不产生副作用；由宿主负责把
// 返回的级别应用到该行。对任意输入都有定义，结果恒为非负。
//
// 参数:
//   - src: 宿主的按行访问器
//   - line: 行号，从 0 开始
//   - opts: 配置选项，如 WithIndentWidth
//
// 返回:
//   - int: 缩进级别，单位为一个缩进宽度
func InferIndent(src LineSource, line int, opts ...Option) int {
	options := applyOptions(opts...)
	return indent.Infer(src, line, options.indentWidth())
}

// IndentLine 返回按推断级别重新缩进后的第 line 行文本
//
// 行首空白被替换为 level*width 个空格，行内容不变。
func IndentLine(src LineSource, line int, opts ...Option) string {
	options := applyOptions(opts...)
	width := options.indentWidth()
	units := indent.Infer(src, line, width)
	return applyIndent(src.Line(line), units, width)
}

// LineIndentation 返回某一行当前实际的缩进级别（向下取整）
func LineIndentation(text string, opts ...Option) int {
	options := applyOptions(opts...)
	return indent.LeadingUnits(text, options.indentWidth())
}

// applyIndent strips the existing leading whitespace and prepends
// units*width spaces. Whitespace-only lines become empty.
func applyIndent(line string, units, width int) string {
	body := strings.TrimLeft(line, " \t")
	if body == "" {
		return ""
	}
	return strings.Repeat(" ", units*width) + body
}
