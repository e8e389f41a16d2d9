// Package turtlemode 为 Turtle/N3 文本提供语法高亮与逐行缩进推断
//
// 这个包面向宿主编辑器：宿主提供按行读取缓冲区的能力，本包返回
// 每行应有的缩进级别和文本区域的样式区间。
//
// 核心功能：
//   - 逐行缩进推断：根据当前行与其上方文本的形状决定缩进级别
//   - 词法高亮：按规则表将文本分类为 (区间, 样式标签) 序列
//   - 三引号字符串的重扫描区域扩展
//   - 整文档重排版，以及 Markdown 中 Turtle 代码块的就地重排版
//
// 主要 API：
//   - InferIndent(): 推断单行缩进级别
//   - Highlight(): 同步分类，返回样式区间
//   - ExtendRegion(): 扩展宿主的重扫描区域
//   - Reindent(): 异步完整处理，重排版整个文档
//
// 示例：
//
//	buf := turtlemode.NewBufferString(content)
//	for i := 0; i < buf.LineCount(); i++ {
//	    units := turtlemode.InferIndent(buf, i)
//	    // 宿主将第 i 行缩进设置为 units 个单位
//	}
//
//	// 整文档重排版
//	out, err := turtlemode.Reindent(ctx, content, turtlemode.WithIndentWidth(2))
package turtlemode

import (
	"context"
)

// Reindent 将整个 Turtle 文档逐行重排版
//
// 这是主要的一次性 API。对于宿主编辑器的单行交互，使用 InferIndent()。
//
// 参数：
//   - ctx: 上下文，取消时中止处理
//   - content: 原始 Turtle 文本
//   - opts: 配置选项，如 WithIndentWidth
//
// 返回：
//   - string: 重排版后的文本
//   - error: 仅在 ctx 取消时返回错误
func Reindent(ctx context.Context, content string, opts ...Option) (string, error) {
	return ProcessDocument(ctx, content, opts...)
}
