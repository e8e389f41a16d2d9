package turtlemode

import (
	"github.com/riverfjs/turtlemode-go/internal/highlight"
)

// Highlight 将文本区域分类为样式区间
//
// 参数:
//   - text: 要分类的文本区域
//
// 返回:
//   - []StyleSpan: 按起点排序的样式区间，字节偏移相对于 text 起点；
//     不同规则产生的区间允许重叠，由宿主决定优先级
func Highlight(text string) []StyleSpan {
	return highlight.Classify(text)
}

// ExtendRegion 扩展宿主提议的重扫描区域 (start, end)
//
// 保证返回的区域边界不会落在三引号字符串内部：向后扩展到最近的
// 前置 """（没有则到缓冲区开头），向前扩展到最近的后继 """ 所在行
// 的行尾（没有则保持不变）。宿主应使用返回的区域做重新分类。
func ExtendRegion(text string, start, end int) (int, int) {
	return highlight.ExtendRegion(text, start, end)
}
