package turtlemode

// SpanText extracts the substring a span covers. Out-of-range spans
// yield the empty string.
func SpanText(text string, span StyleSpan) string {
	if span.Start < 0 || span.End > len(text) || span.End <= span.Start {
		return ""
	}
	return text[span.Start:span.End]
}

// SpansWithTag returns the spans carrying the given tag, in order.
func SpansWithTag(spans []StyleSpan, tag StyleTag) []StyleSpan {
	var out []StyleSpan
	for _, s := range spans {
		if s.Tag == tag {
			out = append(out, s)
		}
	}
	return out
}

// ClipSpans 将区间裁剪到子区域 [start, end) 并重定位偏移量
//
// 跨越边界的区间被裁短，完全落在区域外的被丢弃。宿主渲染可视
// 窗口时用它把整个区域的分类结果映射到窗口内。
func ClipSpans(spans []StyleSpan, start, end int) []StyleSpan {
	if end <= start {
		return nil
	}
	var out []StyleSpan
	for _, s := range spans {
		if s.End <= start || s.Start >= end {
			continue
		}
		clippedStart := max(s.Start, start)
		clippedEnd := min(s.End, end)
		if clippedEnd <= clippedStart {
			continue
		}
		out = append(out, StyleSpan{
			Start: clippedStart - start,
			End:   clippedEnd - start,
			Tag:   s.Tag,
		})
	}
	return out
}

// Helper functions
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
