package turtlemode

import (
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// lineGen produces lines shaped like the structures the inferencer
// recognizes, mixed with arbitrary text.
func lineGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("<http://example.org/x>"),
		rapid.Just("ex:name"),
		rapid.Just("ex:p \"v\" ,"),
		rapid.Just("ex:p \"v\" ;"),
		rapid.Just("ex:p ex:o ."),
		rapid.Just("ex:p ["),
		rapid.Just("]"),
		rapid.Just("] ,"),
		rapid.Just("] ;"),
		rapid.Just(""),
		rapid.StringMatching(`[ -~]{0,40}`),
	)
}

func bufferGen() *rapid.Generator[SliceBuffer] {
	return rapid.Custom(func(t *rapid.T) SliceBuffer {
		n := rapid.IntRange(1, 30).Draw(t, "lines")
		indentWidth := 4
		buf := make(SliceBuffer, n)
		for i := range buf {
			units := rapid.IntRange(0, 5).Draw(t, "units")
			buf[i] = strings.Repeat(" ", units*indentWidth) + lineGen().Draw(t, "line")
		}
		return buf
	})
}

// TestProperty_NonNegative 任意输入的推断结果非负
func TestProperty_NonNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buf := bufferGen().Draw(t, "buf")
		for i := range buf {
			if got := InferIndent(buf, i); got < 0 {
				t.Fatalf("line %d (%q): InferIndent = %d, want >= 0", i, buf[i], got)
			}
		}
	})
}

// TestProperty_Deterministic 固定内容下推断结果稳定
func TestProperty_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buf := bufferGen().Draw(t, "buf")
		line := rapid.IntRange(0, len(buf)-1).Draw(t, "line")
		first := InferIndent(buf, line)
		for n := 0; n < 3; n++ {
			if again := InferIndent(buf, line); again != first {
				t.Fatalf("InferIndent changed between runs: %d then %d", first, again)
			}
		}
	})
}

// TestProperty_CloseBracketDecrease 闭合行总是自身级别减一（截断到 0）
func TestProperty_CloseBracketDecrease(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buf := bufferGen().Draw(t, "buf")
		units := rapid.IntRange(0, 6).Draw(t, "units")
		suffix := rapid.SampledFrom([]string{"]", "] ,", "] ;", "],", "];"}).Draw(t, "suffix")
		closing := strings.Repeat(" ", units*4) + suffix
		buf = append(buf, closing)

		want := units - 1
		if want < 0 {
			want = 0
		}
		if got := InferIndent(buf, len(buf)-1); got != want {
			t.Fatalf("closing line %q: InferIndent = %d, want %d", closing, got, want)
		}
	})
}

// TestProperty_CommaRunStable 逗号列表项之间深度不再增加
func TestProperty_CommaRunStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runLen := rapid.IntRange(2, 6).Draw(t, "runLen")
		buf := SliceBuffer{
			"<http://example.org/s>",
			"    ex:p \"first\" ,",
		}
		// The first comma indents the next line in once; items after
		// that stay at the same level.
		level := InferIndent(buf, 1) + 1
		for i := 0; i < runLen; i++ {
			item := strings.Repeat(" ", level*4) + "\"more\" ,"
			buf = append(buf, item)
			if got := InferIndent(buf, len(buf)-1); got != level {
				t.Fatalf("item %d: InferIndent = %d, want %d", i, got, level)
			}
		}
	})
}

// TestProperty_RegionCoversLongStrings 扩展后的区域总是完整包含
// 跨越任意边界的三引号字符串
func TestProperty_RegionCoversLongStrings(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pre := rapid.StringMatching(`[a-z \n]{0,20}`).Draw(t, "pre")
		body := rapid.StringMatching(`[a-z \n]{1,20}`).Draw(t, "body")
		post := rapid.StringMatching(`[a-z \n]{0,20}`).Draw(t, "post")
		text := pre + `"""` + body + `"""` + post

		open := strings.Index(text, `"""`)
		closeEnd := open + 3 + len(body) + 3

		// Boundary anywhere inside the literal's content.
		cut := rapid.IntRange(open+3, closeEnd-3).Draw(t, "cut")
		start, end := ExtendRegion(text, cut, cut)
		if start > open {
			t.Fatalf("start = %d, want <= %d", start, open)
		}
		if end < closeEnd {
			t.Fatalf("end = %d, want >= %d", end, closeEnd)
		}
	})
}

// TestProperty_ReformatStable 重排版结果再排版不变
func TestProperty_ReformatStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buf := bufferGen().Draw(t, "buf")
		in := strings.Join(buf, "\n")
		once, err := ProcessDocument(context.Background(), in)
		if err != nil {
			t.Fatalf("ProcessDocument() error = %v", err)
		}
		twice, err := ProcessDocument(context.Background(), once)
		if err != nil {
			t.Fatalf("ProcessDocument() error = %v", err)
		}
		if once != twice {
			t.Fatalf("not idempotent:\nonce:\n%s\ntwice:\n%s", once, twice)
		}
	})
}
