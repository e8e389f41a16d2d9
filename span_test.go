package turtlemode

import "testing"

// TestSpanText 区间取子串与越界保护
func TestSpanText(t *testing.T) {
	text := "ex:s ex:p ex:o ."
	if got := SpanText(text, StyleSpan{Start: 0, End: 4, Tag: TagPrefixedName}); got != "ex:s" {
		t.Errorf("SpanText = %q, want \"ex:s\"", got)
	}
	for _, bad := range []StyleSpan{
		{Start: -1, End: 3},
		{Start: 0, End: len(text) + 1},
		{Start: 5, End: 5},
		{Start: 6, End: 2},
	} {
		if got := SpanText(text, bad); got != "" {
			t.Errorf("SpanText(%+v) = %q, want \"\"", bad, got)
		}
	}
}

func TestSpansWithTag(t *testing.T) {
	spans := []StyleSpan{
		{Start: 0, End: 4, Tag: TagPrefixedName},
		{Start: 5, End: 9, Tag: TagIRI},
		{Start: 10, End: 14, Tag: TagPrefixedName},
	}
	got := SpansWithTag(spans, TagPrefixedName)
	if len(got) != 2 || got[0].Start != 0 || got[1].Start != 10 {
		t.Errorf("SpansWithTag = %v", got)
	}
	if SpansWithTag(spans, TagBlankNode) != nil {
		t.Error("SpansWithTag with absent tag should return nil")
	}
}

// TestClipSpans 裁剪并重定位到子区域
func TestClipSpans(t *testing.T) {
	spans := []StyleSpan{
		{Start: 0, End: 5, Tag: TagIRI},      // entirely before
		{Start: 8, End: 14, Tag: TagString},  // straddles the left edge
		{Start: 15, End: 18, Tag: TagIRI},    // inside
		{Start: 19, End: 30, Tag: TagString}, // straddles the right edge
		{Start: 25, End: 30, Tag: TagIRI},    // entirely after
	}
	got := ClipSpans(spans, 10, 20)
	want := []StyleSpan{
		{Start: 0, End: 4, Tag: TagString},
		{Start: 5, End: 8, Tag: TagIRI},
		{Start: 9, End: 10, Tag: TagString},
	}
	if len(got) != len(want) {
		t.Fatalf("ClipSpans = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestClipSpans_EmptyRegion(t *testing.T) {
	spans := []StyleSpan{{Start: 0, End: 5, Tag: TagIRI}}
	if got := ClipSpans(spans, 5, 5); got != nil {
		t.Errorf("ClipSpans on empty region = %v, want nil", got)
	}
}
