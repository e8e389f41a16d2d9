package types

// StyleTag 标识一个词法类别，宿主编辑器将其映射到具体的显示样式
type StyleTag string

// Recognized lexical categories of the Turtle surface syntax.
const (
	TagDirective    StyleTag = "directive"     // @prefix / @base keyword
	TagNamespace    StyleTag = "namespace"     // prefix name in a @prefix declaration
	TagString       StyleTag = "string"        // single-line quoted string
	TagLongString   StyleTag = "long-string"   // triple-quoted string, possibly multi-line
	TagDatatypeIRI  StyleTag = "datatype-iri"  // ^^<...> datatype of a typed literal
	TagDatatypeName StyleTag = "datatype-name" // ^^prefix:name datatype of a typed literal
	TagIRI          StyleTag = "iri"           // <...> IRI reference
	TagBlankNode    StyleTag = "blank-node"    // _:label
	TagPrefixedName StyleTag = "prefixed-name" // prefix:localname
	TagPunctuation  StyleTag = "punctuation"   // a [ ] , ; . between whitespace
)

// StyleSpan 表示文本中一个被着色的区间
//
// Start 和 End 是字节偏移量（前闭后开），相对于被分类的文本区域起点。
type StyleSpan struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Tag   StyleTag `json:"tag"`
}

// Len returns the span length in bytes.
func (s StyleSpan) Len() int {
	return s.End - s.Start
}

// LineSource provides read access to the lines of a host buffer.
//
// Line i carries no trailing newline. Implementations must tolerate any
// content; the indentation inferencer never reads past LineCount.
type LineSource interface {
	LineCount() int
	Line(i int) string
}

// Config 缩进配置
type Config struct {
	// IndentWidth is the number of columns in one indentation unit.
	IndentWidth int
}

// DefaultIndentWidth is the unit size used when no configuration is given.
const DefaultIndentWidth = 4

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		IndentWidth: DefaultIndentWidth,
	}
}
