package turtlemode

import (
	"sync"

	"github.com/riverfjs/turtlemode-go/internal/types"
)

// 导出类型别名
type Config = types.Config
type StyleSpan = types.StyleSpan
type StyleTag = types.StyleTag
type LineSource = types.LineSource

// Recognized style tags, re-exported for hosts building style tables.
const (
	TagDirective    = types.TagDirective
	TagNamespace    = types.TagNamespace
	TagString       = types.TagString
	TagLongString   = types.TagLongString
	TagDatatypeIRI  = types.TagDatatypeIRI
	TagDatatypeName = types.TagDatatypeName
	TagIRI          = types.TagIRI
	TagBlankNode    = types.TagBlankNode
	TagPrefixedName = types.TagPrefixedName
	TagPunctuation  = types.TagPunctuation
)

// DefaultIndentWidth is the unit size used when no configuration is given.
const DefaultIndentWidth = types.DefaultIndentWidth

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}
