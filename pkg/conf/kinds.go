package conf

import "github.com/leapstack-labs/lintkit/pkg/tree"

// Node kinds produced by the conf parser. This is the language's closed
// kind set; rules subscribe to these.
const (
	// KindFile is the root node spanning the whole input.
	KindFile tree.NodeKind = "conf.file"
	// KindSection is a "[name]" section with its entries.
	KindSection tree.NodeKind = "conf.section"
	// KindSectionName is the leaf holding a section's name.
	KindSectionName tree.NodeKind = "conf.section_name"
	// KindEntry is a "key = value" line.
	KindEntry tree.NodeKind = "conf.entry"
	// KindKey is the leaf holding an entry's key.
	KindKey tree.NodeKind = "conf.key"
	// KindValue is the leaf holding an entry's value. The value may be
	// empty, in which case the leaf's span is zero-width.
	KindValue tree.NodeKind = "conf.value"
	// KindComment is a "# ..." comment line.
	KindComment tree.NodeKind = "conf.comment"
)
