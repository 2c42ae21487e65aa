package netdiff

import "context"

// Command defines the parsing pipeline for one supported show command.
// Each command owns its transcript signature, its parser, and the key/field
// declaration the diff engine aligns records with. Implementations must be
// stateless: every Parse call owns its own in-progress scan state so the
// whole pipeline stays safe to invoke concurrently.
type Command interface {
	// Name returns the stable catalogue key (e.g. "show_arp_no_resolve").
	Name() string

	// Signature returns the transcript signature used by the segmenter.
	Signature() Signature

	// Parse turns an extracted segment into the command's collection as
	// plain nested data. Absent or blank segments yield the command's
	// zero-value collection, never an error; the only error sources are a
	// cancelled context and internal invariant violations.
	Parse(ctx context.Context, seg Segment, opts ParseOptions) (map[string]any, error)

	// DiffSpec declares how two parses of this command are aligned.
	DiffSpec() DiffSpec
}

// DiffSpec 声明命令的记录主键与参与比较的字段。
// Key 是跨快照唯一标识一条记录的字段组（没有通用 identity，必须逐命令声明）。
// Fields 是逐项比较的字段，未声明的字段不参与比较；Fields 为空时比较
// 双方字段的并集。列表值字段按整体比较，不做逐元素 diff。
type DiffSpec struct {
	Key    []string
	Fields []string
}

// Collection is satisfied by every typed parse result in domain/ packages:
// Plain renders the collection as plain nested data (maps, slices, scalars)
// with the serialization keys fixed by the report contract.
type Collection interface {
	Plain() map[string]any
}
