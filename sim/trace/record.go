// Package trace provides the access-log data model for synthesized
// transactions. It has no dependencies on sim/ or sim/workload/; it stores
// pure data types.
package trace

// OpKind distinguishes read accesses from write accesses.
type OpKind string

const (
	// Read marks a key access that only observes state.
	Read OpKind = "r"
	// Write marks a key access that mutates state.
	Write OpKind = "w"
)

// Operation captures a single key access inside a transaction trace.
// Operations are never mutated after they are appended to an AccessLog.
type Operation struct {
	Kind OpKind
	Key  string
}

// Rendered returns the canonical "<r|w>-<key>" form of the access.
func (op Operation) Rendered() string {
	return string(op.Kind) + "-" + op.Key
}
