package trace

import "strings"

// AccessLog collects the ordered key accesses of one simulated transaction.
// Insertion order is significant: it encodes the read/write dependency shape
// of the transaction. A template populates exactly one AccessLog per
// invocation and never mutates it after returning.
type AccessLog struct {
	ops []Operation
}

// NewAccessLog creates an empty AccessLog ready for recording.
func NewAccessLog() *AccessLog {
	return &AccessLog{ops: make([]Operation, 0)}
}

// AppendRead records a read access of key.
func (al *AccessLog) AppendRead(key string) {
	al.ops = append(al.ops, Operation{Kind: Read, Key: key})
}

// AppendWrite records a write access of key.
func (al *AccessLog) AppendWrite(key string) {
	al.ops = append(al.ops, Operation{Kind: Write, Key: key})
}

// Len returns the number of recorded accesses.
func (al *AccessLog) Len() int {
	return len(al.ops)
}

// Operations returns a copy of the recorded accesses in insertion order.
func (al *AccessLog) Operations() []Operation {
	out := make([]Operation, len(al.ops))
	copy(out, al.ops)
	return out
}

// Kinds returns the access kinds in insertion order.
func (al *AccessLog) Kinds() []OpKind {
	out := make([]OpKind, len(al.ops))
	for i, op := range al.ops {
		out[i] = op.Kind
	}
	return out
}

// Render projects the log to one "<r|w>-<key>" string per access, in
// insertion order. Rendering is a pure projection: it does not consume or
// mutate the log, and repeated calls return equal results.
func (al *AccessLog) Render() []string {
	out := make([]string, len(al.ops))
	for i, op := range al.ops {
		out[i] = op.Rendered()
	}
	return out
}

// String formats the log as a bracketed, single-quoted list, e.g.
// ['r-cart(30)', 'w-order(8)']. This is the line format downstream
// trace-analysis scripts parse.
func (al *AccessLog) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, op := range al.ops {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(op.Rendered())
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}
