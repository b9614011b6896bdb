package trace

// Summary aggregates access counts across one or more AccessLogs.
type Summary struct {
	Traces      int
	Ops         int
	Reads       int
	Writes      int
	UniqueKeys  int
	KeyAccesses map[string]int // key → access count across all logs
}

// Summarize computes aggregate access statistics over the given logs.
// Safe for nil slices and nil entries (returns zero-value fields).
func Summarize(logs []*AccessLog) *Summary {
	summary := &Summary{
		KeyAccesses: make(map[string]int),
	}
	for _, al := range logs {
		if al == nil {
			continue
		}
		summary.Traces++
		for _, op := range al.ops {
			summary.Ops++
			switch op.Kind {
			case Read:
				summary.Reads++
			case Write:
				summary.Writes++
			}
			summary.KeyAccesses[op.Key]++
		}
	}
	summary.UniqueKeys = len(summary.KeyAccesses)
	return summary
}
