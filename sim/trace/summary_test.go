package trace

import "testing"

func TestSummarize_EmptyInput_ZeroValues(t *testing.T) {
	// GIVEN no logs
	summary := Summarize(nil)

	// THEN all counts are zero
	if summary.Traces != 0 || summary.Ops != 0 {
		t.Errorf("expected 0 traces and 0 ops, got %d and %d", summary.Traces, summary.Ops)
	}
	if summary.Reads != 0 || summary.Writes != 0 {
		t.Error("expected 0 reads and writes")
	}
	if summary.UniqueKeys != 0 {
		t.Errorf("expected 0 unique keys, got %d", summary.UniqueKeys)
	}
	if len(summary.KeyAccesses) != 0 {
		t.Error("expected empty key access distribution")
	}
}

func TestSummarize_PopulatedLogs_CorrectCounts(t *testing.T) {
	// GIVEN two logs with mixed reads and writes
	a := NewAccessLog()
	a.AppendRead("cart(30)")
	a.AppendWrite("order(8)")
	b := NewAccessLog()
	b.AppendWrite("offerCode(758)")
	b.AppendWrite("offer(758)")

	// WHEN summarized
	summary := Summarize([]*AccessLog{a, b})

	// THEN counts match
	if summary.Traces != 2 {
		t.Errorf("expected 2 traces, got %d", summary.Traces)
	}
	if summary.Ops != 4 {
		t.Errorf("expected 4 ops, got %d", summary.Ops)
	}
	if summary.Reads != 1 {
		t.Errorf("expected 1 read, got %d", summary.Reads)
	}
	if summary.Writes != 3 {
		t.Errorf("expected 3 writes, got %d", summary.Writes)
	}
	if summary.UniqueKeys != 4 {
		t.Errorf("expected 4 unique keys, got %d", summary.UniqueKeys)
	}
}

func TestSummarize_RepeatedKeys_CountsPerKey(t *testing.T) {
	// GIVEN a log touching the same key twice
	al := NewAccessLog()
	al.AppendRead("quantity(88)")
	al.AppendWrite("quantity(88)")
	al.AppendRead("quantity(25)")

	// WHEN summarized
	summary := Summarize([]*AccessLog{al})

	// THEN key access distribution reflects counts
	if summary.KeyAccesses["quantity(88)"] != 2 {
		t.Errorf("expected quantity(88) count 2, got %d", summary.KeyAccesses["quantity(88)"])
	}
	if summary.KeyAccesses["quantity(25)"] != 1 {
		t.Errorf("expected quantity(25) count 1, got %d", summary.KeyAccesses["quantity(25)"])
	}
	if summary.UniqueKeys != 2 {
		t.Errorf("expected 2 unique keys, got %d", summary.UniqueKeys)
	}
}

func TestSummarize_NilEntries_Skipped(t *testing.T) {
	al := NewAccessLog()
	al.AppendWrite("amount(221.4)")

	summary := Summarize([]*AccessLog{nil, al, nil})

	if summary.Traces != 1 {
		t.Errorf("expected 1 trace counted, got %d", summary.Traces)
	}
	if summary.Writes != 1 {
		t.Errorf("expected 1 write, got %d", summary.Writes)
	}
}
