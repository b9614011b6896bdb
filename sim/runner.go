package sim

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/txn-sim/txn-sim/sim/trace"
	"github.com/txn-sim/txn-sim/sim/workload"
)

// json is the codec for the JSON-lines output mode.
var json = jsoniter.ConfigFastest

// Output formats accepted by RunConfig.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// validFormats maps accepted output format names.
var validFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// IsValidFormat reports whether name is a recognized output format.
func IsValidFormat(name string) bool {
	return validFormats[name]
}

// RunConfig parameterizes one generation run.
type RunConfig struct {
	Seed      int64                 // master seed for the per-template RNG streams
	Count     int                   // traces per template batch
	Templates []workload.TemplateID // batches to generate, in order; empty means all
	Format    string                // FormatText or FormatJSON
	Domains   *workload.Domains     // nil means workload.DefaultDomains()
}

// Runner drives a full generation run: one batch per configured template,
// each batch drawing from its own RNG stream, rendered to an io.Writer.
type Runner struct {
	cfg   RunConfig
	gen   *workload.Generator
	rng   *PartitionedRNG
	runID string
}

// NewRunner validates cfg and builds a Runner.
func NewRunner(cfg RunConfig) (*Runner, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", cfg.Count)
	}
	if !IsValidFormat(cfg.Format) {
		return nil, fmt.Errorf("unknown output format %q; valid: text, json", cfg.Format)
	}
	for _, id := range cfg.Templates {
		if !workload.IsValidTemplate(string(id)) {
			return nil, fmt.Errorf("%w: %q", workload.ErrUnknownTemplate, id)
		}
	}
	if len(cfg.Templates) == 0 {
		cfg.Templates = workload.AllTemplates
	}
	gen, err := workload.NewGenerator(cfg.Domains)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:   cfg,
		gen:   gen,
		rng:   NewPartitionedRNG(NewRunKey(cfg.Seed)),
		runID: uuid.NewString(),
	}, nil
}

// RunID returns the unique identifier of this run. It is carried in every
// log line and in the JSON run header, never in the text trace output.
func (r *Runner) RunID() string {
	return r.runID
}

// Run generates every configured batch in order and writes rendered traces
// to w. Text output follows the historical simulation format: a leading
// blank line, then per batch a "Generating <name> simulation" header, one
// trace per line, and a trailing blank line. JSON output is one object per
// line, a run header followed by trace records.
func (r *Runner) Run(w io.Writer) error {
	start := time.Now()
	logrus.WithFields(logrus.Fields{
		"run_id":    r.runID,
		"seed":      r.cfg.Seed,
		"count":     r.cfg.Count,
		"templates": len(r.cfg.Templates),
		"format":    r.cfg.Format,
	}).Info("Starting trace generation")

	bw := bufio.NewWriter(w)
	if r.cfg.Format == FormatText {
		fmt.Fprintln(bw)
	} else if err := r.writeRunHeader(bw); err != nil {
		return err
	}

	var totalTraces, totalOps, totalReads, totalWrites int
	for _, id := range r.cfg.Templates {
		seq, err := r.gen.Traces(id, r.cfg.Count, r.rng.ForStream(string(id)))
		if err != nil {
			return fmt.Errorf("batch %s: %w", id, err)
		}
		if r.cfg.Format == FormatText {
			fmt.Fprintf(bw, "Generating %s simulation\n", id.DisplayName())
		}
		batch := make([]*trace.AccessLog, 0, r.cfg.Count)
		for i := 0; ; i++ {
			al, ok := seq.Next()
			if !ok {
				break
			}
			if r.cfg.Format == FormatText {
				fmt.Fprintln(bw, al.String())
			} else if err := writeJSONLine(bw, traceRecord{
				Template: string(id),
				Seq:      i,
				Ops:      al.Render(),
			}); err != nil {
				return err
			}
			batch = append(batch, al)
		}
		if r.cfg.Format == FormatText {
			fmt.Fprintln(bw)
		}

		s := trace.Summarize(batch)
		logrus.WithFields(logrus.Fields{
			"run_id":      r.runID,
			"template":    id,
			"traces":      s.Traces,
			"reads":       s.Reads,
			"writes":      s.Writes,
			"unique_keys": s.UniqueKeys,
		}).Debug("Batch complete")
		totalTraces += s.Traces
		totalOps += s.Ops
		totalReads += s.Reads
		totalWrites += s.Writes
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing traces: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   r.runID,
		"traces":   totalTraces,
		"ops":      totalOps,
		"reads":    totalReads,
		"writes":   totalWrites,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("Trace generation complete")
	return nil
}

// runHeader is the first JSON line of a run.
type runHeader struct {
	RunID     string   `json:"run_id"`
	Seed      int64    `json:"seed"`
	Count     int      `json:"count"`
	Templates []string `json:"templates"`
}

// traceRecord is one generated trace as a JSON line.
type traceRecord struct {
	Template string   `json:"template"`
	Seq      int      `json:"seq"`
	Ops      []string `json:"ops"`
}

func (r *Runner) writeRunHeader(w io.Writer) error {
	names := make([]string, len(r.cfg.Templates))
	for i, id := range r.cfg.Templates {
		names[i] = string(id)
	}
	return writeJSONLine(w, runHeader{
		RunID:     r.runID,
		Seed:      r.cfg.Seed,
		Count:     r.cfg.Count,
		Templates: names,
	})
}

func writeJSONLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding trace record: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing trace record: %w", err)
	}
	return nil
}
