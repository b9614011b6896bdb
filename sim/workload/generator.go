package workload

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/txn-sim/txn-sim/sim/trace"
)

// ErrUnknownTemplate reports a template id outside the registry.
var ErrUnknownTemplate = errors.New("unknown template")

// Generator draws template parameters from validated Domains and produces
// transaction traces. Deterministic given the same domains and rng seed.
//
// A Generator is stateless between draws; all randomness flows through the
// *rand.Rand passed to each call. Neither a *rand.Rand nor the TraceSeqs
// sharing it are safe for concurrent use: give each goroutine its own
// stream.
type Generator struct {
	domains *Domains

	carts     *UniformSampler
	orders    *UniformSampler
	items     *UniformSampler
	customers *UniformSampler
	ratings   *UniformSampler
	payOrders *UniformSampler
	payments  *UniformSampler
	amounts   *AmountSampler
	codes     *UniformSampler
	idTypes   *UniformSampler
	allocate  *CoinSampler
	skus      *UniformSampler
}

// NewGenerator validates domains and builds a Generator. A nil domains uses
// DefaultDomains().
func NewGenerator(domains *Domains) (*Generator, error) {
	if domains == nil {
		domains = DefaultDomains()
	}
	if err := domains.Validate(); err != nil {
		return nil, fmt.Errorf("invalid domains: %w", err)
	}
	return &Generator{
		domains:   domains,
		carts:     NewUniformSampler(domains.CartUpdate.Carts),
		orders:    NewUniformSampler(domains.CartUpdate.Orders),
		items:     NewUniformSampler(domains.RateItem.Items),
		customers: NewUniformSampler(domains.RateItem.Customers),
		ratings:   NewUniformSampler(domains.RateItem.Ratings),
		payOrders: NewUniformSampler(domains.OrderPayment.Orders),
		payments:  NewUniformSampler(domains.OrderPayment.Payments),
		amounts:   NewAmountSampler(domains.OrderPayment.AmountMean, domains.OrderPayment.AmountStdDev),
		codes:     NewUniformSampler(domains.Offer.Codes),
		idTypes:   NewUniformSampler(domains.NextID.IDTypes),
		allocate:  NewCoinSampler(domains.NextID.AllocateProb),
		skus:      NewUniformSampler(domains.DecrementSKU.SKUs),
	}, nil
}

// Domains returns the validated domains this Generator draws from.
func (g *Generator) Domains() *Domains {
	return g.domains
}

// drawFunc resolves a template id to its parameter-drawing closure.
func (g *Generator) drawFunc(id TemplateID) (func(rng *rand.Rand) *trace.AccessLog, bool) {
	switch id {
	case TemplateUpdateCart:
		return func(rng *rand.Rand) *trace.AccessLog {
			return UpdateCart(g.carts.Sample(rng), g.orders.Sample(rng))
		}, true
	case TemplateRateItem:
		return func(rng *rand.Rand) *trace.AccessLog {
			return RateItem(g.items.Sample(rng), g.customers.Sample(rng), g.ratings.Sample(rng))
		}, true
	case TemplateOrderPayment:
		return func(rng *rand.Rand) *trace.AccessLog {
			return OrderPayment(g.payOrders.Sample(rng), g.payments.Sample(rng), g.amounts.Sample(rng))
		}, true
	case TemplateSaveOffer:
		return func(rng *rand.Rand) *trace.AccessLog {
			return SaveOffer(g.codes.Sample(rng))
		}, true
	case TemplateGetOffer:
		return func(rng *rand.Rand) *trace.AccessLog {
			return GetOffer(g.codes.Sample(rng))
		}, true
	case TemplateNextID:
		return func(rng *rand.Rand) *trace.AccessLog {
			return NextID(g.idTypes.Sample(rng), g.allocate.Sample(rng))
		}, true
	case TemplateDecrementSKU:
		return func(rng *rand.Rand) *trace.AccessLog {
			return DecrementSKU(g.skus.SampleBatch(rng, g.domains.DecrementSKU.BatchSize))
		}, true
	}
	return nil, false
}

// Draw generates a single trace for the given template, sampling fresh
// identifiers from rng.
func (g *Generator) Draw(id TemplateID, rng *rand.Rand) (*trace.AccessLog, error) {
	draw, ok := g.drawFunc(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return draw(rng), nil
}

// Traces returns a lazy sequence of n freshly drawn traces for the given
// template. Identifiers are sampled from rng as each trace is requested, so
// consuming the sequence advances rng.
func (g *Generator) Traces(id TemplateID, n int, rng *rand.Rand) (*TraceSeq, error) {
	draw, ok := g.drawFunc(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	if n <= 0 {
		return nil, fmt.Errorf("trace count must be positive, got %d", n)
	}
	return &TraceSeq{id: id, draw: draw, remaining: n, rng: rng}, nil
}

// TraceSeq lazily yields the traces of one template batch. The sequence is
// finite and non-restartable: once Finished reports true it stays true.
// Not safe for concurrent use.
type TraceSeq struct {
	id        TemplateID
	draw      func(rng *rand.Rand) *trace.AccessLog
	remaining int
	rng       *rand.Rand
}

// Template returns the template this sequence draws from.
func (s *TraceSeq) Template() TemplateID {
	return s.id
}

// Finished reports whether the sequence has yielded all its traces.
func (s *TraceSeq) Finished() bool {
	return s.remaining <= 0
}

// Next draws and returns the next trace. The second return is false once the
// sequence is exhausted.
func (s *TraceSeq) Next() (*trace.AccessLog, bool) {
	if s.remaining <= 0 {
		return nil, false
	}
	s.remaining--
	return s.draw(s.rng), true
}
