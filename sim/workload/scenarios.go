package workload

// Built-in domain presets for common contention regimes. Each returns a valid
// Domains ready for NewGenerator. Shrinking an id space raises the chance
// that concurrent traces collide on a key, which is the knob isolation
// studies care about.

import (
	"errors"
	"fmt"
)

// ErrUnknownScenario reports a scenario name outside the preset registry.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario names accepted by DomainsForScenario.
const (
	ScenarioDefault        = "default"
	ScenarioHighContention = "high-contention"
	ScenarioLowContention  = "low-contention"
)

// validScenarios maps accepted scenario names.
var validScenarios = map[string]bool{
	ScenarioDefault:        true,
	ScenarioHighContention: true,
	ScenarioLowContention:  true,
}

// IsValidScenario reports whether name is a recognized scenario preset.
func IsValidScenario(name string) bool {
	return validScenarios[name]
}

// DomainsForScenario returns the preset domains for a scenario name.
func DomainsForScenario(name string) (*Domains, error) {
	switch name {
	case ScenarioDefault:
		return DefaultDomains(), nil
	case ScenarioHighContention:
		return HighContentionDomains(), nil
	case ScenarioLowContention:
		return LowContentionDomains(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
}

// HighContentionDomains shrinks every id space to a tenth of the defaults,
// so traces pile onto a small hot key set.
func HighContentionDomains() *Domains {
	return &Domains{
		CartUpdate:   CartUpdateDomain{Carts: 10, Orders: 10},
		RateItem:     RateItemDomain{Items: 10, Customers: 10, Ratings: 10},
		OrderPayment: OrderPaymentDomain{Orders: 100, Payments: 100, AmountMean: 200, AmountStdDev: 50},
		Offer:        OfferDomain{Codes: 100},
		NextID:       NextIDDomain{IDTypes: 10, AllocateProb: 0.5},
		DecrementSKU: DecrementSKUDomain{SKUs: 10, BatchSize: 4},
	}
}

// LowContentionDomains inflates every id space a hundredfold, so traces are
// near-disjoint and collisions are rare.
func LowContentionDomains() *Domains {
	return &Domains{
		CartUpdate:   CartUpdateDomain{Carts: 10000, Orders: 10000},
		RateItem:     RateItemDomain{Items: 10000, Customers: 10000, Ratings: 10},
		OrderPayment: OrderPaymentDomain{Orders: 100000, Payments: 100000, AmountMean: 200, AmountStdDev: 50},
		Offer:        OfferDomain{Codes: 100000},
		NextID:       NextIDDomain{IDTypes: 10000, AllocateProb: 0.5},
		DecrementSKU: DecrementSKUDomain{SKUs: 10000, BatchSize: 4},
	}
}
