package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Domains declares the identifier populations every template samples from.
// Build with DefaultDomains() or load overrides from YAML via LoadDomains.
// Populations live here, not in the templates: a template never knows how
// large its id spaces are.
type Domains struct {
	CartUpdate   CartUpdateDomain   `yaml:"cart_update"`
	RateItem     RateItemDomain     `yaml:"rate_item"`
	OrderPayment OrderPaymentDomain `yaml:"order_payment"`
	Offer        OfferDomain        `yaml:"offer"`
	NextID       NextIDDomain       `yaml:"next_id"`
	DecrementSKU DecrementSKUDomain `yaml:"decrement_sku"`
}

// CartUpdateDomain sizes the cart and order id spaces.
type CartUpdateDomain struct {
	Carts  int `yaml:"carts"`
	Orders int `yaml:"orders"`
}

// RateItemDomain sizes the item, customer, and rating spaces.
type RateItemDomain struct {
	Items     int `yaml:"items"`
	Customers int `yaml:"customers"`
	Ratings   int `yaml:"ratings"`
}

// OrderPaymentDomain sizes the order and payment id spaces and parameterizes
// the charged amount. The amount is Normal(mean, std_dev) rounded to cents
// and deliberately unclamped, so the left tail can produce negative amounts.
type OrderPaymentDomain struct {
	Orders       int     `yaml:"orders"`
	Payments     int     `yaml:"payments"`
	AmountMean   float64 `yaml:"amount_mean"`
	AmountStdDev float64 `yaml:"amount_std_dev"`
}

// OfferDomain sizes the offer code space, shared by save and lookup.
type OfferDomain struct {
	Codes int `yaml:"codes"`
}

// NextIDDomain sizes the id-type space and sets the probability that the
// allocator misses and inserts a fresh row.
type NextIDDomain struct {
	IDTypes      int     `yaml:"id_types"`
	AllocateProb float64 `yaml:"allocate_prob"`
}

// DecrementSKUDomain sizes the sku space and the per-transaction batch.
// Batch skus are drawn with replacement.
type DecrementSKUDomain struct {
	SKUs      int `yaml:"skus"`
	BatchSize int `yaml:"batch_size"`
}

// DefaultDomains returns the domain sizes of the Broadleaf study workload.
func DefaultDomains() *Domains {
	return &Domains{
		CartUpdate:   CartUpdateDomain{Carts: 100, Orders: 100},
		RateItem:     RateItemDomain{Items: 100, Customers: 100, Ratings: 10},
		OrderPayment: OrderPaymentDomain{Orders: 1000, Payments: 1000, AmountMean: 200, AmountStdDev: 50},
		Offer:        OfferDomain{Codes: 1000},
		NextID:       NextIDDomain{IDTypes: 100, AllocateProb: 0.5},
		DecrementSKU: DecrementSKUDomain{SKUs: 100, BatchSize: 4},
	}
}

// LoadDomains reads a YAML domains file on top of the defaults, so a file
// only needs to list the fields it overrides. Uses strict parsing:
// unrecognized keys (typos) are rejected.
func LoadDomains(path string) (*Domains, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading domains file: %w", err)
	}
	d := DefaultDomains()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(d); err != nil {
		return nil, fmt.Errorf("parsing domains file: %w", err)
	}
	return d, nil
}

// Validate checks that every population and parameter is usable.
func (d *Domains) Validate() error {
	counts := []struct {
		name string
		val  int
	}{
		{"cart_update.carts", d.CartUpdate.Carts},
		{"cart_update.orders", d.CartUpdate.Orders},
		{"rate_item.items", d.RateItem.Items},
		{"rate_item.customers", d.RateItem.Customers},
		{"rate_item.ratings", d.RateItem.Ratings},
		{"order_payment.orders", d.OrderPayment.Orders},
		{"order_payment.payments", d.OrderPayment.Payments},
		{"offer.codes", d.Offer.Codes},
		{"next_id.id_types", d.NextID.IDTypes},
		{"decrement_sku.skus", d.DecrementSKU.SKUs},
		{"decrement_sku.batch_size", d.DecrementSKU.BatchSize},
	}
	for _, c := range counts {
		if c.val <= 0 {
			return fmt.Errorf("%s must be positive, got %d", c.name, c.val)
		}
	}
	if err := validateFinite("order_payment.amount_mean", d.OrderPayment.AmountMean); err != nil {
		return err
	}
	if err := validateFinite("order_payment.amount_std_dev", d.OrderPayment.AmountStdDev); err != nil {
		return err
	}
	if d.OrderPayment.AmountStdDev < 0 {
		return fmt.Errorf("order_payment.amount_std_dev must be non-negative, got %f", d.OrderPayment.AmountStdDev)
	}
	if err := validateFinite("next_id.allocate_prob", d.NextID.AllocateProb); err != nil {
		return err
	}
	if d.NextID.AllocateProb < 0 || d.NextID.AllocateProb > 1 {
		return fmt.Errorf("next_id.allocate_prob must be in [0, 1], got %f", d.NextID.AllocateProb)
	}
	return nil
}

func validateFinite(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	return nil
}
