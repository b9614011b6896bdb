package workload

// Transaction templates distilled from BroadleafCommerce's ad-hoc transaction
// suite (the workload studied in Tang et al., SIGMOD '22). Each template is a
// pure function from sampled identifiers to one access log: same inputs, same
// trace. All randomness stays in the harness.

import (
	"github.com/txn-sim/txn-sim/sim/trace"
)

// TemplateID names a transaction template.
type TemplateID string

const (
	// TemplateUpdateCart swaps the active order on a cart.
	TemplateUpdateCart TemplateID = "update-cart"
	// TemplateRateItem records a customer's rating for an item.
	TemplateRateItem TemplateID = "rate-item"
	// TemplateOrderPayment persists an order payment in unconfirmed state.
	TemplateOrderPayment TemplateID = "order-payment"
	// TemplateSaveOffer inserts an offer together with its code.
	TemplateSaveOffer TemplateID = "save-offer"
	// TemplateGetOffer looks up an offer by code.
	TemplateGetOffer TemplateID = "get-offer"
	// TemplateNextID advances a per-type id allocator.
	TemplateNextID TemplateID = "next-id"
	// TemplateDecrementSKU decrements inventory for a batch of skus.
	TemplateDecrementSKU TemplateID = "decrement-sku"
)

// AllTemplates lists every template in canonical generation order.
var AllTemplates = []TemplateID{
	TemplateUpdateCart,
	TemplateRateItem,
	TemplateOrderPayment,
	TemplateSaveOffer,
	TemplateGetOffer,
	TemplateNextID,
	TemplateDecrementSKU,
}

// displayNames maps template IDs to the names used in simulation headers.
var displayNames = map[TemplateID]string{
	TemplateUpdateCart:   "Broadleaf update cart",
	TemplateRateItem:     "Broadleaf rate item",
	TemplateOrderPayment: "Broadleaf order payment",
	TemplateSaveOffer:    "Broadleaf save offer",
	TemplateGetOffer:     "Broadleaf get offer",
	TemplateNextID:       "Broadleaf get next id",
	TemplateDecrementSKU: "Broadleaf decrement SKU",
}

// IsValidTemplate reports whether id names a known template.
func IsValidTemplate(id string) bool {
	_, ok := displayNames[TemplateID(id)]
	return ok
}

// DisplayName returns the human-readable name used in simulation headers.
func (id TemplateID) DisplayName() string {
	return displayNames[id]
}

// UpdateCart models the cart-state filter: read the cart under its lock and
// swap in the new order.
func UpdateCart(cartID, orderID int) *trace.AccessLog {
	al := trace.NewAccessLog()
	al.AppendRead(key("cart", cartID))
	al.AppendWrite(key("order", orderID))
	return al
}

// RateItem models adding a rating: read the item's rating summary and the
// customer's rating detail, then write the new rating into both rows. The
// detail accesses share the customer id; the summary accesses share the
// item id.
func RateItem(itemID, customerID, rating int) *trace.AccessLog {
	al := trace.NewAccessLog()
	al.AppendRead(key("summary", itemID))
	al.AppendRead(key("detail", customerID))
	al.AppendWrite(qualifiedKey("detail", customerID, "rating", rating))
	al.AppendWrite(qualifiedKey("summary", itemID, "rating", rating))
	return al
}

// OrderPayment models the denormalized payment insert: the charged amount,
// the unconfirmed-status marker, the order/payment join row, and the customer
// payment row, all written atomically. No reads.
func OrderPayment(orderID, paymentID int, amount float64) *trace.AccessLog {
	al := trace.NewAccessLog()
	al.AppendWrite(amountKey(amount))
	al.AppendWrite(UnconfirmedTypeKey)
	al.AppendWrite(OrderPaymentKey{OrderID: orderID, PaymentID: paymentID}.String())
	al.AppendWrite(key("customerPayment", paymentID))
	return al
}

// SaveOffer models the offer insert: the code row and the offer row are
// created under the same identifier.
func SaveOffer(code int) *trace.AccessLog {
	al := trace.NewAccessLog()
	al.AppendWrite(key("offerCode", code))
	al.AppendWrite(key("offer", code))
	return al
}

// GetOffer models the offer lookup by code: a single read.
func GetOffer(code int) *trace.AccessLog {
	al := trace.NewAccessLog()
	al.AppendRead(key("offer", code))
	return al
}

// NextID models the id allocator: read the allocator row for the id type,
// insert a fresh row when the allocator misses (allocate), then write back
// the advanced allocator. Trace length is 2, or 3 when allocate is set.
func NextID(idType int, allocate bool) *trace.AccessLog {
	al := trace.NewAccessLog()
	al.AppendRead(key("id", idType))
	if allocate {
		al.AppendWrite(key("id", idType))
	}
	al.AppendWrite(key("id", idType))
	return al
}

// DecrementSKU models the inventory decrement: for each sku in batch order,
// read the available quantity then write the decremented value.
func DecrementSKU(skus []int) *trace.AccessLog {
	al := trace.NewAccessLog()
	for _, sku := range skus {
		al.AppendRead(key("quantity", sku))
		al.AppendWrite(key("quantity", sku))
	}
	return al
}
