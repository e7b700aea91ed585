package checkout

// Payment is the settlement record of an invoice. It is written exactly once
// on a successful pay and never mutated, refunds included: it stays behind as
// evidence of the original settlement.
type Payment struct {
	InvoiceID InvoiceID
	Payer     string
	Amount    int64
	Timestamp int64
}
