package events

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// SubjectPrefix is the root of the event subject hierarchy. Full subjects
// are SubjectPrefix.<name>.<merchant>.
const SubjectPrefix = "checkout"

// NewNATS returns a sink publishing JSON events to NATS.
func NewNATS(nc *nats.Conn) *NATS {
	return &NATS{nc: nc}
}

type NATS struct {
	nc *nats.Conn
}

var _ Sink = (*NATS)(nil)

func (n *NATS) Publish(ctx context.Context, ev Event) error {
	ev.InvoiceIDHex = ev.InvoiceID.String()
	b, err := json.Marshal(&ev)
	if err != nil {
		return errors.Wrap(err, "failed json marshal event")
	}
	subject := SubjectPrefix + "." + ev.Name + "." + ev.Merchant
	if err := n.nc.Publish(subject, b); err != nil {
		return errors.Wrap(err, "failed publish to nats")
	}
	return nil
}
