package aggregate_test

import (
	"errors"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
)

// ledgerEvent is the sealed set of events folded by ledger.Apply.
type ledgerEvent interface {
	aggregate.Event
	ledgerEvent()
}

type Opened struct {
	aggregate.Metadata
	Owner string
}

type Credited struct {
	aggregate.Metadata
	Amount int
}

type Debited struct {
	aggregate.Metadata
	Amount int
}

type ClosedEvent struct {
	aggregate.Metadata
}

// Renamed has no handler: ledger.OnRenamed takes *Opened.
type Renamed struct {
	aggregate.Metadata
	Owner string
}

type Noted struct {
	aggregate.Metadata
	Text string
}

type Rejected struct {
	aggregate.Metadata
}

type Deposited struct {
	aggregate.EntityMetadata
	Amount int
}

func (*Credited) ledgerEvent() {}

var errRejected = errors.New("rejected")

type ledger struct {
	aggregate.Root

	Owner   string
	Balance int
	Closed  bool
	Renames int
}

func newLedger(d *aggregate.Dispatcher) *ledger {
	l := &ledger{}
	l.Init(l)
	l.UseDispatcher(d)
	return l
}

func (l *ledger) OnOpened(e *Opened) {
	l.Owner = e.Owner
}

func (l *ledger) OnClosed(*ClosedEvent) {
	l.Closed = true
}

// OnRenamed deliberately takes the wrong type and must never be used for
// *Renamed.
func (l *ledger) OnRenamed(*Opened) {
	l.Renames++
}

func (l *ledger) OnRejected(*Rejected) error {
	return errRejected
}

func (l *ledger) Apply(evt ledgerEvent) error {
	switch e := evt.(type) {
	case *Credited:
		l.Balance += e.Amount
	}
	return nil
}

func debit(l *ledger, e *Debited) error {
	l.Balance -= e.Amount
	return nil
}

type account struct {
	aggregate.EntityBase

	Balance int
	Commits int
}

func newAccount(id uuid.UUID) *account {
	a := &account{}
	a.Init(a, id)
	return a
}

func (a *account) OnDeposited(e *Deposited) {
	a.Balance += e.Amount
}

func (a *account) Commit() {
	a.Commits++
}

// newDispatcher returns an isolated dispatcher with the ledger's explicit
// handlers registered.
func newDispatcher(opts ...aggregate.Option) *aggregate.Dispatcher {
	d := aggregate.NewDispatcher(opts...)
	if err := aggregate.Handle(d, debit); err != nil {
		panic(err)
	}
	return d
}

type unhandled struct {
	target string
	event  string
}

type recordingObserver struct {
	calls []unhandled
}

func (o *recordingObserver) Unhandled(target string, evt aggregate.Event) {
	o.calls = append(o.calls, unhandled{target: target, event: aggregate.EventName(evt)})
}

func seq(n uint64, evt aggregate.Event) aggregate.Event {
	evt.Meta().Sequence = n
	return evt
}
