// Package dispatch sends one rendered RFP invitation to a set of vendors with
// per-recipient failure isolation and aggregate outcome reporting.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/rfp-manager/internal/rendering"
	"github.com/jonathan/rfp-manager/internal/types"
)

// Store is the record-store surface the dispatcher reads from. It never
// writes through it.
type Store interface {
	// GetRFP returns the RFP or nil when it does not exist.
	GetRFP(ctx context.Context, id uuid.UUID) (*types.RFP, error)
	// ResolveVendors returns the vendors matching ids, in request order of
	// first match. Unmatched ids are dropped.
	ResolveVendors(ctx context.Context, ids []uuid.UUID) ([]types.Vendor, error)
}

// Transport delivers one message to one address.
type Transport interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Status classifies a successful dispatch outcome.
type Status string

// Dispatch status values. A dispatch with zero successes is not an outcome,
// it is a DispatchError.
const (
	StatusAllSent     Status = "all_sent"
	StatusPartialSent Status = "partial_sent"
)

// Outcome is the aggregate result of one dispatch invocation. SentTo and
// FailedTo hold recipient emails in vendor resolution order; Skipped holds
// the ids of resolved vendors that had no email and were never attempted.
type Outcome struct {
	SentTo   []string `json:"sentTo"`
	FailedTo []string `json:"failedTo"`
	Skipped  []string `json:"skipped"`
	Status   Status   `json:"status"`
}

// Default tuning for per-recipient sends. One unresponsive recipient must not
// stall the remaining set.
const (
	DefaultSendTimeout   = 30 * time.Second
	DefaultMaxConcurrent = 4
)

// Dispatcher coordinates one-message-to-many-vendors delivery.
type Dispatcher struct {
	store         Store
	transport     Transport
	sendTimeout   time.Duration
	maxConcurrent int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSendTimeout bounds each per-recipient transport call.
func WithSendTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.sendTimeout = timeout
		}
	}
}

// WithMaxConcurrent bounds how many transport calls run at once.
func WithMaxConcurrent(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxConcurrent = n
		}
	}
}

// NewDispatcher creates a dispatcher over the given store and transport.
func NewDispatcher(store Store, transport Transport, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:         store,
		transport:     transport,
		sendTimeout:   DefaultSendTimeout,
		maxConcurrent: DefaultMaxConcurrent,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// recipient is one resolved vendor with a non-empty email, pending exactly
// one send attempt.
type recipient struct {
	email string
}

// Dispatch renders the RFP invitation once and sends it to every resolvable
// vendor. Per-recipient transport failures are isolated and recorded; they
// never abort the remaining recipients and are never retried. The final
// partition is computed only after every attempt has resolved, in vendor
// resolution order.
func (d *Dispatcher) Dispatch(ctx context.Context, rfpID uuid.UUID, vendorIDs []uuid.UUID) (*Outcome, error) {
	if len(vendorIDs) == 0 {
		return nil, &ValidationError{Message: "vendorIds array is required"}
	}

	rfp, err := d.store.GetRFP(ctx, rfpID)
	if err != nil {
		return nil, fmt.Errorf("failed to load RFP: %w", err)
	}
	if rfp == nil {
		return nil, &NotFoundError{RFPID: rfpID}
	}

	vendors, err := d.store.ResolveVendors(ctx, vendorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vendors: %w", err)
	}
	if len(vendors) == 0 {
		return nil, &ValidationError{Message: "no valid vendors found"}
	}

	subject, body := rendering.RenderInvitation(*rfp)

	// Partition resolved vendors into attemptable recipients and skipped
	// vendors before any send happens, preserving resolution order.
	var recipients []recipient
	var skipped []string
	for _, vendor := range vendors {
		if vendor.Email == "" {
			skipped = append(skipped, vendor.ID.String())
			continue
		}
		recipients = append(recipients, recipient{email: vendor.Email})
	}

	// One tagged result per recipient, indexed by resolution order. A send
	// goroutine only ever writes its own slot, so no lock is needed, and a
	// failing send never cancels the group.
	sendErrs := make([]error, len(recipients))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(d.maxConcurrent)
	for i, rcpt := range recipients {
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(gCtx, d.sendTimeout)
			defer cancel()
			sendErrs[i] = d.transport.Send(sendCtx, rcpt.email, subject, body)
			return nil
		})
	}
	_ = g.Wait()

	sentTo := []string{}
	failedTo := []string{}
	for i, rcpt := range recipients {
		if sendErrs[i] != nil {
			failedTo = append(failedTo, rcpt.email)
			continue
		}
		sentTo = append(sentTo, rcpt.email)
	}

	if len(sentTo) == 0 {
		return nil, &DispatchError{
			Message:  "failed to send RFP emails",
			FailedTo: failedTo,
			Skipped:  skipped,
		}
	}

	status := StatusAllSent
	if len(failedTo) > 0 {
		status = StatusPartialSent
	}
	if skipped == nil {
		skipped = []string{}
	}

	return &Outcome{
		SentTo:   sentTo,
		FailedTo: failedTo,
		Skipped:  skipped,
		Status:   status,
	}, nil
}
