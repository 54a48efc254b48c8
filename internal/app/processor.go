package app

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/dloman/sbhx-store/internal/clock"
	"github.com/dloman/sbhx-store/internal/domain"
	"github.com/dloman/sbhx-store/internal/payment"
	"github.com/dloman/sbhx-store/internal/storage/jsonfile"
)

// Processor runs the order pipeline: resolve target, check precondition,
// charge the gateway, apply the mutation, flush the store.
//
// For flows with a store, the store lock is held across the entire sequence
// including the outbound gateway call. That serializes orders per store on
// gateway latency, but it is what makes the no-oversell guarantee hold: two
// concurrent signups can never both pass the precondition check before either
// decrements. The alternative (narrow lock, re-check after charging) needs a
// compensating refund the gateway contract does not offer.
type Processor struct {
	gateway payment.Gateway
	clock   clock.Clock
	log     *charmlog.Logger
}

func NewProcessor(gw payment.Gateway, clk clock.Clock, logger *charmlog.Logger) *Processor {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Processor{
		gateway: gw,
		clock:   clk,
		log:     logger,
	}
}

type SignupInput struct {
	CourseType string
	Payment    domain.PaymentInfo
}

type DonationInput struct {
	FundraiserName string
	Amount         float64
	Payment        domain.PaymentInfo
}

type InvoiceInput struct {
	InvoiceID       string
	Price           float64
	DisableSalesTax bool
	Fees            float64
	Payment         domain.PaymentInfo
}

// Signup charges the item's price and decrements its stock by exactly one.
// Items with unlimited stock are never decremented.
func (p *Processor) Signup(ctx context.Context, store *jsonfile.Store[domain.Item], in SignupInput) domain.Outcome {
	return processOrder(ctx, p, domain.KindCourseSignup, store, in.Payment, orderSpec[domain.Item]{
		key: in.CourseType,
		precondition: func(item domain.Item) error {
			if item.SoldOut() {
				return domain.ErrSoldOut
			}
			return nil
		},
		amount:      func(item domain.Item) float64 { return item.Price },
		description: func(item domain.Item) string { return item.Name },
		mutate: func(item domain.Item) domain.Item {
			if item.NumberOfItems != nil {
				n := *item.NumberOfItems - 1
				item.NumberOfItems = &n
			}
			return item
		},
	})
}

// Donate charges the submitted amount and adds it to the fundraiser's total.
func (p *Processor) Donate(ctx context.Context, store *jsonfile.Store[domain.Fundraiser], in DonationInput) domain.Outcome {
	return processOrder(ctx, p, domain.KindDonation, store, in.Payment, orderSpec[domain.Fundraiser]{
		key:         in.FundraiserName,
		amount:      func(domain.Fundraiser) float64 { return in.Amount },
		description: func(f domain.Fundraiser) string { return f.Name },
		mutate: func(f domain.Fundraiser) domain.Fundraiser {
			f.AmountRaised += in.Amount
			return f
		},
	})
}

// Invoice charges price plus tax and fees. There is no store and no mutation;
// an invoice payment is stateless.
func (p *Processor) Invoice(ctx context.Context, in InvoiceInput) domain.Outcome {
	now := p.clock.Now()
	_, total := InvoiceTotal(in.Price, in.DisableSalesTax, in.Fees)

	txn, err := p.gateway.Charge(ctx, payment.ChargeRequest{
		Customer:    in.Payment,
		Amount:      payment.FormatAmount(total),
		PaymentType: domain.KindInvoice,
		Description: "Invoice ID #" + in.InvoiceID,
	})
	if err != nil {
		p.log.Error("payment failed", "kind", domain.KindInvoice, "invoice_id", in.InvoiceID, "err", err)
		return domain.GatewayFailed(domain.KindInvoice, err, now)
	}

	p.log.Info("invoice payment processed",
		"invoice_id", in.InvoiceID, "amount", payment.FormatAmount(total),
		"transaction_id", txn.ID, "processed_at", now)
	return domain.Success(domain.KindInvoice, txn.ID, now)
}

// orderSpec is the per-kind capability set the shared pipeline runs with.
// precondition may be nil; amount and description see the record as resolved
// under the lock.
type orderSpec[R any] struct {
	key          string
	precondition func(R) error
	amount       func(R) float64
	description  func(R) string
	mutate       func(R) R
}

func processOrder[R any](
	ctx context.Context,
	p *Processor,
	kind domain.PaymentKind,
	store *jsonfile.Store[R],
	pay domain.PaymentInfo,
	spec orderSpec[R],
) domain.Outcome {
	now := p.clock.Now()
	var outcome domain.Outcome

	_ = store.WithLock(func(v *jsonfile.View[R]) error {
		rec, ok := v.Get(spec.key)
		if !ok {
			p.log.Warn("order for unknown target", "kind", kind, "key", spec.key, "err", domain.ErrUnknownTarget)
			outcome = domain.Rejected(kind, domain.ReasonUnknownTarget, now)
			return nil
		}

		if spec.precondition != nil {
			if err := spec.precondition(rec); err != nil {
				p.log.Warn("order precondition failed", "kind", kind, "key", spec.key, "err", err)
				outcome = domain.Rejected(kind, domain.ReasonSoldOut, now)
				return nil
			}
		}

		amount := payment.FormatAmount(spec.amount(rec))
		txn, err := p.gateway.Charge(ctx, payment.ChargeRequest{
			Customer:    pay,
			Amount:      amount,
			PaymentType: kind,
			Description: spec.description(rec),
		})
		if err != nil {
			p.log.Error("payment failed", "kind", kind, "key", spec.key, "err", err)
			outcome = domain.GatewayFailed(kind, err, now)
			return nil
		}

		// The mutation stays in memory even if the flush fails below:
		// the customer has been charged, so memory is the truthful state.
		v.Put(spec.key, spec.mutate(rec))

		if err := v.Flush(); err != nil {
			p.log.Error("charge succeeded but store flush failed, manual reconciliation required",
				"kind", kind, "key", spec.key, "transaction_id", txn.ID,
				"amount", amount, "processed_at", now, "err", err)
			outcome = domain.Rejected(kind, domain.ReasonPersistenceFailed, now)
			outcome.TransactionID = txn.ID
			return nil
		}

		p.log.Info("order processed",
			"kind", kind, "key", spec.key, "amount", amount,
			"transaction_id", txn.ID, "processed_at", now)
		outcome = domain.Success(kind, txn.ID, now)
		return nil
	})

	return outcome
}
