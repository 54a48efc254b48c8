package domain

import "time"

type OutcomeStatus string

const (
	OutcomeSuccess       OutcomeStatus = "success"
	OutcomeRejected      OutcomeStatus = "rejected"
	OutcomeGatewayFailed OutcomeStatus = "gateway_failed"
)

// RejectReason classifies why an order was rejected without (or despite) a
// successful charge.
type RejectReason string

const (
	ReasonUnknownTarget     RejectReason = "unknown_target"
	ReasonSoldOut           RejectReason = "sold_out"
	ReasonPersistenceFailed RejectReason = "persistence_failed"
)

// Outcome is the terminal classification of a processed order. Nothing past
// the order processor inspects errors directly; handlers render from this.
type Outcome struct {
	Kind          PaymentKind
	Status        OutcomeStatus
	TransactionID string
	Reason        RejectReason
	Err           error
	ProcessedAt   time.Time
}

func Success(kind PaymentKind, txnID string, at time.Time) Outcome {
	return Outcome{Kind: kind, Status: OutcomeSuccess, TransactionID: txnID, ProcessedAt: at}
}

func Rejected(kind PaymentKind, reason RejectReason, at time.Time) Outcome {
	return Outcome{Kind: kind, Status: OutcomeRejected, Reason: reason, ProcessedAt: at}
}

func GatewayFailed(kind PaymentKind, err error, at time.Time) Outcome {
	return Outcome{Kind: kind, Status: OutcomeGatewayFailed, Err: err, ProcessedAt: at}
}
