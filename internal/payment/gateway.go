package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/dloman/sbhx-store/internal/domain"
)

// Gateway is the outbound payment-processing boundary. Implementations either
// return a settled transaction or a classified *Error; no retries happen on
// either side of this interface.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (Transaction, error)
}

// ChargeRequest carries everything one charge needs. Amount is already
// formatted to cent precision; see FormatAmount.
type ChargeRequest struct {
	Customer    domain.PaymentInfo
	Amount      string
	PaymentType domain.PaymentKind
	Description string
}

// Transaction is a successfully settled charge.
type Transaction struct {
	ID        string
	Amount    string
	CreatedAt time.Time
}

// FormatAmount renders a charge amount with exactly two decimal digits. The
// gateway never receives more than cent precision.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
