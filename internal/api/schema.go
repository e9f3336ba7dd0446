package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/AIS170/xrpl-hackathon/internal/domain"
)

var validate = validator.New()

type loginRequest struct {
	Token string `json:"token" validate:"required"`
}

// transactionPayload mirrors domain.TransactionRequest on the wire. Amounts
// carry no range tags: the ledger accepts caller-supplied values verbatim.
type transactionPayload struct {
	Type      string  `json:"type" validate:"required,oneof=BUY SELL"`
	Asset     string  `json:"asset" validate:"required"`
	Amount    float64 `json:"amount"`
	ImpactAUD float64 `json:"impactAud"`
}

type executeRequest struct {
	Transactions []transactionPayload `json:"transactions" validate:"required,min=1,dive"`
}

func (r executeRequest) toDomain() []domain.TransactionRequest {
	return lo.Map(r.Transactions, func(t transactionPayload, _ int) domain.TransactionRequest {
		return domain.TransactionRequest{
			Type:      domain.TransactionType(t.Type),
			Asset:     t.Asset,
			Amount:    t.Amount,
			ImpactAUD: t.ImpactAUD,
		}
	})
}
