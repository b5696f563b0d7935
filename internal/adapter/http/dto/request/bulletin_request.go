package request

import (
	"strings"

	"gestao_terceiros/internal/usecase"
)

// BulletinSubmitRequest creates or replaces the measurement bulletin of
// a request. Replacing the artifact restarts every approval on it.
type BulletinSubmitRequest struct {
	ActorID     string `json:"actor_id" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	PaymentDate string `json:"payment_date"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	ArtifactRef string `json:"artifact_ref" binding:"required"`
	EventID     string `json:"event_id"`
}

func (r BulletinSubmitRequest) ToInput() (usecase.BulletinInput, error) {
	amount, err := ParseMoney(r.Amount)
	if err != nil {
		return usecase.BulletinInput{}, err
	}
	paymentDate, err := ParseDate(r.PaymentDate)
	if err != nil {
		return usecase.BulletinInput{}, err
	}
	periodStart, err := ParseDate(r.PeriodStart)
	if err != nil {
		return usecase.BulletinInput{}, err
	}
	periodEnd, err := ParseDate(r.PeriodEnd)
	if err != nil {
		return usecase.BulletinInput{}, err
	}
	return usecase.BulletinInput{
		Amount:      amount,
		PaymentDate: paymentDate,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		ArtifactRef: strings.TrimSpace(r.ArtifactRef),
		EventID:     strings.TrimSpace(r.EventID),
	}, nil
}
