package response

import (
	"time"

	"gestao_terceiros/internal/domain/entities"
)

type BulletinResponse struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	EventID     string    `json:"event_id,omitempty"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date,omitempty"`
	PeriodStart time.Time `json:"period_start,omitempty"`
	PeriodEnd   time.Time `json:"period_end,omitempty"`
	ArtifactRef string    `json:"artifact_ref"`

	ApprovalGate   GateResponse           `json:"approval_gate"`
	PaymentRelease ApprovalRecordResponse `json:"payment_release"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBulletin(bm entities.MeasurementBulletin) BulletinResponse {
	return BulletinResponse{
		ID:             bm.ID,
		RequestID:      bm.RequestID,
		EventID:        bm.EventID,
		Amount:         bm.Amount,
		PaymentDate:    bm.PaymentDate,
		PeriodStart:    bm.PeriodStart,
		PeriodEnd:      bm.PeriodEnd,
		ArtifactRef:    bm.ArtifactRef,
		ApprovalGate:   fromGate(bm.ApprovalGate),
		PaymentRelease: fromApprovalRecord(bm.PaymentRelease),
		CreatedAt:      bm.CreatedAt,
		UpdatedAt:      bm.UpdatedAt,
	}
}
