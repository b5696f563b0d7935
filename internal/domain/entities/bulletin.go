package entities

import "time"

// MeasurementBulletin (BM) is the payment-measurement document tied to
// a contracting request. It carries a dual coordinator/manager approval
// gate plus a separate director payment-release decision that is only
// meaningful once the dual gate converged.
//
// Invariant: replacing the attached artifact resets the dual gate and
// the release decision. An approved BM whose supporting document
// changed is no longer trustworthy.
//
// Storage model (DynamoDB):
//   - PK: request_id (one BM per request)

type MeasurementBulletin struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	EventID     string    `json:"event_id,omitempty"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date,omitempty"`
	PeriodStart time.Time `json:"period_start,omitempty"`
	PeriodEnd   time.Time `json:"period_end,omitempty"`
	ArtifactRef string    `json:"artifact_ref"`

	ApprovalGate   Gate           `json:"approval_gate"`
	PaymentRelease ApprovalRecord `json:"payment_release"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMeasurementBulletin(id, requestID string) MeasurementBulletin {
	return MeasurementBulletin{
		ID:             id,
		RequestID:      requestID,
		ApprovalGate:   NewGate(RoleCoordinator, RoleManager),
		PaymentRelease: ApprovalRecord{Role: RoleDirector, Decision: DecisionPending},
	}
}

func (bm MeasurementBulletin) Converged() bool {
	return bm.ApprovalGate.State() == DecisionApproved
}

// Invalidate resets both approval gates and the payment release after
// the supporting artifact changed.
func (bm *MeasurementBulletin) Invalidate() {
	bm.ApprovalGate.Reset()
	bm.PaymentRelease.Decision = DecisionPending
	bm.PaymentRelease.DecidedAt = time.Time{}
	bm.PaymentRelease.Justification = ""
}
