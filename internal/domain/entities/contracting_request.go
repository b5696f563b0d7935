package entities

import (
	"fmt"
	"time"
)

// RequestStatus is the closed lifecycle enumeration for a contracting
// request. Transitions are validated against an explicit table; unknown
// or renamed values cannot enter the system.

type RequestStatus string

const (
	RequestStatusSubmitted               RequestStatus = "submetida"
	RequestStatusSupplyRejected          RequestStatus = "reprovada_suprimento"
	RequestStatusSupplyApproved          RequestStatus = "aprovada_suprimento"
	RequestStatusScreeningComplete       RequestStatus = "triagem_realizada"
	RequestStatusSupplierSelected        RequestStatus = "fornecedor_selecionado"
	RequestStatusSupplierApprovalPending RequestStatus = "aprovacao_fornecedor_pendente"
	RequestStatusSupplierApproved        RequestStatus = "fornecedor_aprovado"
	RequestStatusContractPlanning        RequestStatus = "planejamento_bm"
	RequestStatusContractApprovalPending RequestStatus = "aprovacao_contrato_pendente"
	RequestStatusOnboarded               RequestStatus = "onboarding"
)

// Terminal states accept no further transitions.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusSupplyRejected || s == RequestStatusOnboarded
}

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusSubmitted:               {RequestStatusSupplyApproved, RequestStatusSupplyRejected},
	RequestStatusSupplyApproved:          {RequestStatusScreeningComplete},
	RequestStatusScreeningComplete:       {RequestStatusScreeningComplete, RequestStatusSupplierSelected},
	RequestStatusSupplierSelected:        {RequestStatusSupplierApprovalPending, RequestStatusScreeningComplete},
	RequestStatusSupplierApprovalPending: {RequestStatusSupplierApproved, RequestStatusScreeningComplete},
	RequestStatusSupplierApproved:        {RequestStatusContractPlanning},
	RequestStatusContractPlanning:        {RequestStatusContractPlanning, RequestStatusContractApprovalPending},
	RequestStatusContractApprovalPending: {RequestStatusOnboarded, RequestStatusContractPlanning},
}

func (s RequestStatus) CanTransition(to RequestStatus) bool {
	for _, next := range requestTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports a state-machine misuse. The caller
// must not have mutated anything when it is returned.

type InvalidTransitionError struct {
	From      RequestStatus
	Attempted RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q", e.From, e.Attempted)
}

// SupplyReview is the single supply-team gate at the head of the
// lifecycle. Rejection is terminal.

type SupplyReview struct {
	Approved      bool      `json:"approved"`
	ReviewerID    string    `json:"reviewer_id"`
	ReviewedAt    time.Time `json:"reviewed_at"`
	Justification string    `json:"justification,omitempty"`
}

// SupplierSelection is the coordinator's pick from the screened set.
// Cleared whenever a later gate rejects it.

type SupplierSelection struct {
	SupplierID    string    `json:"supplier_id"`
	Justification string    `json:"justification"`
	SelectedAt    time.Time `json:"selected_at"`
}

// ContractDraft is the contract document attached by the supply team
// during planning, plus the gerência review of it.

type ContractDraft struct {
	Number         string         `json:"number"`
	Object         string         `json:"object"`
	StartDate      time.Time      `json:"start_date"`
	EndDate        time.Time      `json:"end_date"`
	TotalValue     float64        `json:"total_value"`
	ArtifactRef    string         `json:"artifact_ref"`
	ManagerReview  ApprovalRecord `json:"manager_review"`
	AttachedAt     time.Time      `json:"attached_at"`
}

func (d *ContractDraft) Approved() bool {
	return d != nil && d.ManagerReview.Decision == DecisionApproved
}

// ContractingRequest is the root entity of the workflow: a request to
// hire a third-party supplier under an existing client contract.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Version guards the read-modify-write of gate decisions.

type ContractingRequest struct {
	ID             string  `json:"id"`
	ProjectCode    string  `json:"project_code"`
	CoordinatorID  string  `json:"coordinator_id"`
	LineLeadID     string  `json:"line_lead_id,omitempty"`
	Description    string  `json:"description"`
	Requirements   string  `json:"requirements,omitempty"`
	Budgeted       bool    `json:"budgeted"`
	BudgetedAmount float64 `json:"budgeted_amount"`
	ScheduleRef    string  `json:"schedule_ref,omitempty"`

	Status RequestStatus `json:"status"`

	SupplyReview        *SupplyReview      `json:"supply_review,omitempty"`
	ScreenedSupplierIDs []string           `json:"screened_supplier_ids,omitempty"`
	NoCandidateDeclared bool               `json:"no_candidate_declared"`
	Selection           *SupplierSelection `json:"selection,omitempty"`
	SupplierGate        Gate               `json:"supplier_gate"`
	Draft               *ContractDraft     `json:"draft,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transition moves the request to the next status after validating it
// against the table. It is the only way status changes.
func (r *ContractingRequest) Transition(to RequestStatus) error {
	if !r.Status.CanTransition(to) {
		return &InvalidTransitionError{From: r.Status, Attempted: to}
	}
	r.Status = to
	return nil
}

func (r *ContractingRequest) Screened(supplierID string) bool {
	for _, id := range r.ScreenedSupplierIDs {
		if id == supplierID {
			return true
		}
	}
	return false
}

// ClearSelection unsets the chosen supplier and its gate, forcing a
// re-screening round.
func (r *ContractingRequest) ClearSelection() {
	r.Selection = nil
	r.SupplierGate.Reset()
	r.ScreenedSupplierIDs = nil
}
