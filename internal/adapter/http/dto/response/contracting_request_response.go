package response

import (
	"time"

	"gestao_terceiros/internal/domain/entities"
)

type ApprovalRecordResponse struct {
	Role          string    `json:"role"`
	Decision      string    `json:"decision"`
	DecidedAt     time.Time `json:"decided_at,omitempty"`
	Justification string    `json:"justification,omitempty"`
}

func fromApprovalRecord(r entities.ApprovalRecord) ApprovalRecordResponse {
	return ApprovalRecordResponse{
		Role:          string(r.Role),
		Decision:      string(r.Decision),
		DecidedAt:     r.DecidedAt,
		Justification: r.Justification,
	}
}

type GateResponse struct {
	State   string                   `json:"state"`
	Members []ApprovalRecordResponse `json:"members"`
}

func fromGate(g entities.Gate) GateResponse {
	members := make([]ApprovalRecordResponse, 0, len(g.Members))
	for _, m := range g.Members {
		members = append(members, fromApprovalRecord(m))
	}
	return GateResponse{State: string(g.State()), Members: members}
}

type SupplyReviewResponse struct {
	Approved      bool      `json:"approved"`
	ReviewerID    string    `json:"reviewer_id"`
	ReviewedAt    time.Time `json:"reviewed_at"`
	Justification string    `json:"justification,omitempty"`
}

type SelectionResponse struct {
	SupplierID    string    `json:"supplier_id"`
	Justification string    `json:"justification"`
	SelectedAt    time.Time `json:"selected_at"`
}

type ContractDraftResponse struct {
	Number        string                 `json:"number"`
	Object        string                 `json:"object,omitempty"`
	StartDate     time.Time              `json:"start_date,omitempty"`
	EndDate       time.Time              `json:"end_date,omitempty"`
	TotalValue    float64                `json:"total_value"`
	ArtifactRef   string                 `json:"artifact_ref,omitempty"`
	ManagerReview ApprovalRecordResponse `json:"manager_review"`
	AttachedAt    time.Time              `json:"attached_at"`
}

type ContractingRequestResponse struct {
	ID             string  `json:"id"`
	ProjectCode    string  `json:"project_code"`
	CoordinatorID  string  `json:"coordinator_id"`
	LineLeadID     string  `json:"line_lead_id,omitempty"`
	Description    string  `json:"description,omitempty"`
	Requirements   string  `json:"requirements,omitempty"`
	Budgeted       bool    `json:"budgeted"`
	BudgetedAmount float64 `json:"budgeted_amount"`
	ScheduleRef    string  `json:"schedule_ref,omitempty"`
	Status         string  `json:"status"`

	SupplyReview        *SupplyReviewResponse  `json:"supply_review,omitempty"`
	ScreenedSupplierIDs []string               `json:"screened_supplier_ids,omitempty"`
	NoCandidateDeclared bool                   `json:"no_candidate_declared"`
	Selection           *SelectionResponse     `json:"selection,omitempty"`
	SupplierGate        GateResponse           `json:"supplier_gate"`
	Draft               *ContractDraftResponse `json:"draft,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromContractingRequest(r entities.ContractingRequest) ContractingRequestResponse {
	resp := ContractingRequestResponse{
		ID:                  r.ID,
		ProjectCode:         r.ProjectCode,
		CoordinatorID:       r.CoordinatorID,
		LineLeadID:          r.LineLeadID,
		Description:         r.Description,
		Requirements:        r.Requirements,
		Budgeted:            r.Budgeted,
		BudgetedAmount:      r.BudgetedAmount,
		ScheduleRef:         r.ScheduleRef,
		Status:              string(r.Status),
		ScreenedSupplierIDs: r.ScreenedSupplierIDs,
		NoCandidateDeclared: r.NoCandidateDeclared,
		SupplierGate:        fromGate(r.SupplierGate),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
	if r.SupplyReview != nil {
		resp.SupplyReview = &SupplyReviewResponse{
			Approved:      r.SupplyReview.Approved,
			ReviewerID:    r.SupplyReview.ReviewerID,
			ReviewedAt:    r.SupplyReview.ReviewedAt,
			Justification: r.SupplyReview.Justification,
		}
	}
	if r.Selection != nil {
		resp.Selection = &SelectionResponse{
			SupplierID:    r.Selection.SupplierID,
			Justification: r.Selection.Justification,
			SelectedAt:    r.Selection.SelectedAt,
		}
	}
	if r.Draft != nil {
		resp.Draft = &ContractDraftResponse{
			Number:        r.Draft.Number,
			Object:        r.Draft.Object,
			StartDate:     r.Draft.StartDate,
			EndDate:       r.Draft.EndDate,
			TotalValue:    r.Draft.TotalValue,
			ArtifactRef:   r.Draft.ArtifactRef,
			ManagerReview: fromApprovalRecord(r.Draft.ManagerReview),
			AttachedAt:    r.Draft.AttachedAt,
		}
	}
	return resp
}
