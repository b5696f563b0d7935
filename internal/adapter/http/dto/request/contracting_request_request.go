package request

import (
	"strings"
	"time"

	"gestao_terceiros/internal/usecase"
)

// SubmitContractingRequest is the payload opening a new contracting
// request.
type SubmitContractingRequest struct {
	ProjectCode    string `json:"project_code" binding:"required"`
	CoordinatorID  string `json:"coordinator_id" binding:"required"`
	LineLeadID     string `json:"line_lead_id"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	ScheduleRef    string `json:"schedule_ref"`
	Budgeted       bool   `json:"budgeted"`
	BudgetedAmount string `json:"budgeted_amount"`
}

func (r SubmitContractingRequest) ToCommand() (usecase.SubmitRequestCommand, error) {
	amount, err := ParseMoney(r.BudgetedAmount)
	if err != nil {
		return usecase.SubmitRequestCommand{}, err
	}
	return usecase.SubmitRequestCommand{
		ProjectCode:    strings.TrimSpace(r.ProjectCode),
		CoordinatorID:  strings.TrimSpace(r.CoordinatorID),
		LineLeadID:     strings.TrimSpace(r.LineLeadID),
		Description:    r.Description,
		Requirements:   r.Requirements,
		ScheduleRef:    r.ScheduleRef,
		Budgeted:       r.Budgeted,
		BudgetedAmount: amount,
	}, nil
}

// SupplyReviewRequest is the supply-team verdict on a submitted
// request.
type SupplyReviewRequest struct {
	ReviewerID    string `json:"reviewer_id" binding:"required"`
	Approve       bool   `json:"approve"`
	Justification string `json:"justification"`
}

// DecisionRequest is the shared payload for gate votes: supplier
// approval, draft review, bulletin decisions and payment release.
type DecisionRequest struct {
	ActorID       string `json:"actor_id" binding:"required"`
	Decision      string `json:"decision" binding:"required"`
	Justification string `json:"justification"`
}

// ContractDraftRequest attaches the contract document during planning.
type ContractDraftRequest struct {
	ActorID     string `json:"actor_id" binding:"required"`
	Number      string `json:"number" binding:"required"`
	Object      string `json:"object"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TotalValue  string `json:"total_value"`
	ArtifactRef string `json:"artifact_ref" binding:"required"`
}

func (r ContractDraftRequest) ToInput() (usecase.ContractDraftInput, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return usecase.ContractDraftInput{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return usecase.ContractDraftInput{}, err
	}
	total, err := ParseMoney(r.TotalValue)
	if err != nil {
		return usecase.ContractDraftInput{}, err
	}
	return usecase.ContractDraftInput{
		Number:      strings.TrimSpace(r.Number),
		Object:      r.Object,
		StartDate:   start,
		EndDate:     end,
		TotalValue:  total,
		ArtifactRef: strings.TrimSpace(r.ArtifactRef),
	}, nil
}

// ScheduleRequest renegotiates the contract window during planning.
type ScheduleRequest struct {
	ActorID   string `json:"actor_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (r ScheduleRequest) ResolveWindow() (time.Time, time.Time, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
