package request

import (
	"strings"

	"gestao_terceiros/internal/usecase"
)

// SubmitOrderRequest opens a work order under an umbrella contract.
type SubmitOrderRequest struct {
	ContractID  string `json:"contract_id" binding:"required"`
	RequesterID string `json:"requester_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Value       string `json:"value" binding:"required"`
	Deadline    string `json:"deadline"`
}

func (r SubmitOrderRequest) ToCommand() (usecase.SubmitOrderCommand, error) {
	value, err := ParseMoney(r.Value)
	if err != nil {
		return usecase.SubmitOrderCommand{}, err
	}
	deadline, err := ParseDate(r.Deadline)
	if err != nil {
		return usecase.SubmitOrderCommand{}, err
	}
	return usecase.SubmitOrderCommand{
		ContractID:  strings.TrimSpace(r.ContractID),
		RequesterID: strings.TrimSpace(r.RequesterID),
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Value:       value,
		Deadline:    deadline,
	}, nil
}

// AttachOrderDocumentRequest is the supply-team upload step of the
// order chain.
type AttachOrderDocumentRequest struct {
	ActorID     string `json:"actor_id" binding:"required"`
	DocumentRef string `json:"document_ref" binding:"required"`
}
