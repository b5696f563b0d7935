package response

import (
	"testing"
	"time"

	"gestao_terceiros/internal/domain/entities"
)

func TestFromContractingRequest(t *testing.T) {
	now := time.Now().UTC()
	gate := entities.NewGate(entities.RoleManager, entities.RoleDirector)
	_ = gate.Record(entities.RoleManager, entities.DecisionApproved, "", now)

	r := entities.ContractingRequest{
		ID:            "req-1",
		ProjectCode:   "PRJ-1",
		CoordinatorID: "coord-1",
		Status:        entities.RequestStatusSupplierApprovalPending,
		SupplyReview:  &entities.SupplyReview{Approved: true, ReviewerID: "sup-1", ReviewedAt: now},
		Selection:     &entities.SupplierSelection{SupplierID: "forn-1", Justification: "melhor proposta", SelectedAt: now},
		SupplierGate:  gate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res := FromContractingRequest(r)
	if res.ID != "req-1" || res.Status != string(entities.RequestStatusSupplierApprovalPending) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.SupplyReview == nil || !res.SupplyReview.Approved || res.SupplyReview.ReviewerID != "sup-1" {
		t.Fatalf("unexpected supply review: %+v", res.SupplyReview)
	}
	if res.Selection == nil || res.Selection.SupplierID != "forn-1" {
		t.Fatalf("unexpected selection: %+v", res.Selection)
	}
	if res.SupplierGate.State != string(entities.DecisionPending) {
		t.Fatalf("expected pending gate, got %q", res.SupplierGate.State)
	}
	if len(res.SupplierGate.Members) != 2 {
		t.Fatalf("expected 2 gate members, got %d", len(res.SupplierGate.Members))
	}
	if res.SupplierGate.Members[0].Role != string(entities.RoleManager) || res.SupplierGate.Members[0].Decision != string(entities.DecisionApproved) {
		t.Fatalf("unexpected manager record: %+v", res.SupplierGate.Members[0])
	}
	if res.Draft != nil {
		t.Fatalf("expected nil draft, got %+v", res.Draft)
	}
}
