package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_terceiros/internal/domain/entities"
	mock_interfaces "gestao_terceiros/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func screeningFixture(t *testing.T) (*ScreeningUseCase, *mock_interfaces.MockIContractingRequestRepository, *mock_interfaces.MockIProposalRepository, *mock_interfaces.MockISupplierRepository, *mock_interfaces.MockIDirectory, *mock_interfaces.MockINotificationDispatcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	requests := mock_interfaces.NewMockIContractingRequestRepository(ctrl)
	proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
	suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
	directory := mock_interfaces.NewMockIDirectory(ctrl)
	mailer := mock_interfaces.NewMockINotificationDispatcher(ctrl)
	uc := NewScreeningUseCase(requests, proposals, suppliers, directory, mailer)
	return uc, requests, proposals, suppliers, directory, mailer
}

func TestScreeningUseCase_Screen(t *testing.T) {
	t.Run("empty candidate set", func(t *testing.T) {
		uc, _, _, _, directory, _ := screeningFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "sup-1").Return(entities.User{ID: "sup-1", Role: entities.RoleSupply}, nil)

		_, err := uc.Screen(context.Background(), "r-1", "sup-1", nil)
		if !errors.Is(err, ErrEmptyCandidateSet) {
			t.Fatalf("expected ErrEmptyCandidateSet, got %v", err)
		}
	})

	t.Run("supplier outside the catalog", func(t *testing.T) {
		uc, requests, _, suppliers, directory, _ := screeningFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "sup-1").Return(entities.User{ID: "sup-1", Role: entities.RoleSupply}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ContractingRequest{ID: "r-1", Status: entities.RequestStatusSupplyApproved}, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "f-9").Return(entities.Supplier{}, nil)

		_, err := uc.Screen(context.Background(), "r-1", "sup-1", []CandidateInput{{SupplierID: "f-9"}})
		if !errors.Is(err, ErrUnknownSupplier) {
			t.Fatalf("expected ErrUnknownSupplier, got %v", err)
		}
	})

	t.Run("screens candidates and upserts bids", func(t *testing.T) {
		uc, requests, proposals, suppliers, directory, mailer := screeningFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "sup-1").Return(entities.User{ID: "sup-1", Role: entities.RoleSupply}, nil)
		directory.EXPECT().GetUser(gomock.Any(), "c-1").Return(entities.User{ID: "c-1", Email: "c@x"}, nil).AnyTimes()
		mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ContractingRequest{ID: "r-1", CoordinatorID: "c-1", Status: entities.RequestStatusSupplyApproved}, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.Supplier{ID: "f-1"}, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "f-2").Return(entities.Supplier{ID: "f-2"}, nil)
		requests.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ContractingRequest) (entities.ContractingRequest, error) {
				if r.Status != entities.RequestStatusScreeningComplete {
					t.Fatalf("expected screening status, got %s", r.Status)
				}
				if len(r.ScreenedSupplierIDs) != 2 {
					t.Fatalf("expected 2 screened suppliers, got %v", r.ScreenedSupplierIDs)
				}
				return r, nil
			},
		)
		proposals.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.RequestID != "r-1" || p.SupplierID != "f-1" || p.Amount != 1500 {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				return p, nil
			},
		)

		_, err := uc.Screen(context.Background(), "r-1", "sup-1", []CandidateInput{
			{SupplierID: "f-1", Amount: 1500, PaymentTerms: entities.PaymentTermsOnApprovedBulletin},
			{SupplierID: "f-2"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("re-screen after rejection clears old selection", func(t *testing.T) {
		uc, requests, _, suppliers, directory, mailer := screeningFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "sup-1").Return(entities.User{ID: "sup-1", Role: entities.RoleSupply}, nil)
		directory.EXPECT().GetUser(gomock.Any(), "c-1").Return(entities.User{ID: "c-1", Email: "c@x"}, nil).AnyTimes()
		mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		prior := entities.ContractingRequest{
			ID: "r-1", CoordinatorID: "c-1", Status: entities.RequestStatusScreeningComplete,
			ScreenedSupplierIDs: []string{"f-1"},
			NoCandidateDeclared: true,
		}
		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(prior, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "f-3").Return(entities.Supplier{ID: "f-3"}, nil)
		requests.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ContractingRequest) (entities.ContractingRequest, error) {
				if r.NoCandidateDeclared {
					t.Fatalf("expected cleared no-candidate flag")
				}
				if len(r.ScreenedSupplierIDs) != 1 || r.ScreenedSupplierIDs[0] != "f-3" {
					t.Fatalf("expected replaced candidate set, got %v", r.ScreenedSupplierIDs)
				}
				return r, nil
			},
		)

		if _, err := uc.Screen(context.Background(), "r-1", "sup-1", []CandidateInput{{SupplierID: "f-3"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestScreeningUseCase_DeclareNoCandidate(t *testing.T) {
	t.Run("only the request coordinator", func(t *testing.T) {
		uc, requests, _, _, _, _ := screeningFixture(t)
		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ContractingRequest{ID: "r-1", CoordinatorID: "c-1", Status: entities.RequestStatusScreeningComplete}, nil)

		_, err := uc.DeclareNoCandidate(context.Background(), "r-1", "c-2")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("declares and clears candidates", func(t *testing.T) {
		uc, requests, _, _, directory, mailer := screeningFixture(t)
		directory.EXPECT().UsersByRole(gomock.Any(), entities.RoleSupply).Return([]entities.User{{ID: "s", Email: "s@x"}}, nil).AnyTimes()
		mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ContractingRequest{
			ID: "r-1", CoordinatorID: "c-1", Status: entities.RequestStatusScreeningComplete,
			ScreenedSupplierIDs: []string{"f-1"},
		}, nil)
		requests.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ContractingRequest) (entities.ContractingRequest, error) {
				if !r.NoCandidateDeclared || len(r.ScreenedSupplierIDs) != 0 {
					t.Fatalf("expected declared flag and cleared set, got %+v", r)
				}
				return r, nil
			},
		)

		if _, err := uc.DeclareNoCandidate(context.Background(), "r-1", "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestScreeningUseCase_SelectSupplier(t *testing.T) {
	t.Run("justification is mandatory", func(t *testing.T) {
		uc, _, _, _, _, _ := screeningFixture(t)
		_, err := uc.SelectSupplier(context.Background(), "r-1", "c-1", "f-1", "   ")
		if !errors.Is(err, ErrMissingJustification) {
			t.Fatalf("expected ErrMissingJustification, got %v", err)
		}
	})

	t.Run("supplier must be screened in", func(t *testing.T) {
		uc, requests, _, _, _, _ := screeningFixture(t)
		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ContractingRequest{
			ID: "r-1", CoordinatorID: "c-1", Status: entities.RequestStatusScreeningComplete,
			ScreenedSupplierIDs: []string{"f-1"},
		}, nil)

		_, err := uc.SelectSupplier(context.Background(), "r-1", "c-1", "f-9", "preferência")
		if !errors.Is(err, ErrNotAmongCandidates) {
			t.Fatalf("expected ErrNotAmongCandidates, got %v", err)
		}
	})

	t.Run("selection opens the dual gate", func(t *testing.T) {
		uc, requests, _, _, directory, mailer := screeningFixture(t)
		directory.EXPECT().ManagersForCoordinator(gomock.Any(), "c-1").Return([]entities.User{{ID: "g-1", Email: "g@x"}}, nil).AnyTimes()
		mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ContractingRequest{
			ID: "r-1", CoordinatorID: "c-1", Status: entities.RequestStatusScreeningComplete,
			ScreenedSupplierIDs: []string{"f-1", "f-2"},
			SupplierGate:        entities.NewGate(entities.RoleManager, entities.RoleDirector),
		}, nil)
		requests.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ContractingRequest) (entities.ContractingRequest, error) {
				if r.Status != entities.RequestStatusSupplierSelected {
					t.Fatalf("expected selected status, got %s", r.Status)
				}
				if r.Selection == nil || r.Selection.SupplierID != "f-2" || r.Selection.Justification != "melhor prazo" {
					t.Fatalf("unexpected selection: %+v", r.Selection)
				}
				return r, nil
			},
		)

		if _, err := uc.SelectSupplier(context.Background(), "r-1", "c-1", "f-2", "melhor prazo"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestScreeningUseCase_RenegotiateValue(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		uc, _, _, _, _, _ := screeningFixture(t)
		_, err := uc.RenegotiateValue(context.Background(), "r-1", "g-1", 0)
		if !errors.Is(err, ErrInvalidBidAmount) {
			t.Fatalf("expected ErrInvalidBidAmount, got %v", err)
		}
	})

	t.Run("updates winning proposal", func(t *testing.T) {
		uc, requests, proposals, _, directory, _ := screeningFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "g-1").Return(entities.User{ID: "g-1", Role: entities.RoleManager}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ContractingRequest{
			ID: "r-1", Status: entities.RequestStatusContractPlanning,
			Selection: &entities.SupplierSelection{SupplierID: "f-1"},
		}, nil)
		proposals.EXPECT().GetByRequestAndSupplier(gomock.Any(), "r-1", "f-1").Return(entities.Proposal{RequestID: "r-1", SupplierID: "f-1", Amount: 1000}, nil)
		proposals.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Amount != 900 {
					t.Fatalf("expected renegotiated amount, got %.2f", p.Amount)
				}
				return p, nil
			},
		)

		res, err := uc.RenegotiateValue(context.Background(), "r-1", "g-1", 900)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Amount != 900 {
			t.Fatalf("expected 900, got %.2f", res.Amount)
		}
	})
}
