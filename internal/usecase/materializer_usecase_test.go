package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_terceiros/internal/domain/entities"
	mock_interfaces "gestao_terceiros/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type materializerMocks struct {
	contracts *mock_interfaces.MockIContractRepository
	requests  *mock_interfaces.MockIContractingRequestRepository
	bulletins *mock_interfaces.MockIBulletinRepository
	proposals *mock_interfaces.MockIProposalRepository
	events    *mock_interfaces.MockIEventRepository
	directory *mock_interfaces.MockIDirectory
	mailer    *mock_interfaces.MockINotificationDispatcher
}

func materializerFixture(t *testing.T) (*MaterializerUseCase, materializerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := materializerMocks{
		contracts: mock_interfaces.NewMockIContractRepository(ctrl),
		requests:  mock_interfaces.NewMockIContractingRequestRepository(ctrl),
		bulletins: mock_interfaces.NewMockIBulletinRepository(ctrl),
		proposals: mock_interfaces.NewMockIProposalRepository(ctrl),
		events:    mock_interfaces.NewMockIEventRepository(ctrl),
		directory: mock_interfaces.NewMockIDirectory(ctrl),
		mailer:    mock_interfaces.NewMockINotificationDispatcher(ctrl),
	}
	uc := NewMaterializerUseCase(m.contracts, m.requests, m.bulletins, m.proposals, m.events, m.directory, m.mailer)
	return uc, m
}

func readyRequest() entities.ContractingRequest {
	return entities.ContractingRequest{
		ID: "r-1", ProjectCode: "P-1", CoordinatorID: "c-1",
		Status:    entities.RequestStatusContractApprovalPending,
		Selection: &entities.SupplierSelection{SupplierID: "f-1"},
		Draft: &entities.ContractDraft{
			Number: "CT-01", Object: "manutenção", TotalValue: 9000,
			StartDate:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			ManagerReview: entities.ApprovalRecord{Role: entities.RoleManager, Decision: entities.DecisionApproved},
		},
	}
}

func convergedBulletin() entities.MeasurementBulletin {
	bm := entities.NewMeasurementBulletin("bm-1", "r-1")
	now := time.Now().UTC()
	_ = bm.ApprovalGate.Record(entities.RoleCoordinator, entities.DecisionApproved, "", now)
	_ = bm.ApprovalGate.Record(entities.RoleManager, entities.DecisionApproved, "", now)
	return bm
}

func TestMaterializerUseCase_MaterializeIfReady(t *testing.T) {
	t.Run("existing contract is a no-op", func(t *testing.T) {
		uc, m := materializerFixture(t)
		m.contracts.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(entities.Contract{ID: "ct-1", RequestID: "r-1"}, nil)

		res, err := uc.MaterializeIfReady(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "ct-1" {
			t.Fatalf("expected existing contract, got %+v", res)
		}
	})

	t.Run("bulletin not converged", func(t *testing.T) {
		uc, m := materializerFixture(t)
		m.contracts.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(entities.Contract{}, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(readyRequest(), nil)
		m.bulletins.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(entities.NewMeasurementBulletin("bm-1", "r-1"), nil)

		_, err := uc.MaterializeIfReady(context.Background(), "r-1")
		if !errors.Is(err, ErrMaterializationNotReady) {
			t.Fatalf("expected ErrMaterializationNotReady, got %v", err)
		}
	})

	t.Run("draft not approved", func(t *testing.T) {
		uc, m := materializerFixture(t)
		r := readyRequest()
		r.Draft.ManagerReview.Decision = entities.DecisionPending
		m.contracts.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(entities.Contract{}, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(r, nil)

		_, err := uc.MaterializeIfReady(context.Background(), "r-1")
		if !errors.Is(err, ErrMaterializationNotReady) {
			t.Fatalf("expected ErrMaterializationNotReady, got %v", err)
		}
	})

	t.Run("creates contract, reparents events, onboards", func(t *testing.T) {
		uc, m := materializerFixture(t)
		m.directory.EXPECT().UsersByRole(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.directory.EXPECT().GetUser(gomock.Any(), "c-1").Return(entities.User{ID: "c-1", Email: "c@x"}, nil).AnyTimes()
		m.mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		m.contracts.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(entities.Contract{}, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(readyRequest(), nil)
		m.bulletins.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(convergedBulletin(), nil)
		m.proposals.EXPECT().GetByRequestAndSupplier(gomock.Any(), "r-1", "f-1").Return(entities.Proposal{RequestID: "r-1", SupplierID: "f-1", Amount: 9000, PaymentTerms: entities.PaymentTermsOnApprovedBulletin}, nil)
		m.contracts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.RequestID != "r-1" || c.SupplierID != "f-1" || c.TotalValue != 9000 {
					t.Fatalf("unexpected contract: %+v", c)
				}
				if c.Status != entities.ContractStatusActive || c.PaymentTerms != entities.PaymentTermsOnApprovedBulletin {
					t.Fatalf("unexpected contract fields: %+v", c)
				}
				return c, nil
			},
		)
		m.events.EXPECT().ReparentToContract(gomock.Any(), "r-1", gomock.Any()).Return(2, nil)
		m.requests.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ContractingRequest) (entities.ContractingRequest, error) {
				if r.Status != entities.RequestStatusOnboarded {
					t.Fatalf("expected onboarding status, got %s", r.Status)
				}
				return r, nil
			},
		)

		res, err := uc.MaterializeIfReady(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected created contract")
		}
	})

	t.Run("conditional put lost reads back the winner", func(t *testing.T) {
		uc, m := materializerFixture(t)
		m.contracts.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(entities.Contract{}, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(readyRequest(), nil)
		m.bulletins.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(convergedBulletin(), nil)
		m.proposals.EXPECT().GetByRequestAndSupplier(gomock.Any(), "r-1", "f-1").Return(entities.Proposal{RequestID: "r-1", SupplierID: "f-1"}, nil)
		m.contracts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contract{}, nil)
		m.contracts.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(entities.Contract{ID: "ct-winner", RequestID: "r-1"}, nil)

		res, err := uc.MaterializeIfReady(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "ct-winner" {
			t.Fatalf("expected winner contract, got %+v", res)
		}
	})
}
