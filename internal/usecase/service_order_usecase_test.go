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

func serviceOrderFixture(t *testing.T) (*ServiceOrderUseCase, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockIContractRepository, *mock_interfaces.MockISupplierRepository, *mock_interfaces.MockIDirectory, *mock_interfaces.MockINotificationDispatcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	contracts := mock_interfaces.NewMockIContractRepository(ctrl)
	suppliers := mock_interfaces.NewMockISupplierRepository(ctrl)
	directory := mock_interfaces.NewMockIDirectory(ctrl)
	mailer := mock_interfaces.NewMockINotificationDispatcher(ctrl)
	uc := NewServiceOrderUseCase(orders, contracts, suppliers, directory, mailer)
	return uc, orders, contracts, suppliers, directory, mailer
}

func TestServiceOrderUseCase_Submit(t *testing.T) {
	t.Run("non umbrella supplier", func(t *testing.T) {
		uc, _, contracts, suppliers, directory, _ := serviceOrderFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Role: entities.RoleCoordinator}, nil)
		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", SupplierID: "f-1", Status: entities.ContractStatusActive}, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.Supplier{ID: "f-1", Umbrella: false}, nil)

		_, err := uc.Submit(context.Background(), SubmitOrderCommand{ContractID: "ct-1", RequesterID: "u-1", Title: "Troca de filtro", Value: 300})
		if !errors.Is(err, ErrNotUmbrellaContract) {
			t.Fatalf("expected ErrNotUmbrellaContract, got %v", err)
		}
	})

	t.Run("suspended contract", func(t *testing.T) {
		uc, _, contracts, _, directory, _ := serviceOrderFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusSuspended}, nil)

		_, err := uc.Submit(context.Background(), SubmitOrderCommand{ContractID: "ct-1", RequesterID: "u-1", Title: "x", Value: 10})
		if !errors.Is(err, ErrContractNotActive) {
			t.Fatalf("expected ErrContractNotActive, got %v", err)
		}
	})

	t.Run("opens pending line lead", func(t *testing.T) {
		uc, orders, contracts, suppliers, directory, mailer := serviceOrderFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "u-1").Return(entities.User{ID: "u-1"}, nil)
		directory.EXPECT().UsersByRole(gomock.Any(), entities.RoleLineLead).Return(nil, nil).AnyTimes()
		mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", ProjectCode: "P-1", SupplierID: "f-1", Status: entities.ContractStatusActive}, nil)
		suppliers.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.Supplier{ID: "f-1", Umbrella: true}, nil)
		orders.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceOrderRequest) (entities.ServiceOrderRequest, error) {
				if r.ID == "" || r.Status != entities.ServiceOrderStatusPendingLineLead {
					t.Fatalf("unexpected order: %+v", r)
				}
				if r.LineLeadReview.Decision != entities.DecisionPending || r.ManagerReview.Decision != entities.DecisionPending {
					t.Fatalf("expected pending reviews")
				}
				return r, nil
			},
		)

		if _, err := uc.Submit(context.Background(), SubmitOrderCommand{ContractID: "ct-1", RequesterID: "u-1", Title: "Troca de filtro", Value: 300, Deadline: time.Now().AddDate(0, 1, 0)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceOrderUseCase_Chain(t *testing.T) {
	t.Run("line lead approval hands off to supply", func(t *testing.T) {
		uc, orders, _, _, directory, mailer := serviceOrderFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "l-1").Return(entities.User{ID: "l-1", Role: entities.RoleLineLead}, nil)
		directory.EXPECT().UsersByRole(gomock.Any(), entities.RoleSupply).Return(nil, nil).AnyTimes()
		mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		orders.EXPECT().GetRequestByID(gomock.Any(), "os-1").Return(entities.ServiceOrderRequest{ID: "os-1", Title: "x", Status: entities.ServiceOrderStatusPendingLineLead}, nil)
		orders.EXPECT().SaveRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceOrderRequest) (entities.ServiceOrderRequest, error) {
				if r.Status != entities.ServiceOrderStatusPendingUpload {
					t.Fatalf("expected pending upload, got %s", r.Status)
				}
				return r, nil
			},
		)

		if _, err := uc.DecideLineLead(context.Background(), "os-1", "l-1", entities.DecisionApproved, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("decision out of order", func(t *testing.T) {
		uc, orders, _, _, directory, _ := serviceOrderFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "g-1").Return(entities.User{ID: "g-1", Role: entities.RoleManager}, nil)
		orders.EXPECT().GetRequestByID(gomock.Any(), "os-1").Return(entities.ServiceOrderRequest{ID: "os-1", Status: entities.ServiceOrderStatusPendingLineLead}, nil)

		_, err := uc.DecideManager(context.Background(), "os-1", "g-1", entities.DecisionApproved, "")
		if !errors.Is(err, ErrWrongOrderStep) {
			t.Fatalf("expected ErrWrongOrderStep, got %v", err)
		}
	})

	t.Run("document required before manager step", func(t *testing.T) {
		uc, _, _, _, directory, _ := serviceOrderFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "sup-1").Return(entities.User{ID: "sup-1", Role: entities.RoleSupply}, nil)

		_, err := uc.AttachDocument(context.Background(), "os-1", "sup-1", "  ")
		if !errors.Is(err, ErrMissingOrderDocument) {
			t.Fatalf("expected ErrMissingOrderDocument, got %v", err)
		}
	})

	t.Run("attach moves to pending manager", func(t *testing.T) {
		uc, orders, _, _, directory, mailer := serviceOrderFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "sup-1").Return(entities.User{ID: "sup-1", Role: entities.RoleSupply}, nil)
		directory.EXPECT().UsersByRole(gomock.Any(), entities.RoleManager).Return(nil, nil).AnyTimes()
		mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		orders.EXPECT().GetRequestByID(gomock.Any(), "os-1").Return(entities.ServiceOrderRequest{ID: "os-1", Title: "x", Status: entities.ServiceOrderStatusPendingUpload}, nil)
		orders.EXPECT().SaveRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceOrderRequest) (entities.ServiceOrderRequest, error) {
				if r.Status != entities.ServiceOrderStatusPendingManager || r.DocumentRef != "docs/os-1.pdf" {
					t.Fatalf("unexpected order: %+v", r)
				}
				return r, nil
			},
		)

		if _, err := uc.AttachDocument(context.Background(), "os-1", "sup-1", "docs/os-1.pdf"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("manager approval materializes the order", func(t *testing.T) {
		uc, orders, _, _, directory, mailer := serviceOrderFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "g-1").Return(entities.User{ID: "g-1", Role: entities.RoleManager}, nil)
		directory.EXPECT().GetUser(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Email: "u@x"}, nil).AnyTimes()
		directory.EXPECT().UsersByRole(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		pending := entities.ServiceOrderRequest{
			ID: "os-1", ContractID: "ct-1", RequesterID: "u-1", Title: "x", Value: 300,
			DocumentRef: "docs/os-1.pdf", Status: entities.ServiceOrderStatusPendingManager,
		}
		orders.EXPECT().GetRequestByID(gomock.Any(), "os-1").Return(pending, nil)
		orders.EXPECT().SaveRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceOrderRequest) (entities.ServiceOrderRequest, error) {
				if r.Status != entities.ServiceOrderStatusApproved {
					t.Fatalf("expected approved status, got %s", r.Status)
				}
				return r, nil
			},
		)
		orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.OrderRequestID != "os-1" || o.ContractID != "ct-1" || o.Value != 300 {
					t.Fatalf("unexpected materialized order: %+v", o)
				}
				return o, nil
			},
		)

		res, err := uc.DecideManager(context.Background(), "os-1", "g-1", entities.DecisionApproved, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Status.Terminal() {
			t.Fatalf("expected terminal status, got %s", res.Status)
		}
	})

	t.Run("manager rejection is terminal and skips materialization", func(t *testing.T) {
		uc, orders, _, _, directory, mailer := serviceOrderFixture(t)
		directory.EXPECT().GetUser(gomock.Any(), "g-1").Return(entities.User{ID: "g-1", Role: entities.RoleManager}, nil)
		directory.EXPECT().GetUser(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Email: "u@x"}, nil).AnyTimes()
		mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		orders.EXPECT().GetRequestByID(gomock.Any(), "os-1").Return(entities.ServiceOrderRequest{
			ID: "os-1", RequesterID: "u-1", Title: "x", Status: entities.ServiceOrderStatusPendingManager,
		}, nil)
		orders.EXPECT().SaveRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceOrderRequest) (entities.ServiceOrderRequest, error) {
				return r, nil
			},
		)

		res, err := uc.DecideManager(context.Background(), "os-1", "g-1", entities.DecisionRejected, "sem orçamento")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ServiceOrderStatusRejected {
			t.Fatalf("expected rejected status, got %s", res.Status)
		}
	})
}
