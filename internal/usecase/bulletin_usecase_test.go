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

// materializerStub counts convergence callbacks without running the
// real materializer.
type materializerStub struct {
	IMaterializerUseCase
	calls int
	err   error
}

func (s *materializerStub) MaterializeIfReady(ctx context.Context, requestID string) (entities.Contract, error) {
	s.calls++
	return entities.Contract{}, s.err
}

func bulletinFixture(t *testing.T, mat IMaterializerUseCase) (*BulletinUseCase, *mock_interfaces.MockIBulletinRepository, *mock_interfaces.MockIContractingRequestRepository, *mock_interfaces.MockIDirectory, *mock_interfaces.MockINotificationDispatcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	bulletins := mock_interfaces.NewMockIBulletinRepository(ctrl)
	requests := mock_interfaces.NewMockIContractingRequestRepository(ctrl)
	directory := mock_interfaces.NewMockIDirectory(ctrl)
	mailer := mock_interfaces.NewMockINotificationDispatcher(ctrl)
	uc := NewBulletinUseCase(bulletins, requests, directory, mat, mailer)
	return uc, bulletins, requests, directory, mailer
}

func quietNotifications(directory *mock_interfaces.MockIDirectory, mailer *mock_interfaces.MockINotificationDispatcher) {
	directory.EXPECT().UsersByRole(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	directory.EXPECT().ManagersForCoordinator(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	directory.EXPECT().GetUser(gomock.Any(), "c-1").Return(entities.User{ID: "c-1", Role: entities.RoleCoordinator, Email: "c@x"}, nil).AnyTimes()
	mailer.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func planningRequest(status entities.RequestStatus) entities.ContractingRequest {
	return entities.ContractingRequest{
		ID: "r-1", ProjectCode: "P-1", CoordinatorID: "c-1", Status: status,
		Selection: &entities.SupplierSelection{SupplierID: "f-1"},
	}
}

func TestBulletinUseCase_Submit(t *testing.T) {
	t.Run("missing artifact", func(t *testing.T) {
		uc, _, _, directory, _ := bulletinFixture(t, nil)
		directory.EXPECT().GetUser(gomock.Any(), "sup-1").Return(entities.User{ID: "sup-1", Role: entities.RoleSupply}, nil)

		_, err := uc.Submit(context.Background(), "r-1", "sup-1", BulletinInput{Amount: 100})
		if !errors.Is(err, ErrMissingArtifact) {
			t.Fatalf("expected ErrMissingArtifact, got %v", err)
		}
	})

	t.Run("first submission advances the request", func(t *testing.T) {
		uc, bulletins, requests, directory, mailer := bulletinFixture(t, nil)
		directory.EXPECT().GetUser(gomock.Any(), "sup-1").Return(entities.User{ID: "sup-1", Role: entities.RoleSupply}, nil)
		quietNotifications(directory, mailer)

		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(planningRequest(entities.RequestStatusContractPlanning), nil)
		bulletins.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(entities.MeasurementBulletin{}, nil)
		bulletins.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bm entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
				if bm.ID == "" || bm.RequestID != "r-1" || bm.Amount != 2500 || bm.ArtifactRef != "docs/bm-1.pdf" {
					t.Fatalf("unexpected bulletin: %+v", bm)
				}
				if bm.ApprovalGate.State() != entities.DecisionPending {
					t.Fatalf("expected pending gate")
				}
				return bm, nil
			},
		)
		requests.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ContractingRequest) (entities.ContractingRequest, error) {
				if r.Status != entities.RequestStatusContractApprovalPending {
					t.Fatalf("expected approval-pending status, got %s", r.Status)
				}
				return r, nil
			},
		)

		_, err := uc.Submit(context.Background(), "r-1", "sup-1", BulletinInput{Amount: 2500, ArtifactRef: "docs/bm-1.pdf"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("replacement resets both gates", func(t *testing.T) {
		uc, bulletins, requests, directory, mailer := bulletinFixture(t, nil)
		directory.EXPECT().GetUser(gomock.Any(), "sup-1").Return(entities.User{ID: "sup-1", Role: entities.RoleSupply}, nil)
		quietNotifications(directory, mailer)

		existing := entities.NewMeasurementBulletin("bm-1", "r-1")
		now := time.Now().UTC()
		if err := existing.ApprovalGate.Record(entities.RoleCoordinator, entities.DecisionApproved, "", now); err != nil {
			t.Fatalf("fixture: %v", err)
		}
		if err := existing.ApprovalGate.Record(entities.RoleManager, entities.DecisionApproved, "", now); err != nil {
			t.Fatalf("fixture: %v", err)
		}
		existing.PaymentRelease = entities.ApprovalRecord{Role: entities.RoleDirector, Decision: entities.DecisionApproved, DecidedAt: now}
		existing.ArtifactRef = "docs/bm-1.pdf"

		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(planningRequest(entities.RequestStatusContractApprovalPending), nil)
		bulletins.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(existing, nil)
		bulletins.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bm entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
				if bm.ID != "bm-1" || bm.ArtifactRef != "docs/bm-2.pdf" {
					t.Fatalf("unexpected bulletin: %+v", bm)
				}
				if bm.ApprovalGate.State() != entities.DecisionPending {
					t.Fatalf("expected reset gate after artifact change")
				}
				if bm.PaymentRelease.Decision != entities.DecisionPending {
					t.Fatalf("expected reset payment release")
				}
				return bm, nil
			},
		)

		res, err := uc.Submit(context.Background(), "r-1", "sup-1", BulletinInput{Amount: 3000, ArtifactRef: "docs/bm-2.pdf"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Converged() {
			t.Fatalf("replaced bulletin must not stay converged")
		}
	})
}

func TestBulletinUseCase_Decide(t *testing.T) {
	t.Run("coordinator of another request", func(t *testing.T) {
		uc, _, requests, directory, _ := bulletinFixture(t, nil)
		directory.EXPECT().GetUser(gomock.Any(), "c-2").Return(entities.User{ID: "c-2", Role: entities.RoleCoordinator}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(planningRequest(entities.RequestStatusContractApprovalPending), nil)

		_, err := uc.Decide(context.Background(), "r-1", "c-2", entities.DecisionApproved, "")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("convergence triggers materialization", func(t *testing.T) {
		mat := &materializerStub{}
		uc, bulletins, requests, directory, mailer := bulletinFixture(t, mat)
		directory.EXPECT().GetUser(gomock.Any(), "g-1").Return(entities.User{ID: "g-1", Role: entities.RoleManager}, nil)
		quietNotifications(directory, mailer)

		bm := entities.NewMeasurementBulletin("bm-1", "r-1")
		if err := bm.ApprovalGate.Record(entities.RoleCoordinator, entities.DecisionApproved, "", time.Now().UTC()); err != nil {
			t.Fatalf("fixture: %v", err)
		}
		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(planningRequest(entities.RequestStatusContractApprovalPending), nil)
		bulletins.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(bm, nil)
		bulletins.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bm entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
				return bm, nil
			},
		)

		res, err := uc.Decide(context.Background(), "r-1", "g-1", entities.DecisionApproved, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Converged() {
			t.Fatalf("expected converged bulletin")
		}
		if mat.calls != 1 {
			t.Fatalf("expected one materializer call, got %d", mat.calls)
		}
	})

	t.Run("rejection sends request back to planning", func(t *testing.T) {
		uc, bulletins, requests, directory, mailer := bulletinFixture(t, nil)
		directory.EXPECT().GetUser(gomock.Any(), "g-1").Return(entities.User{ID: "g-1", Role: entities.RoleManager}, nil)
		quietNotifications(directory, mailer)

		requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(planningRequest(entities.RequestStatusContractApprovalPending), nil)
		bulletins.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(entities.NewMeasurementBulletin("bm-1", "r-1"), nil)
		bulletins.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bm entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
				return bm, nil
			},
		)
		requests.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ContractingRequest) (entities.ContractingRequest, error) {
				if r.Status != entities.RequestStatusContractPlanning {
					t.Fatalf("expected planning status after rejection, got %s", r.Status)
				}
				return r, nil
			},
		)

		res, err := uc.Decide(context.Background(), "r-1", "g-1", entities.DecisionRejected, "medição inconsistente")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ApprovalGate.State() != entities.DecisionRejected {
			t.Fatalf("expected rejected aggregate")
		}
	})

	t.Run("rejection requires justification", func(t *testing.T) {
		uc, _, _, directory, _ := bulletinFixture(t, nil)
		directory.EXPECT().GetUser(gomock.Any(), "g-1").Return(entities.User{ID: "g-1", Role: entities.RoleManager}, nil)

		_, err := uc.Decide(context.Background(), "r-1", "g-1", entities.DecisionRejected, "")
		if !errors.Is(err, ErrMissingJustification) {
			t.Fatalf("expected ErrMissingJustification, got %v", err)
		}
	})
}

func TestBulletinUseCase_ReleasePayment(t *testing.T) {
	t.Run("gate must be converged first", func(t *testing.T) {
		uc, bulletins, _, directory, _ := bulletinFixture(t, nil)
		directory.EXPECT().GetUser(gomock.Any(), "d-1").Return(entities.User{ID: "d-1", Role: entities.RoleDirector}, nil)
		bulletins.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(entities.NewMeasurementBulletin("bm-1", "r-1"), nil)

		_, err := uc.ReleasePayment(context.Background(), "r-1", "d-1", entities.DecisionApproved, "")
		if !errors.Is(err, ErrGateNotReady) {
			t.Fatalf("expected ErrGateNotReady, got %v", err)
		}
	})

	t.Run("director releases on converged gate", func(t *testing.T) {
		uc, bulletins, _, directory, mailer := bulletinFixture(t, nil)
		directory.EXPECT().GetUser(gomock.Any(), "d-1").Return(entities.User{ID: "d-1", Role: entities.RoleDirector}, nil)
		quietNotifications(directory, mailer)

		bm := entities.NewMeasurementBulletin("bm-1", "r-1")
		now := time.Now().UTC()
		if err := bm.ApprovalGate.Record(entities.RoleCoordinator, entities.DecisionApproved, "", now); err != nil {
			t.Fatalf("fixture: %v", err)
		}
		if err := bm.ApprovalGate.Record(entities.RoleManager, entities.DecisionApproved, "", now); err != nil {
			t.Fatalf("fixture: %v", err)
		}
		bulletins.EXPECT().GetByRequestID(gomock.Any(), "r-1").Return(bm, nil)
		bulletins.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bm entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
				if bm.PaymentRelease.Decision != entities.DecisionApproved || bm.PaymentRelease.Role != entities.RoleDirector {
					t.Fatalf("unexpected release: %+v", bm.PaymentRelease)
				}
				return bm, nil
			},
		)

		if _, err := uc.ReleasePayment(context.Background(), "r-1", "d-1", entities.DecisionApproved, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non director", func(t *testing.T) {
		uc, _, _, directory, _ := bulletinFixture(t, nil)
		directory.EXPECT().GetUser(gomock.Any(), "g-1").Return(entities.User{ID: "g-1", Role: entities.RoleManager}, nil)

		_, err := uc.ReleasePayment(context.Background(), "r-1", "g-1", entities.DecisionApproved, "")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}
