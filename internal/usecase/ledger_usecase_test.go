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

func ledgerFixture(t *testing.T) (*LedgerUseCase, *mock_interfaces.MockIEventRepository, *mock_interfaces.MockIPaymentCalendarRepository, *mock_interfaces.MockIContractRepository, *mock_interfaces.MockIContractingRequestRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	events := mock_interfaces.NewMockIEventRepository(ctrl)
	calendar := mock_interfaces.NewMockIPaymentCalendarRepository(ctrl)
	contracts := mock_interfaces.NewMockIContractRepository(ctrl)
	requests := mock_interfaces.NewMockIContractingRequestRepository(ctrl)
	uc := NewLedgerUseCase(events, calendar, contracts, requests)
	return uc, events, calendar, contracts, requests
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLedgerUseCase_CreateEvent(t *testing.T) {
	t.Run("needs an owner", func(t *testing.T) {
		uc, _, _, _, _ := ledgerFixture(t)
		_, err := uc.CreateEvent(context.Background(), EventInput{Description: "entrega"})
		if !errors.Is(err, ErrEventWithoutOwner) {
			t.Fatalf("expected ErrEventWithoutOwner, got %v", err)
		}
	})

	t.Run("inherits supplier from contract", func(t *testing.T) {
		uc, events, _, contracts, _ := ledgerFixture(t)
		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", SupplierID: "f-1"}, nil)
		events.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Event) (entities.Event, error) {
				if e.SupplierID != "f-1" || e.ContractID != "ct-1" || e.Evaluation != entities.DecisionPending {
					t.Fatalf("unexpected event: %+v", e)
				}
				return e, nil
			},
		)

		if _, err := uc.CreateEvent(context.Background(), EventInput{ContractID: "ct-1", ForecastAmount: 500, ForecastDate: day(2025, 4, 10)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLedgerUseCase_RegisterDelivery(t *testing.T) {
	t.Run("late flag from forecast date", func(t *testing.T) {
		uc, events, _, _, _ := ledgerFixture(t)
		events.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Event{ID: "ev-1", ForecastDate: day(2025, 4, 10)}, nil)
		events.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Event) (entities.Event, error) {
				if !e.Delivered || !e.Late {
					t.Fatalf("expected delivered late event, got %+v", e)
				}
				if e.Evaluation != entities.DecisionApproved {
					t.Fatalf("expected approved evaluation")
				}
				return e, nil
			},
		)

		_, err := uc.RegisterDelivery(context.Background(), "ev-1", DeliveryInput{
			DeliveredDate: day(2025, 4, 15),
			Evaluation:    entities.DecisionApproved,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("evaluation must be final", func(t *testing.T) {
		uc, _, _, _, _ := ledgerFixture(t)
		_, err := uc.RegisterDelivery(context.Background(), "ev-1", DeliveryInput{DeliveredDate: day(2025, 4, 15), Evaluation: entities.DecisionPending})
		if !errors.Is(err, entities.ErrInvalidDecision) {
			t.Fatalf("expected ErrInvalidDecision, got %v", err)
		}
	})
}

func TestLedgerUseCase_Aggregate(t *testing.T) {
	t.Run("invalid dimension", func(t *testing.T) {
		uc, _, _, _, _ := ledgerFixture(t)
		_, err := uc.Aggregate(context.Background(), entities.AggregateDimension("semana"))
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("expected ErrInvalidDimension, got %v", err)
		}
	})

	t.Run("every event lands in exactly one bucket", func(t *testing.T) {
		uc, events, calendar, _, _ := ledgerFixture(t)
		calendar.EXPECT().List(gomock.Any()).Return([]entities.PaymentCalendarEntry{
			{Date: day(2025, 3, 31)},
			{Date: day(2025, 4, 30)},
		}, nil)
		events.EXPECT().ListAll(gomock.Any()).Return([]entities.Event{
			// before the first cutoff
			{ID: "e1", RequestID: "r-1", ForecastAmount: 100, ForecastPaymentDate: day(2025, 2, 10)},
			// exactly on a cutoff: half-open (prev, cutoff]
			{ID: "e2", RequestID: "r-1", ForecastAmount: 200, ForecastPaymentDate: day(2025, 3, 31)},
			// middle bucket, with an actual payment too
			{ID: "e3", RequestID: "r-1", ForecastAmount: 300, ForecastPaymentDate: day(2025, 4, 15), PaidAmount: 280, PaymentDate: day(2025, 4, 20)},
			// past the last cutoff: trailing open bucket
			{ID: "e4", RequestID: "r-1", ForecastAmount: 400, ForecastPaymentDate: day(2025, 6, 1)},
			// no payment date at all: first bucket
			{ID: "e5", RequestID: "r-1", ForecastAmount: 50},
		}, nil)

		report, err := uc.Aggregate(context.Background(), entities.DimensionNone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		forecast := report.Forecast.PerBucket["total"]
		if len(forecast) != 3 {
			t.Fatalf("expected 3 buckets, got %d", len(forecast))
		}
		if forecast[0] != 350 || forecast[1] != 300 || forecast[2] != 400 {
			t.Fatalf("unexpected forecast buckets: %v", forecast)
		}
		var total float64
		for _, v := range forecast {
			total += v
		}
		if total != 1050 {
			t.Fatalf("events dropped or double-counted: sum=%v", total)
		}

		cum := report.Forecast.Cumulative["total"]
		if cum[0] != 350 || cum[1] != 650 || cum[2] != 1050 {
			t.Fatalf("unexpected cumulative series: %v", cum)
		}

		actual := report.Actual.PerBucket["total"]
		if actual[0] != 0 || actual[1] != 280 || actual[2] != 0 {
			t.Fatalf("unexpected actual buckets: %v", actual)
		}
	})

	t.Run("project dimension keys via contract and request", func(t *testing.T) {
		uc, events, calendar, contracts, requests := ledgerFixture(t)
		calendar.EXPECT().List(gomock.Any()).Return([]entities.PaymentCalendarEntry{{Date: day(2025, 3, 31)}}, nil)
		events.EXPECT().ListAll(gomock.Any()).Return([]entities.Event{
			{ID: "e1", ContractID: "ct-1", ForecastAmount: 100, ForecastPaymentDate: day(2025, 3, 1)},
			{ID: "e2", RequestID: "r-2", ForecastAmount: 200, ForecastPaymentDate: day(2025, 3, 1)},
		}, nil)
		contracts.EXPECT().List(gomock.Any()).Return([]entities.Contract{{ID: "ct-1", ProjectCode: "P-1", CoordinatorID: "c-1"}}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "r-2").Return(entities.ContractingRequest{ID: "r-2", ProjectCode: "P-2", CoordinatorID: "c-2"}, nil)

		report, err := uc.Aggregate(context.Background(), entities.DimensionProject)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Forecast.PerBucket["P-1"][0] != 100 || report.Forecast.PerBucket["P-2"][0] != 200 {
			t.Fatalf("unexpected per-project buckets: %v", report.Forecast.PerBucket)
		}
	})
}

func TestLedgerUseCase_ForecastOutlook(t *testing.T) {
	uc, events, _, contracts, _ := ledgerFixture(t)
	events.EXPECT().ListAll(gomock.Any()).Return([]entities.Event{
		{ID: "e1", ContractID: "ct-1", SupplierID: "f-1", ForecastAmount: 100, ForecastPaymentDate: day(2025, 3, 1)},
		{ID: "e2", ContractID: "ct-1", SupplierID: "f-1", ForecastAmount: 150, ForecastPaymentDate: day(2025, 4, 1)},
		// already paid: excluded
		{ID: "e3", ContractID: "ct-1", SupplierID: "f-1", ForecastAmount: 999, ForecastPaymentDate: day(2025, 3, 1), PaidAmount: 999},
		// due after the limit: excluded
		{ID: "e4", ContractID: "ct-1", SupplierID: "f-1", ForecastAmount: 500, ForecastPaymentDate: day(2026, 1, 1)},
	}, nil)
	contracts.EXPECT().List(gomock.Any()).Return([]entities.Contract{{ID: "ct-1", ProjectCode: "P-1"}}, nil)

	lines, err := uc.ForecastOutlook(context.Background(), day(2025, 6, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].ProjectCode != "P-1" || lines[0].SupplierID != "f-1" || lines[0].Total != 250 || lines[0].Events != 2 {
		t.Fatalf("unexpected line: %+v", lines[0])
	}
}

func TestLedgerUseCase_Indicators(t *testing.T) {
	uc, events, _, _, _ := ledgerFixture(t)
	events.EXPECT().ListBySupplierID(gomock.Any(), "f-1").Return([]entities.Event{
		{ID: "e1", Delivered: true, Evaluation: entities.DecisionApproved},
		{ID: "e2", Delivered: true, Evaluation: entities.DecisionApproved, Late: true},
		{ID: "e3", Delivered: true, Evaluation: entities.DecisionRejected},
		{ID: "e4", Delivered: false, ForecastAmount: 10},
	}, nil)

	ind, err := uc.Indicators(context.Background(), "f-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ind.Deliveries != 3 || ind.Conforming != 2 || ind.NonConforming != 1 || ind.OnTime != 2 {
		t.Fatalf("unexpected counts: %+v", ind)
	}
	if ind.QualityRate < 0.66 || ind.QualityRate > 0.67 {
		t.Fatalf("unexpected quality rate: %v", ind.QualityRate)
	}
	if ind.NonConformRate < 0.33 || ind.NonConformRate > 0.34 {
		t.Fatalf("unexpected non-conformity rate: %v", ind.NonConformRate)
	}
}
