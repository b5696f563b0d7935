package request

import (
	"strings"
	"time"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase"
)

// EventRequest creates or updates a ledger event.
type EventRequest struct {
	RequestID           string `json:"request_id"`
	ContractID          string `json:"contract_id"`
	SupplierID          string `json:"supplier_id"`
	Description         string `json:"description" binding:"required"`
	ForecastDate        string `json:"forecast_date"`
	ForecastAmount      string `json:"forecast_amount"`
	ForecastPaymentDate string `json:"forecast_payment_date"`
}

func (r EventRequest) ToInput() (usecase.EventInput, error) {
	forecastDate, err := ParseDate(r.ForecastDate)
	if err != nil {
		return usecase.EventInput{}, err
	}
	forecastAmount, err := ParseMoney(r.ForecastAmount)
	if err != nil {
		return usecase.EventInput{}, err
	}
	forecastPaymentDate, err := ParseDate(r.ForecastPaymentDate)
	if err != nil {
		return usecase.EventInput{}, err
	}
	return usecase.EventInput{
		RequestID:           strings.TrimSpace(r.RequestID),
		ContractID:          strings.TrimSpace(r.ContractID),
		SupplierID:          strings.TrimSpace(r.SupplierID),
		Description:         r.Description,
		ForecastDate:        forecastDate,
		ForecastAmount:      forecastAmount,
		ForecastPaymentDate: forecastPaymentDate,
	}, nil
}

// MoneyDateRequest carries the amount/date pair used by the forecast
// and actual tracks.
type MoneyDateRequest struct {
	Amount      string `json:"amount" binding:"required"`
	PaymentDate string `json:"payment_date"`
}

func (r MoneyDateRequest) Resolve() (float64, time.Time, error) {
	amount, err := ParseMoney(r.Amount)
	if err != nil {
		return 0, time.Time{}, err
	}
	date, err := ParseDate(r.PaymentDate)
	if err != nil {
		return 0, time.Time{}, err
	}
	return amount, date, nil
}

// DeliveryRequest registers the actual delivery of an event, including
// the mandatory conformity evaluation.
type DeliveryRequest struct {
	DeliveredDate string `json:"delivered_date" binding:"required"`
	PaidAmount    string `json:"paid_amount"`
	PaymentDate   string `json:"payment_date"`
	ArtifactRef   string `json:"artifact_ref"`
	Evaluation    string `json:"evaluation" binding:"required"`
	Justification string `json:"justification"`
}

func (r DeliveryRequest) ToInput() (usecase.DeliveryInput, error) {
	deliveredDate, err := ParseDate(r.DeliveredDate)
	if err != nil {
		return usecase.DeliveryInput{}, err
	}
	paidAmount, err := ParseMoney(r.PaidAmount)
	if err != nil {
		return usecase.DeliveryInput{}, err
	}
	paymentDate, err := ParseDate(r.PaymentDate)
	if err != nil {
		return usecase.DeliveryInput{}, err
	}
	return usecase.DeliveryInput{
		DeliveredDate: deliveredDate,
		PaidAmount:    paidAmount,
		PaymentDate:   paymentDate,
		ArtifactRef:   r.ArtifactRef,
		Evaluation:    entities.Decision(r.Evaluation),
		Justification: r.Justification,
	}, nil
}

// CalendarEntryRequest adds one cutoff date to the payment calendar.
type CalendarEntryRequest struct {
	Date string `json:"date" binding:"required"`
}

func (r CalendarEntryRequest) ResolveDate() (time.Time, error) {
	return ParseDate(r.Date)
}
