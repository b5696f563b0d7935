package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrInvalidEventAmount  = errors.New("invalid event amount")
	ErrEventWithoutOwner   = errors.New("event must reference a request or a contract")
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	ErrInvalidDimension    = errors.New("invalid aggregation dimension")
	ErrEventNotDelivered   = errors.New("event has no registered delivery")
)

// EventInput is the creation/edit payload for a delivery/payment event.

type EventInput struct {
	RequestID           string
	ContractID          string
	SupplierID          string
	Description         string
	ForecastDate        time.Time
	ForecastAmount      float64
	ForecastPaymentDate time.Time
}

// DeliveryInput registers the actual outcome of an event.

type DeliveryInput struct {
	DeliveredDate time.Time
	PaidAmount    float64
	PaymentDate   time.Time
	ArtifactRef   string
	Evaluation    entities.Decision
	Justification string
}

// ForecastLine is one row of the payment outlook report: total forecast
// per project and supplier for events due up to the limit date.

type ForecastLine struct {
	ProjectCode string  `json:"project_code"`
	SupplierID  string  `json:"supplier_id"`
	Total       float64 `json:"total"`
	Events      int     `json:"events"`
}

// ILedgerUseCase owns the event ledger and everything computed from it:
// the bucketed forecast/actual aggregation over the payment calendar,
// the forecast outlook and the supplier quality indicators.

type ILedgerUseCase interface {
	CreateEvent(ctx context.Context, input EventInput) (entities.Event, error)
	GetEvent(ctx context.Context, id string) (entities.Event, error)
	UpdateEvent(ctx context.Context, id string, input EventInput) (entities.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, requestID, contractID, supplierID string) ([]entities.Event, error)
	RecordForecast(ctx context.Context, id string, amount float64, paymentDate time.Time) (entities.Event, error)
	RecordActual(ctx context.Context, id string, amount float64, paymentDate time.Time) (entities.Event, error)
	RegisterDelivery(ctx context.Context, id string, input DeliveryInput) (entities.Event, error)
	AddCalendarEntry(ctx context.Context, date time.Time) (entities.PaymentCalendarEntry, error)
	ListCalendar(ctx context.Context) ([]entities.PaymentCalendarEntry, error)
	Aggregate(ctx context.Context, dimension entities.AggregateDimension) (entities.LedgerReport, error)
	ForecastOutlook(ctx context.Context, limit time.Time) ([]ForecastLine, error)
	Indicators(ctx context.Context, supplierID string) (entities.SupplierIndicators, error)
}

type LedgerUseCase struct {
	events    interfaces.IEventRepository
	calendar  interfaces.IPaymentCalendarRepository
	contracts interfaces.IContractRepository
	requests  interfaces.IContractingRequestRepository
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(
	events interfaces.IEventRepository,
	calendar interfaces.IPaymentCalendarRepository,
	contracts interfaces.IContractRepository,
	requests interfaces.IContractingRequestRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		events:    events,
		calendar:  calendar,
		contracts: contracts,
		requests:  requests,
	}
}

func (u *LedgerUseCase) CreateEvent(ctx context.Context, input EventInput) (entities.Event, error) {
	input.RequestID = strings.TrimSpace(input.RequestID)
	input.ContractID = strings.TrimSpace(input.ContractID)
	if input.RequestID == "" && input.ContractID == "" {
		return entities.Event{}, ErrEventWithoutOwner
	}
	if input.ForecastAmount < 0 {
		return entities.Event{}, ErrInvalidEventAmount
	}

	supplierID := strings.TrimSpace(input.SupplierID)
	if input.ContractID != "" {
		contract, err := u.contracts.GetByID(ctx, input.ContractID)
		if err != nil {
			return entities.Event{}, err
		}
		if contract.ID == "" {
			return entities.Event{}, ErrContractNotFound
		}
		if supplierID == "" {
			supplierID = contract.SupplierID
		}
	}

	now := time.Now().UTC()
	e := entities.Event{
		ID:                  uuid.NewString(),
		RequestID:           input.RequestID,
		ContractID:          input.ContractID,
		SupplierID:          supplierID,
		Description:         strings.TrimSpace(input.Description),
		ForecastDate:        input.ForecastDate,
		ForecastAmount:      input.ForecastAmount,
		ForecastPaymentDate: input.ForecastPaymentDate,
		Evaluation:          entities.DecisionPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	created, err := u.events.Create(ctx, e)
	if err != nil {
		return entities.Event{}, err
	}
	log.Printf("[ledger][usecase] event created event_id=%s request_id=%s contract_id=%s", created.ID, created.RequestID, created.ContractID)
	return created, nil
}

func (u *LedgerUseCase) GetEvent(ctx context.Context, id string) (entities.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Event{}, ErrEventNotFound
	}
	e, err := u.events.GetByID(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}
	if e.ID == "" {
		return entities.Event{}, ErrEventNotFound
	}
	return e, nil
}

func (u *LedgerUseCase) UpdateEvent(ctx context.Context, id string, input EventInput) (entities.Event, error) {
	e, err := u.GetEvent(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}
	if input.ForecastAmount < 0 {
		return entities.Event{}, ErrInvalidEventAmount
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		e.Description = desc
	}
	if !input.ForecastDate.IsZero() {
		e.ForecastDate = input.ForecastDate
	}
	if input.ForecastAmount > 0 {
		e.ForecastAmount = input.ForecastAmount
	}
	if !input.ForecastPaymentDate.IsZero() {
		e.ForecastPaymentDate = input.ForecastPaymentDate
	}
	e.UpdatedAt = time.Now().UTC()
	return u.events.Save(ctx, e)
}

func (u *LedgerUseCase) DeleteEvent(ctx context.Context, id string) error {
	if _, err := u.GetEvent(ctx, id); err != nil {
		return err
	}
	return u.events.Delete(ctx, strings.TrimSpace(id))
}

func (u *LedgerUseCase) ListEvents(ctx context.Context, requestID, contractID, supplierID string) ([]entities.Event, error) {
	switch {
	case strings.TrimSpace(requestID) != "":
		return u.events.ListByRequestID(ctx, strings.TrimSpace(requestID))
	case strings.TrimSpace(contractID) != "":
		return u.events.ListByContractID(ctx, strings.TrimSpace(contractID))
	case strings.TrimSpace(supplierID) != "":
		return u.events.ListBySupplierID(ctx, strings.TrimSpace(supplierID))
	default:
		return u.events.ListAll(ctx)
	}
}

func (u *LedgerUseCase) RecordForecast(ctx context.Context, id string, amount float64, paymentDate time.Time) (entities.Event, error) {
	if amount <= 0 {
		return entities.Event{}, ErrInvalidEventAmount
	}
	e, err := u.GetEvent(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}
	e.ForecastAmount = amount
	e.ForecastPaymentDate = paymentDate
	e.UpdatedAt = time.Now().UTC()
	saved, err := u.events.Save(ctx, e)
	if err != nil {
		return entities.Event{}, err
	}
	log.Printf("[ledger][usecase] forecast recorded event_id=%s amount=%.2f", saved.ID, amount)
	return saved, nil
}

func (u *LedgerUseCase) RecordActual(ctx context.Context, id string, amount float64, paymentDate time.Time) (entities.Event, error) {
	if amount <= 0 {
		return entities.Event{}, ErrInvalidEventAmount
	}
	e, err := u.GetEvent(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}
	e.PaidAmount = amount
	e.PaymentDate = paymentDate
	e.UpdatedAt = time.Now().UTC()
	saved, err := u.events.Save(ctx, e)
	if err != nil {
		return entities.Event{}, err
	}
	log.Printf("[ledger][usecase] actual recorded event_id=%s amount=%.2f", saved.ID, amount)
	return saved, nil
}

// RegisterDelivery marks the event delivered, computes lateness against
// the forecast date and stores the conformity evaluation that the
// supplier indicators are computed from.
func (u *LedgerUseCase) RegisterDelivery(ctx context.Context, id string, input DeliveryInput) (entities.Event, error) {
	if input.DeliveredDate.IsZero() {
		return entities.Event{}, ErrEventNotDelivered
	}
	if input.Evaluation != entities.DecisionApproved && input.Evaluation != entities.DecisionRejected {
		return entities.Event{}, entities.ErrInvalidDecision
	}
	if input.PaidAmount < 0 {
		return entities.Event{}, ErrInvalidEventAmount
	}

	e, err := u.GetEvent(ctx, id)
	if err != nil {
		return entities.Event{}, err
	}
	e.Delivered = true
	e.DeliveredDate = input.DeliveredDate
	e.Late = !e.ForecastDate.IsZero() && input.DeliveredDate.After(e.ForecastDate)
	e.Evaluation = input.Evaluation
	e.Justification = strings.TrimSpace(input.Justification)
	e.ArtifactRef = strings.TrimSpace(input.ArtifactRef)
	if input.PaidAmount > 0 {
		e.PaidAmount = input.PaidAmount
		e.PaymentDate = input.PaymentDate
	}
	e.UpdatedAt = time.Now().UTC()

	saved, err := u.events.Save(ctx, e)
	if err != nil {
		return entities.Event{}, err
	}
	log.Printf("[ledger][usecase] delivery registered event_id=%s late=%t evaluation=%s", saved.ID, saved.Late, saved.Evaluation)
	return saved, nil
}

func (u *LedgerUseCase) AddCalendarEntry(ctx context.Context, date time.Time) (entities.PaymentCalendarEntry, error) {
	if date.IsZero() {
		return entities.PaymentCalendarEntry{}, ErrInvalidCalendarDate
	}
	entry := entities.PaymentCalendarEntry{Date: date.UTC().Truncate(24 * time.Hour)}
	return u.calendar.Add(ctx, entry)
}

func (u *LedgerUseCase) ListCalendar(ctx context.Context) ([]entities.PaymentCalendarEntry, error) {
	return u.calendar.List(ctx)
}

// Aggregate buckets every event into half-open windows bounded by the
// calendar cutoffs: the first bucket is (-inf, c1], each next one is
// (c(i-1), c(i)], and a trailing open bucket (cn, +inf) catches dates
// past the last cutoff. Every amount lands in exactly one bucket.
func (u *LedgerUseCase) Aggregate(ctx context.Context, dimension entities.AggregateDimension) (entities.LedgerReport, error) {
	switch dimension {
	case entities.DimensionNone, entities.DimensionCoordinator, entities.DimensionProject:
	default:
		return entities.LedgerReport{}, ErrInvalidDimension
	}

	entries, err := u.calendar.List(ctx)
	if err != nil {
		return entities.LedgerReport{}, err
	}
	cutoffs := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		cutoffs = append(cutoffs, entry.Date)
	}
	sort.Slice(cutoffs, func(i, j int) bool { return cutoffs[i].Before(cutoffs[j]) })

	events, err := u.events.ListAll(ctx)
	if err != nil {
		return entities.LedgerReport{}, err
	}

	keys, err := u.dimensionKeys(ctx, events, dimension)
	if err != nil {
		return entities.LedgerReport{}, err
	}

	buckets := len(cutoffs) + 1
	forecast := newLedgerSeries(cutoffs)
	actual := newLedgerSeries(cutoffs)
	for i, e := range events {
		key := keys[i]
		if e.ForecastAmount != 0 {
			date := e.ForecastPaymentDate
			if date.IsZero() {
				date = e.ForecastDate
			}
			addToBucket(&forecast, key, buckets, bucketIndex(cutoffs, date), e.ForecastAmount)
		}
		if e.PaidAmount != 0 {
			addToBucket(&actual, key, buckets, bucketIndex(cutoffs, e.PaymentDate), e.PaidAmount)
		}
	}
	accumulate(&forecast)
	accumulate(&actual)

	return entities.LedgerReport{Dimension: dimension, Forecast: forecast, Actual: actual}, nil
}

// ForecastOutlook totals the still-unpaid forecast per project and
// supplier for events due up to the limit date.
func (u *LedgerUseCase) ForecastOutlook(ctx context.Context, limit time.Time) ([]ForecastLine, error) {
	if limit.IsZero() {
		return nil, ErrInvalidCalendarDate
	}
	events, err := u.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	keys, err := u.dimensionKeys(ctx, events, entities.DimensionProject)
	if err != nil {
		return nil, err
	}

	type pair struct{ project, supplier string }
	totals := make(map[pair]*ForecastLine)
	for i, e := range events {
		if e.ForecastAmount == 0 || e.PaidAmount != 0 {
			continue
		}
		date := e.ForecastPaymentDate
		if date.IsZero() {
			date = e.ForecastDate
		}
		if date.IsZero() || date.After(limit) {
			continue
		}
		k := pair{project: keys[i], supplier: e.SupplierID}
		line, ok := totals[k]
		if !ok {
			line = &ForecastLine{ProjectCode: k.project, SupplierID: k.supplier}
			totals[k] = line
		}
		line.Total += e.ForecastAmount
		line.Events++
	}

	lines := make([]ForecastLine, 0, len(totals))
	for _, line := range totals {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].ProjectCode != lines[j].ProjectCode {
			return lines[i].ProjectCode < lines[j].ProjectCode
		}
		return lines[i].SupplierID < lines[j].SupplierID
	})
	return lines, nil
}

// Indicators computes the supplier quality indexes over delivered
// events: conformity, punctuality and non-conformity rates.
func (u *LedgerUseCase) Indicators(ctx context.Context, supplierID string) (entities.SupplierIndicators, error) {
	supplierID = strings.TrimSpace(supplierID)
	if supplierID == "" {
		return entities.SupplierIndicators{}, ErrUnknownSupplier
	}
	events, err := u.events.ListBySupplierID(ctx, supplierID)
	if err != nil {
		return entities.SupplierIndicators{}, err
	}

	ind := entities.SupplierIndicators{SupplierID: supplierID}
	for _, e := range events {
		if !e.Delivered {
			continue
		}
		ind.Deliveries++
		if e.Evaluation == entities.DecisionApproved {
			ind.Conforming++
		} else if e.Evaluation == entities.DecisionRejected {
			ind.NonConforming++
		}
		if !e.Late {
			ind.OnTime++
		}
	}
	if ind.Deliveries > 0 {
		ind.QualityRate = float64(ind.Conforming) / float64(ind.Deliveries)
		ind.PunctualsRate = float64(ind.OnTime) / float64(ind.Deliveries)
		ind.NonConformRate = float64(ind.NonConforming) / float64(ind.Deliveries)
	}
	return ind, nil
}

// dimensionKeys resolves the aggregation key of each event, caching the
// contract and request lookups so a big ledger does not re-read the
// same rows.
func (u *LedgerUseCase) dimensionKeys(ctx context.Context, events []entities.Event, dimension entities.AggregateDimension) ([]string, error) {
	keys := make([]string, len(events))
	if dimension == entities.DimensionNone {
		for i := range keys {
			keys[i] = "total"
		}
		return keys, nil
	}

	contracts, err := u.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	byContract := make(map[string]entities.Contract, len(contracts))
	for _, c := range contracts {
		byContract[c.ID] = c
	}
	requestCache := make(map[string]entities.ContractingRequest)

	for i, e := range events {
		var project, coordinator string
		if c, ok := byContract[e.ContractID]; ok {
			project, coordinator = c.ProjectCode, c.CoordinatorID
		} else if e.RequestID != "" {
			r, ok := requestCache[e.RequestID]
			if !ok {
				r, err = u.requests.GetByID(ctx, e.RequestID)
				if err != nil {
					return nil, err
				}
				requestCache[e.RequestID] = r
			}
			project, coordinator = r.ProjectCode, r.CoordinatorID
		}
		if dimension == entities.DimensionProject {
			keys[i] = project
		} else {
			keys[i] = coordinator
		}
	}
	return keys, nil
}

func newLedgerSeries(cutoffs []time.Time) entities.LedgerSeries {
	return entities.LedgerSeries{
		Cutoffs:    cutoffs,
		PerBucket:  make(map[string][]float64, 4),
		Cumulative: make(map[string][]float64, 4),
	}
}

func addToBucket(s *entities.LedgerSeries, key string, buckets, idx int, amount float64) {
	row, ok := s.PerBucket[key]
	if !ok {
		row = make([]float64, buckets)
		s.PerBucket[key] = row
	}
	row[idx] += amount
}

func accumulate(s *entities.LedgerSeries) {
	for key, row := range s.PerBucket {
		cum := make([]float64, len(row))
		var running float64
		for i, v := range row {
			running += v
			cum[i] = running
		}
		s.Cumulative[key] = cum
	}
}

// bucketIndex returns the half-open bucket for the date. Index
// len(cutoffs) is the trailing open bucket.
func bucketIndex(cutoffs []time.Time, date time.Time) int {
	for i, cutoff := range cutoffs {
		if !date.After(cutoff) {
			return i
		}
	}
	return len(cutoffs)
}
