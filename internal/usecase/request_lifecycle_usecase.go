package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound      = errors.New("contracting request not found")
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrInvalidProjectCode   = errors.New("invalid project code")
	ErrInvalidBudget        = errors.New("invalid budgeted amount")
	ErrUnauthorized         = errors.New("actor is not authorized for this step")
	ErrMissingJustification = errors.New("justification is required")
	ErrConcurrentUpdate     = errors.New("request was modified concurrently; retry")
	ErrDraftNotAttached     = errors.New("contract draft not attached")
)

// saveAttempts bounds the optimistic-write retry loop for gate
// decisions arriving concurrently.
const saveAttempts = 3

// SubmitRequestCommand carries the already-validated submission input.
// Locale-aware parsing of monetary strings happens at the HTTP layer.

type SubmitRequestCommand struct {
	ProjectCode    string
	CoordinatorID  string
	LineLeadID     string
	Description    string
	Requirements   string
	ScheduleRef    string
	Budgeted       bool
	BudgetedAmount float64
}

// ContractDraftInput is the contract document attached by the supply
// team during planning.

type ContractDraftInput struct {
	Number      string
	Object      string
	StartDate   time.Time
	EndDate     time.Time
	TotalValue  float64
	ArtifactRef string
}

// IRequestLifecycleUseCase drives the contracting request state
// machine: submission, supply-team review, the dual manager/director
// supplier gate, and contract-draft planning.

type IRequestLifecycleUseCase interface {
	Submit(ctx context.Context, cmd SubmitRequestCommand) (entities.ContractingRequest, error)
	GetByID(ctx context.Context, id string) (entities.ContractingRequest, error)
	ReviewBySupply(ctx context.Context, requestID, reviewerID string, approve bool, justification string) (entities.ContractingRequest, error)
	DecideSupplier(ctx context.Context, requestID, actorID string, decision entities.Decision, justification string) (entities.ContractingRequest, error)
	AttachContractDraft(ctx context.Context, requestID, actorID string, draft ContractDraftInput) (entities.ContractingRequest, error)
	ReviewContractDraft(ctx context.Context, requestID, actorID string, decision entities.Decision, justification string) (entities.ContractingRequest, error)
	RenegotiateSchedule(ctx context.Context, requestID, actorID string, start, end time.Time) (entities.ContractingRequest, error)
}

type RequestLifecycleUseCase struct {
	repo         interfaces.IContractingRequestRepository
	directory    interfaces.IDirectory
	materializer IMaterializerUseCase
	notify       *notifier
}

var _ IRequestLifecycleUseCase = (*RequestLifecycleUseCase)(nil)

func NewRequestLifecycleUseCase(
	repo interfaces.IContractingRequestRepository,
	directory interfaces.IDirectory,
	materializer IMaterializerUseCase,
	mailer interfaces.INotificationDispatcher,
) *RequestLifecycleUseCase {
	return &RequestLifecycleUseCase{
		repo:         repo,
		directory:    directory,
		materializer: materializer,
		notify:       newNotifier(directory, mailer),
	}
}

func (u *RequestLifecycleUseCase) Submit(ctx context.Context, cmd SubmitRequestCommand) (entities.ContractingRequest, error) {
	cmd.ProjectCode = strings.TrimSpace(cmd.ProjectCode)
	cmd.CoordinatorID = strings.TrimSpace(cmd.CoordinatorID)
	if cmd.ProjectCode == "" {
		return entities.ContractingRequest{}, ErrInvalidProjectCode
	}
	if cmd.CoordinatorID == "" {
		return entities.ContractingRequest{}, ErrUnauthorized
	}
	if cmd.BudgetedAmount < 0 {
		return entities.ContractingRequest{}, ErrInvalidBudget
	}

	coordinator, err := u.directory.GetUser(ctx, cmd.CoordinatorID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	switch coordinator.Role {
	case entities.RoleCoordinator, entities.RoleFinance, entities.RoleManager:
	default:
		return entities.ContractingRequest{}, ErrUnauthorized
	}

	now := time.Now().UTC()
	r := entities.ContractingRequest{
		ID:             uuid.NewString(),
		ProjectCode:    cmd.ProjectCode,
		CoordinatorID:  cmd.CoordinatorID,
		LineLeadID:     strings.TrimSpace(cmd.LineLeadID),
		Description:    strings.TrimSpace(cmd.Description),
		Requirements:   strings.TrimSpace(cmd.Requirements),
		ScheduleRef:    strings.TrimSpace(cmd.ScheduleRef),
		Budgeted:       cmd.Budgeted,
		BudgetedAmount: cmd.BudgetedAmount,
		Status:         entities.RequestStatusSubmitted,
		SupplierGate:   entities.NewGate(entities.RoleManager, entities.RoleDirector),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	log.Printf("[request][usecase] submitted id=%s project=%s coordinator=%s", created.ID, created.ProjectCode, created.CoordinatorID)

	u.notify.toRole(ctx, entities.RoleSupply,
		"Nova Solicitação de Prospecção",
		"O coordenador "+coordinator.Username+" solicitou a prospecção de um fornecedor para o projeto "+created.ProjectCode+".")
	return created, nil
}

func (u *RequestLifecycleUseCase) GetByID(ctx context.Context, id string) (entities.ContractingRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractingRequest{}, ErrInvalidRequestID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if r.ID == "" {
		return entities.ContractingRequest{}, ErrRequestNotFound
	}
	return r, nil
}

// ReviewBySupply is the single supply-team decision at the head of
// the lifecycle. Rejection is terminal and notifies the requester.
func (u *RequestLifecycleUseCase) ReviewBySupply(ctx context.Context, requestID, reviewerID string, approve bool, justification string) (entities.ContractingRequest, error) {
	if err := u.requireRole(ctx, reviewerID, entities.RoleSupply); err != nil {
		return entities.ContractingRequest{}, err
	}
	if !approve && strings.TrimSpace(justification) == "" {
		return entities.ContractingRequest{}, ErrMissingJustification
	}

	r, err := u.GetByID(ctx, requestID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	target := entities.RequestStatusSupplyApproved
	if !approve {
		target = entities.RequestStatusSupplyRejected
	}
	if err := r.Transition(target); err != nil {
		return entities.ContractingRequest{}, err
	}
	r.SupplyReview = &entities.SupplyReview{
		Approved:      approve,
		ReviewerID:    reviewerID,
		ReviewedAt:    time.Now().UTC(),
		Justification: strings.TrimSpace(justification),
	}

	saved, err := u.save(ctx, r)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	log.Printf("[request][usecase] supply review id=%s approved=%t", saved.ID, approve)

	if approve {
		u.notify.toUser(ctx, saved.CoordinatorID,
			"Solicitação aprovada pelo suprimento",
			"Sua solicitação de prospecção para o projeto "+saved.ProjectCode+" foi aprovada pela equipe de suprimentos.")
	} else {
		u.notify.toUser(ctx, saved.CoordinatorID,
			"Solicitação reprovada pelo suprimento",
			"Sua solicitação de prospecção para o projeto "+saved.ProjectCode+" foi reprovada: "+r.SupplyReview.Justification)
	}
	return saved, nil
}

// DecideSupplier records one member of the dual {manager, director}
// gate over the chosen supplier. Approvals may arrive in any order;
// either member's rejection clears the selection and sends the request
// back to screening.
func (u *RequestLifecycleUseCase) DecideSupplier(ctx context.Context, requestID, actorID string, decision entities.Decision, justification string) (entities.ContractingRequest, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if actor.Role != entities.RoleManager && actor.Role != entities.RoleDirector {
		return entities.ContractingRequest{}, ErrUnauthorized
	}
	justification = strings.TrimSpace(justification)
	if decision == entities.DecisionRejected && justification == "" {
		return entities.ContractingRequest{}, ErrMissingJustification
	}

	for attempt := 0; attempt < saveAttempts; attempt++ {
		r, err := u.GetByID(ctx, requestID)
		if err != nil {
			return entities.ContractingRequest{}, err
		}
		if r.Status != entities.RequestStatusSupplierSelected && r.Status != entities.RequestStatusSupplierApprovalPending {
			return entities.ContractingRequest{}, &entities.InvalidTransitionError{From: r.Status, Attempted: entities.RequestStatusSupplierApprovalPending}
		}

		if err := r.SupplierGate.Record(actor.Role, decision, justification, time.Now().UTC()); err != nil {
			return entities.ContractingRequest{}, err
		}

		var target entities.RequestStatus
		switch r.SupplierGate.State() {
		case entities.DecisionApproved:
			target = entities.RequestStatusSupplierApproved
		case entities.DecisionRejected:
			target = entities.RequestStatusScreeningComplete
			r.ClearSelection()
		default:
			target = entities.RequestStatusSupplierApprovalPending
		}
		if r.Status != target {
			if err := r.Transition(target); err != nil {
				return entities.ContractingRequest{}, err
			}
		}

		saved, err := u.repo.Save(ctx, r)
		if err != nil {
			return entities.ContractingRequest{}, err
		}
		if saved.ID == "" {
			// Lost the optimistic write to a concurrent decision.
			log.Printf("[request][usecase] supplier decision retry id=%s attempt=%d", requestID, attempt+1)
			continue
		}

		log.Printf("[request][usecase] supplier decision id=%s role=%s decision=%s aggregate=%s", saved.ID, actor.Role, decision, saved.SupplierGate.State())
		u.notifySupplierDecision(ctx, saved, justification)
		return saved, nil
	}
	return entities.ContractingRequest{}, ErrConcurrentUpdate
}

func (u *RequestLifecycleUseCase) notifySupplierDecision(ctx context.Context, r entities.ContractingRequest, justification string) {
	switch r.Status {
	case entities.RequestStatusSupplierApproved:
		body := "O fornecedor escolhido para o projeto " + r.ProjectCode + " foi aprovado pela gerência e diretoria."
		u.notify.toRole(ctx, entities.RoleSupply, "Fornecedor aprovado", body)
		u.notify.toUser(ctx, r.CoordinatorID, "Fornecedor aprovado", body)
	case entities.RequestStatusScreeningComplete:
		body := "O fornecedor escolhido para o projeto " + r.ProjectCode + " foi reprovado: " + justification + ". Uma nova triagem é necessária."
		u.notify.toRole(ctx, entities.RoleSupply, "Fornecedor reprovado", body)
		u.notify.toUser(ctx, r.CoordinatorID, "Fornecedor reprovado", body)
	}
}

// AttachContractDraft moves an approved request into planning. A
// re-attach during planning replaces the draft and resets the manager
// review of it.
func (u *RequestLifecycleUseCase) AttachContractDraft(ctx context.Context, requestID, actorID string, draft ContractDraftInput) (entities.ContractingRequest, error) {
	if err := u.requireRole(ctx, actorID, entities.RoleSupply); err != nil {
		return entities.ContractingRequest{}, err
	}
	draft.Number = strings.TrimSpace(draft.Number)
	if draft.Number == "" || draft.TotalValue <= 0 {
		return entities.ContractingRequest{}, ErrInvalidBudget
	}

	r, err := u.GetByID(ctx, requestID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if r.Status == entities.RequestStatusSupplierApproved {
		if err := r.Transition(entities.RequestStatusContractPlanning); err != nil {
			return entities.ContractingRequest{}, err
		}
	} else if r.Status != entities.RequestStatusContractPlanning {
		return entities.ContractingRequest{}, &entities.InvalidTransitionError{From: r.Status, Attempted: entities.RequestStatusContractPlanning}
	}

	r.Draft = &entities.ContractDraft{
		Number:        draft.Number,
		Object:        strings.TrimSpace(draft.Object),
		StartDate:     draft.StartDate,
		EndDate:       draft.EndDate,
		TotalValue:    draft.TotalValue,
		ArtifactRef:   strings.TrimSpace(draft.ArtifactRef),
		ManagerReview: entities.ApprovalRecord{Role: entities.RoleManager, Decision: entities.DecisionPending},
		AttachedAt:    time.Now().UTC(),
	}

	saved, err := u.save(ctx, r)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	log.Printf("[request][usecase] contract draft attached id=%s number=%s", saved.ID, draft.Number)

	u.notify.toManagersFor(ctx, saved.CoordinatorID,
		"Nova minuta de contrato para análise",
		"A equipe de suprimentos anexou uma minuta de contrato para o projeto "+saved.ProjectCode+".")
	return saved, nil
}

// ReviewContractDraft records the gerência review of the attached
// draft. The materializer runs after an approval in case the bulletin
// gate already converged.
func (u *RequestLifecycleUseCase) ReviewContractDraft(ctx context.Context, requestID, actorID string, decision entities.Decision, justification string) (entities.ContractingRequest, error) {
	if err := u.requireRole(ctx, actorID, entities.RoleManager); err != nil {
		return entities.ContractingRequest{}, err
	}
	justification = strings.TrimSpace(justification)
	if decision == entities.DecisionRejected && justification == "" {
		return entities.ContractingRequest{}, ErrMissingJustification
	}
	if decision != entities.DecisionApproved && decision != entities.DecisionRejected {
		return entities.ContractingRequest{}, entities.ErrInvalidDecision
	}

	r, err := u.GetByID(ctx, requestID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if r.Status != entities.RequestStatusContractPlanning && r.Status != entities.RequestStatusContractApprovalPending {
		return entities.ContractingRequest{}, &entities.InvalidTransitionError{From: r.Status, Attempted: r.Status}
	}
	if r.Draft == nil {
		return entities.ContractingRequest{}, ErrDraftNotAttached
	}

	r.Draft.ManagerReview = entities.ApprovalRecord{
		Role:          entities.RoleManager,
		Decision:      decision,
		DecidedAt:     time.Now().UTC(),
		Justification: justification,
	}
	saved, err := u.save(ctx, r)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	log.Printf("[request][usecase] draft review id=%s decision=%s", saved.ID, decision)

	if decision == entities.DecisionApproved {
		body := "A minuta de contrato do projeto " + saved.ProjectCode + " foi aprovada pela gerência."
		u.notify.toRole(ctx, entities.RoleSupply, "Minuta de contrato aprovada", body)
		u.notify.toUser(ctx, saved.CoordinatorID, "Minuta de contrato aprovada", body)
		if u.materializer != nil {
			if _, err := u.materializer.MaterializeIfReady(ctx, saved.ID); err != nil && !errors.Is(err, ErrMaterializationNotReady) {
				log.Printf("[request][usecase] materialization after draft approval failed id=%s err=%v", saved.ID, err)
			} else {
				return u.GetByID(ctx, saved.ID)
			}
		}
	} else {
		body := "A minuta de contrato do projeto " + saved.ProjectCode + " foi reprovada pela gerência: " + justification
		u.notify.toRole(ctx, entities.RoleSupply, "Minuta de contrato reprovada", body)
		u.notify.toUser(ctx, saved.CoordinatorID, "Minuta de contrato reprovada", body)
	}
	return saved, nil
}

// RenegotiateSchedule adjusts the draft's start/end dates during
// planning (gerência renegotiation action).
func (u *RequestLifecycleUseCase) RenegotiateSchedule(ctx context.Context, requestID, actorID string, start, end time.Time) (entities.ContractingRequest, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if actor.Role != entities.RoleManager && actor.Role != entities.RoleSupply {
		return entities.ContractingRequest{}, ErrUnauthorized
	}

	r, err := u.GetByID(ctx, requestID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if r.Draft == nil {
		return entities.ContractingRequest{}, ErrDraftNotAttached
	}
	r.Draft.StartDate = start
	r.Draft.EndDate = end
	return u.save(ctx, r)
}

func (u *RequestLifecycleUseCase) actor(ctx context.Context, actorID string) (entities.User, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.User{}, ErrUnauthorized
	}
	actor, err := u.directory.GetUser(ctx, actorID)
	if err != nil {
		return entities.User{}, err
	}
	if actor.ID == "" {
		return entities.User{}, ErrUnauthorized
	}
	return actor, nil
}

func (u *RequestLifecycleUseCase) requireRole(ctx context.Context, actorID string, role entities.Role) error {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return err
	}
	if actor.Role != role {
		return ErrUnauthorized
	}
	return nil
}

// save performs a single optimistic write, retrying on version
// conflict by re-applying nothing: callers that mutate gates use their
// own retry loops; this helper is for writes where a conflict is not
// expected in normal operation.
func (u *RequestLifecycleUseCase) save(ctx context.Context, r entities.ContractingRequest) (entities.ContractingRequest, error) {
	saved, err := u.repo.Save(ctx, r)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if saved.ID == "" {
		return entities.ContractingRequest{}, ErrConcurrentUpdate
	}
	return saved, nil
}
