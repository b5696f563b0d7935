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
	ErrMaterializationNotReady = errors.New("contract preconditions not yet met")
	ErrContractNotFound        = errors.New("contract not found")
	ErrInvalidContractStatus   = errors.New("invalid contract status")
)

// IMaterializerUseCase turns a fully-approved request into a binding
// contract. MaterializeIfReady is idempotent: it may be called from
// every gate decision and only ever produces one contract per request.

type IMaterializerUseCase interface {
	MaterializeIfReady(ctx context.Context, requestID string) (entities.Contract, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Contract, error)
	GetByID(ctx context.Context, contractID string) (entities.Contract, error)
	List(ctx context.Context) ([]entities.Contract, error)
	SetStatus(ctx context.Context, contractID, actorID string, status entities.ContractStatus) (entities.Contract, error)
}

type MaterializerUseCase struct {
	contracts interfaces.IContractRepository
	requests  interfaces.IContractingRequestRepository
	bulletins interfaces.IBulletinRepository
	proposals interfaces.IProposalRepository
	events    interfaces.IEventRepository
	directory interfaces.IDirectory
	notify    *notifier
}

var _ IMaterializerUseCase = (*MaterializerUseCase)(nil)

func NewMaterializerUseCase(
	contracts interfaces.IContractRepository,
	requests interfaces.IContractingRequestRepository,
	bulletins interfaces.IBulletinRepository,
	proposals interfaces.IProposalRepository,
	events interfaces.IEventRepository,
	directory interfaces.IDirectory,
	mailer interfaces.INotificationDispatcher,
) *MaterializerUseCase {
	return &MaterializerUseCase{
		contracts: contracts,
		requests:  requests,
		bulletins: bulletins,
		proposals: proposals,
		events:    events,
		directory: directory,
		notify:    newNotifier(directory, mailer),
	}
}

// MaterializeIfReady checks every gate and, when all of them converged,
// creates the contract keyed by the request id. A concurrent caller
// losing the conditional put simply reads back the winner's row, so the
// outcome is identical for both.
func (u *MaterializerUseCase) MaterializeIfReady(ctx context.Context, requestID string) (entities.Contract, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Contract{}, ErrInvalidRequestID
	}

	if existing, err := u.contracts.GetByRequestID(ctx, requestID); err != nil {
		return entities.Contract{}, err
	} else if existing.ID != "" {
		return existing, nil
	}

	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.Contract{}, err
	}
	if r.ID == "" {
		return entities.Contract{}, ErrRequestNotFound
	}
	if r.Status != entities.RequestStatusContractApprovalPending {
		return entities.Contract{}, ErrMaterializationNotReady
	}
	if r.Selection == nil || !r.Draft.Approved() {
		return entities.Contract{}, ErrMaterializationNotReady
	}

	bm, err := u.bulletins.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Contract{}, err
	}
	if bm.ID == "" || !bm.Converged() {
		return entities.Contract{}, ErrMaterializationNotReady
	}

	proposal, err := u.proposals.GetByRequestAndSupplier(ctx, requestID, r.Selection.SupplierID)
	if err != nil {
		return entities.Contract{}, err
	}

	contract := entities.Contract{
		RequestID:     r.ID,
		ID:            uuid.NewString(),
		ProjectCode:   r.ProjectCode,
		SupplierID:    r.Selection.SupplierID,
		CoordinatorID: r.CoordinatorID,
		StartDate:     r.Draft.StartDate,
		EndDate:       r.Draft.EndDate,
		TotalValue:    r.Draft.TotalValue,
		PaymentTerms:  proposal.PaymentTerms,
		Object:        r.Draft.Object,
		ArtifactRef:   r.Draft.ArtifactRef,
		Status:        entities.ContractStatusActive,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.contracts.Create(ctx, contract)
	if err != nil {
		return entities.Contract{}, err
	}
	if created.ID == "" {
		// Lost the conditional put to a concurrent materialization.
		created, err = u.contracts.GetByRequestID(ctx, requestID)
		if err != nil {
			return entities.Contract{}, err
		}
		if created.ID == "" {
			return entities.Contract{}, ErrContractNotFound
		}
		return created, nil
	}
	log.Printf("[materializer][usecase] contract created request_id=%s contract_id=%s supplier_id=%s", r.ID, created.ID, created.SupplierID)

	moved, err := u.events.ReparentToContract(ctx, r.ID, created.ID)
	if err != nil {
		log.Printf("[materializer][usecase] event reparent failed request_id=%s err=%v", r.ID, err)
	} else if moved > 0 {
		log.Printf("[materializer][usecase] events reparented request_id=%s contract_id=%s count=%d", r.ID, created.ID, moved)
	}

	if err := r.Transition(entities.RequestStatusOnboarded); err == nil {
		if saved, err := u.requests.Save(ctx, r); err != nil || saved.ID == "" {
			log.Printf("[materializer][usecase] onboarding transition not persisted request_id=%s err=%v", r.ID, err)
		}
	}

	body := "O contrato do projeto " + r.ProjectCode + " foi formalizado com o fornecedor selecionado."
	u.notify.toRole(ctx, entities.RoleSupply, "Contrato formalizado", body)
	u.notify.toUser(ctx, r.CoordinatorID, "Contrato formalizado", body)
	return created, nil
}

func (u *MaterializerUseCase) GetByRequestID(ctx context.Context, requestID string) (entities.Contract, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Contract{}, ErrInvalidRequestID
	}
	c, err := u.contracts.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *MaterializerUseCase) GetByID(ctx context.Context, contractID string) (entities.Contract, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	c, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *MaterializerUseCase) List(ctx context.Context) ([]entities.Contract, error) {
	return u.contracts.List(ctx)
}

// SetStatus suspends, resumes or closes an existing contract. Only the
// supply team operates the contract registry.
func (u *MaterializerUseCase) SetStatus(ctx context.Context, contractID, actorID string, status entities.ContractStatus) (entities.Contract, error) {
	actor, err := u.directory.GetUser(ctx, strings.TrimSpace(actorID))
	if err != nil {
		return entities.Contract{}, err
	}
	if actor.ID == "" || actor.Role != entities.RoleSupply {
		return entities.Contract{}, ErrUnauthorized
	}
	switch status {
	case entities.ContractStatusActive, entities.ContractStatusSuspended, entities.ContractStatusClosed:
	default:
		return entities.Contract{}, ErrInvalidContractStatus
	}

	c, err := u.GetByID(ctx, contractID)
	if err != nil {
		return entities.Contract{}, err
	}
	c.Status = status
	saved, err := u.contracts.Save(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}
	log.Printf("[materializer][usecase] contract status contract_id=%s status=%s", saved.ID, saved.Status)
	return saved, nil
}
