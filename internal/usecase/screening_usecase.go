package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"
)

var (
	ErrEmptyCandidateSet  = errors.New("candidate set must not be empty")
	ErrUnknownSupplier    = errors.New("supplier is not in the catalog")
	ErrNotAmongCandidates = errors.New("supplier was not screened in")
	ErrInvalidBidAmount   = errors.New("invalid bid amount")
	ErrProposalNotFound   = errors.New("proposal not found")
)

// CandidateInput is one supplier entering the screened set, optionally
// carrying its bid.

type CandidateInput struct {
	SupplierID   string
	Amount       float64
	PaymentTerms entities.PaymentTerms
	ValidUntil   time.Time
	ArtifactRef  string
}

func (c CandidateInput) hasBid() bool {
	return c.Amount > 0 || c.PaymentTerms != "" || !c.ValidUntil.IsZero() || c.ArtifactRef != ""
}

// IScreeningUseCase produces the candidate set of suppliers with bids
// for a request, and records the coordinator's pick from it.

type IScreeningUseCase interface {
	Screen(ctx context.Context, requestID, actorID string, candidates []CandidateInput) (entities.ContractingRequest, error)
	DeclareNoCandidate(ctx context.Context, requestID, actorID string) (entities.ContractingRequest, error)
	SelectSupplier(ctx context.Context, requestID, actorID, supplierID, justification string) (entities.ContractingRequest, error)
	ListProposals(ctx context.Context, requestID string) ([]entities.Proposal, error)
	RenegotiateValue(ctx context.Context, requestID, actorID string, newAmount float64) (entities.Proposal, error)
}

type ScreeningUseCase struct {
	requests  interfaces.IContractingRequestRepository
	proposals interfaces.IProposalRepository
	suppliers interfaces.ISupplierRepository
	directory interfaces.IDirectory
	notify    *notifier
}

var _ IScreeningUseCase = (*ScreeningUseCase)(nil)

func NewScreeningUseCase(
	requests interfaces.IContractingRequestRepository,
	proposals interfaces.IProposalRepository,
	suppliers interfaces.ISupplierRepository,
	directory interfaces.IDirectory,
	mailer interfaces.INotificationDispatcher,
) *ScreeningUseCase {
	return &ScreeningUseCase{
		requests:  requests,
		proposals: proposals,
		suppliers: suppliers,
		directory: directory,
		notify:    newNotifier(directory, mailer),
	}
}

// Screen records the candidate set, upserts one proposal per candidate
// that carries bid fields, and clears any earlier selection. Allowed
// on a supply-approved request and again after a supplier rejection or
// a no-candidate declaration.
func (u *ScreeningUseCase) Screen(ctx context.Context, requestID, actorID string, candidates []CandidateInput) (entities.ContractingRequest, error) {
	if err := u.requireRole(ctx, actorID, entities.RoleSupply); err != nil {
		return entities.ContractingRequest{}, err
	}
	if len(candidates) == 0 {
		return entities.ContractingRequest{}, ErrEmptyCandidateSet
	}

	r, err := u.getRequest(ctx, requestID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if r.Status != entities.RequestStatusSupplyApproved && r.Status != entities.RequestStatusScreeningComplete {
		return entities.ContractingRequest{}, &entities.InvalidTransitionError{From: r.Status, Attempted: entities.RequestStatusScreeningComplete}
	}

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c.SupplierID = strings.TrimSpace(c.SupplierID)
		if c.SupplierID == "" {
			return entities.ContractingRequest{}, ErrUnknownSupplier
		}
		s, err := u.suppliers.GetByID(ctx, c.SupplierID)
		if err != nil {
			return entities.ContractingRequest{}, err
		}
		if s.ID == "" {
			return entities.ContractingRequest{}, ErrUnknownSupplier
		}
		ids = append(ids, c.SupplierID)
	}

	r.ClearSelection()
	r.ScreenedSupplierIDs = ids
	r.NoCandidateDeclared = false
	if r.Status != entities.RequestStatusScreeningComplete {
		if err := r.Transition(entities.RequestStatusScreeningComplete); err != nil {
			return entities.ContractingRequest{}, err
		}
	}

	saved, err := u.requests.Save(ctx, r)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if saved.ID == "" {
		return entities.ContractingRequest{}, ErrConcurrentUpdate
	}

	now := time.Now().UTC()
	for _, c := range candidates {
		if !c.hasBid() {
			continue
		}
		p := entities.Proposal{
			RequestID:    saved.ID,
			SupplierID:   strings.TrimSpace(c.SupplierID),
			Amount:       c.Amount,
			PaymentTerms: c.PaymentTerms,
			ValidUntil:   c.ValidUntil,
			ArtifactRef:  strings.TrimSpace(c.ArtifactRef),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := u.proposals.Upsert(ctx, p); err != nil {
			return entities.ContractingRequest{}, err
		}
	}
	log.Printf("[screening][usecase] screened id=%s candidates=%d", saved.ID, len(ids))

	u.notify.toUser(ctx, saved.CoordinatorID,
		"Triagem de fornecedores realizada",
		"A equipe de suprimentos realizou a triagem de fornecedores para o projeto "+saved.ProjectCode+". Selecione sua escolha no sistema.")
	return saved, nil
}

// DeclareNoCandidate flags the screened set as inadequate: candidates
// are cleared and the request waits for a new screening round without
// advancing status.
func (u *ScreeningUseCase) DeclareNoCandidate(ctx context.Context, requestID, actorID string) (entities.ContractingRequest, error) {
	r, err := u.getRequest(ctx, requestID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if strings.TrimSpace(actorID) != r.CoordinatorID {
		return entities.ContractingRequest{}, ErrUnauthorized
	}
	if r.Status != entities.RequestStatusScreeningComplete {
		return entities.ContractingRequest{}, &entities.InvalidTransitionError{From: r.Status, Attempted: entities.RequestStatusScreeningComplete}
	}

	r.ClearSelection()
	r.NoCandidateDeclared = true

	saved, err := u.requests.Save(ctx, r)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if saved.ID == "" {
		return entities.ContractingRequest{}, ErrConcurrentUpdate
	}
	log.Printf("[screening][usecase] no candidate declared id=%s", saved.ID)

	u.notify.toRole(ctx, entities.RoleSupply,
		"Triagem declarada ineficaz pelo coordenador",
		"O coordenador declarou que nenhum dos fornecedores triados é ideal para o projeto "+saved.ProjectCode+". Uma nova triagem é necessária.")
	return saved, nil
}

// SelectSupplier records the coordinator's pick with its mandatory
// justification and opens the manager/director gate.
func (u *ScreeningUseCase) SelectSupplier(ctx context.Context, requestID, actorID, supplierID, justification string) (entities.ContractingRequest, error) {
	supplierID = strings.TrimSpace(supplierID)
	justification = strings.TrimSpace(justification)
	if justification == "" {
		return entities.ContractingRequest{}, ErrMissingJustification
	}

	r, err := u.getRequest(ctx, requestID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if strings.TrimSpace(actorID) != r.CoordinatorID {
		return entities.ContractingRequest{}, ErrUnauthorized
	}
	if !r.Screened(supplierID) {
		return entities.ContractingRequest{}, ErrNotAmongCandidates
	}
	if err := r.Transition(entities.RequestStatusSupplierSelected); err != nil {
		return entities.ContractingRequest{}, err
	}

	r.Selection = &entities.SupplierSelection{
		SupplierID:    supplierID,
		Justification: justification,
		SelectedAt:    time.Now().UTC(),
	}
	r.NoCandidateDeclared = false
	r.SupplierGate.Reset()

	saved, err := u.requests.Save(ctx, r)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if saved.ID == "" {
		return entities.ContractingRequest{}, ErrConcurrentUpdate
	}
	log.Printf("[screening][usecase] supplier selected id=%s supplier=%s", saved.ID, supplierID)

	u.notify.toManagersFor(ctx, saved.CoordinatorID,
		"Aprovação necessária - Fornecedor escolhido",
		"O coordenador selecionou um fornecedor para o projeto "+saved.ProjectCode+". É necessário aprovar ou reprovar essa escolha.")
	return saved, nil
}

func (u *ScreeningUseCase) ListProposals(ctx context.Context, requestID string) ([]entities.Proposal, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	return u.proposals.ListByRequestID(ctx, requestID)
}

// RenegotiateValue updates the winning proposal's amount during
// contract planning (gerência renegotiation action).
func (u *ScreeningUseCase) RenegotiateValue(ctx context.Context, requestID, actorID string, newAmount float64) (entities.Proposal, error) {
	if newAmount <= 0 {
		return entities.Proposal{}, ErrInvalidBidAmount
	}
	actor, err := u.directory.GetUser(ctx, strings.TrimSpace(actorID))
	if err != nil {
		return entities.Proposal{}, err
	}
	if actor.Role != entities.RoleManager && actor.Role != entities.RoleSupply {
		return entities.Proposal{}, ErrUnauthorized
	}

	r, err := u.getRequest(ctx, requestID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if r.Selection == nil {
		return entities.Proposal{}, ErrProposalNotFound
	}
	p, err := u.proposals.GetByRequestAndSupplier(ctx, r.ID, r.Selection.SupplierID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.RequestID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	p.Amount = newAmount
	p.UpdatedAt = time.Now().UTC()
	return u.proposals.Upsert(ctx, p)
}

func (u *ScreeningUseCase) getRequest(ctx context.Context, requestID string) (entities.ContractingRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ContractingRequest{}, ErrInvalidRequestID
	}
	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.ContractingRequest{}, err
	}
	if r.ID == "" {
		return entities.ContractingRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *ScreeningUseCase) requireRole(ctx context.Context, actorID string, role entities.Role) error {
	actor, err := u.directory.GetUser(ctx, strings.TrimSpace(actorID))
	if err != nil {
		return err
	}
	if actor.ID == "" || actor.Role != role {
		return ErrUnauthorized
	}
	return nil
}
