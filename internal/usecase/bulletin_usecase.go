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
	ErrBulletinNotFound      = errors.New("measurement bulletin not found")
	ErrInvalidBulletinAmount = errors.New("invalid bulletin amount")
	ErrMissingArtifact       = errors.New("bulletin artifact is required")
	ErrGateNotReady          = errors.New("payment release requires both approvals first")
)

// BulletinInput is the already-validated submission payload for a
// measurement bulletin draft.

type BulletinInput struct {
	Amount      float64
	PaymentDate time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	ArtifactRef string
	EventID     string
}

// IBulletinUseCase governs the measurement bulletin: draft submission
// with artifact-change invalidation, the dual coordinator/manager
// gate, and the director payment release on top of it.

type IBulletinUseCase interface {
	Submit(ctx context.Context, requestID, actorID string, input BulletinInput) (entities.MeasurementBulletin, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.MeasurementBulletin, error)
	Decide(ctx context.Context, requestID, actorID string, decision entities.Decision, justification string) (entities.MeasurementBulletin, error)
	ReleasePayment(ctx context.Context, requestID, actorID string, decision entities.Decision, justification string) (entities.MeasurementBulletin, error)
}

type BulletinUseCase struct {
	bulletins    interfaces.IBulletinRepository
	requests     interfaces.IContractingRequestRepository
	directory    interfaces.IDirectory
	materializer IMaterializerUseCase
	notify       *notifier
}

var _ IBulletinUseCase = (*BulletinUseCase)(nil)

func NewBulletinUseCase(
	bulletins interfaces.IBulletinRepository,
	requests interfaces.IContractingRequestRepository,
	directory interfaces.IDirectory,
	materializer IMaterializerUseCase,
	mailer interfaces.INotificationDispatcher,
) *BulletinUseCase {
	return &BulletinUseCase{
		bulletins:    bulletins,
		requests:     requests,
		directory:    directory,
		materializer: materializer,
		notify:       newNotifier(directory, mailer),
	}
}

// Submit creates or replaces the draft BM. Any re-submission resets
// the dual gate and the payment release: a bulletin whose supporting
// document changed must be approved from scratch.
func (u *BulletinUseCase) Submit(ctx context.Context, requestID, actorID string, input BulletinInput) (entities.MeasurementBulletin, error) {
	if err := u.requireRole(ctx, actorID, entities.RoleSupply); err != nil {
		return entities.MeasurementBulletin{}, err
	}
	if input.Amount <= 0 {
		return entities.MeasurementBulletin{}, ErrInvalidBulletinAmount
	}
	input.ArtifactRef = strings.TrimSpace(input.ArtifactRef)
	if input.ArtifactRef == "" {
		return entities.MeasurementBulletin{}, ErrMissingArtifact
	}

	r, err := u.getRequest(ctx, requestID)
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	if r.Status != entities.RequestStatusContractPlanning && r.Status != entities.RequestStatusContractApprovalPending {
		return entities.MeasurementBulletin{}, &entities.InvalidTransitionError{From: r.Status, Attempted: entities.RequestStatusContractApprovalPending}
	}

	now := time.Now().UTC()
	bm, err := u.bulletins.GetByRequestID(ctx, r.ID)
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	replaced := bm.ID != ""
	if !replaced {
		bm = entities.NewMeasurementBulletin(uuid.NewString(), r.ID)
		bm.CreatedAt = now
	}
	bm.Amount = input.Amount
	bm.PaymentDate = input.PaymentDate
	bm.PeriodStart = input.PeriodStart
	bm.PeriodEnd = input.PeriodEnd
	bm.ArtifactRef = input.ArtifactRef
	bm.EventID = strings.TrimSpace(input.EventID)
	bm.UpdatedAt = now
	bm.Invalidate()

	var saved entities.MeasurementBulletin
	if replaced {
		saved, err = u.bulletins.Save(ctx, bm)
	} else {
		saved, err = u.bulletins.Put(ctx, bm)
	}
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	if saved.ID == "" {
		return entities.MeasurementBulletin{}, ErrConcurrentUpdate
	}

	if r.Status == entities.RequestStatusContractPlanning {
		if err := r.Transition(entities.RequestStatusContractApprovalPending); err != nil {
			return entities.MeasurementBulletin{}, err
		}
		if savedReq, err := u.requests.Save(ctx, r); err != nil {
			return entities.MeasurementBulletin{}, err
		} else if savedReq.ID == "" {
			return entities.MeasurementBulletin{}, ErrConcurrentUpdate
		}
	}
	log.Printf("[bulletin][usecase] submitted request_id=%s bm_id=%s replaced=%t", r.ID, saved.ID, replaced)

	body := "Uma minuta de Boletim de Medição foi anexada para o projeto " + r.ProjectCode + " e aguarda aprovação."
	u.notify.toUser(ctx, r.CoordinatorID, "Minuta do Boletim de Medição enviada", body)
	u.notify.toManagersFor(ctx, r.CoordinatorID, "Minuta do Boletim de Medição enviada", body)
	return saved, nil
}

func (u *BulletinUseCase) GetByRequestID(ctx context.Context, requestID string) (entities.MeasurementBulletin, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.MeasurementBulletin{}, ErrInvalidRequestID
	}
	bm, err := u.bulletins.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	if bm.ID == "" {
		return entities.MeasurementBulletin{}, ErrBulletinNotFound
	}
	return bm, nil
}

// Decide records one member of the coordinator/manager gate. On
// convergence the materializer runs; on rejection the request returns
// to planning and supply must re-submit the bulletin.
func (u *BulletinUseCase) Decide(ctx context.Context, requestID, actorID string, decision entities.Decision, justification string) (entities.MeasurementBulletin, error) {
	actor, err := u.directory.GetUser(ctx, strings.TrimSpace(actorID))
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	if actor.Role != entities.RoleCoordinator && actor.Role != entities.RoleManager {
		return entities.MeasurementBulletin{}, ErrUnauthorized
	}
	justification = strings.TrimSpace(justification)
	if decision == entities.DecisionRejected && justification == "" {
		return entities.MeasurementBulletin{}, ErrMissingJustification
	}

	r, err := u.getRequest(ctx, requestID)
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	if actor.Role == entities.RoleCoordinator && actor.ID != r.CoordinatorID {
		return entities.MeasurementBulletin{}, ErrUnauthorized
	}
	if r.Status != entities.RequestStatusContractApprovalPending {
		return entities.MeasurementBulletin{}, &entities.InvalidTransitionError{From: r.Status, Attempted: entities.RequestStatusContractApprovalPending}
	}

	for attempt := 0; attempt < saveAttempts; attempt++ {
		bm, err := u.GetByRequestID(ctx, r.ID)
		if err != nil {
			return entities.MeasurementBulletin{}, err
		}
		if err := bm.ApprovalGate.Record(actor.Role, decision, justification, time.Now().UTC()); err != nil {
			return entities.MeasurementBulletin{}, err
		}

		saved, err := u.bulletins.Save(ctx, bm)
		if err != nil {
			return entities.MeasurementBulletin{}, err
		}
		if saved.ID == "" {
			log.Printf("[bulletin][usecase] decision retry request_id=%s attempt=%d", r.ID, attempt+1)
			continue
		}
		log.Printf("[bulletin][usecase] decision request_id=%s role=%s decision=%s aggregate=%s", r.ID, actor.Role, decision, saved.ApprovalGate.State())

		switch saved.ApprovalGate.State() {
		case entities.DecisionApproved:
			body := "O Boletim de Medição do projeto " + r.ProjectCode + " foi aprovado pelo coordenador e pela gerência."
			u.notify.toRole(ctx, entities.RoleSupply, "Boletim de Medição aprovado", body)
			u.notify.toUser(ctx, r.CoordinatorID, "Boletim de Medição aprovado", body)
			if u.materializer != nil {
				if _, err := u.materializer.MaterializeIfReady(ctx, r.ID); err != nil && !errors.Is(err, ErrMaterializationNotReady) {
					log.Printf("[bulletin][usecase] materialization failed request_id=%s err=%v", r.ID, err)
				}
			}
		case entities.DecisionRejected:
			if r.Status == entities.RequestStatusContractApprovalPending {
				if err := r.Transition(entities.RequestStatusContractPlanning); err == nil {
					if savedReq, err := u.requests.Save(ctx, r); err != nil || savedReq.ID == "" {
						log.Printf("[bulletin][usecase] rollback to planning failed request_id=%s err=%v", r.ID, err)
					}
				}
			}
			u.notify.toRole(ctx, entities.RoleSupply,
				"Boletim de Medição reprovado",
				"O Boletim de Medição do projeto "+r.ProjectCode+" foi reprovado: "+justification+". Uma nova minuta deve ser enviada.")
		}
		return saved, nil
	}
	return entities.MeasurementBulletin{}, ErrConcurrentUpdate
}

// ReleasePayment is the director's gate layered on top of the dual
// approval; it is only accepted once both members approved.
func (u *BulletinUseCase) ReleasePayment(ctx context.Context, requestID, actorID string, decision entities.Decision, justification string) (entities.MeasurementBulletin, error) {
	if err := u.requireRole(ctx, actorID, entities.RoleDirector); err != nil {
		return entities.MeasurementBulletin{}, err
	}
	if decision != entities.DecisionApproved && decision != entities.DecisionRejected {
		return entities.MeasurementBulletin{}, entities.ErrInvalidDecision
	}
	justification = strings.TrimSpace(justification)
	if decision == entities.DecisionRejected && justification == "" {
		return entities.MeasurementBulletin{}, ErrMissingJustification
	}

	for attempt := 0; attempt < saveAttempts; attempt++ {
		bm, err := u.GetByRequestID(ctx, requestID)
		if err != nil {
			return entities.MeasurementBulletin{}, err
		}
		if !bm.Converged() {
			return entities.MeasurementBulletin{}, ErrGateNotReady
		}

		bm.PaymentRelease = entities.ApprovalRecord{
			Role:          entities.RoleDirector,
			Decision:      decision,
			DecidedAt:     time.Now().UTC(),
			Justification: justification,
		}
		saved, err := u.bulletins.Save(ctx, bm)
		if err != nil {
			return entities.MeasurementBulletin{}, err
		}
		if saved.ID == "" {
			continue
		}
		log.Printf("[bulletin][usecase] payment release request_id=%s decision=%s", requestID, decision)
		u.notify.toRole(ctx, entities.RoleFinance,
			"Liberação de pagamento",
			"A diretoria registrou a decisão de liberação de pagamento do Boletim de Medição: "+string(decision)+".")
		return saved, nil
	}
	return entities.MeasurementBulletin{}, ErrConcurrentUpdate
}

func (u *BulletinUseCase) getRequest(ctx context.Context, requestID string) (entities.ContractingRequest, error) {
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

func (u *BulletinUseCase) requireRole(ctx context.Context, actorID string, role entities.Role) error {
	actor, err := u.directory.GetUser(ctx, strings.TrimSpace(actorID))
	if err != nil {
		return err
	}
	if actor.ID == "" || actor.Role != role {
		return ErrUnauthorized
	}
	return nil
}
