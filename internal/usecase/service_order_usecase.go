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
	ErrOrderNotFound        = errors.New("service order request not found")
	ErrNotUmbrellaContract  = errors.New("service orders require an umbrella contract")
	ErrContractNotActive    = errors.New("contract is not in execution")
	ErrInvalidOrderValue    = errors.New("invalid service order value")
	ErrMissingOrderDocument = errors.New("service order document is required")
	ErrWrongOrderStep       = errors.New("service order is not waiting on this step")
)

// SubmitOrderCommand carries the requester's work order proposal.

type SubmitOrderCommand struct {
	ContractID  string
	RequesterID string
	Title       string
	Description string
	Value       float64
	Deadline    time.Time
}

// IServiceOrderUseCase runs the sequential work-order chain for
// umbrella contracts: line lead, then the supply document upload, then
// the manager. Each step only accepts the order in its own state and
// rejection anywhere terminates the chain.

type IServiceOrderUseCase interface {
	Submit(ctx context.Context, cmd SubmitOrderCommand) (entities.ServiceOrderRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrderRequest, error)
	List(ctx context.Context) ([]entities.ServiceOrderRequest, error)
	DecideLineLead(ctx context.Context, orderID, actorID string, decision entities.Decision, justification string) (entities.ServiceOrderRequest, error)
	AttachDocument(ctx context.Context, orderID, actorID, documentRef string) (entities.ServiceOrderRequest, error)
	DecideManager(ctx context.Context, orderID, actorID string, decision entities.Decision, justification string) (entities.ServiceOrderRequest, error)
	GetOrder(ctx context.Context, orderRequestID string) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	orders    interfaces.IServiceOrderRepository
	contracts interfaces.IContractRepository
	suppliers interfaces.ISupplierRepository
	directory interfaces.IDirectory
	notify    *notifier
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	contracts interfaces.IContractRepository,
	suppliers interfaces.ISupplierRepository,
	directory interfaces.IDirectory,
	mailer interfaces.INotificationDispatcher,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		orders:    orders,
		contracts: contracts,
		suppliers: suppliers,
		directory: directory,
		notify:    newNotifier(directory, mailer),
	}
}

// Submit opens the chain. Only contracts in execution whose supplier is
// flagged as umbrella accept work orders.
func (u *ServiceOrderUseCase) Submit(ctx context.Context, cmd SubmitOrderCommand) (entities.ServiceOrderRequest, error) {
	cmd.ContractID = strings.TrimSpace(cmd.ContractID)
	cmd.RequesterID = strings.TrimSpace(cmd.RequesterID)
	cmd.Title = strings.TrimSpace(cmd.Title)
	if cmd.ContractID == "" || cmd.RequesterID == "" || cmd.Title == "" {
		return entities.ServiceOrderRequest{}, ErrOrderNotFound
	}
	if cmd.Value <= 0 {
		return entities.ServiceOrderRequest{}, ErrInvalidOrderValue
	}

	requester, err := u.directory.GetUser(ctx, cmd.RequesterID)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	if requester.ID == "" {
		return entities.ServiceOrderRequest{}, ErrUnauthorized
	}

	contract, err := u.contracts.GetByID(ctx, cmd.ContractID)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	if contract.ID == "" {
		return entities.ServiceOrderRequest{}, ErrContractNotFound
	}
	if contract.Status != entities.ContractStatusActive {
		return entities.ServiceOrderRequest{}, ErrContractNotActive
	}
	supplier, err := u.suppliers.GetByID(ctx, contract.SupplierID)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	if !supplier.Umbrella {
		return entities.ServiceOrderRequest{}, ErrNotUmbrellaContract
	}

	now := time.Now().UTC()
	order := entities.ServiceOrderRequest{
		ID:             uuid.NewString(),
		ContractID:     contract.ID,
		RequesterID:    requester.ID,
		Title:          cmd.Title,
		Description:    strings.TrimSpace(cmd.Description),
		Value:          cmd.Value,
		Deadline:       cmd.Deadline,
		Status:         entities.ServiceOrderStatusPendingLineLead,
		LineLeadReview: entities.ApprovalRecord{Role: entities.RoleLineLead, Decision: entities.DecisionPending},
		ManagerReview:  entities.ApprovalRecord{Role: entities.RoleManager, Decision: entities.DecisionPending},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.orders.CreateRequest(ctx, order)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	log.Printf("[service_order][usecase] submitted order_id=%s contract_id=%s value=%.2f", created.ID, created.ContractID, created.Value)

	u.notify.toRole(ctx, entities.RoleLineLead,
		"Nova ordem de serviço",
		"Uma nova ordem de serviço foi submetida no contrato guarda-chuva "+contract.ProjectCode+" e aguarda sua análise.")
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrderRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrderRequest{}, ErrOrderNotFound
	}
	order, err := u.orders.GetRequestByID(ctx, id)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrderRequest{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrderRequest, error) {
	return u.orders.ListRequests(ctx)
}

// DecideLineLead records the first step. Approval hands the order to
// the supply team for the document upload.
func (u *ServiceOrderUseCase) DecideLineLead(ctx context.Context, orderID, actorID string, decision entities.Decision, justification string) (entities.ServiceOrderRequest, error) {
	actor, err := u.requireRole(ctx, actorID, entities.RoleLineLead)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	justification = strings.TrimSpace(justification)
	if decision == entities.DecisionRejected && justification == "" {
		return entities.ServiceOrderRequest{}, ErrMissingJustification
	}
	if decision != entities.DecisionApproved && decision != entities.DecisionRejected {
		return entities.ServiceOrderRequest{}, entities.ErrInvalidDecision
	}

	order, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	if order.Status != entities.ServiceOrderStatusPendingLineLead {
		return entities.ServiceOrderRequest{}, ErrWrongOrderStep
	}

	order.LineLeadReview = entities.ApprovalRecord{
		Role:          entities.RoleLineLead,
		Decision:      decision,
		DecidedAt:     time.Now().UTC(),
		Justification: justification,
	}
	if decision == entities.DecisionApproved {
		order.Status = entities.ServiceOrderStatusPendingUpload
	} else {
		order.Status = entities.ServiceOrderStatusRejected
	}
	order.UpdatedAt = time.Now().UTC()

	saved, err := u.orders.SaveRequest(ctx, order)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	log.Printf("[service_order][usecase] line lead decision order_id=%s actor=%s decision=%s", saved.ID, actor.ID, decision)

	if decision == entities.DecisionApproved {
		u.notify.toRole(ctx, entities.RoleSupply,
			"Ordem de serviço aprovada pelo líder",
			"A ordem de serviço \""+saved.Title+"\" foi aprovada pelo líder de linha e aguarda o anexo do documento formal.")
	} else {
		u.notify.toUser(ctx, saved.RequesterID,
			"Ordem de serviço rejeitada",
			"A ordem de serviço \""+saved.Title+"\" foi rejeitada pelo líder de linha: "+justification)
	}
	return saved, nil
}

// AttachDocument is the supply step between the two decisions: the
// formal order document must exist before the manager can rule.
func (u *ServiceOrderUseCase) AttachDocument(ctx context.Context, orderID, actorID, documentRef string) (entities.ServiceOrderRequest, error) {
	if _, err := u.requireRole(ctx, actorID, entities.RoleSupply); err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	documentRef = strings.TrimSpace(documentRef)
	if documentRef == "" {
		return entities.ServiceOrderRequest{}, ErrMissingOrderDocument
	}

	order, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	if order.Status != entities.ServiceOrderStatusPendingUpload {
		return entities.ServiceOrderRequest{}, ErrWrongOrderStep
	}

	order.DocumentRef = documentRef
	order.Status = entities.ServiceOrderStatusPendingManager
	order.UpdatedAt = time.Now().UTC()

	saved, err := u.orders.SaveRequest(ctx, order)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	log.Printf("[service_order][usecase] document attached order_id=%s ref=%s", saved.ID, documentRef)

	u.notify.toRole(ctx, entities.RoleManager,
		"Ordem de serviço aguardando aprovação",
		"A ordem de serviço \""+saved.Title+"\" recebeu o documento formal e aguarda a aprovação da gerência.")
	return saved, nil
}

// DecideManager closes the chain. Approval materializes the order with
// a conditional put keyed on the order request, so a double submit
// still yields exactly one order.
func (u *ServiceOrderUseCase) DecideManager(ctx context.Context, orderID, actorID string, decision entities.Decision, justification string) (entities.ServiceOrderRequest, error) {
	actor, err := u.requireRole(ctx, actorID, entities.RoleManager)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	justification = strings.TrimSpace(justification)
	if decision == entities.DecisionRejected && justification == "" {
		return entities.ServiceOrderRequest{}, ErrMissingJustification
	}
	if decision != entities.DecisionApproved && decision != entities.DecisionRejected {
		return entities.ServiceOrderRequest{}, entities.ErrInvalidDecision
	}

	order, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	if order.Status != entities.ServiceOrderStatusPendingManager {
		return entities.ServiceOrderRequest{}, ErrWrongOrderStep
	}

	now := time.Now().UTC()
	order.ManagerReview = entities.ApprovalRecord{
		Role:          entities.RoleManager,
		Decision:      decision,
		DecidedAt:     now,
		Justification: justification,
	}
	if decision == entities.DecisionApproved {
		order.Status = entities.ServiceOrderStatusApproved
	} else {
		order.Status = entities.ServiceOrderStatusRejected
	}
	order.UpdatedAt = now

	saved, err := u.orders.SaveRequest(ctx, order)
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	log.Printf("[service_order][usecase] manager decision order_id=%s actor=%s decision=%s", saved.ID, actor.ID, decision)

	if decision == entities.DecisionRejected {
		u.notify.toUser(ctx, saved.RequesterID,
			"Ordem de serviço rejeitada",
			"A ordem de serviço \""+saved.Title+"\" foi rejeitada pela gerência: "+justification)
		return saved, nil
	}

	created, err := u.orders.CreateOrder(ctx, entities.ServiceOrder{
		OrderRequestID: saved.ID,
		ID:             uuid.NewString(),
		ContractID:     saved.ContractID,
		Title:          saved.Title,
		Description:    saved.Description,
		Value:          saved.Value,
		Deadline:       saved.Deadline,
		DocumentRef:    saved.DocumentRef,
		CreatedAt:      now,
	})
	if err != nil {
		return entities.ServiceOrderRequest{}, err
	}
	if created.ID == "" {
		// Someone already materialized this order; same outcome.
		log.Printf("[service_order][usecase] order already materialized order_request_id=%s", saved.ID)
	}

	u.notify.toUser(ctx, saved.RequesterID,
		"Ordem de serviço aprovada",
		"A ordem de serviço \""+saved.Title+"\" foi aprovada pela gerência e emitida.")
	u.notify.toRole(ctx, entities.RoleSupply,
		"Ordem de serviço emitida",
		"A ordem de serviço \""+saved.Title+"\" foi aprovada e emitida no contrato.")
	return saved, nil
}

func (u *ServiceOrderUseCase) GetOrder(ctx context.Context, orderRequestID string) (entities.ServiceOrder, error) {
	orderRequestID = strings.TrimSpace(orderRequestID)
	if orderRequestID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	o, err := u.orders.GetOrderByRequestID(ctx, orderRequestID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) requireRole(ctx context.Context, actorID string, role entities.Role) (entities.User, error) {
	actor, err := u.directory.GetUser(ctx, strings.TrimSpace(actorID))
	if err != nil {
		return entities.User{}, err
	}
	if actor.ID == "" || actor.Role != role {
		return entities.User{}, ErrUnauthorized
	}
	return actor, nil
}
