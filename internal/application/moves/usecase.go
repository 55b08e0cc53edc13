package moves

import (
	"context"
	"fmt"

	"github.com/stockmaster/ops-gateway/internal/domain"
	"github.com/stockmaster/ops-gateway/internal/domain/entity"
	domainmoves "github.com/stockmaster/ops-gateway/internal/domain/moves"
)

// UseCase orquesta el flujo de movimientos: valida en el gateway (primera
// línea de defensa), delega la autoridad en el backend y nunca aplica
// actualizaciones optimistas.
type UseCase struct {
	svc MoveService
}

// NewUseCase construye el caso de uso.
func NewUseCase(svc MoveService) *UseCase {
	return &UseCase{svc: svc}
}

// Action acción de transición disponible para el UI.
type Action struct {
	Next  entity.Status
	Label string
}

// List consulta el backend y aplica los filtros también en el gateway
// (el límite viaja además en la consulta remota).
func (uc *UseCase) List(ctx context.Context, f domainmoves.ListFilters) ([]*entity.MoveRecord, error) {
	list, err := uc.svc.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return domainmoves.Apply(list, f), nil
}

// Create valida los campos requeridos según el tipo y, solo si pasan, envía la
// creación al backend. Un fallo de validación no gasta round-trip.
func (uc *UseCase) Create(ctx context.Context, in domainmoves.CreateMoveInput) (*entity.MoveRecord, error) {
	payload, err := domainmoves.ValidateCreate(in)
	if err != nil {
		return nil, err
	}
	return uc.svc.Create(ctx, payload)
}

// Validate finaliza un movimiento en ready aplicando efectos de stock.
// El rechazo del backend (detail) se propaga sin tocar estado local.
func (uc *UseCase) Validate(ctx context.Context, id int64) (*entity.MoveRecord, error) {
	return uc.svc.Validate(ctx, id)
}

// ChangeStatus pre-verifica la transición contra la tabla local y, si es
// legal, la solicita al backend, que la re-valida como autoridad.
func (uc *UseCase) ChangeStatus(ctx context.Context, id int64, next entity.Status) (*entity.MoveRecord, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, next)
	}
	current, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domainmoves.CanTransition(current.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, current.Status, next)
	}
	return uc.svc.ChangeStatus(ctx, id, next)
}

// Actions devuelve las acciones disponibles de un movimiento: un botón por
// estado siguiente legal, más el flag de Validate cuando está en ready.
func (uc *UseCase) Actions(ctx context.Context, id int64) (*entity.MoveRecord, []Action, bool, error) {
	current, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, nil, false, err
	}
	next := domainmoves.NextStatuses(current.Status)
	actions := make([]Action, 0, len(next))
	for _, s := range next {
		actions = append(actions, Action{Next: s, Label: domainmoves.ActionLabel(s)})
	}
	return current, actions, domainmoves.CanValidate(current.Status), nil
}

// GetByID localiza un movimiento re-consultando el listado: el contrato remoto
// no expone lectura individual, igual que el UI original trabajaba sobre la
// lista en memoria.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*entity.MoveRecord, error) {
	list, err := uc.svc.List(ctx, domainmoves.ListFilters{})
	if err != nil {
		return nil, err
	}
	for _, m := range list {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}
