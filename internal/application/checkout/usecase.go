// Package checkout (application) orquesta el commit del lote de
// check-in/check-out: arma el lote con la lógica pura de dominio y
// procesa cada equipo secuencialmente, en orden de inserción, con el par
// de escrituras dentro de una transacción por equipo. Los fallos por
// equipo se capturan y cuentan; nunca abortan el resto ni se reintentan.
package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Equipos-api/internal/application/cache"
	"github.com/jhoicas/Equipos-api/internal/application/dto"
	"github.com/jhoicas/Equipos-api/internal/domain"
	domcheckout "github.com/jhoicas/Equipos-api/internal/domain/checkout"
	"github.com/jhoicas/Equipos-api/internal/domain/entity"
	"github.com/jhoicas/Equipos-api/internal/domain/repository"
)

// UseCase caso de uso del flujo de check-in/check-out.
type UseCase struct {
	lister EquipmentLister
	tx     TxRunner
	store  *cache.Store
	log    zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(lister EquipmentLister, tx TxRunner, store *cache.Store, log zerolog.Logger) *UseCase {
	return &UseCase{lister: lister, tx: tx, store: store, log: log}
}

// Resolve busca un código (entrada manual o resultado de escaneo, misma
// ruta) y devuelve el equipo con la acción que implicaría como primer
// elemento del lote. Devuelve domain.ErrCodeNotFound si no existe.
func (uc *UseCase) Resolve(companyID, code string) (*dto.ResolveResponse, error) {
	collection, err := uc.lister.ListAll(companyID)
	if err != nil {
		return nil, err
	}
	b := domcheckout.NewBatch()
	e, err := b.Add(collection, code)
	if err != nil {
		return nil, err
	}
	return &dto.ResolveResponse{
		Equipment: *equipmentToResponse(e),
		Action:    b.Action(),
	}, nil
}

// Commit valida y procesa el lote completo. Toda validación (responsable
// requerido, lote no vacío, códigos existentes, sin duplicados, estado
// homogéneo) ocurre ANTES de cualquier escritura remota; un rechazo no
// deja estado corrupto. Luego procesa los equipos en orden de inserción,
// uno a la vez, sin cancelación a mitad de commit.
func (uc *UseCase) Commit(ctx context.Context, companyID string, in dto.CommitRequest) (*dto.CommitResponse, error) {
	responsible := strings.TrimSpace(in.Responsible)
	if responsible == "" {
		return nil, domain.ErrNoResponsible
	}
	if len(in.Codes) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	collection, err := uc.lister.ListAll(companyID)
	if err != nil {
		return nil, err
	}
	batch := domcheckout.NewBatch()
	for _, code := range in.Codes {
		if _, err := batch.Add(collection, code); err != nil {
			return nil, err
		}
	}

	action := batch.Action()
	now := time.Now()
	result := &dto.CommitResponse{Action: action, Total: batch.Size()}

	for _, item := range batch.Items() {
		if err := uc.commitItem(ctx, companyID, item, action, responsible, in.Notes, now); err != nil {
			result.Failed++
			result.FailedCodes = append(result.FailedCodes, item.Code)
			uc.log.Error().Err(err).
				Str("equipment_id", item.ID).
				Str("code", item.Code).
				Str("action", action).
				Msg("fallo al procesar equipo del lote")
			continue
		}
		result.Succeeded++
	}

	if result.Succeeded > 0 {
		// Un movimiento siempre va en pareja con una escritura de equipo:
		// se invalidan ambas colecciones.
		uc.store.Invalidate(cache.Movements, cache.Equipments)
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("action", action).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("commit de lote finalizado")
	return result, nil
}

// commitItem voltea estado y ubicación del equipo y agrega el movimiento
// correspondiente, ambos dentro de una transacción. Trabaja sobre una
// copia: la entidad de la colección cacheada no se muta.
func (uc *UseCase) commitItem(ctx context.Context, companyID string, item *entity.Equipment, action, responsible, notes string, now time.Time) error {
	upd := *item
	var kind string
	if action == domcheckout.ActionCheckout {
		upd.Status = entity.StatusInUse
		upd.Holder = responsible
		kind = entity.MovementWithdrawal
	} else {
		upd.Status = entity.StatusAvailable
		upd.Holder = entity.DefaultStockLocation
		kind = entity.MovementReturn
	}
	upd.UpdatedAt = now

	movement := &entity.Movement{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		EquipmentID: item.ID,
		Kind:        kind,
		Responsible: responsible,
		Notes:       notes,
		CreatedAt:   now,
	}

	return uc.tx.Run(ctx, func(equipRepo repository.EquipmentRepository, movRepo repository.MovementRepository) error {
		if err := equipRepo.Update(&upd); err != nil {
			return err
		}
		return movRepo.Create(movement)
	})
}

func equipmentToResponse(e *entity.Equipment) *dto.EquipmentResponse {
	return &dto.EquipmentResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		Name:      e.Name,
		Code:      e.Code,
		Category:  e.Category,
		Status:    e.Status,
		Holder:    e.Holder,
		UpdatedAt: e.UpdatedAt,
	}
}
