package checkout

import (
	"context"

	"github.com/jhoicas/Equipos-api/internal/domain/entity"
	"github.com/jhoicas/Equipos-api/internal/domain/repository"
)

// EquipmentLister entrega la colección completa de equipos del tenant
// (con cache por detrás). Lo implementa *usecase.EquipmentUseCase.
type EquipmentLister interface {
	ListAll(companyID string) ([]*entity.Equipment, error)
}

// TxRunner ejecuta un callback con repos atados a una transacción
// PostgreSQL: el par actualización-de-equipo + inserción-de-movimiento
// de UN equipo confirma o revierte junto. La atomicidad es por equipo;
// el lote completo sigue siendo best-effort.
type TxRunner interface {
	Run(ctx context.Context, fn func(equipRepo repository.EquipmentRepository, movRepo repository.MovementRepository) error) error
}
