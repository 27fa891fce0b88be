package usecase

import (
	"context"

	"github.com/jhoicas/Equipos-api/internal/domain/entity"
)

// LabelGenerator renderiza la hoja de etiqueta escaneable (QR) de un
// equipo. La implementación vive en infrastructure/pdf.
type LabelGenerator interface {
	GenerateLabel(ctx context.Context, equipment *entity.Equipment, company *entity.Company) ([]byte, error)
}
