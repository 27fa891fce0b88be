// Package pdf implementa la generación de etiquetas imprimibles de equipo.
//
// Layout de la etiqueta (media carta apaisada):
//
//	┌──────────────────────────────────────────────┐
//	│  EMPRESA                                      │
//	│  ───────────────────────────────────────────  │
//	│  NOMBRE DEL EQUIPO          ┌──────────┐      │
//	│  Código: CAM001             │    QR    │      │
//	│  Categoría: Cámara          │          │      │
//	│                             └──────────┘      │
//	│  Escanee el código para registrar movimientos │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Equipos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoLabelGenerator genera etiquetas de equipo con QR usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabel genera el PDF de la etiqueta y devuelve sus bytes.
// El QR codifica el código del equipo, que es lo que consume el flujo
// de retiro y devolución al escanear.
func (g *MarotoLabelGenerator) GenerateLabel(
	_ context.Context,
	equipment *entity.Equipment,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta de equipo "+equipment.Code, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(companyRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(bodyRow(equipment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// companyRow: razón social en la franja superior.
func companyRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Control de equipos", props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
	)
}

// bodyRow: datos del equipo a la izquierda, QR a la derecha.
func bodyRow(equipment *entity.Equipment) core.Row {
	return row.New(55).Add(
		col.New(7).Add(
			text.New(equipment.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 4,
			}),
			text.New("Código: "+equipment.Code, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 16, Color: colorPrimary,
			}),
			text.New("Categoría: "+nonEmpty(equipment.Category, "—"), props.Text{
				Size: 9, Top: 26, Color: colorGray,
			}),
		),
		col.New(5).Add(code.NewQr(equipment.Code, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// footerRow: instrucción de uso de la etiqueta.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Escanee el código para registrar retiros y devoluciones.",
			props.Text{Size: 7.5, Color: colorGray, Align: align.Center, Top: 2},
		),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
