// Package excel exporta el reporte de uso de equipos a XLSX.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Equipos-api/internal/application/analytics"
	"github.com/jhoicas/Equipos-api/internal/application/dto"
)

var _ analytics.ReportExporter = (*ReportExporter)(nil)

// ReportExporter genera el archivo XLSX del reporte usando excelize.
type ReportExporter struct{}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter { return &ReportExporter{} }

// ExportUsageReport arma un libro con tres secciones: resumen, ranking de
// uso y movimientos recientes. Devuelve los bytes del .xlsx.
func (e *ReportExporter) ExportUsageReport(report *dto.ReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows := [][]interface{}{
		{"Resumen de equipos"},
		{"Total de equipos", report.Summary.TotalEquipments},
		{"Disponibles", report.Summary.Available},
		{"En uso", report.Summary.InUse},
		{"En mantenimiento", report.Summary.Maintenance},
		{"Total de movimientos", report.Summary.TotalMovements},
		{"Retiros", report.Summary.Withdrawals},
		{"Devoluciones", report.Summary.Returns},
		{"Horas promedio de uso", report.Summary.AvgUsageHours},
		{},
		{"Equipos más usados"},
		{"Equipo", "Retiros"},
	}
	for _, item := range report.TopUsage {
		rows = append(rows, []interface{}{item.Name, item.Count})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Movimientos recientes"},
		[]interface{}{"Fecha", "Equipo", "Código", "Tipo", "Responsable", "Notas"},
	)
	for _, m := range report.RecentMovements {
		rows = append(rows, []interface{}{
			m.CreatedAt.Format("2006-01-02 15:04"), m.EquipmentName, m.EquipmentCode, m.Kind, m.Responsible, m.Notes,
		})
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+1, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
