package analytics

import "github.com/jhoicas/Equipos-api/internal/application/dto"

// ReportExporter serializa el reporte de uso a un archivo descargable
// (XLSX). La implementación vive en infrastructure/excel.
type ReportExporter interface {
	ExportUsageReport(report *dto.ReportResponse) ([]byte, error)
}
