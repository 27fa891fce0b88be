// Package analytics contiene el caso de uso de reportería: resumen del
// tablero, ranking top-5 de equipos más utilizados y movimientos
// recientes. Los agregados son funciones puras de dominio que se
// recalculan completos sobre las colecciones cargadas.
package analytics

import (
	"math"

	"github.com/jhoicas/Equipos-api/internal/application/cache"
	"github.com/jhoicas/Equipos-api/internal/application/dto"
	"github.com/jhoicas/Equipos-api/internal/domain/entity"
	"github.com/jhoicas/Equipos-api/internal/domain/reports"
	"github.com/jhoicas/Equipos-api/internal/domain/repository"
)

// recentMovements cuántos movimientos recientes lleva el reporte.
const recentMovements = 20

// ReportUseCase arma el reporte de uso del tenant.
type ReportUseCase struct {
	equipRepo repository.EquipmentRepository
	movRepo   repository.MovementRepository
	exporter  ReportExporter
	store     *cache.Store
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(equipRepo repository.EquipmentRepository, movRepo repository.MovementRepository, exporter ReportExporter, store *cache.Store) *ReportUseCase {
	return &ReportUseCase{equipRepo: equipRepo, movRepo: movRepo, exporter: exporter, store: store}
}

// Build recalcula el reporte completo para el tenant.
func (uc *ReportUseCase) Build(companyID string) (*dto.ReportResponse, error) {
	equipments, err := uc.loadEquipments(companyID)
	if err != nil {
		return nil, err
	}
	movements, err := uc.loadMovements(companyID)
	if err != nil {
		return nil, err
	}

	summary := reports.BuildSummary(equipments, movements)
	avg := reports.AverageUsage(movements)
	ranking := reports.TopUsage(movements, reports.TopN)

	top := make([]dto.TopUsageItem, 0, len(ranking))
	for _, r := range ranking {
		top = append(top, dto.TopUsageItem{Name: r.Name, Count: r.Count})
	}

	recent := make([]dto.MovementResponse, 0, recentMovements)
	for i := len(movements) - 1; i >= 0 && len(recent) < recentMovements; i-- {
		recent = append(recent, *movementToResponse(movements[i]))
	}

	return &dto.ReportResponse{
		Summary: dto.ReportSummary{
			TotalEquipments: summary.TotalEquipments,
			Available:       summary.Available,
			InUse:           summary.InUse,
			Maintenance:     summary.Maintenance,
			TotalMovements:  summary.TotalMovements,
			Withdrawals:     summary.Withdrawals,
			Returns:         summary.Returns,
			AvgUsageHours:   math.Round(avg.Hours()*10) / 10,
		},
		TopUsage:        top,
		RecentMovements: recent,
	}, nil
}

// Export genera el XLSX del reporte de uso.
func (uc *ReportUseCase) Export(companyID string) ([]byte, error) {
	report, err := uc.Build(companyID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportUsageReport(report)
}

// Recent devuelve los últimos movimientos del tenant, más nuevos primero.
func (uc *ReportUseCase) Recent(companyID string) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.ListRecent(companyID, recentMovements)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *movementToResponse(m))
	}
	return &dto.MovementListResponse{Items: items}, nil
}

func (uc *ReportUseCase) loadEquipments(companyID string) ([]*entity.Equipment, error) {
	key := cache.Key(cache.Equipments, companyID)
	if v, ok := uc.store.Get(key); ok {
		if list, ok := v.([]*entity.Equipment); ok {
			return list, nil
		}
	}
	list, err := uc.equipRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}
	uc.store.Set(key, list)
	return list, nil
}

func (uc *ReportUseCase) loadMovements(companyID string) ([]*entity.Movement, error) {
	key := cache.Key(cache.Movements, companyID)
	if v, ok := uc.store.Get(key); ok {
		if list, ok := v.([]*entity.Movement); ok {
			return list, nil
		}
	}
	list, err := uc.movRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}
	uc.store.Set(key, list)
	return list, nil
}

func movementToResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		EquipmentID:   m.EquipmentID,
		EquipmentName: m.EquipmentName,
		EquipmentCode: m.EquipmentCode,
		Kind:          m.Kind,
		Responsible:   m.Responsible,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}
