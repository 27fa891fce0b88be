package dto

// TopUsageItem una entrada del ranking de equipos más utilizados.
type TopUsageItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ReportSummary contadores del tablero de reportes.
type ReportSummary struct {
	TotalEquipments int     `json:"total_equipments"`
	Available       int     `json:"available"`
	InUse           int     `json:"in_use"`
	Maintenance     int     `json:"maintenance"`
	TotalMovements  int     `json:"total_movements"`
	Withdrawals     int     `json:"withdrawals"`
	Returns         int     `json:"returns"`
	AvgUsageHours   float64 `json:"avg_usage_hours"`
}

// ReportResponse reporte completo: resumen, ranking top-5 y últimos
// movimientos.
type ReportResponse struct {
	Summary         ReportSummary      `json:"summary"`
	TopUsage        []TopUsageItem     `json:"top_usage"`
	RecentMovements []MovementResponse `json:"recent_movements"`
}
