// Package reports contiene los agregados puros de reportería: ranking de
// uso, contadores de resumen y duración promedio. Se recalculan completos
// sobre las colecciones cargadas, sin estado mutable propio.
package reports

import (
	"sort"
	"time"

	"github.com/jhoicas/Equipos-api/internal/domain/entity"
)

// TopN es el tamaño del ranking de equipos más utilizados.
const TopN = 5

// UsageCount es una entrada del ranking: nombre de equipo y retiros.
type UsageCount struct {
	Name  string
	Count int
}

// TopUsage agrupa los movimientos de retiro por nombre de equipo, cuenta
// ocurrencias, ordena descendente y trunca a n. El desempate es el orden
// de primera aparición en la bitácora (sort estable).
func TopUsage(movements []*entity.Movement, n int) []UsageCount {
	counts := make(map[string]int)
	var order []string
	for _, m := range movements {
		if m.Kind != entity.MovementWithdrawal {
			continue
		}
		if _, seen := counts[m.EquipmentName]; !seen {
			order = append(order, m.EquipmentName)
		}
		counts[m.EquipmentName]++
	}

	ranking := make([]UsageCount, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, UsageCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// Summary son los contadores del tablero: filtros simples sobre las
// colecciones cargadas, sin agregación del lado del backend.
type Summary struct {
	TotalEquipments int
	Available       int
	InUse           int
	Maintenance     int
	TotalMovements  int
	Withdrawals     int
	Returns         int
}

// BuildSummary calcula los contadores sobre equipos y movimientos.
func BuildSummary(equipments []*entity.Equipment, movements []*entity.Movement) Summary {
	s := Summary{
		TotalEquipments: len(equipments),
		TotalMovements:  len(movements),
	}
	for _, e := range equipments {
		switch e.Status {
		case entity.StatusAvailable:
			s.Available++
		case entity.StatusInUse:
			s.InUse++
		case entity.StatusMaintenance:
			s.Maintenance++
		}
	}
	for _, m := range movements {
		switch m.Kind {
		case entity.MovementWithdrawal:
			s.Withdrawals++
		case entity.MovementReturn:
			s.Returns++
		}
	}
	return s
}

// AverageUsage calcula la duración promedio de uso emparejando cada
// devolución con el retiro previo pendiente del mismo equipo. Los
// movimientos deben venir en orden cronológico ascendente. Devoluciones
// sin retiro previo (o retiros sin devolver aún) se ignoran.
func AverageUsage(movements []*entity.Movement) time.Duration {
	open := make(map[string]time.Time) // EquipmentID -> fecha del retiro pendiente
	var total time.Duration
	var pairs int
	for _, m := range movements {
		switch m.Kind {
		case entity.MovementWithdrawal:
			open[m.EquipmentID] = m.CreatedAt
		case entity.MovementReturn:
			if at, ok := open[m.EquipmentID]; ok {
				if d := m.CreatedAt.Sub(at); d > 0 {
					total += d
					pairs++
				}
				delete(open, m.EquipmentID)
			}
		}
	}
	if pairs == 0 {
		return 0
	}
	return total / time.Duration(pairs)
}
