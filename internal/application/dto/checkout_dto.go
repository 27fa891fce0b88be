package dto

// ResolveResponse resultado de buscar un código (entrada manual o escaneo
// externo: ambos pasan por la misma ruta). Action es la acción que ese
// equipo implicaría como primer elemento del lote.
type ResolveResponse struct {
	Equipment EquipmentResponse `json:"equipment"`
	Action    string            `json:"action"` // checkout, checkin
}

// CommitRequest confirma un lote de check-in/check-out. Codes conserva el
// orden en que se agregaron los equipos; ese orden se respeta al procesar.
type CommitRequest struct {
	Codes       []string `json:"codes"`
	Responsible string   `json:"responsible"`
	Notes       string   `json:"notes"`
}

// CommitResponse resumen del commit: conteos de éxito/fallo por equipo.
// Los fallos no se reintentan automáticamente; FailedCodes permite al
// operador reintentarlos manualmente.
type CommitResponse struct {
	Action      string   `json:"action"`
	Total       int      `json:"total"`
	Succeeded   int      `json:"succeeded"`
	Failed      int      `json:"failed"`
	FailedCodes []string `json:"failed_codes,omitempty"`
}
