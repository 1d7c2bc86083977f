package dto

// UpdateObservationRequest entrada de POST /api/observaciones.
type UpdateObservationRequest struct {
	Despacho    string `json:"despacho" validate:"required"`
	Item        string `json:"item" validate:"required"`
	Observacion string `json:"observacion"`
}

// SuggestionRequest parámetros de GET /api/sugerencias.
type SuggestionRequest struct {
	Q     string `query:"q"`
	Campo string `query:"campo"` // importador | posicion (por defecto)
}
