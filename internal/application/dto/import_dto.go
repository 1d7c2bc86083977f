package dto

// UploadResultDTO resumen de una carga de planilla.
type UploadResultDTO struct {
	BatchID       string   `json:"batch_id"`
	Archivo       string   `json:"archivo"`
	Registros     int      `json:"registros"`
	Valoraciones  []string `json:"valoraciones"`   // VALOR LISTA / PLANILLA / RES detectadas
	ColumnasExtra []string `json:"columnas_extra"` // encabezados fuera del esquema
}

// EstadoDTO estado del almacén (GET /api/importaciones/estado).
type EstadoDTO struct {
	Cargado   bool  `json:"cargado"`
	Registros int64 `json:"registros"`
}

// ExportFile archivo generado para descarga.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
