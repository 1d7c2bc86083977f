package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrNoData          = errors.New("primero debes cargar un archivo de datos")
	ErrNoMatches       = errors.New("no se encontraron registros con los filtros proporcionados")
	ErrMissingColumns  = errors.New("el archivo no tiene las columnas requeridas")
	ErrUnsupportedFile = errors.New("formato de archivo no soportado")
	ErrEmptyFile       = errors.New("el archivo no contiene filas")
)
