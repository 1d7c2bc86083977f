package sqlbuild

import (
	"encoding/json"
	"fmt"
)

// EncodeExtra serializa las columnas fuera del esquema. Sin columnas extra guarda "{}".
func EncodeExtra(extra map[string]string) (string, error) {
	if len(extra) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(extra)
	if err != nil {
		return "", fmt.Errorf("sqlbuild: serializar extra: %w", err)
	}
	return string(b), nil
}

// DecodeExtra inverso de EncodeExtra; "{}" o vacío devuelve nil.
func DecodeExtra(raw []byte) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var extra map[string]string
	if err := json.Unmarshal(raw, &extra); err != nil {
		return nil, fmt.Errorf("sqlbuild: leer extra: %w", err)
	}
	if len(extra) == 0 {
		return nil, nil
	}
	return extra, nil
}
