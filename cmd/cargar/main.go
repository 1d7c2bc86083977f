// Comando cargar: importa una planilla desde disco al almacén configurado.
//
//	go run ./cmd/cargar datos.xlsx
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Importaciones-api/internal/application/usecase"
	"github.com/jhoicas/Importaciones-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/Importaciones-api/internal/infrastructure/store"
	"github.com/jhoicas/Importaciones-api/pkg/config"
	"github.com/jhoicas/Importaciones-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: cargar <archivo.xlsx|archivo.csv>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, path); err != nil {
		log.Error().Err(err).Str("archivo", path).Msg("carga fallida")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abrir archivo: %w", err)
	}
	defer f.Close()

	repo, closeStore, err := store.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer closeStore()

	res, err := usecase.NewImportUseCase(repo, spreadsheet.NewParser(), log.Named("ingesta")).Upload(ctx, path, f)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
