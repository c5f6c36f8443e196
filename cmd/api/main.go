package main

import (
	"log"

	"github.com/hugohenrick/erp-restaurante/internal/infrastructure/config"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro na configuração: %v", err)
	}

	appLogger := logger.NewLogger(cfg.Env)
	defer func() { _ = appLogger.Sync() }()

	app, err := NewApp(cfg, appLogger)
	if err != nil {
		appLogger.Error("erro ao iniciar aplicação", "error", err)
		log.Fatalf("Erro ao iniciar aplicação: %v", err)
	}
	defer app.Close()

	if err := app.Start(); err != nil {
		appLogger.Error("servidor encerrado com erro", "error", err)
	}
}
