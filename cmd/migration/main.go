package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/hugohenrick/erp-restaurante/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	flag.Usage = func() {
		log.Println("uso: migration [up|down|version|force N]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	m, err := database.NewMigrator(database.NewPostgresConfigFromEnv())
	if err != nil {
		log.Fatalf("Erro ao preparar migrações: %v", err)
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatalf("Erro ao consultar versão: %v", verr)
		}
		log.Printf("Versão atual: %d (dirty=%t)", version, dirty)
		return
	case "force":
		if flag.NArg() < 2 {
			flag.Usage()
			return
		}
		version, perr := strconv.Atoi(flag.Arg(1))
		if perr != nil {
			log.Fatalf("Versão inválida: %v", perr)
		}
		err = m.Force(version)
	default:
		flag.Usage()
		return
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Erro ao executar migração %s: %v", command, err)
	}

	log.Printf("Migração %s executada com sucesso!", command)
}
