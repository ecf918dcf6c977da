package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/employee-api/internal/infrastructure/postgres"
	"github.com/jhoicas/employee-api/pkg/config"
	"github.com/jhoicas/employee-api/pkg/logger"
)

func main() {
	migrationsDir := flag.String("dir", "", "directorio de migraciones (vacío = embebidas en el binario)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "uso: %s [-dir ruta] [up|down|drop|version]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	action := postgres.MigrateUp
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	dir := cfg.DB.MigrationsDir
	if *migrationsDir != "" {
		dir = *migrationsDir
	}

	status, err := postgres.Migrate(action, cfg.DB.ConnectionString(), dir)
	if err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("migración fallida")
	}
	log.Info().
		Str("action", action).
		Uint("version", status.Version).
		Bool("dirty", status.Dirty).
		Bool("applied", status.Applied).
		Msg("migración completada")
}
