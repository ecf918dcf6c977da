package postgres

import (
	"context"
	"fmt"
	"time"

	pgxzerolog "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/jhoicas/employee-api/pkg/config"
	"github.com/jhoicas/employee-api/pkg/logger"
)

// pingTimeout tiempo máximo para el ping inicial.
const pingTimeout = 10 * time.Second

// BuildPoolConfig construye el pgxpool.Config desde la configuración de la app.
// Con LogQueries cada consulta se traza vía pgx tracelog sobre zerolog.
func BuildPoolConfig(cfg config.DBConfig, log *logger.Logger) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = int32(cfg.MinConns)
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	if cfg.LogQueries && log != nil {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzerolog.NewLogger(log.Zerolog()),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	return poolConfig, nil
}

// NewPool crea un pool de conexiones PostgreSQL y verifica el acceso con un ping.
// Cada petición HTTP toma una conexión del pool solo mientras dura su consulta.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := BuildPoolConfig(cfg, log)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
