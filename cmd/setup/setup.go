package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"

	"github.com/kwizera-io/go-momo-etl/internal/common/idgenerator"
	"github.com/kwizera-io/go-momo-etl/internal/common/log"
	"github.com/kwizera-io/go-momo-etl/internal/config"
	"github.com/kwizera-io/go-momo-etl/internal/repositories"
	"github.com/kwizera-io/go-momo-etl/internal/services"
)

type Setup struct {
	Config  config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Service *services.Services
}

// Init loads configuration, initializes logging, connects to Postgres and
// wires the service graph.
func Init() (*Setup, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.App.LogLevel
	if logLevel == "" && config.StringToEnvironment(cfg.App.Env) == config.LOCAL_ENV {
		logLevel = "debug"
	}
	if err := log.Init(cfg.App.LogOption, logLevel); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	repo := repositories.NewSQLRepository(writeDB, readDB, cfg)
	svc := services.New(cfg, repo, idgenerator.New(), services.DefaultRules())

	return &Setup{
		Config:  cfg,
		WriteDB: writeDB,
		ReadDB:  readDB,
		Service: svc,
	}, nil
}

func (s *Setup) Close() error {
	var errs error

	log.Sync()

	if s.WriteDB != nil {
		if err := s.WriteDB.Close(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
		}
	}

	if s.ReadDB != nil && s.ReadDB != s.WriteDB {
		if err := s.ReadDB.Close(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
		}
	}

	return errs
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	// a read replica is optional for a batch run
	if conf.Postgres.Read.DbHost == "" {
		return writeDB, writeDB, nil
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("postgres", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	pingBackoff := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.Retry(func() error {
		return db.PingContext(context.Background())
	}, pingBackoff); err != nil {
		return nil, err
	}

	return db, nil
}
