package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackboard/hackboard-api/internal/api"
	"github.com/hackboard/hackboard-api/internal/config"
	"github.com/hackboard/hackboard-api/internal/db"
	"github.com/hackboard/hackboard-api/internal/logger"
	"github.com/hackboard/hackboard-api/internal/repository"
	"github.com/hackboard/hackboard-api/internal/repository/dao"
	"github.com/hackboard/hackboard-api/internal/repository/filestore"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	stores, err := buildStores(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	s := api.NewServer(conf, stores)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// buildStores picks the persistence backend once, at startup. Postgres is
// used when DATABASE_URL or the postgres config section is set; otherwise
// every record lives in flat JSON files under the configured data dir.
func buildStores(conf *config.AppConfig) (*repository.Stores, error) {
	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" && !conf.Postgres.Enabled() {
		fileStore, err := filestore.New(conf.API.DataDir)
		if err != nil {
			return nil, fmt.Errorf("filestore.New -> %w", err)
		}

		zap.L().Info("using flat-file storage", zap.String("dir", conf.API.DataDir))

		return &repository.Stores{
			Events:        fileStore,
			Submissions:   fileStore,
			Reviews:       fileStore,
			Registrations: fileStore,
			Users:         fileStore,
		}, nil
	}

	var (
		postgresDB *gorm.DB
		err        error
	)
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return nil, fmt.Errorf("db.OpenPostgres -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	zap.L().Info("using postgres storage")

	return &repository.Stores{
		Events:        dao.NewEventDAO(postgresDB),
		Submissions:   dao.NewSubmissionDAO(postgresDB),
		Reviews:       dao.NewReviewDAO(postgresDB),
		Registrations: dao.NewRegistrationDAO(postgresDB),
		Users:         dao.NewUserDAO(postgresDB),
	}, nil
}
