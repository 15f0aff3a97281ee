package postgres_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/manveru/faker"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
	"github.com/rcastrogi/advocacia-sub002/storage"
	"github.com/rcastrogi/advocacia-sub002/storage/postgres"
)

var (
	strg     storage.StorageI
	fakeData *faker.Faker
)

// The suite runs against the database described by the POSTGRES_* env vars
// and is skipped entirely when none is configured.
func TestMain(m *testing.M) {
	cfg := config.Load()

	if cfg.PostgresHost == "" || os.Getenv("POSTGRES_DATABASE") == "" {
		fmt.Println("POSTGRES_DATABASE not set, skipping storage tests")
		os.Exit(0)
	}

	cfg.MigrationsPath = "file://../../migrations"
	cfg.PostgresMaxConnections = 10

	log := logger.NewLogger(cfg.ServiceName, logger.LevelDebug)
	defer func() {
		_ = logger.Cleanup(log)
	}()

	var err error

	strg, err = postgres.NewPostgres(context.Background(), cfg, log)
	if err != nil {
		panic(err)
	}
	defer strg.CloseDB()

	fakeData, err = faker.New("en")
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func randomSlug(prefix string) string {
	word := strings.ToLower(strings.ReplaceAll(fakeData.Name(), " ", "-"))

	return fmt.Sprintf("%s-%s-%d", prefix, word, time.Now().UnixNano())
}
