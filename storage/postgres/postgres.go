package postgres

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
	"github.com/rcastrogi/advocacia-sub002/storage"
)

type Store struct {
	db            *pgxpool.Pool
	log           logger.LoggerI
	section       storage.SectionRepoI
	petitionType  storage.PetitionTypeRepoI
	petitionModel storage.PetitionModelRepoI
	sectionLink   storage.SectionLinkRepoI
	petition      storage.PetitionRepoI
}

func NewPostgres(ctx context.Context, cfg config.Config, log logger.LoggerI) (storage.StorageI, error) {
	dbURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresDatabase,
	)

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = cfg.PostgresMaxConnections

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.MigrationsPath != "" {
		if err := runMigrations(cfg.MigrationsPath, dbURL); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return &Store{
		db:  pool,
		log: log,
	}, nil
}

func runMigrations(sourceURL, dbURL string) error {
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return errors.Wrap(err, "migrate.New")
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, "migrate.Up")
	}

	return nil
}

func (s *Store) CloseDB() {
	s.db.Close()
}

func (s *Store) Section() storage.SectionRepoI {
	if s.section == nil {
		s.section = NewSectionRepo(s.db)
	}

	return s.section
}

func (s *Store) PetitionType() storage.PetitionTypeRepoI {
	if s.petitionType == nil {
		s.petitionType = NewPetitionTypeRepo(s.db)
	}

	return s.petitionType
}

func (s *Store) PetitionModel() storage.PetitionModelRepoI {
	if s.petitionModel == nil {
		s.petitionModel = NewPetitionModelRepo(s.db)
	}

	return s.petitionModel
}

func (s *Store) SectionLink() storage.SectionLinkRepoI {
	if s.sectionLink == nil {
		s.sectionLink = NewSectionLinkRepo(s.db)
	}

	return s.sectionLink
}

func (s *Store) Petition() storage.PetitionRepoI {
	if s.petition == nil {
		s.petition = NewPetitionRepo(s.db)
	}

	return s.petition
}
