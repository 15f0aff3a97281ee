package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/storage"
)

type sectionRepo struct {
	db *pgxpool.Pool
}

func NewSectionRepo(db *pgxpool.Pool) storage.SectionRepoI {
	return &sectionRepo{
		db: db,
	}
}

const sectionColumns = `
	id,
	name,
	slug,
	description,
	icon,
	color,
	"order",
	is_active,
	version,
	fields_schema,
	created_at,
	updated_at`

func (s *sectionRepo) Create(ctx context.Context, req *models.CreateSectionRequest) (*models.Section, error) {
	if req.Name == "" {
		return nil, models.NewValidationError("name", "name is required")
	}

	if req.Slug == "" {
		return nil, models.NewValidationError("slug", "slug is required")
	}

	if err := models.ValidateFieldsSchema(req.FieldsSchema); err != nil {
		return nil, err
	}

	if err := s.checkTriggerTargets(ctx, s.db, req.FieldsSchema); err != nil {
		return nil, err
	}

	schema, err := json.Marshal(req.FieldsSchema)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO "section" (
		name,
		slug,
		description,
		icon,
		color,
		"order",
		fields_schema
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`

	var id int64

	err = s.db.QueryRow(ctx, query,
		req.Name,
		req.Slug,
		req.Description,
		req.Icon,
		req.Color,
		req.Order,
		schema,
	).Scan(&id)
	if err != nil {
		return nil, handleError(err, "section.Create")
	}

	return s.GetByID(ctx, id)
}

func (s *sectionRepo) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	query := fmt.Sprintf(`SELECT %s FROM "section" WHERE id = $1`, sectionColumns)

	return s.scanSection(s.db.QueryRow(ctx, query, id))
}

func (s *sectionRepo) GetBySlug(ctx context.Context, slug string) (*models.Section, error) {
	query := fmt.Sprintf(`SELECT %s FROM "section" WHERE slug = $1`, sectionColumns)

	return s.scanSection(s.db.QueryRow(ctx, query, slug))
}

func (s *sectionRepo) GetAll(ctx context.Context, req *models.GetAllSectionsRequest) (*models.GetAllSectionsResponse, error) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	builder := sb.Select(
		"id", "name", "slug", "description", "icon", "color", `"order"`,
		"is_active", "version", "fields_schema", "created_at", "updated_at",
	).From(`"section"`)

	countBuilder := sb.Select("count(1)").From(`"section"`)

	if req.Search != "" {
		cond := squirrel.Or{
			squirrel.ILike{"name": "%" + req.Search + "%"},
			squirrel.ILike{"slug": "%" + req.Search + "%"},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	if req.OnlyActive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
		countBuilder = countBuilder.Where(squirrel.Eq{"is_active": true})
	}

	builder = builder.OrderBy(`"order" ASC`, "id ASC")

	if req.Limit > 0 {
		builder = builder.Limit(req.Limit).Offset(req.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, handleError(err, "section.GetAll")
	}
	defer rows.Close()

	resp := &models.GetAllSectionsResponse{Sections: []models.Section{}}

	for rows.Next() {
		section, err := s.scanSection(rows)
		if err != nil {
			return nil, err
		}

		resp.Sections = append(resp.Sections, *section)
	}

	if err := rows.Err(); err != nil {
		return nil, handleError(err, "section.GetAll")
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	if err := s.db.QueryRow(ctx, countQuery, countArgs...).Scan(&resp.Count); err != nil {
		return nil, handleError(err, "section.GetAll count")
	}

	return resp, nil
}

func (s *sectionRepo) Update(ctx context.Context, req *models.UpdateSectionRequest) (*models.Section, error) {
	if req.Name == "" {
		return nil, models.NewValidationError("name", "name is required")
	}

	query := `UPDATE "section" SET
		name = $1,
		description = $2,
		icon = $3,
		color = $4,
		"order" = $5,
		is_active = $6,
		version = version + 1,
		updated_at = now()
	WHERE id = $7 AND version = $8`

	tag, err := s.db.Exec(ctx, query,
		req.Name,
		req.Description,
		req.Icon,
		req.Color,
		req.Order,
		req.IsActive,
		req.ID,
		req.Version,
	)
	if err != nil {
		return nil, handleError(err, "section.Update")
	}

	if tag.RowsAffected() == 0 {
		return nil, s.staleOrMissing(ctx, req.ID, req.Version)
	}

	return s.GetByID(ctx, req.ID)
}

// UpdateFieldsSchema replaces the ordered field list atomically. The
// replacement is rejected when any stored link override would be orphaned by
// it, so overrides never drift silently after a field rename.
func (s *sectionRepo) UpdateFieldsSchema(ctx context.Context, req *models.UpdateFieldsSchemaRequest) (*models.Section, error) {
	if err := models.ValidateFieldsSchema(req.FieldsSchema); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.checkTriggerTargets(ctx, tx, req.FieldsSchema); err != nil {
		return nil, err
	}

	if err := s.checkOrphanedOverrides(ctx, tx, req.SectionID, req.FieldsSchema); err != nil {
		return nil, err
	}

	schema, err := json.Marshal(req.FieldsSchema)
	if err != nil {
		return nil, err
	}

	query := `UPDATE "section" SET
		fields_schema = $1,
		version = version + 1,
		updated_at = now()
	WHERE id = $2 AND version = $3`

	tag, err := tx.Exec(ctx, query, schema, req.SectionID, req.Version)
	if err != nil {
		return nil, handleError(err, "section.UpdateFieldsSchema")
	}

	if tag.RowsAffected() == 0 {
		return nil, s.staleOrMissing(ctx, req.SectionID, req.Version)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, req.SectionID)
}

// Delete refuses to remove a section that any link still references.
// Disabling via is_active is the supported way to retire a linked section.
func (s *sectionRepo) Delete(ctx context.Context, id int64) error {
	var refs int64

	err := s.db.QueryRow(ctx,
		`SELECT count(1) FROM "section_link" WHERE section_id = $1`, id,
	).Scan(&refs)
	if err != nil {
		return handleError(err, "section.Delete")
	}

	if refs > 0 {
		return models.NewValidationError("section", "section is referenced by %d link(s), disable it instead", refs)
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM "section" WHERE id = $1`, id)
	if err != nil {
		return handleError(err, "section.Delete")
	}

	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *sectionRepo) scanSection(row rowScanner) (*models.Section, error) {
	var (
		section models.Section
		schema  []byte
	)

	err := row.Scan(
		&section.ID,
		&section.Name,
		&section.Slug,
		&section.Description,
		&section.Icon,
		&section.Color,
		&section.Order,
		&section.IsActive,
		&section.Version,
		&schema,
		&section.CreatedAt,
		&section.UpdatedAt,
	)
	if err != nil {
		return nil, handleError(err, "section.scan")
	}

	if len(schema) > 0 {
		if err := json.Unmarshal(schema, &section.FieldsSchema); err != nil {
			return nil, err
		}
	}

	return &section, nil
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// checkTriggerTargets verifies that every linked_section_id points at an
// existing active section.
func (s *sectionRepo) checkTriggerTargets(ctx context.Context, q queryRower, fields []models.FieldDescriptor) error {
	for _, field := range fields {
		if field.LinkedSectionTrigger == "" {
			continue
		}

		var isActive bool

		err := q.QueryRow(ctx,
			`SELECT is_active FROM "section" WHERE id = $1`, field.LinkedSectionID,
		).Scan(&isActive)
		if err != nil {
			if err == pgx.ErrNoRows {
				return models.NewValidationError(field.Name, "linked_section_id %d does not exist", field.LinkedSectionID)
			}
			return handleError(err, "section.checkTriggerTargets")
		}

		if !isActive {
			return models.NewValidationError(field.Name, "linked_section_id %d is disabled", field.LinkedSectionID)
		}
	}

	return nil
}

// checkOrphanedOverrides rejects a schema replacement that would leave any
// link's field_overrides keyed by a name no longer in the schema.
func (s *sectionRepo) checkOrphanedOverrides(ctx context.Context, tx pgx.Tx, sectionID int64, fields []models.FieldDescriptor) error {
	names := make(map[string]bool, len(fields))
	for _, field := range fields {
		names[field.Name] = true
	}

	rows, err := tx.Query(ctx,
		`SELECT id, field_overrides FROM "section_link" WHERE section_id = $1 AND field_overrides IS NOT NULL`,
		sectionID,
	)
	if err != nil {
		return handleError(err, "section.checkOrphanedOverrides")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			linkID int64
			raw    []byte
		)

		if err := rows.Scan(&linkID, &raw); err != nil {
			return handleError(err, "section.checkOrphanedOverrides")
		}

		if len(raw) == 0 {
			continue
		}

		overrides := map[string]models.FieldOverride{}
		if err := json.Unmarshal(raw, &overrides); err != nil {
			return err
		}

		for name := range overrides {
			if !names[name] {
				return models.NewValidationError(name,
					"link %d overrides field %q which the new schema no longer declares", linkID, name)
			}
		}
	}

	return rows.Err()
}

func (s *sectionRepo) staleOrMissing(ctx context.Context, id int64, version int) error {
	var current int

	err := s.db.QueryRow(ctx, `SELECT version FROM "section" WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if err == pgx.ErrNoRows {
			return models.ErrNotFound
		}
		return handleError(err, "section.staleOrMissing")
	}

	return models.NewConflictError("section %d changed: expected version %d, current %d", id, version, current)
}
