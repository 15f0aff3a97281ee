package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/storage"
)

type petitionTypeRepo struct {
	db *pgxpool.Pool
}

func NewPetitionTypeRepo(db *pgxpool.Pool) storage.PetitionTypeRepoI {
	return &petitionTypeRepo{
		db: db,
	}
}

const petitionTypeColumns = `
	id,
	slug,
	name,
	category,
	use_dynamic_form,
	template_content,
	is_active,
	created_at,
	updated_at`

func (p *petitionTypeRepo) Create(ctx context.Context, req *models.PetitionType) (*models.PetitionType, error) {
	if req.Slug == "" || req.Name == "" {
		return nil, models.NewValidationError("petition_type", "slug and name are required")
	}

	query := `INSERT INTO "petition_type" (
		slug,
		name,
		category,
		use_dynamic_form,
		template_content
	) VALUES ($1, $2, $3, $4, $5)
	RETURNING id`

	var id int64

	err := p.db.QueryRow(ctx, query,
		req.Slug,
		req.Name,
		req.Category,
		req.UseDynamicForm,
		req.TemplateContent,
	).Scan(&id)
	if err != nil {
		return nil, handleError(err, "petitionType.Create")
	}

	return p.GetByID(ctx, id)
}

func (p *petitionTypeRepo) GetByID(ctx context.Context, id int64) (*models.PetitionType, error) {
	query := fmt.Sprintf(`SELECT %s FROM "petition_type" WHERE id = $1`, petitionTypeColumns)

	return p.scan(p.db.QueryRow(ctx, query, id))
}

func (p *petitionTypeRepo) GetBySlug(ctx context.Context, slug string) (*models.PetitionType, error) {
	query := fmt.Sprintf(`SELECT %s FROM "petition_type" WHERE slug = $1`, petitionTypeColumns)

	return p.scan(p.db.QueryRow(ctx, query, slug))
}

func (p *petitionTypeRepo) GetAll(ctx context.Context, req *models.GetAllPetitionTypesRequest) (*models.GetAllPetitionTypesResponse, error) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	builder := sb.Select(
		"id", "slug", "name", "category", "use_dynamic_form",
		"template_content", "is_active", "created_at", "updated_at",
	).From(`"petition_type"`)

	countBuilder := sb.Select("count(1)").From(`"petition_type"`)

	if req.Search != "" {
		cond := squirrel.Or{
			squirrel.ILike{"name": "%" + req.Search + "%"},
			squirrel.ILike{"slug": "%" + req.Search + "%"},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	if req.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": req.Category})
		countBuilder = countBuilder.Where(squirrel.Eq{"category": req.Category})
	}

	if req.OnlyActive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
		countBuilder = countBuilder.Where(squirrel.Eq{"is_active": true})
	}

	builder = builder.OrderBy("name ASC", "id ASC")

	if req.Limit > 0 {
		builder = builder.Limit(req.Limit).Offset(req.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, handleError(err, "petitionType.GetAll")
	}
	defer rows.Close()

	resp := &models.GetAllPetitionTypesResponse{PetitionTypes: []models.PetitionType{}}

	for rows.Next() {
		petitionType, err := p.scan(rows)
		if err != nil {
			return nil, err
		}

		resp.PetitionTypes = append(resp.PetitionTypes, *petitionType)
	}

	if err := rows.Err(); err != nil {
		return nil, handleError(err, "petitionType.GetAll")
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	if err := p.db.QueryRow(ctx, countQuery, countArgs...).Scan(&resp.Count); err != nil {
		return nil, handleError(err, "petitionType.GetAll count")
	}

	return resp, nil
}

func (p *petitionTypeRepo) Update(ctx context.Context, req *models.PetitionType) (*models.PetitionType, error) {
	query := `UPDATE "petition_type" SET
		name = $1,
		category = $2,
		use_dynamic_form = $3,
		template_content = $4,
		is_active = $5,
		updated_at = now()
	WHERE id = $6`

	tag, err := p.db.Exec(ctx, query,
		req.Name,
		req.Category,
		req.UseDynamicForm,
		req.TemplateContent,
		req.IsActive,
		req.ID,
	)
	if err != nil {
		return nil, handleError(err, "petitionType.Update")
	}

	if tag.RowsAffected() == 0 {
		return nil, models.ErrNotFound
	}

	return p.GetByID(ctx, req.ID)
}

func (p *petitionTypeRepo) Delete(ctx context.Context, id int64) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM "section_link" WHERE parent_kind = $1 AND parent_id = $2`,
		config.ParentKindType, id,
	)
	if err != nil {
		return handleError(err, "petitionType.Delete links")
	}

	tag, err := tx.Exec(ctx, `DELETE FROM "petition_type" WHERE id = $1`, id)
	if err != nil {
		return handleError(err, "petitionType.Delete")
	}

	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (p *petitionTypeRepo) scan(row rowScanner) (*models.PetitionType, error) {
	var petitionType models.PetitionType

	err := row.Scan(
		&petitionType.ID,
		&petitionType.Slug,
		&petitionType.Name,
		&petitionType.Category,
		&petitionType.UseDynamicForm,
		&petitionType.TemplateContent,
		&petitionType.IsActive,
		&petitionType.CreatedAt,
		&petitionType.UpdatedAt,
	)
	if err != nil {
		return nil, handleError(err, "petitionType.scan")
	}

	return &petitionType, nil
}
