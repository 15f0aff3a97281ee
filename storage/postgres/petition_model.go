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

type petitionModelRepo struct {
	db *pgxpool.Pool
}

func NewPetitionModelRepo(db *pgxpool.Pool) storage.PetitionModelRepoI {
	return &petitionModelRepo{
		db: db,
	}
}

const petitionModelColumns = `
	id,
	petition_type_id,
	slug,
	name,
	template_content,
	is_active,
	created_at,
	updated_at`

func (p *petitionModelRepo) Create(ctx context.Context, req *models.PetitionModel) (*models.PetitionModel, error) {
	if req.Slug == "" || req.Name == "" {
		return nil, models.NewValidationError("petition_model", "slug and name are required")
	}

	if req.PetitionTypeID == 0 {
		return nil, models.NewValidationError("petition_type_id", "petition_type_id is required")
	}

	query := `INSERT INTO "petition_model" (
		petition_type_id,
		slug,
		name,
		template_content
	) VALUES ($1, $2, $3, $4)
	RETURNING id`

	var id int64

	err := p.db.QueryRow(ctx, query,
		req.PetitionTypeID,
		req.Slug,
		req.Name,
		req.TemplateContent,
	).Scan(&id)
	if err != nil {
		return nil, handleError(err, "petitionModel.Create")
	}

	return p.GetByID(ctx, id)
}

func (p *petitionModelRepo) GetByID(ctx context.Context, id int64) (*models.PetitionModel, error) {
	query := fmt.Sprintf(`SELECT %s FROM "petition_model" WHERE id = $1`, petitionModelColumns)

	return p.scan(p.db.QueryRow(ctx, query, id))
}

func (p *petitionModelRepo) GetAll(ctx context.Context, req *models.GetAllPetitionModelsRequest) (*models.GetAllPetitionModelsResponse, error) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	builder := sb.Select(
		"id", "petition_type_id", "slug", "name",
		"template_content", "is_active", "created_at", "updated_at",
	).From(`"petition_model"`)

	countBuilder := sb.Select("count(1)").From(`"petition_model"`)

	if req.PetitionTypeID != 0 {
		builder = builder.Where(squirrel.Eq{"petition_type_id": req.PetitionTypeID})
		countBuilder = countBuilder.Where(squirrel.Eq{"petition_type_id": req.PetitionTypeID})
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
		return nil, handleError(err, "petitionModel.GetAll")
	}
	defer rows.Close()

	resp := &models.GetAllPetitionModelsResponse{PetitionModels: []models.PetitionModel{}}

	for rows.Next() {
		model, err := p.scan(rows)
		if err != nil {
			return nil, err
		}

		resp.PetitionModels = append(resp.PetitionModels, *model)
	}

	if err := rows.Err(); err != nil {
		return nil, handleError(err, "petitionModel.GetAll")
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	if err := p.db.QueryRow(ctx, countQuery, countArgs...).Scan(&resp.Count); err != nil {
		return nil, handleError(err, "petitionModel.GetAll count")
	}

	return resp, nil
}

func (p *petitionModelRepo) Update(ctx context.Context, req *models.PetitionModel) (*models.PetitionModel, error) {
	query := `UPDATE "petition_model" SET
		name = $1,
		template_content = $2,
		is_active = $3,
		updated_at = now()
	WHERE id = $4`

	tag, err := p.db.Exec(ctx, query,
		req.Name,
		req.TemplateContent,
		req.IsActive,
		req.ID,
	)
	if err != nil {
		return nil, handleError(err, "petitionModel.Update")
	}

	if tag.RowsAffected() == 0 {
		return nil, models.ErrNotFound
	}

	return p.GetByID(ctx, req.ID)
}

func (p *petitionModelRepo) Delete(ctx context.Context, id int64) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM "section_link" WHERE parent_kind = $1 AND parent_id = $2`,
		config.ParentKindModel, id,
	)
	if err != nil {
		return handleError(err, "petitionModel.Delete links")
	}

	tag, err := tx.Exec(ctx, `DELETE FROM "petition_model" WHERE id = $1`, id)
	if err != nil {
		return handleError(err, "petitionModel.Delete")
	}

	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (p *petitionModelRepo) scan(row rowScanner) (*models.PetitionModel, error) {
	var model models.PetitionModel

	err := row.Scan(
		&model.ID,
		&model.PetitionTypeID,
		&model.Slug,
		&model.Name,
		&model.TemplateContent,
		&model.IsActive,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, handleError(err, "petitionModel.scan")
	}

	return &model, nil
}
