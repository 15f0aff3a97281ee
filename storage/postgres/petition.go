package postgres

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/storage"
)

type petitionRepo struct {
	db *pgxpool.Pool
}

func NewPetitionRepo(db *pgxpool.Pool) storage.PetitionRepoI {
	return &petitionRepo{
		db: db,
	}
}

func (p *petitionRepo) Create(ctx context.Context, req *models.Petition) (*models.Petition, error) {
	if err := req.Parent.Validate(); err != nil {
		return nil, err
	}

	contextJSON, err := json.Marshal(req.Context)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO "petition" (
		parent_kind,
		parent_id,
		context,
		rendered_body,
		document_key
	) VALUES ($1, $2, $3, $4, $5)
	RETURNING id`

	var id int64

	err = p.db.QueryRow(ctx, query,
		req.Parent.Kind,
		req.Parent.ID,
		contextJSON,
		req.RenderedBody,
		req.DocumentKey,
	).Scan(&id)
	if err != nil {
		return nil, handleError(err, "petition.Create")
	}

	return p.GetByID(ctx, id)
}

func (p *petitionRepo) GetByID(ctx context.Context, id int64) (*models.Petition, error) {
	query := `SELECT
		id,
		parent_kind,
		parent_id,
		context,
		rendered_body,
		document_key,
		created_at
	FROM "petition" WHERE id = $1`

	return p.scan(p.db.QueryRow(ctx, query, id))
}

func (p *petitionRepo) GetAll(ctx context.Context, req *models.GetAllPetitionsRequest) (*models.GetAllPetitionsResponse, error) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	builder := sb.Select(
		"id", "parent_kind", "parent_id", "context",
		"rendered_body", "document_key", "created_at",
	).From(`"petition"`)

	countBuilder := sb.Select("count(1)").From(`"petition"`)

	if req.Parent.ID != 0 {
		cond := squirrel.Eq{"parent_kind": req.Parent.Kind, "parent_id": req.Parent.ID}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	builder = builder.OrderBy("created_at DESC", "id DESC")

	if req.Limit > 0 {
		builder = builder.Limit(req.Limit).Offset(req.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, handleError(err, "petition.GetAll")
	}
	defer rows.Close()

	resp := &models.GetAllPetitionsResponse{Petitions: []models.Petition{}}

	for rows.Next() {
		petition, err := p.scan(rows)
		if err != nil {
			return nil, err
		}

		resp.Petitions = append(resp.Petitions, *petition)
	}

	if err := rows.Err(); err != nil {
		return nil, handleError(err, "petition.GetAll")
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	if err := p.db.QueryRow(ctx, countQuery, countArgs...).Scan(&resp.Count); err != nil {
		return nil, handleError(err, "petition.GetAll count")
	}

	return resp, nil
}

func (p *petitionRepo) scan(row rowScanner) (*models.Petition, error) {
	var (
		petition    models.Petition
		contextJSON []byte
	)

	err := row.Scan(
		&petition.ID,
		&petition.Parent.Kind,
		&petition.Parent.ID,
		&contextJSON,
		&petition.RenderedBody,
		&petition.DocumentKey,
		&petition.CreatedAt,
	)
	if err != nil {
		return nil, handleError(err, "petition.scan")
	}

	if len(contextJSON) > 0 {
		if err := json.Unmarshal(contextJSON, &petition.Context); err != nil {
			return nil, err
		}
	}

	return &petition, nil
}
