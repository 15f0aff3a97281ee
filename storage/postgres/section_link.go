package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/models"
	"github.com/rcastrogi/advocacia-sub002/storage"
)

type sectionLinkRepo struct {
	db *pgxpool.Pool
}

func NewSectionLinkRepo(db *pgxpool.Pool) storage.SectionLinkRepoI {
	return &sectionLinkRepo{
		db: db,
	}
}

const linkColumns = `
	id,
	parent_kind,
	parent_id,
	section_id,
	"order",
	is_required,
	is_expanded,
	field_overrides`

func (l *sectionLinkRepo) Attach(ctx context.Context, req *models.AttachSectionRequest) (*models.SectionLink, error) {
	if err := req.Parent.Validate(); err != nil {
		return nil, err
	}

	if err := l.checkParentExists(ctx, req.Parent); err != nil {
		return nil, err
	}

	overrides, err := marshalOverrides(req.FieldOverrides)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO "section_link" (
		parent_kind,
		parent_id,
		section_id,
		"order",
		is_required,
		is_expanded,
		field_overrides
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`

	var id int64

	err = l.db.QueryRow(ctx, query,
		req.Parent.Kind,
		req.Parent.ID,
		req.SectionID,
		req.Order,
		req.IsRequired,
		req.IsExpanded,
		overrides,
	).Scan(&id)
	if err != nil {
		return nil, handleError(err, "sectionLink.Attach")
	}

	return l.GetByID(ctx, id)
}

func (l *sectionLinkRepo) GetByID(ctx context.Context, id int64) (*models.SectionLink, error) {
	query := `SELECT ` + linkColumns + ` FROM "section_link" WHERE id = $1`

	return scanLink(l.db.QueryRow(ctx, query, id))
}

func (l *sectionLinkRepo) GetByParent(ctx context.Context, parent models.ParentRef) ([]models.SectionLink, error) {
	if err := parent.Validate(); err != nil {
		return nil, err
	}

	query := `SELECT ` + linkColumns + `
	FROM "section_link"
	WHERE parent_kind = $1 AND parent_id = $2
	ORDER BY "order" ASC, id ASC`

	rows, err := l.db.Query(ctx, query, parent.Kind, parent.ID)
	if err != nil {
		return nil, handleError(err, "sectionLink.GetByParent")
	}
	defer rows.Close()

	links := []models.SectionLink{}

	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}

		links = append(links, *link)
	}

	return links, rows.Err()
}

func (l *sectionLinkRepo) Update(ctx context.Context, req *models.UpdateLinkRequest) (*models.SectionLink, error) {
	overrides, err := marshalOverrides(req.FieldOverrides)
	if err != nil {
		return nil, err
	}

	query := `UPDATE "section_link" SET
		"order" = $1,
		is_required = $2,
		is_expanded = $3,
		field_overrides = $4
	WHERE id = $5`

	tag, err := l.db.Exec(ctx, query,
		req.Order,
		req.IsRequired,
		req.IsExpanded,
		overrides,
		req.ID,
	)
	if err != nil {
		return nil, handleError(err, "sectionLink.Update")
	}

	if tag.RowsAffected() == 0 {
		return nil, models.ErrNotFound
	}

	return l.GetByID(ctx, req.ID)
}

// Reorder rewrites the order column of the parent's links to match the given
// id sequence. Ids not belonging to the parent are rejected.
func (l *sectionLinkRepo) Reorder(ctx context.Context, req *models.ReorderLinksRequest) error {
	if err := req.Parent.Validate(); err != nil {
		return err
	}

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for position, linkID := range req.LinkIDs {
		tag, err := tx.Exec(ctx,
			`UPDATE "section_link" SET "order" = $1 WHERE id = $2 AND parent_kind = $3 AND parent_id = $4`,
			position+1, linkID, req.Parent.Kind, req.Parent.ID,
		)
		if err != nil {
			return handleError(err, "sectionLink.Reorder")
		}

		if tag.RowsAffected() == 0 {
			return models.NewValidationError("link_ids", "link %d does not belong to the parent", linkID)
		}
	}

	return tx.Commit(ctx)
}

func (l *sectionLinkRepo) Detach(ctx context.Context, id int64) error {
	tag, err := l.db.Exec(ctx, `DELETE FROM "section_link" WHERE id = $1`, id)
	if err != nil {
		return handleError(err, "sectionLink.Detach")
	}

	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// GetComposeData fetches the compose snapshot in one round of queries: the
// parent's links in render order, the sections they reference, and the
// cpf_cnpj trigger targets those sections point at, linked or not.
func (l *sectionLinkRepo) GetComposeData(ctx context.Context, parent models.ParentRef) (*models.ComposeData, error) {
	links, err := l.GetByParent(ctx, parent)
	if err != nil {
		return nil, err
	}

	data := &models.ComposeData{
		Parent:   parent,
		Links:    links,
		Sections: map[int64]models.Section{},
	}

	ids := make([]int64, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.SectionID)
	}

	if err := l.fetchSections(ctx, ids, data.Sections); err != nil {
		return nil, err
	}

	// Trigger targets may carry no link of their own; fetch the missing ones
	// so the composer can embed their fields into conditional requirements.
	targetIDs := []int64{}
	for _, section := range data.Sections {
		for _, field := range section.FieldsSchema {
			if field.LinkedSectionID == 0 {
				continue
			}

			if _, ok := data.Sections[field.LinkedSectionID]; !ok {
				targetIDs = append(targetIDs, field.LinkedSectionID)
			}
		}
	}

	if err := l.fetchSections(ctx, targetIDs, data.Sections); err != nil {
		return nil, err
	}

	return data, nil
}

func (l *sectionLinkRepo) fetchSections(ctx context.Context, ids []int64, into map[int64]models.Section) error {
	if len(ids) == 0 {
		return nil
	}

	query := `SELECT ` + sectionColumns + ` FROM "section" WHERE id = ANY($1)`

	rows, err := l.db.Query(ctx, query, ids)
	if err != nil {
		return handleError(err, "sectionLink.fetchSections")
	}
	defer rows.Close()

	repo := &sectionRepo{db: l.db}

	for rows.Next() {
		section, err := repo.scanSection(rows)
		if err != nil {
			return err
		}

		into[section.ID] = *section
	}

	return rows.Err()
}

func (l *sectionLinkRepo) checkParentExists(ctx context.Context, parent models.ParentRef) error {
	table := `"petition_type"`
	if parent.Kind == config.ParentKindModel {
		table = `"petition_model"`
	}

	var exists bool

	err := l.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, parent.ID,
	).Scan(&exists)
	if err != nil {
		return handleError(err, "sectionLink.checkParentExists")
	}

	if !exists {
		return models.ErrNotFound
	}

	return nil
}

func marshalOverrides(overrides map[string]models.FieldOverride) ([]byte, error) {
	if len(overrides) == 0 {
		return nil, nil
	}

	return json.Marshal(overrides)
}

func scanLink(row rowScanner) (*models.SectionLink, error) {
	var (
		link models.SectionLink
		raw  []byte
	)

	err := row.Scan(
		&link.ID,
		&link.Parent.Kind,
		&link.Parent.ID,
		&link.SectionID,
		&link.Order,
		&link.IsRequired,
		&link.IsExpanded,
		&raw,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, handleError(err, "sectionLink.scan")
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &link.FieldOverrides); err != nil {
			return nil, err
		}
	}

	return &link, nil
}
