package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/campusconnect/campusconnect/internal/db"
	"github.com/campusconnect/campusconnect/internal/marketplace"
	"github.com/campusconnect/campusconnect/internal/repository"
)

const itemDetailsSelect = `
    SELECT i.*, u.full_name AS owner_name, c.name AS category_name
    FROM items i
    JOIN users u ON u.id = i.owner_id
    LEFT JOIN categories c ON c.id = i.category_id
`

type ItemRepo struct {
	db db.DB
}

func NewItemRepo(db db.DB) marketplace.ItemRepository {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) Create(ctx context.Context, item *repository.Item) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO items (
            id, owner_id, category_id, name, description, condition,
            availability_status, sharing_type, location, listed_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, item.ID, item.OwnerID, item.CategoryID, item.Name, item.Description, item.Condition,
		item.AvailabilityStatus, item.SharingType, item.Location, item.ListedAt, item.UpdatedAt)
	return err
}

func (r *ItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.ItemDetails, error) {
	var item repository.ItemDetails
	err := r.db.Get(ctx, &item, itemDetailsSelect+" WHERE i.id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Item, error) {
	var item repository.Item
	err := tx.Get(ctx, &item, "SELECT * FROM items WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) Search(ctx context.Context, f repository.ItemFilter) ([]*repository.ItemDetails, int64, error) {
	where := []string{}
	args := []interface{}{}
	add := func(clause string, value interface{}) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	// Listings are implicitly restricted to available items unless the
	// caller asks for everything.
	availability := f.Availability
	if availability == "" {
		availability = "available"
	}
	if availability != "all" {
		add("i.availability_status = $%d", availability)
	}
	if f.Query != "" {
		add("(i.name ILIKE $%d OR i.description ILIKE $%[1]d)", "%"+f.Query+"%")
	}
	if f.CategorySlug != "" {
		add("c.slug = $%d", f.CategorySlug)
	}
	if f.Condition != "" {
		add("i.condition = $%d", f.Condition)
	}
	if f.Location != "" {
		add("i.location ILIKE $%d", "%"+f.Location+"%")
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	countQuery := `
        SELECT COUNT(*)
        FROM items i
        JOIN users u ON u.id = i.owner_id
        LEFT JOIN categories c ON c.id = i.category_id
    ` + clause

	var total int64
	if err := r.db.Get(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 20
	}
	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf("%s%s ORDER BY i.listed_at DESC LIMIT $%d OFFSET $%d",
		itemDetailsSelect, clause, len(args)-1, len(args))

	var items []*repository.ItemDetails
	if err := r.db.Select(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to search items: %w", err)
	}
	return items, total, nil
}

func (r *ItemRepo) Update(ctx context.Context, id, ownerID uuid.UUID, patch repository.ItemPatch) (*repository.Item, error) {
	if err := r.checkOwner(ctx, id, ownerID); err != nil {
		return nil, err
	}

	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now().UTC()}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Condition != nil {
		set("condition", *patch.Condition)
	}
	if patch.SharingType != nil {
		set("sharing_type", *patch.SharingType)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.CategoryID != nil {
		set("category_id", *patch.CategoryID)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE items SET %s WHERE id = $%d RETURNING *",
		strings.Join(sets, ", "), len(args))

	var item repository.Item
	if err := r.db.Get(ctx, &item, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return &item, nil
}

func (r *ItemRepo) UpdateAvailability(ctx context.Context, id uuid.UUID, status string) (*repository.Item, error) {
	var item repository.Item
	err := r.db.Get(ctx, &item, `
        UPDATE items SET availability_status = $2, updated_at = $3
        WHERE id = $1
        RETURNING *
    `, id, status, time.Now().UTC())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) UpdateAvailabilityTx(ctx context.Context, tx db.Tx, id uuid.UUID, status string) (*repository.Item, error) {
	var item repository.Item
	err := tx.Get(ctx, &item, `
        UPDATE items SET availability_status = $2, updated_at = $3
        WHERE id = $1
        RETURNING *
    `, id, status, time.Now().UTC())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := r.checkOwner(ctx, id, ownerID); err != nil {
		return err
	}
	_, err := r.db.Exec(ctx, "DELETE FROM items WHERE id = $1", id)
	return err
}

func (r *ItemRepo) GetAvailable(ctx context.Context) ([]*repository.ItemDetails, error) {
	var items []*repository.ItemDetails
	err := r.db.Select(ctx, &items, itemDetailsSelect+" WHERE i.availability_status = 'available' ORDER BY i.listed_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get available items: %w", err)
	}
	return items, nil
}

// checkOwner resolves the ownership of an item so callers can distinguish a
// missing row from someone else's row.
func (r *ItemRepo) checkOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	var owner uuid.UUID
	err := r.db.Get(ctx, &owner, "SELECT owner_id FROM items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrObjectNotFound
		}
		return err
	}
	if owner != ownerID {
		return repository.ErrForbidden
	}
	return nil
}
