package postgresql

import (
	"context"

	"github.com/campusconnect/campusconnect/internal/db"
	"github.com/campusconnect/campusconnect/internal/marketplace"
	"github.com/campusconnect/campusconnect/internal/repository"
)

type CategoryRepo struct {
	db db.DB
}

func NewCategoryRepo(db db.DB) marketplace.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) List(ctx context.Context) ([]*repository.Category, error) {
	var categories []*repository.Category
	err := r.db.Select(ctx, &categories, "SELECT * FROM categories ORDER BY name ASC")
	return categories, err
}
