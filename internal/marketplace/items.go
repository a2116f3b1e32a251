package marketplace

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/campusconnect/internal/repository"
)

func (s *Service) CreateItem(ctx context.Context, ownerID uuid.UUID, in NewItemInput) (*Item, error) {
	now := time.Now().UTC()
	condition := in.Condition
	if condition == "" {
		condition = "Good"
	}
	sharingType := in.SharingType
	if sharingType == "" {
		sharingType = "lend"
	}
	row := &repository.Item{
		ID:                 uuid.New(),
		OwnerID:            ownerID,
		CategoryID:         in.CategoryID,
		Name:               in.Name,
		Description:        in.Description,
		Condition:          condition,
		AvailabilityStatus: string(AvailabilityAvailable),
		SharingType:        sharingType,
		Location:           in.Location,
		ListedAt:           now,
		UpdatedAt:          now,
	}
	if err := s.items.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	item := itemFromRepo(row)
	return &item, nil
}

func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*Item, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(id); ok {
			item := itemFromDetails(cached)
			return &item, nil
		}
	}

	row, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(row)
	}
	item := itemFromDetails(row)
	return &item, nil
}

func (s *Service) SearchItems(ctx context.Context, f repository.ItemFilter) (*ItemPage, error) {
	rows, total, err := s.items.Search(ctx, f)
	if err != nil {
		return nil, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 20
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	items := make([]Item, len(rows))
	for i, row := range rows {
		items[i] = itemFromDetails(row)
	}
	return &ItemPage{Items: items, TotalCount: total, Page: page, TotalPages: totalPages}, nil
}

func (s *Service) UpdateItem(ctx context.Context, id, ownerID uuid.UUID, patch repository.ItemPatch) (*Item, error) {
	row, err := s.items.Update(ctx, id, ownerID, patch)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Delete(id)
	}
	item := itemFromRepo(row)
	return &item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := s.items.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Delete(id)
	}
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromRepo(row)
	}
	return categories, nil
}
