package services

import (
	"context"
	"strings"

	"construction-tracker/backend/models"
	"construction-tracker/backend/storage"
	"construction-tracker/backend/utils"
)

// SOPService owns the procedure document library. Mutation is admin-only,
// enforced by the HTTP layer rather than here.
type SOPService struct {
	repo *Repository[models.SOP]
}

func NewSOPService(store storage.Store) *SOPService {
	return &SOPService{repo: NewRepository(store, sopsKey, DefaultSOPs())}
}

func (s *SOPService) Load(ctx context.Context) error {
	return s.repo.Load(ctx)
}

func (s *SOPService) SOPs() []models.SOP {
	return s.repo.All()
}

func (s *SOPService) Categories() []string {
	return append([]string(nil), models.SOPCategories...)
}

func (s *SOPService) Create(ctx context.Context, sop models.SOP) (models.SOP, error) {
	sop.ID = utils.NewID()
	sops := append([]models.SOP{sop}, s.repo.All()...)
	if err := s.repo.Replace(ctx, sops); err != nil {
		return models.SOP{}, err
	}
	return sop, nil
}

func (s *SOPService) Update(ctx context.Context, id string, patch models.SOPPatch) (models.SOP, error) {
	sops := s.repo.All()
	var updated models.SOP
	found := false
	for i := range sops {
		if sops[i].ID == id {
			applySOPPatch(&sops[i], patch)
			updated = sops[i]
			found = true
		}
	}
	if !found {
		return models.SOP{}, ErrNotFound
	}
	if err := s.repo.Replace(ctx, sops); err != nil {
		return models.SOP{}, err
	}
	return updated, nil
}

func (s *SOPService) Delete(ctx context.Context, id string) error {
	sops := s.repo.All()
	kept := sops[:0]
	for _, sop := range sops {
		if sop.ID != id {
			kept = append(kept, sop)
		}
	}
	return s.repo.Replace(ctx, kept)
}

// Search composes both filters: exact category match first (unless the
// sentinel "all"), then substring containment on title or version.
func (s *SOPService) Search(query, category string) []models.SOP {
	result := s.repo.All()

	if category != models.SOPCategoryAll && category != "" {
		filtered := result[:0]
		for _, sop := range result {
			if sop.Category == category {
				filtered = append(filtered, sop)
			}
		}
		result = filtered
	}

	if query != "" {
		filtered := result[:0]
		for _, sop := range result {
			if strings.Contains(sop.Title, query) || strings.Contains(sop.Version, query) {
				filtered = append(filtered, sop)
			}
		}
		result = filtered
	}

	return result
}

func applySOPPatch(sop *models.SOP, patch models.SOPPatch) {
	if patch.Title != nil {
		sop.Title = *patch.Title
	}
	if patch.Category != nil {
		sop.Category = *patch.Category
	}
	if patch.Version != nil {
		sop.Version = *patch.Version
	}
	if patch.Date != nil {
		sop.Date = *patch.Date
	}
	if patch.Content != nil {
		sop.Content = *patch.Content
	}
	if patch.File != nil {
		sop.File = patch.File
	}
}
