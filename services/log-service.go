package services

import (
	"context"
	"strings"

	"construction-tracker/backend/models"
	"construction-tracker/backend/storage"
	"construction-tracker/backend/utils"
)

// LogService owns the daily construction log collection, newest first.
type LogService struct {
	repo *Repository[models.ConstructionLog]
}

func NewLogService(store storage.Store) *LogService {
	return &LogService{repo: NewRepository(store, logsKey, DefaultLogs())}
}

func (s *LogService) Load(ctx context.Context) error {
	return s.repo.Load(ctx)
}

func (s *LogService) Logs() []models.ConstructionLog {
	return s.repo.All()
}

// Create prepends the new entry so the collection stays most-recent-first.
func (s *LogService) Create(ctx context.Context, entry models.ConstructionLog) (models.ConstructionLog, error) {
	entry.ID = utils.NewID()
	logs := append([]models.ConstructionLog{entry}, s.repo.All()...)
	if err := s.repo.Replace(ctx, logs); err != nil {
		return models.ConstructionLog{}, err
	}
	return entry, nil
}

func (s *LogService) Delete(ctx context.Context, id string) error {
	logs := s.repo.All()
	kept := logs[:0]
	for _, l := range logs {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return s.repo.Replace(ctx, kept)
}

// Search filters by substring containment over the work item summary and the
// project reference. An empty query returns all entries unfiltered.
func (s *LogService) Search(query string) []models.ConstructionLog {
	logs := s.repo.All()
	if query == "" {
		return logs
	}
	matched := logs[:0]
	for _, l := range logs {
		if strings.Contains(l.WorkItems, query) || strings.Contains(l.ProjectRef, query) {
			matched = append(matched, l)
		}
	}
	return matched
}
