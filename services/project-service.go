package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"construction-tracker/backend/logging"
	"construction-tracker/backend/models"
	"construction-tracker/backend/storage"
	"construction-tracker/backend/utils"
)

// ProjectService owns the project collection and its extension bookkeeping.
type ProjectService struct {
	repo *Repository[models.Project]
}

func NewProjectService(store storage.Store) *ProjectService {
	return &ProjectService{repo: NewRepository(store, projectsKey, DefaultProjects())}
}

func (s *ProjectService) Load(ctx context.Context) error {
	return s.repo.Load(ctx)
}

// Projects returns the full collection in stored order.
func (s *ProjectService) Projects() []models.Project {
	return s.repo.All()
}

// Create stores a new project at the head of the collection. Extensions
// always start empty no matter what the caller supplied.
func (s *ProjectService) Create(ctx context.Context, project models.Project) (models.Project, error) {
	project.ID = utils.NewID()
	project.Extensions = []models.Extension{}

	projects := append([]models.Project{project}, s.repo.All()...)
	if err := s.repo.Replace(ctx, projects); err != nil {
		return models.Project{}, err
	}
	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: Project %s (%s) created", project.Name, project.ID)
	return project, nil
}

// Update shallow-merges the patch into the matching record. A supplied
// extensions list replaces the old one wholesale; appending or removing an
// extension is the caller composing the new list.
func (s *ProjectService) Update(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error) {
	projects := s.repo.All()
	var updated models.Project
	found := false
	for i := range projects {
		if projects[i].ID == id {
			applyProjectPatch(&projects[i], patch)
			updated = projects[i]
			found = true
		}
	}
	if !found {
		return models.Project{}, ErrNotFound
	}
	if err := s.repo.Replace(ctx, projects); err != nil {
		return models.Project{}, err
	}
	return updated, nil
}

// Delete removes the project and the extensions it owns. Unknown ids are a
// no-op.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	projects := s.repo.All()
	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := s.repo.Replace(ctx, kept); err != nil {
		return err
	}
	logging.Logger.Infof("Event ID: PROJECT_DELETED, Description: Project %s removed", id)
	return nil
}

// Search filters by substring containment over name, location and manager.
// An empty query returns the full collection unfiltered.
func (s *ProjectService) Search(query string) []models.Project {
	projects := s.repo.All()
	if query == "" {
		return projects
	}
	matched := projects[:0]
	for _, p := range projects {
		if strings.Contains(p.Name, query) ||
			strings.Contains(p.Location, query) ||
			strings.Contains(p.Manager, query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// TotalExtensionDays sums the additive days over all extension records.
func TotalExtensionDays(extensions []models.Extension) int {
	total := 0
	for _, e := range extensions {
		total += e.Days
	}
	return total
}

// ProjectedCompletionDate derives the contractual end date:
// start date + contract duration + total extension days - 1 day.
// The second return is false when the start date does not parse or the
// contract duration is not an integer; no garbage date is produced.
func ProjectedCompletionDate(project models.Project) (time.Time, bool) {
	if project.StartDate == "" || project.ContractDuration == "" {
		return time.Time{}, false
	}
	start, err := time.Parse(dateLayout, project.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	duration, err := strconv.Atoi(strings.TrimSpace(project.ContractDuration))
	if err != nil {
		return time.Time{}, false
	}

	totalDays := duration + TotalExtensionDays(project.Extensions) - 1
	return start.AddDate(0, 0, totalDays), true
}

func applyProjectPatch(project *models.Project, patch models.ProjectPatch) {
	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Location != nil {
		project.Location = *patch.Location
	}
	if patch.Manager != nil {
		project.Manager = *patch.Manager
	}
	if patch.AwardDate != nil {
		project.AwardDate = *patch.AwardDate
	}
	if patch.ContractDuration != nil {
		project.ContractDuration = *patch.ContractDuration
	}
	if patch.DurationType != nil {
		project.DurationType = *patch.DurationType
	}
	if patch.StartDate != nil {
		project.StartDate = *patch.StartDate
	}
	if patch.ActualCompletionDate != nil {
		project.ActualCompletionDate = *patch.ActualCompletionDate
	}
	if patch.InspectionDate != nil {
		project.InspectionDate = *patch.InspectionDate
	}
	if patch.ReinspectionDate != nil {
		project.ReinspectionDate = *patch.ReinspectionDate
	}
	if patch.InspectionPassedDate != nil {
		project.InspectionPassedDate = *patch.InspectionPassedDate
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.Progress != nil {
		project.Progress = *patch.Progress
	}
	if patch.Extensions != nil {
		project.Extensions = *patch.Extensions
	}
}
