package services

import (
	"context"
	"testing"

	"construction-tracker/backend/models"
	"construction-tracker/backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectFixture(t *testing.T) *ProjectService {
	t.Helper()
	service := NewProjectService(storage.NewMemoryStore())
	require.NoError(t, service.Load(context.Background()))
	return service
}

func TestCreateForcesEmptyExtensions(t *testing.T) {
	service := newProjectFixture(t)

	created, err := service.Create(context.Background(), models.Project{
		Name:             "Site A",
		StartDate:        "2026-01-01",
		ContractDuration: "30",
		Status:           models.ProjectOngoing,
		Extensions:       []models.Extension{{ID: "smuggled", Days: 99}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Extensions)
}

func TestCreatePrependsNewestFirst(t *testing.T) {
	service := newProjectFixture(t)
	ctx := context.Background()

	_, err := service.Create(ctx, models.Project{Name: "First", StartDate: "2026-01-01", ContractDuration: "10"})
	require.NoError(t, err)
	_, err = service.Create(ctx, models.Project{Name: "Second", StartDate: "2026-02-01", ContractDuration: "10"})
	require.NoError(t, err)

	projects := service.Projects()
	require.Len(t, projects, 2)
	assert.Equal(t, "Second", projects[0].Name)
	assert.Equal(t, "First", projects[1].Name)
}

func TestUpdateMergesSuppliedFieldsOnly(t *testing.T) {
	service := newProjectFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, models.Project{
		Name: "Site A", Location: "Taichung", Manager: "Chen",
		StartDate: "2026-01-01", ContractDuration: "30",
		DurationType: models.DurationCalendarDays, Status: models.ProjectNotStarted,
	})
	require.NoError(t, err)

	status := models.ProjectOngoing
	progress := 45
	updated, err := service.Update(ctx, created.ID, models.ProjectPatch{Status: &status, Progress: &progress})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectOngoing, updated.Status)
	assert.Equal(t, 45, updated.Progress)
	assert.Equal(t, "Site A", updated.Name)
	assert.Equal(t, "Taichung", updated.Location)
	assert.Equal(t, "30", updated.ContractDuration)
}

func TestUpdateUnknownID(t *testing.T) {
	service := newProjectFixture(t)
	name := "x"
	_, err := service.Update(context.Background(), "missing", models.ProjectPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesProject(t *testing.T) {
	service := newProjectFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, models.Project{Name: "Site A", StartDate: "2026-01-01", ContractDuration: "30"})
	require.NoError(t, err)
	require.NoError(t, service.Delete(ctx, created.ID))
	assert.Empty(t, service.Projects())
}

// The full extension lifecycle: append through a whole-list update, confirm
// the derived schedule, remove by filtering the list, confirm it reverts.
func TestExtensionLifecycleAndProjectedCompletion(t *testing.T) {
	service := newProjectFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, models.Project{
		Name: "Site A", StartDate: "2026-01-01", ContractDuration: "30",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, TotalExtensionDays(created.Extensions))
	end, ok := ProjectedCompletionDate(created)
	require.True(t, ok)
	assert.Equal(t, "2026-01-30", end.Format(dateLayout))

	extensions := []models.Extension{{
		ID: "e1", Date: "2026-01-10", Days: 5,
		Reason: "Typhoon shutdown", LetterDate: "2026-01-09", LetterNumber: "DW-114-001",
	}}
	updated, err := service.Update(ctx, created.ID, models.ProjectPatch{Extensions: &extensions})
	require.NoError(t, err)

	assert.Equal(t, 5, TotalExtensionDays(updated.Extensions))
	end, ok = ProjectedCompletionDate(updated)
	require.True(t, ok)
	assert.Equal(t, "2026-02-04", end.Format(dateLayout))

	none := []models.Extension{}
	reverted, err := service.Update(ctx, created.ID, models.ProjectPatch{Extensions: &none})
	require.NoError(t, err)

	assert.Equal(t, 0, TotalExtensionDays(reverted.Extensions))
	end, ok = ProjectedCompletionDate(reverted)
	require.True(t, ok)
	assert.Equal(t, "2026-01-30", end.Format(dateLayout))
}

func TestProjectedCompletionDateSentinels(t *testing.T) {
	cases := []struct {
		name    string
		project models.Project
	}{
		{"missing start date", models.Project{ContractDuration: "30"}},
		{"missing duration", models.Project{StartDate: "2026-01-01"}},
		{"unparseable start date", models.Project{StartDate: "someday", ContractDuration: "30"}},
		{"non-numeric duration", models.Project{StartDate: "2026-01-01", ContractDuration: "a month"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ProjectedCompletionDate(tc.project)
			assert.False(t, ok)
		})
	}
}

func TestSearchProjects(t *testing.T) {
	service := newProjectFixture(t)
	ctx := context.Background()

	_, err := service.Create(ctx, models.Project{Name: "River Embankment", Location: "Taichung", Manager: "Chen", StartDate: "2026-01-01", ContractDuration: "30"})
	require.NoError(t, err)
	_, err = service.Create(ctx, models.Project{Name: "Harbor Road", Location: "Kaohsiung", Manager: "Lin", StartDate: "2026-02-01", ContractDuration: "60"})
	require.NoError(t, err)

	all := service.Search("")
	assert.Equal(t, service.Projects(), all, "empty query returns the full collection in order")

	assert.Len(t, service.Search("River"), 1)
	assert.Len(t, service.Search("Kaohsiung"), 1)
	assert.Len(t, service.Search("Chen"), 1)
	assert.Empty(t, service.Search("Tunnel"))
}
