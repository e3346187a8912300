package service

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadeelmohammed/portfolio-backend/internal/models"
)

func TestSeedService_FillsEmptyDatabase(t *testing.T) {
	settings, _ := newTestSettingsService(t)
	projects := NewProjectService(newMemoryProjectRepository())
	svc := NewSeedService(settings, projects)
	ctx := context.Background()

	result, err := svc.SeedData(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, models.SettingsKeys, result.Settings)
	assert.Len(t, result.Projects, len(sampleProjects()))

	featured, err := projects.ListFeatured(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 3)

	designer, err := settings.Designer(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hadeel Mohammed", designer.Name)
}

func TestSeedService_KeepsExistingData(t *testing.T) {
	settings, _ := newTestSettingsService(t)
	projects := NewProjectService(newMemoryProjectRepository())
	svc := NewSeedService(settings, projects)
	ctx := context.Background()

	_, err := settings.Set(ctx, models.SettingsKeyDesigner, json.RawMessage(`{"name":"Custom Name"}`))
	require.NoError(t, err)
	_, err = projects.Create(ctx, ProjectInput{Category: models.CategoryBranding, TitleEN: "Mine", Slug: "bloom-coffee-branding"})
	require.NoError(t, err)

	result, err := svc.SeedData(ctx)
	require.NoError(t, err)
	assert.Contains(t, result.SkippedSettings, models.SettingsKeyDesigner)
	assert.Contains(t, result.SkippedProjects, "bloom-coffee-branding")

	designer, err := settings.Designer(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Custom Name", designer.Name)

	mine, err := projects.GetBySlug(ctx, "bloom-coffee-branding")
	require.NoError(t, err)
	assert.Equal(t, "Mine", mine.TitleEN)

	// повторный запуск ничего не пишет
	again, err := svc.SeedData(ctx)
	require.NoError(t, err)
	assert.Empty(t, again.Settings)
	assert.Empty(t, again.Projects)
}
