package service

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadeelmohammed/portfolio-backend/internal/cache"
	"github.com/hadeelmohammed/portfolio-backend/internal/i18n"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
)

type pageFixture struct {
	pages    *PageService
	settings *SettingsService
	projects *ProjectService
	contacts *ContactService
}

func newPageFixture(t *testing.T) pageFixture {
	t.Helper()
	mem := cache.NewMemory(time.Minute)
	t.Cleanup(func() { _ = mem.Close() })

	settings := NewSettingsService(newMockSettingsRepository(), mem, time.Minute)
	projects := NewProjectService(newMemoryProjectRepository())
	contacts := NewContactService(newMemoryContactRepository(), nil, nil)
	contacts.spawn = func(fn func()) { fn() }

	pages := NewPageService(settings, projects, contacts)
	pages.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return pageFixture{pages: pages, settings: settings, projects: projects, contacts: contacts}
}

func TestPageService_HomeFallsBackToDesigner(t *testing.T) {
	f := newPageFixture(t)
	ctx := context.Background()

	_, err := f.projects.Create(ctx, ProjectInput{Category: "branding", TitleEN: "Bloom", TitleAR: "بلوم", Featured: true})
	require.NoError(t, err)
	_, err = f.projects.Create(ctx, ProjectInput{Category: "print", TitleEN: "Hidden"})
	require.NoError(t, err)

	page, err := f.pages.Home(ctx, i18n.AR)
	require.NoError(t, err)

	assert.Equal(t, "ar", page.Lang)
	assert.Equal(t, "rtl", page.Dir)
	assert.Equal(t, "Hadeel Mohammed", page.Hero.Title)
	assert.Equal(t, "مصممة جرافيك وفنانة بصرية", page.Hero.Subtitle)
	assert.Equal(t, "عرض الأعمال", page.Hero.CTAPortfolio)
	require.Len(t, page.Featured.Projects, 1)
	assert.Equal(t, "بلوم", page.Featured.Projects[0].Title)
}

func TestPageService_LayoutFooterFallbacks(t *testing.T) {
	f := newPageFixture(t)
	ctx := context.Background()

	_, err := f.settings.Set(ctx, models.SettingsKeyDesigner, json.RawMessage(`{
		"name": "Hadeel",
		"socialLinks": {"linkedin": "https://linkedin.com/in/h", "instagram": "https://instagram.com/h", "behance": ""}
	}`))
	require.NoError(t, err)
	_, err = f.settings.Set(ctx, models.SettingsKeyBrand, json.RawMessage(`{
		"useLogo": true, "logoUrl": "/media/project-images/logo.png", "headerLogoSize": "large",
		"typography": {"mode": "preset", "preset": "luxury"}
	}`))
	require.NoError(t, err)

	layout, err := f.pages.Layout(ctx, i18n.EN)
	require.NoError(t, err)

	assert.Equal(t, "© 2025 Hadeel", layout.Footer.Copyright)
	assert.True(t, layout.Footer.ShowNavigation)
	require.Len(t, layout.Footer.SocialLinks, 2)
	assert.Equal(t, "instagram", layout.Footer.SocialLinks[0].Platform)
	assert.Equal(t, "linkedin", layout.Footer.SocialLinks[1].Platform)
	assert.Len(t, layout.Navigation, 4)
	assert.Equal(t, "Portfolio", layout.Navigation[1].Name)

	assert.True(t, layout.Brand.UseLogo)
	assert.Equal(t, "large", layout.Brand.HeaderLogoSize)
	assert.Equal(t, "medium", layout.Brand.FooterLogoSize)
	assert.NotEmpty(t, layout.Brand.CSSVariables["--font-latin"])
}

func TestPageService_LayoutUsesFooterSettings(t *testing.T) {
	f := newPageFixture(t)
	ctx := context.Background()

	_, err := f.settings.Set(ctx, models.SettingsKeyFooter, json.RawMessage(`{
		"copyrightText": "All rights reserved",
		"showSocialLinks": false,
		"navigationLinks": [{"name": {"en": "Work", "ar": "الأعمال"}, "path": "/portfolio"}],
		"socialLinks": [{"platform": "github", "url": "https://github.com/h"}]
	}`))
	require.NoError(t, err)

	layout, err := f.pages.Layout(ctx, i18n.AR)
	require.NoError(t, err)
	assert.Equal(t, "All rights reserved", layout.Footer.Copyright)
	assert.False(t, layout.Footer.ShowSocialLinks)
	require.Len(t, layout.Footer.Navigation, 1)
	assert.Equal(t, "الأعمال", layout.Footer.Navigation[0].Name)
	assert.Equal(t, "github", layout.Footer.SocialLinks[0].Platform)
}

func TestPageService_AboutGroupsCertifications(t *testing.T) {
	f := newPageFixture(t)

	page, err := f.pages.About(context.Background(), i18n.EN)
	require.NoError(t, err)

	require.Len(t, page.Awards, 1)
	require.Len(t, page.Certifications, 1)
	assert.Equal(t, "Best Brand Identity Design", page.Awards[0].Title)
	assert.Equal(t, "Adobe Certified Expert", page.Certifications[0].Title)
	assert.Equal(t, "Awards", page.Labels["awards"])
	assert.Len(t, page.Experience, 2)
}

func TestPageService_ProjectPage(t *testing.T) {
	f := newPageFixture(t)
	ctx := context.Background()

	_, err := f.projects.Create(ctx, ProjectInput{Category: "social-media", TitleEN: "Older"})
	require.NoError(t, err)
	_, err = f.projects.Create(ctx, ProjectInput{Category: "social-media", TitleEN: "Newer"})
	require.NoError(t, err)

	page, err := f.pages.Project(ctx, i18n.AR, "older")
	require.NoError(t, err)
	assert.Equal(t, "سوشيال ميديا", page.CategoryLabel)
	assert.Equal(t, "رجوع", page.Labels["back"])
	require.NotNil(t, page.Prev)
	assert.Equal(t, "newer", page.Prev.Slug)
	assert.Nil(t, page.Next)

	_, err = f.pages.Project(ctx, i18n.EN, "missing")
	assert.ErrorIs(t, err, apperror.ErrProjectNotFound)
}

func TestPageService_PortfolioAndContact(t *testing.T) {
	f := newPageFixture(t)
	ctx := context.Background()

	_, _ = f.projects.Create(ctx, ProjectInput{Category: "branding", TitleEN: "A"})
	_, _ = f.projects.Create(ctx, ProjectInput{Category: "print", TitleEN: "B"})

	page, err := f.pages.Portfolio(ctx, i18n.EN, "print")
	require.NoError(t, err)
	require.Len(t, page.Projects, 1)
	assert.Equal(t, "B", page.Projects[0].Title)
	assert.Equal(t, "all", page.Categories[0].Key)
	assert.Equal(t, "All Work", page.Categories[0].Label)

	all, err := f.pages.Portfolio(ctx, i18n.EN, "")
	require.NoError(t, err)
	assert.Len(t, all.Projects, 2)

	contact, err := f.pages.Contact(ctx, i18n.EN)
	require.NoError(t, err)
	assert.Equal(t, "hello@hadeelmohammed.com", contact.Email)
	assert.Len(t, contact.ProjectTypes, len(models.Categories))
}

func TestPageService_Dashboard(t *testing.T) {
	f := newPageFixture(t)
	ctx := context.Background()

	_, _ = f.projects.Create(ctx, ProjectInput{Category: "branding", TitleEN: "A", Featured: true})
	_, err := f.contacts.Submit(ctx, validContact())
	require.NoError(t, err)

	dash, err := f.pages.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.Projects.Total)
	assert.Equal(t, 1, dash.Projects.Featured)
	assert.Equal(t, 1, dash.UnreadMessages)
}
