package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/hadeelmohammed/portfolio-backend/internal/i18n"
	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/slug"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository"
	"github.com/hadeelmohammed/portfolio-backend/internal/validation"
)

// fallbackSlug используется, когда из заголовка не получилось ни одного латинского символа.
const fallbackSlug = "project"

// maxSlugAttempts ограничивает перебор суффиксов -2, -3, ...
const maxSlugAttempts = 50

// ProjectRepository описывает взаимодействие сервиса с таблицей projects.
type ProjectRepository interface {
	List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	ListFeatured(ctx context.Context) ([]models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleFeatured(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Counts(ctx context.Context) (*repository.ProjectCounts, error)
}

// ProjectInput — редактируемые поля проекта из админки.
type ProjectInput struct {
	Slug           string   `json:"slug" validate:"max=120"`
	Category       string   `json:"category" validate:"required,category"`
	Year           string   `json:"year" validate:"max=10"`
	Tools          []string `json:"tools"`
	MainImage      string   `json:"main_image"`
	GalleryImages  []string `json:"gallery_images" validate:"max=40"`
	Featured       bool     `json:"featured"`
	TitleEN        string   `json:"title_en" validate:"max=200"`
	TitleAR        string   `json:"title_ar" validate:"max=200"`
	DescriptionEN  string   `json:"description_en"`
	DescriptionAR  string   `json:"description_ar"`
	ClientEN       string   `json:"client_en" validate:"max=200"`
	ClientAR       string   `json:"client_ar" validate:"max=200"`
	ConceptEN      string   `json:"concept_en"`
	ConceptAR      string   `json:"concept_ar"`
	DesignSystemEN string   `json:"design_system_en"`
	DesignSystemAR string   `json:"design_system_ar"`
	ExecutionEN    string   `json:"execution_en"`
	ExecutionAR    string   `json:"execution_ar"`
}

// AdjacentProjects — соседние проекты в порядке списка.
type AdjacentProjects struct {
	Prev *models.ProjectView `json:"prev"`
	Next *models.ProjectView `json:"next"`
}

// ProjectService содержит бизнес-логику работы с проектами портфолио.
type ProjectService struct {
	repo ProjectRepository
	now  func() time.Time
}

// NewProjectService создаёт новый сервис проектов.
func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo, now: time.Now}
}

// Localize готовит проект к показу: каждое поле выбирается отдельно,
// с подстановкой второго языка и затем устаревшей колонки.
func Localize(p *models.Project, lang i18n.Lang) models.ProjectView {
	if p == nil {
		return models.ProjectView{}
	}
	tools := []string(p.Tools)
	if tools == nil {
		tools = []string{}
	}
	gallery := []string(p.GalleryImages)
	if gallery == nil {
		gallery = []string{}
	}
	return models.ProjectView{
		ID:            p.ID,
		Slug:          p.Slug,
		Category:      p.Category,
		Year:          p.Year,
		Tools:         tools,
		MainImage:     p.MainImage,
		GalleryImages: gallery,
		Featured:      p.Featured,
		Title:         i18n.Resolve(p.Title(), lang),
		Description:   i18n.Resolve(p.Description(), lang),
		Client:        i18n.Resolve(p.Client(), lang),
		Concept:       i18n.Resolve(p.Concept(), lang),
		DesignSystem:  i18n.Resolve(p.DesignSystem(), lang),
		Execution:     i18n.Resolve(p.Execution(), lang),
		CreatedAt:     p.CreatedAt,
	}
}

// LocalizeAll применяет Localize к списку с сохранением порядка.
func LocalizeAll(projects []models.Project, lang i18n.Lang) []models.ProjectView {
	views := make([]models.ProjectView, 0, len(projects))
	for i := range projects {
		views = append(views, Localize(&projects[i], lang))
	}
	return views
}

// List возвращает проекты от новых к старым.
func (s *ProjectService) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	if filter.Category != "" && filter.Category != "all" {
		if _, ok := models.ValidCategories[filter.Category]; !ok {
			return nil, apperror.Validation(map[string]string{"category": "unknown category"})
		}
	}
	return s.repo.List(ctx, filter)
}

// ListFeatured возвращает избранные проекты.
func (s *ProjectService) ListFeatured(ctx context.Context) ([]models.Project, error) {
	return s.repo.ListFeatured(ctx)
}

// GetBySlug возвращает проект или apperror.ErrProjectNotFound.
func (s *ProjectService) GetBySlug(ctx context.Context, projectSlug string) (*models.Project, error) {
	project, err := s.repo.GetBySlug(ctx, projectSlug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.ErrProjectNotFound
	}
	return project, nil
}

// GetByID возвращает проект для редактора.
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapProjectError(err)
	}
	return project, nil
}

// Template возвращает заготовку нового проекта для формы редактора.
func (s *ProjectService) Template() models.Project {
	return models.Project{
		Category:      models.CategoryBranding,
		Year:          strconv.Itoa(s.now().Year()),
		Tools:         pq.StringArray{},
		GalleryImages: pq.StringArray{},
	}
}

// Create создаёт проект. Пустой slug выводится из заголовка,
// при совпадении добавляется суффикс -2, -3, ...
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	in = normalizeProjectInput(in)
	if fields := validateProjectInput(in); fields != nil {
		return nil, apperror.Validation(fields)
	}

	project := &models.Project{}
	applyProjectInput(project, in)

	if in.Slug != "" {
		project.Slug = in.Slug
	} else {
		generated, err := s.uniqueSlug(ctx, slugSource(in))
		if err != nil {
			return nil, err
		}
		project.Slug = generated
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, mapProjectError(err)
	}

	if logger.Log != nil {
		logger.Log.WithFields(map[string]interface{}{
			"project_id": project.ID,
			"slug":       project.Slug,
		}).Info("project service: проект создан")
	}
	return project, nil
}

// Update перезаписывает поля проекта. Slug из заголовка здесь не выводится:
// пустой slug в запросе означает «оставить текущий».
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, in ProjectInput) (*models.Project, error) {
	in = normalizeProjectInput(in)
	if fields := validateProjectInput(in); fields != nil {
		return nil, apperror.Validation(fields)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapProjectError(err)
	}

	applyProjectInput(existing, in)
	if in.Slug != "" {
		existing.Slug = in.Slug
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, mapProjectError(err)
	}
	return existing, nil
}

// Delete удаляет проект.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapProjectError(err)
	}
	return nil
}

// ToggleFeatured инвертирует флаг featured.
func (s *ProjectService) ToggleFeatured(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.ToggleFeatured(ctx, id)
	if err != nil {
		return nil, mapProjectError(err)
	}
	return project, nil
}

// Adjacent возвращает предыдущий и следующий проект относительно slug
// в порядке основного списка.
func (s *ProjectService) Adjacent(ctx context.Context, projectSlug string, lang i18n.Lang) (*AdjacentProjects, error) {
	projects, err := s.repo.List(ctx, models.ProjectFilter{})
	if err != nil {
		return nil, err
	}

	result := &AdjacentProjects{}
	for i := range projects {
		if projects[i].Slug != projectSlug {
			continue
		}
		if i > 0 {
			prev := Localize(&projects[i-1], lang)
			result.Prev = &prev
		}
		if i < len(projects)-1 {
			next := Localize(&projects[i+1], lang)
			result.Next = &next
		}
		break
	}
	return result, nil
}

// Counts возвращает агрегаты для панели управления.
func (s *ProjectService) Counts(ctx context.Context) (*repository.ProjectCounts, error) {
	return s.repo.Counts(ctx)
}

func (s *ProjectService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Generate(title)
	if base == "" {
		base = fallbackSlug
	}

	for n := 1; n <= maxSlugAttempts; n++ {
		candidate := slug.WithSuffix(base, n)
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", apperror.ErrSlugTaken
}

// slugSource выбирает заголовок для slug: английский, иначе арабский.
func slugSource(in ProjectInput) string {
	if in.TitleEN != "" {
		return in.TitleEN
	}
	return in.TitleAR
}

func normalizeProjectInput(in ProjectInput) ProjectInput {
	in.Slug = strings.TrimSpace(in.Slug)
	in.Category = strings.TrimSpace(in.Category)
	in.Year = strings.TrimSpace(in.Year)
	in.MainImage = strings.TrimSpace(in.MainImage)
	in.TitleEN = strings.TrimSpace(in.TitleEN)
	in.TitleAR = strings.TrimSpace(in.TitleAR)
	in.ClientEN = strings.TrimSpace(in.ClientEN)
	in.ClientAR = strings.TrimSpace(in.ClientAR)

	tools := make([]string, 0, len(in.Tools))
	for _, tool := range in.Tools {
		if tool = strings.TrimSpace(tool); tool != "" {
			tools = append(tools, tool)
		}
	}
	in.Tools = tools

	gallery := make([]string, 0, len(in.GalleryImages))
	for _, img := range in.GalleryImages {
		if img = strings.TrimSpace(img); img != "" {
			gallery = append(gallery, img)
		}
	}
	in.GalleryImages = gallery
	return in
}

func validateProjectInput(in ProjectInput) map[string]string {
	fields := validation.Struct(in)
	if fields == nil {
		fields = map[string]string{}
	}

	if in.TitleEN == "" && in.TitleAR == "" {
		fields["title_en"] = "Title is required in at least one language"
	}
	if in.Slug != "" && !slug.Valid(in.Slug) {
		fields["slug"] = "Slug may contain only lowercase letters, digits and single dashes"
	}
	if err := validation.ValidateTools(in.Tools); err != nil {
		fields["tools"] = err.Error()
	}
	if err := validation.ValidateURL("main_image", in.MainImage); err != nil {
		fields["main_image"] = err.Error()
	}
	for i, img := range in.GalleryImages {
		if err := validation.ValidateURL("gallery_images", img); err != nil {
			fields[fmt.Sprintf("gallery_images.%d", i)] = err.Error()
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func applyProjectInput(p *models.Project, in ProjectInput) {
	p.Category = in.Category
	p.Year = in.Year
	p.Tools = pq.StringArray(in.Tools)
	p.MainImage = in.MainImage
	p.GalleryImages = pq.StringArray(in.GalleryImages)
	p.Featured = in.Featured
	p.TitleEN = in.TitleEN
	p.TitleAR = in.TitleAR
	p.DescriptionEN = in.DescriptionEN
	p.DescriptionAR = in.DescriptionAR
	p.ClientEN = in.ClientEN
	p.ClientAR = in.ClientAR
	p.ConceptEN = in.ConceptEN
	p.ConceptAR = in.ConceptAR
	p.DesignSystemEN = in.DesignSystemEN
	p.DesignSystemAR = in.DesignSystemAR
	p.ExecutionEN = in.ExecutionEN
	p.ExecutionAR = in.ExecutionAR
}

func mapProjectError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProjectNotFound):
		return apperror.ErrProjectNotFound
	case errors.Is(err, repository.ErrSlugTaken):
		return apperror.ErrSlugTaken
	}
	return err
}
