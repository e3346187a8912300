package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository/common"
)

var (
	// ErrProjectNotFound возвращается, когда проект не найден по id.
	ErrProjectNotFound = errors.New("project not found")
	// ErrSlugTaken возвращается при попытке занять существующий slug.
	ErrSlugTaken = errors.New("project slug already exists")
)

const projectColumns = `
	id, slug, category, year, tools, main_image, gallery_images, featured,
	title_en, title_ar, description_en, description_ar, client_en, client_ar,
	concept_en, concept_ar, design_system_en, design_system_ar, execution_en, execution_ar,
	title, description, client, created_at, updated_at`

// ProjectRepository работает с таблицей projects.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository создаёт экземпляр репозитория.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List возвращает проекты от новых к старым с необязательными фильтрами.
func (r *ProjectRepository) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.Category != "" && filter.Category != "all" {
		query += fmt.Sprintf(` AND category = $%d`, argNum)
		args = append(args, filter.Category)
		argNum++
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query += fmt.Sprintf(` AND (title_en ILIKE $%d OR title_ar ILIKE $%d OR client_en ILIKE $%d OR client_ar ILIKE $%d OR COALESCE(title, '') ILIKE $%d)`,
			argNum, argNum, argNum, argNum, argNum)
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY created_at DESC`

	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, fmt.Errorf("project repository: list %w", err)
	}
	return projects, nil
}

// ListFeatured возвращает избранные проекты в том же порядке, что и List.
func (r *ProjectRepository) ListFeatured(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE featured = TRUE ORDER BY created_at DESC`

	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, fmt.Errorf("project repository: list featured %w", err)
	}
	return projects, nil
}

// GetBySlug возвращает проект по slug. Отсутствие проекта не ошибка: (nil, nil).
func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	query := `SELECT ` + projectColumns + ` FROM projects WHERE slug = $1`
	if err := r.db.GetContext(ctx, &project, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("project repository: get by slug %w", err)
	}
	return &project, nil
}

// GetByID возвращает проект по идентификатору.
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return common.GetByID[models.Project](ctx, r.db, "projects", id, ErrProjectNotFound)
}

// SlugExists проверяет, занят ли slug.
func (r *ProjectRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM projects WHERE slug = $1)`, slug); err != nil {
		return false, fmt.Errorf("project repository: slug exists %w", err)
	}
	return exists, nil
}

// Create вставляет проект и заполняет id и даты.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (
			slug, category, year, tools, main_image, gallery_images, featured,
			title_en, title_ar, description_en, description_ar, client_en, client_ar,
			concept_en, concept_ar, design_system_en, design_system_ar, execution_en, execution_ar
		) VALUES (
			:slug, :category, :year, :tools, :main_image, :gallery_images, :featured,
			:title_en, :title_ar, :description_en, :description_ar, :client_en, :client_ar,
			:concept_en, :concept_ar, :design_system_en, :design_system_ar, :execution_en, :execution_ar
		)
		RETURNING id, created_at, updated_at
	`

	bound, args, err := sqlx.Named(query, project)
	if err != nil {
		return fmt.Errorf("project repository: bind create %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(bound), args...).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt); err != nil {
		if common.IsUniqueViolation(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("project repository: create %w", err)
	}
	return nil
}

// Update перезаписывает редактируемые поля проекта.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects SET
			slug = :slug,
			category = :category,
			year = :year,
			tools = :tools,
			main_image = :main_image,
			gallery_images = :gallery_images,
			featured = :featured,
			title_en = :title_en,
			title_ar = :title_ar,
			description_en = :description_en,
			description_ar = :description_ar,
			client_en = :client_en,
			client_ar = :client_ar,
			concept_en = :concept_en,
			concept_ar = :concept_ar,
			design_system_en = :design_system_en,
			design_system_ar = :design_system_ar,
			execution_en = :execution_en,
			execution_ar = :execution_ar,
			updated_at = NOW()
		WHERE id = :id
		RETURNING created_at, updated_at
	`

	bound, args, err := sqlx.Named(query, project)
	if err != nil {
		return fmt.Errorf("project repository: bind update %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(bound), args...).
		Scan(&project.CreatedAt, &project.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProjectNotFound
		}
		if common.IsUniqueViolation(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("project repository: update %w", err)
	}
	return nil
}

// Delete удаляет проект.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("project repository: delete %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("project repository: delete rows affected %w", err)
	}
	if rowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// ToggleFeatured атомарно инвертирует флаг featured и возвращает обновлённый проект.
func (r *ProjectRepository) ToggleFeatured(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	query := `UPDATE projects SET featured = NOT featured, updated_at = NOW() WHERE id = $1 RETURNING ` + projectColumns
	if err := r.db.GetContext(ctx, &project, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("project repository: toggle featured %w", err)
	}
	return &project, nil
}

// ProjectCounts — агрегаты для панели управления.
type ProjectCounts struct {
	Total      int            `json:"total"`
	Featured   int            `json:"featured"`
	ByCategory map[string]int `json:"by_category"`
}

// Counts считает проекты всего, избранные и по категориям.
func (r *ProjectRepository) Counts(ctx context.Context) (*ProjectCounts, error) {
	counts := &ProjectCounts{ByCategory: map[string]int{}}

	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE featured) FROM projects`,
	).Scan(&counts.Total, &counts.Featured); err != nil {
		return nil, fmt.Errorf("project repository: counts %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM projects GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("project repository: counts by category %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("project repository: counts scan %w", err)
		}
		counts.ByCategory[category] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("project repository: counts rows %w", err)
	}
	return counts, nil
}
