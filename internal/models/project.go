package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/hadeelmohammed/portfolio-backend/internal/i18n"
)

// Project — строка таблицы projects. Двуязычные поля хранятся парами
// колонок _en/_ar, старые записи могут иметь только одноязычные колонки.
type Project struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	Slug          string         `db:"slug" json:"slug"`
	Category      string         `db:"category" json:"category"`
	Year          string         `db:"year" json:"year"`
	Tools         pq.StringArray `db:"tools" json:"tools"`
	MainImage     string         `db:"main_image" json:"main_image"`
	GalleryImages pq.StringArray `db:"gallery_images" json:"gallery_images"`
	Featured      bool           `db:"featured" json:"featured"`

	TitleEN        string `db:"title_en" json:"title_en"`
	TitleAR        string `db:"title_ar" json:"title_ar"`
	DescriptionEN  string `db:"description_en" json:"description_en"`
	DescriptionAR  string `db:"description_ar" json:"description_ar"`
	ClientEN       string `db:"client_en" json:"client_en"`
	ClientAR       string `db:"client_ar" json:"client_ar"`
	ConceptEN      string `db:"concept_en" json:"concept_en"`
	ConceptAR      string `db:"concept_ar" json:"concept_ar"`
	DesignSystemEN string `db:"design_system_en" json:"design_system_en"`
	DesignSystemAR string `db:"design_system_ar" json:"design_system_ar"`
	ExecutionEN    string `db:"execution_en" json:"execution_en"`
	ExecutionAR    string `db:"execution_ar" json:"execution_ar"`

	LegacyTitle       *string `db:"title" json:"title,omitempty"`
	LegacyDescription *string `db:"description" json:"description,omitempty"`
	LegacyClient      *string `db:"client" json:"client,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func pairOrLegacy(en, ar string, legacy *string) *i18n.LocalizedText {
	if en == "" && ar == "" && legacy != nil && *legacy != "" {
		return i18n.Plain(*legacy)
	}
	return i18n.Text(en, ar)
}

// Title возвращает заголовок как LocalizedText.
func (p *Project) Title() *i18n.LocalizedText {
	return pairOrLegacy(p.TitleEN, p.TitleAR, p.LegacyTitle)
}

func (p *Project) Description() *i18n.LocalizedText {
	return pairOrLegacy(p.DescriptionEN, p.DescriptionAR, p.LegacyDescription)
}

func (p *Project) Client() *i18n.LocalizedText {
	return pairOrLegacy(p.ClientEN, p.ClientAR, p.LegacyClient)
}

func (p *Project) Concept() *i18n.LocalizedText {
	return i18n.Text(p.ConceptEN, p.ConceptAR)
}

func (p *Project) DesignSystem() *i18n.LocalizedText {
	return i18n.Text(p.DesignSystemEN, p.DesignSystemAR)
}

func (p *Project) Execution() *i18n.LocalizedText {
	return i18n.Text(p.ExecutionEN, p.ExecutionAR)
}

// ProjectView — проект, подготовленный к показу на одном языке.
type ProjectView struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Category      string    `json:"category"`
	Year          string    `json:"year"`
	Tools         []string  `json:"tools"`
	MainImage     string    `json:"main_image"`
	GalleryImages []string  `json:"gallery_images"`
	Featured      bool      `json:"featured"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Client        string    `json:"client"`
	Concept       string    `json:"concept"`
	DesignSystem  string    `json:"design_system"`
	Execution     string    `json:"execution"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProjectFilter — фильтры списка проектов в админке.
type ProjectFilter struct {
	Search   string
	Category string
}
