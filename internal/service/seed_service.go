package service

import (
	"context"
	"fmt"

	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
)

// SeedResult описывает, что было записано при заполнении базы.
type SeedResult struct {
	Settings        []string `json:"settings"`
	Projects        []string `json:"projects"`
	SkippedSettings []string `json:"skipped_settings"`
	SkippedProjects []string `json:"skipped_projects"`
}

// SeedService заполняет пустую базу демонстрационными данными.
// Существующие ключи настроек и проекты не перезаписываются.
type SeedService struct {
	settings *SettingsService
	projects *ProjectService
}

// NewSeedService создаёт новый сервис для генерации данных.
func NewSeedService(settings *SettingsService, projects *ProjectService) *SeedService {
	return &SeedService{settings: settings, projects: projects}
}

// SeedData записывает настройки по умолчанию и примеры проектов.
func (s *SeedService) SeedData(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{
		Settings:        []string{},
		Projects:        []string{},
		SkippedSettings: []string{},
		SkippedProjects: []string{},
	}

	defaults := map[string]any{
		models.SettingsKeyDesigner: models.DefaultDesignerProfile(),
		models.SettingsKeyHome:     models.DefaultHomeSettings(),
		models.SettingsKeyFooter:   models.DefaultFooterSettings(),
		models.SettingsKeyBrand:    models.DefaultBrandSettings(),
	}

	missing := make(map[string]any, len(defaults))
	for _, key := range models.SettingsKeys {
		value, ok := defaults[key]
		if !ok {
			continue
		}
		raw, err := s.settings.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("seed service: read %s: %w", key, err)
		}
		if raw != nil {
			result.SkippedSettings = append(result.SkippedSettings, key)
			continue
		}
		missing[key] = value
		result.Settings = append(result.Settings, key)
	}
	if len(missing) > 0 {
		if err := s.settings.SetMany(ctx, missing); err != nil {
			return nil, fmt.Errorf("seed service: failed to write settings: %w", err)
		}
	}

	for _, sample := range sampleProjects() {
		existing, err := s.projects.repo.GetBySlug(ctx, sample.Slug)
		if err != nil {
			return nil, fmt.Errorf("seed service: lookup %s: %w", sample.Slug, err)
		}
		if existing != nil {
			result.SkippedProjects = append(result.SkippedProjects, sample.Slug)
			continue
		}
		if _, err := s.projects.Create(ctx, sample); err != nil {
			return nil, fmt.Errorf("seed service: failed to create %s: %w", sample.Slug, err)
		}
		result.Projects = append(result.Projects, sample.Slug)
	}

	if logger.Log != nil {
		logger.Log.WithFields(map[string]interface{}{
			"settings": len(result.Settings),
			"projects": len(result.Projects),
		}).Info("seed: демо-данные записаны")
	}
	return result, nil
}

func sampleProjects() []ProjectInput {
	return []ProjectInput{
		{
			Slug:          "bloom-coffee-branding",
			Category:      models.CategoryBranding,
			Year:          "2024",
			Tools:         []string{"Adobe Illustrator", "Photoshop"},
			Featured:      true,
			TitleEN:       "Bloom Coffee Co.",
			TitleAR:       "بلوم كوفي",
			DescriptionEN: "Complete brand identity for an artisan coffee roastery. The design captures warmth, craftsmanship, and the rich coffee culture through earthy tones and elegant typography.",
			DescriptionAR: "هوية بصرية متكاملة لمحمصة قهوة حرفية تعكس الدفء والحرفية وثقافة القهوة من خلال ألوان ترابية وخطوط أنيقة.",
			ClientEN:      "Bloom Coffee Co.",
			ClientAR:      "بلوم كوفي",
		},
		{
			Slug:          "wellness-studio-identity",
			Category:      models.CategoryBranding,
			Year:          "2024",
			Tools:         []string{"Adobe Illustrator", "Figma"},
			Featured:      true,
			TitleEN:       "Wellness Studio",
			TitleAR:       "استوديو العافية",
			DescriptionEN: "A calming and sophisticated brand identity for a modern wellness and yoga studio. Soft colors and organic shapes reflect tranquility and balance.",
			DescriptionAR: "هوية هادئة وراقية لاستوديو يوغا وعافية حديث، بألوان ناعمة وأشكال عضوية تعكس السكينة والتوازن.",
			ClientEN:      "Serenity Wellness",
			ClientAR:      "سيرينيتي للعافية",
		},
		{
			Slug:          "tech-summit-event",
			Category:      models.CategoryPrint,
			Year:          "2024",
			Tools:         []string{"Adobe InDesign", "Illustrator"},
			Featured:      true,
			TitleEN:       "Tech Summit 2024",
			TitleAR:       "قمة التقنية 2024",
			DescriptionEN: "Complete event collateral for an annual technology conference including posters, banners, badges, and promotional materials with a futuristic aesthetic.",
			DescriptionAR: "مطبوعات متكاملة لمؤتمر تقني سنوي تشمل الملصقات واللافتات والبطاقات والمواد الترويجية بطابع مستقبلي.",
			ClientEN:      "Tech Summit Conference",
		},
		{
			Slug:          "artisan-bakery-packaging",
			Category:      models.CategoryPackaging,
			Year:          "2023",
			Tools:         []string{"Procreate", "Adobe Illustrator"},
			TitleEN:       "Artisan Bakery",
			TitleAR:       "مخبز حرفي",
			DescriptionEN: "Charming packaging design for a boutique bakery featuring hand-drawn illustrations and warm, inviting colors that evoke the aroma of fresh-baked goods.",
			ClientEN:      "Golden Crust Bakery",
		},
		{
			Slug:          "social-media-templates",
			Category:      models.CategorySocialMedia,
			Year:          "2024",
			Tools:         []string{"Figma", "Canva Pro"},
			TitleEN:       "Social Media Suite",
			TitleAR:       "حزمة سوشيال ميديا",
			DescriptionEN: "Cohesive social media template collection for a lifestyle brand. Designed for Instagram, stories, and promotional posts with consistent visual language.",
			ClientEN:      "Lifestyle Brand",
		},
		{
			Slug:          "digital-illustrations",
			Category:      models.CategoryAI,
			Year:          "2023",
			Tools:         []string{"Procreate", "Adobe Fresco"},
			TitleEN:       "Digital Illustrations",
			TitleAR:       "رسومات رقمية",
			DescriptionEN: "A collection of vibrant digital illustrations exploring themes of nature, culture, and human connection through bold colors and expressive lines.",
			ClientEN:      "Personal Project",
			ClientAR:      "مشروع شخصي",
		},
	}
}
