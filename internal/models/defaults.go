package models

import "github.com/hadeelmohammed/portfolio-backend/internal/i18n"

// CategoryLabels — подписи категорий для фильтров и формы обратной связи.
var CategoryLabels = map[string]*i18n.LocalizedText{
	CategoryBranding:    i18n.Text("Branding", "الهوية"),
	CategoryPrint:       i18n.Text("Print", "مطبوعات"),
	CategorySocialMedia: i18n.Text("Social Media", "سوشيال ميديا"),
	CategoryAI:          i18n.Plain("AI"),
	CategoryPackaging:   i18n.Text("Packaging", "التغليف"),
	CategoryMerchandise: i18n.Text("Merchandise", "منتجات"),
	CategoryOthers:      i18n.Text("Others", "أخرى"),
}

// AllWorkLabel — подпись фильтра «все категории».
var AllWorkLabel = i18n.Text("All Work", "كل الأعمال")

// CategoryLabel возвращает подпись категории, для неизвестной категории сам ключ.
func CategoryLabel(category string) *i18n.LocalizedText {
	if label, ok := CategoryLabels[category]; ok {
		return label
	}
	return i18n.Plain(category)
}

// DefaultDesignerProfile — профиль для пустой базы, его же пишет seed.
func DefaultDesignerProfile() DesignerProfile {
	return DesignerProfile{
		Name:             "Hadeel Mohammed",
		Tagline:          i18n.Text("Graphic Designer & Visual Artist", "مصممة جرافيك وفنانة بصرية"),
		HeroIntroduction: i18n.Text("Crafting bold visual identities and creative designs that tell compelling stories and leave lasting impressions.", "أصنع هويات بصرية جريئة وتصاميم إبداعية تروي قصصاً مؤثرة وتترك انطباعاً دائماً."),
		Biography:        i18n.Text("Hadeel Mohammed is a passionate graphic designer with a keen eye for detail and a love for creating visually stunning work.", "هديل محمد مصممة جرافيك شغوفة بالتفاصيل وبصناعة أعمال بصرية مميزة."),
		Philosophy:       i18n.Text("I believe design should be intentional, timeless, and meaningful.", "أؤمن بأن التصميم يجب أن يكون مقصوداً وخالداً وذا معنى."),
		Approach:         i18n.Text("Every project begins with a deep understanding of the client's vision and goals.", "يبدأ كل مشروع بفهم عميق لرؤية العميل وأهدافه."),
		Skills: []string{
			"Brand Identity Design",
			"Logo Design",
			"Print Design",
			"Digital Design",
			"Social Media Graphics",
			"Packaging Design",
			"Illustration",
			"Typography",
		},
		Clients: []string{
			"Local Startups",
			"Small Businesses",
			"Creative Agencies",
			"E-commerce Brands",
			"Personal Brands",
		},
		WorkExperience: []WorkExperience{
			{
				ID:          "1",
				Company:     i18n.Text("Creative Studio", "استوديو إبداعي"),
				Role:        i18n.Text("Senior Graphic Designer", "مصممة جرافيك أولى"),
				Description: i18n.Text("Leading brand identity projects and creative direction for major clients.", "قيادة مشاريع الهوية والإدارة الإبداعية لعملاء كبار."),
				StartDate:   "2022",
				EndDate:     "Present",
			},
			{
				ID:          "2",
				Company:     i18n.Text("Design Agency", "وكالة تصميم"),
				Role:        i18n.Text("Graphic Designer", "مصممة جرافيك"),
				Description: i18n.Text("Worked on various branding, print, and digital design projects.", "العمل على مشاريع هوية ومطبوعات وتصميم رقمي."),
				StartDate:   "2019",
				EndDate:     "2022",
			},
		},
		Certifications: []Certification{
			{ID: "1", Title: i18n.Text("Adobe Certified Expert", "خبيرة معتمدة من أدوبي"), Issuer: i18n.Plain("Adobe"), Year: "2023", Type: CertificationTypeCertification},
			{ID: "2", Title: i18n.Text("Best Brand Identity Design", "أفضل تصميم هوية"), Issuer: i18n.Plain("Design Awards"), Year: "2022", Type: CertificationTypeAward},
		},
		Education:    i18n.Text("Bachelor of Fine Arts in Graphic Design", "بكالوريوس الفنون الجميلة في التصميم الجرافيكي"),
		Availability: i18n.Text("Currently accepting new projects", "متاحة حالياً لمشاريع جديدة"),
		Location:     "Available Worldwide",
		Email:        "hello@hadeelmohammed.com",
		SocialLinks: map[string]string{
			"instagram": "https://instagram.com/hadeelmohammed.design",
			"linkedin":  "https://linkedin.com/in/hadeelmohammed",
			"behance":   "https://behance.net/hadeelmohammed",
			"dribbble":  "https://dribbble.com/hadeelmohammed",
		},
	}
}

// DefaultHomeSettings — главная без настроек: все тексты берутся из профиля.
func DefaultHomeSettings() HomeSettings {
	return HomeSettings{
		CTAPortfolio:  i18n.Text("View Portfolio", "عرض الأعمال"),
		AboutTitle:    i18n.Text("About Me", "من أنا"),
		LearnMore:     i18n.Text("Learn More", "اعرف المزيد"),
		FeaturedLabel: i18n.Text("Featured", "مختارات"),
		FeaturedTitle: i18n.Text("Selected Work", "أعمال مختارة"),
		ViewAll:       i18n.Text("View All", "عرض الكل"),
	}
}
