package models

import (
	"time"

	"github.com/hadeelmohammed/portfolio-backend/internal/i18n"
	"github.com/hadeelmohammed/portfolio-backend/internal/typography"
)

// Ключи таблицы site_settings.
const (
	SettingsKeyDesigner = "designer_info"
	SettingsKeyHome     = "home_settings"
	SettingsKeyFooter   = "footer_settings"
	SettingsKeyBrand    = "brand_settings"
)

// SettingsKeys — все известные группы настроек.
var SettingsKeys = []string{
	SettingsKeyDesigner,
	SettingsKeyHome,
	SettingsKeyFooter,
	SettingsKeyBrand,
}

// IsSettingsKey проверяет, что ключ входит в известный набор.
func IsSettingsKey(key string) bool {
	for _, k := range SettingsKeys {
		if k == key {
			return true
		}
	}
	return false
}

// SiteSetting — строка таблицы site_settings.
type SiteSetting struct {
	Key       string    `db:"key" json:"key"`
	Value     []byte    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DesignerProfile — единственная запись designer_info.
type DesignerProfile struct {
	Name             string              `json:"name"`
	Tagline          *i18n.LocalizedText `json:"tagline,omitempty"`
	HeroIntroduction *i18n.LocalizedText `json:"heroIntroduction,omitempty"`
	Biography        *i18n.LocalizedText `json:"biography,omitempty"`
	Philosophy       *i18n.LocalizedText `json:"philosophy,omitempty"`
	Approach         *i18n.LocalizedText `json:"approach,omitempty"`
	HeroQuote        *i18n.LocalizedText `json:"heroQuote,omitempty"`
	Skills           []string            `json:"skills"`
	Clients          []string            `json:"clients"`
	WorkExperience   []WorkExperience    `json:"workExperience"`
	Certifications   []Certification     `json:"certifications"`
	Education        *i18n.LocalizedText `json:"education,omitempty"`
	Availability     *i18n.LocalizedText `json:"availability,omitempty"`
	Location         string              `json:"location"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	SocialLinks      map[string]string   `json:"socialLinks"`
	PortraitImage    string              `json:"portraitImage"`
}

// WorkExperience — место работы; даты хранятся строками для отображения.
type WorkExperience struct {
	ID          string              `json:"id"`
	Company     *i18n.LocalizedText `json:"company,omitempty"`
	Role        *i18n.LocalizedText `json:"role,omitempty"`
	Description *i18n.LocalizedText `json:"description,omitempty"`
	StartDate   string              `json:"startDate"`
	EndDate     string              `json:"endDate"`
}

// Certification — сертификат или награда.
type Certification struct {
	ID     string              `json:"id"`
	Title  *i18n.LocalizedText `json:"title,omitempty"`
	Issuer *i18n.LocalizedText `json:"issuer,omitempty"`
	Year   string              `json:"year"`
	Type   string              `json:"type"`
}

// HomeSettings — тексты главной страницы, каждое поле необязательно.
type HomeSettings struct {
	HeroImage     string              `json:"heroImage"`
	HeroBadge     *i18n.LocalizedText `json:"heroBadge,omitempty"`
	HeroTitle     *i18n.LocalizedText `json:"heroTitle,omitempty"`
	HeroSubtitle  *i18n.LocalizedText `json:"heroSubtitle,omitempty"`
	CTAPortfolio  *i18n.LocalizedText `json:"ctaPortfolio,omitempty"`
	AboutTitle    *i18n.LocalizedText `json:"aboutTitle,omitempty"`
	LearnMore     *i18n.LocalizedText `json:"learnMore,omitempty"`
	FeaturedLabel *i18n.LocalizedText `json:"featuredLabel,omitempty"`
	FeaturedTitle *i18n.LocalizedText `json:"featuredTitle,omitempty"`
	ViewAll       *i18n.LocalizedText `json:"viewAll,omitempty"`
}

// NavLink — пункт навигации; name может быть строкой или парой {en, ar}.
type NavLink struct {
	Name *i18n.LocalizedText `json:"name,omitempty"`
	Path string              `json:"path"`
}

// SocialLink — ссылка на соцсеть в футере.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// FooterSettings — настройки подвала сайта.
type FooterSettings struct {
	CopyrightText   string       `json:"copyrightText"`
	ShowNavigation  *bool        `json:"showNavigation,omitempty"`
	ShowSocialLinks *bool        `json:"showSocialLinks,omitempty"`
	NavigationLinks []NavLink    `json:"navigationLinks"`
	SocialLinks     []SocialLink `json:"socialLinks"`
}

// BrandSettings — логотип и типографика.
type BrandSettings struct {
	LogoURL        string            `json:"logoUrl"`
	UseLogo        bool              `json:"useLogo"`
	HeaderLogoSize string            `json:"headerLogoSize"`
	FooterLogoSize string            `json:"footerLogoSize"`
	Typography     *typography.State `json:"typography,omitempty"`
}

// DefaultNavigation — навигация по умолчанию для шапки и подвала.
func DefaultNavigation() []NavLink {
	return []NavLink{
		{Name: i18n.Text("Home", "الرئيسية"), Path: "/"},
		{Name: i18n.Text("Portfolio", "الأعمال"), Path: "/portfolio"},
		{Name: i18n.Text("About", "من أنا"), Path: "/about"},
		{Name: i18n.Text("Contact", "تواصل"), Path: "/contact"},
	}
}

// DefaultFooterSettings возвращает настройки подвала для пустой базы.
func DefaultFooterSettings() FooterSettings {
	show := true
	showSocial := true
	return FooterSettings{
		ShowNavigation:  &show,
		ShowSocialLinks: &showSocial,
		NavigationLinks: DefaultNavigation(),
		SocialLinks:     []SocialLink{},
	}
}

// DefaultBrandSettings возвращает настройки бренда для пустой базы.
func DefaultBrandSettings() BrandSettings {
	st := typography.Default()
	return BrandSettings{
		HeaderLogoSize: LogoSizeMedium,
		FooterLogoSize: LogoSizeMedium,
		Typography:     &st,
	}
}

// TypographyState возвращает состояние типографики или значение по умолчанию.
func (b *BrandSettings) TypographyState() typography.State {
	if b == nil || b.Typography == nil {
		return typography.Default()
	}
	return *b.Typography
}
