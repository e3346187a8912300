package models

// Категории проектов, они же типы запросов в форме обратной связи.
const (
	CategoryBranding    = "branding"
	CategoryPrint       = "print"
	CategorySocialMedia = "social-media"
	CategoryAI          = "ai"
	CategoryPackaging   = "packaging"
	CategoryMerchandise = "merchandise"
	CategoryOthers      = "others"
)

// Categories в порядке отображения на сайте.
var Categories = []string{
	CategoryBranding,
	CategoryPrint,
	CategorySocialMedia,
	CategoryAI,
	CategoryPackaging,
	CategoryMerchandise,
	CategoryOthers,
}

// ValidCategories список валидных категорий
var ValidCategories = map[string]struct{}{
	CategoryBranding:    {},
	CategoryPrint:       {},
	CategorySocialMedia: {},
	CategoryAI:          {},
	CategoryPackaging:   {},
	CategoryMerchandise: {},
	CategoryOthers:      {},
}

// Роли пользователей.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Размеры логотипа.
const (
	LogoSizeSmall  = "small"
	LogoSizeMedium = "medium"
	LogoSizeLarge  = "large"
)

// ValidLogoSizes список валидных размеров логотипа
var ValidLogoSizes = map[string]struct{}{
	LogoSizeSmall:  {},
	LogoSizeMedium: {},
	LogoSizeLarge:  {},
}

// Типы записей в блоке наград.
const (
	CertificationTypeCertification = "certification"
	CertificationTypeAward         = "award"
)

// SocialPlatforms — закрытый список соцсетей в порядке вывода.
var SocialPlatforms = []string{
	"instagram",
	"linkedin",
	"behance",
	"dribbble",
	"twitter",
	"youtube",
	"facebook",
	"tiktok",
	"pinterest",
	"github",
}
