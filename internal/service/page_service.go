package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hadeelmohammed/portfolio-backend/internal/i18n"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository"
	"github.com/hadeelmohammed/portfolio-backend/internal/typography"
)

// PageMeta — язык и направление, в которых собрана страница.
type PageMeta struct {
	Lang string `json:"lang"`
	Dir  string `json:"dir"`
}

func newPageMeta(lang i18n.Lang) PageMeta {
	return PageMeta{Lang: lang.String(), Dir: lang.Dir()}
}

// CategoryOption — пункт фильтра или выпадающего списка категорий.
type CategoryOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// HomePage — данные главной страницы.
type HomePage struct {
	PageMeta
	Hero     HomeHero     `json:"hero"`
	About    HomeAbout    `json:"about"`
	Featured HomeFeatured `json:"featured"`
}

type HomeHero struct {
	Image        string `json:"image"`
	Badge        string `json:"badge"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Introduction string `json:"introduction"`
	Quote        string `json:"quote"`
	CTAPortfolio string `json:"cta_portfolio"`
}

type HomeAbout struct {
	Title     string `json:"title"`
	Biography string `json:"biography"`
	LearnMore string `json:"learn_more"`
	Portrait  string `json:"portrait"`
}

type HomeFeatured struct {
	Label    string               `json:"label"`
	Title    string               `json:"title"`
	ViewAll  string               `json:"view_all"`
	Projects []models.ProjectView `json:"projects"`
}

// PortfolioPage — список работ с фильтром категорий.
type PortfolioPage struct {
	PageMeta
	Category   string               `json:"category"`
	Categories []CategoryOption     `json:"categories"`
	Projects   []models.ProjectView `json:"projects"`
}

// ProjectPage — страница одного проекта.
type ProjectPage struct {
	PageMeta
	Project       models.ProjectView  `json:"project"`
	CategoryLabel string              `json:"category_label"`
	Prev          *models.ProjectView `json:"prev"`
	Next          *models.ProjectView `json:"next"`
	Labels        map[string]string   `json:"labels"`
}

// AboutPage — страница «Обо мне».
type AboutPage struct {
	PageMeta
	Name           string              `json:"name"`
	Tagline        string              `json:"tagline"`
	Biography      string              `json:"biography"`
	Philosophy     string              `json:"philosophy"`
	Approach       string              `json:"approach"`
	Portrait       string              `json:"portrait"`
	Skills         []string            `json:"skills"`
	Clients        []string            `json:"clients"`
	Experience     []ExperienceView    `json:"experience"`
	Awards         []CertificationView `json:"awards"`
	Certifications []CertificationView `json:"certifications"`
	Education      string              `json:"education"`
	Availability   string              `json:"availability"`
	SocialLinks    []models.SocialLink `json:"social_links"`
	Labels         map[string]string   `json:"labels"`
}

type ExperienceView struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type CertificationView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// ContactPage — контакты и варианты типа проекта для формы.
type ContactPage struct {
	PageMeta
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Location     string            `json:"location"`
	Availability string            `json:"availability"`
	ProjectTypes []CategoryOption  `json:"project_types"`
	Labels       map[string]string `json:"labels"`
}

// LayoutView — общие части всех страниц: шапка, подвал, бренд.
type LayoutView struct {
	PageMeta
	Brand      BrandView  `json:"brand"`
	Navigation []NavItem  `json:"navigation"`
	Footer     FooterView `json:"footer"`
}

type BrandView struct {
	Name           string                  `json:"name"`
	UseLogo        bool                    `json:"use_logo"`
	LogoURL        string                  `json:"logo_url"`
	HeaderLogoSize string                  `json:"header_logo_size"`
	FooterLogoSize string                  `json:"footer_logo_size"`
	CSSVariables   typography.CSSVariables `json:"css_variables"`
}

type NavItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type FooterView struct {
	Copyright       string              `json:"copyright"`
	ShowNavigation  bool                `json:"show_navigation"`
	ShowSocialLinks bool                `json:"show_social_links"`
	Navigation      []NavItem           `json:"navigation"`
	SocialLinks     []models.SocialLink `json:"social_links"`
}

// Dashboard — сводка для главной страницы админки.
type Dashboard struct {
	Projects       *repository.ProjectCounts `json:"projects"`
	UnreadMessages int                       `json:"unread_messages"`
}

// PageService собирает данные страниц на языке запроса.
type PageService struct {
	settings *SettingsService
	projects *ProjectService
	contacts *ContactService
	now      func() time.Time
}

// NewPageService создаёт сервис страниц.
func NewPageService(settings *SettingsService, projects *ProjectService, contacts *ContactService) *PageService {
	return &PageService{settings: settings, projects: projects, contacts: contacts, now: time.Now}
}

// Home собирает главную страницу.
func (s *PageService) Home(ctx context.Context, lang i18n.Lang) (*HomePage, error) {
	designer, err := s.settings.Designer(ctx)
	if err != nil {
		return nil, err
	}
	home, err := s.settings.Home(ctx)
	if err != nil {
		return nil, err
	}
	featured, err := s.projects.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	defaults := models.DefaultHomeSettings()
	pick := func(v, def *i18n.LocalizedText) string {
		if text := i18n.Resolve(v, lang); text != "" {
			return text
		}
		return i18n.Resolve(def, lang)
	}

	title := i18n.Resolve(home.HeroTitle, lang)
	if title == "" {
		title = designer.Name
	}
	subtitle := i18n.Resolve(home.HeroSubtitle, lang)
	if subtitle == "" {
		subtitle = i18n.Resolve(designer.Tagline, lang)
	}
	heroImage := home.HeroImage
	if heroImage == "" {
		heroImage = designer.PortraitImage
	}

	return &HomePage{
		PageMeta: newPageMeta(lang),
		Hero: HomeHero{
			Image:        heroImage,
			Badge:        i18n.Resolve(home.HeroBadge, lang),
			Title:        title,
			Subtitle:     subtitle,
			Introduction: i18n.Resolve(designer.HeroIntroduction, lang),
			Quote:        i18n.Resolve(designer.HeroQuote, lang),
			CTAPortfolio: pick(home.CTAPortfolio, defaults.CTAPortfolio),
		},
		About: HomeAbout{
			Title:     pick(home.AboutTitle, defaults.AboutTitle),
			Biography: i18n.Resolve(designer.Biography, lang),
			LearnMore: pick(home.LearnMore, defaults.LearnMore),
			Portrait:  designer.PortraitImage,
		},
		Featured: HomeFeatured{
			Label:    pick(home.FeaturedLabel, defaults.FeaturedLabel),
			Title:    pick(home.FeaturedTitle, defaults.FeaturedTitle),
			ViewAll:  pick(home.ViewAll, defaults.ViewAll),
			Projects: LocalizeAll(featured, lang),
		},
	}, nil
}

// Portfolio возвращает работы с необязательным фильтром категории.
func (s *PageService) Portfolio(ctx context.Context, lang i18n.Lang, category string) (*PortfolioPage, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = "all"
	}

	projects, err := s.projects.List(ctx, models.ProjectFilter{Category: category})
	if err != nil {
		return nil, err
	}

	options := []CategoryOption{{Key: "all", Label: i18n.Resolve(models.AllWorkLabel, lang)}}
	options = append(options, categoryOptions(lang)...)

	return &PortfolioPage{
		PageMeta:   newPageMeta(lang),
		Category:   category,
		Categories: options,
		Projects:   LocalizeAll(projects, lang),
	}, nil
}

// Project собирает страницу проекта с соседями и подписями.
func (s *PageService) Project(ctx context.Context, lang i18n.Lang, projectSlug string) (*ProjectPage, error) {
	project, err := s.projects.GetBySlug(ctx, projectSlug)
	if err != nil {
		return nil, err
	}
	adjacent, err := s.projects.Adjacent(ctx, projectSlug, lang)
	if err != nil {
		return nil, err
	}

	return &ProjectPage{
		PageMeta:      newPageMeta(lang),
		Project:       Localize(project, lang),
		CategoryLabel: i18n.Resolve(models.CategoryLabel(project.Category), lang),
		Prev:          adjacent.Prev,
		Next:          adjacent.Next,
		Labels:        models.ProjectDetailLabels.Resolve(lang),
	}, nil
}

// About собирает страницу «Обо мне»; награды и сертификаты разделены по типу.
func (s *PageService) About(ctx context.Context, lang i18n.Lang) (*AboutPage, error) {
	designer, err := s.settings.Designer(ctx)
	if err != nil {
		return nil, err
	}

	page := &AboutPage{
		PageMeta:       newPageMeta(lang),
		Name:           designer.Name,
		Tagline:        i18n.Resolve(designer.Tagline, lang),
		Biography:      i18n.Resolve(designer.Biography, lang),
		Philosophy:     i18n.Resolve(designer.Philosophy, lang),
		Approach:       i18n.Resolve(designer.Approach, lang),
		Portrait:       designer.PortraitImage,
		Skills:         nonNil(designer.Skills),
		Clients:        nonNil(designer.Clients),
		Experience:     make([]ExperienceView, 0, len(designer.WorkExperience)),
		Awards:         []CertificationView{},
		Certifications: []CertificationView{},
		Education:      i18n.Resolve(designer.Education, lang),
		Availability:   i18n.Resolve(designer.Availability, lang),
		SocialLinks:    orderedSocialLinks(designer.SocialLinks),
		Labels:         models.AboutLabels.Resolve(lang),
	}

	for _, w := range designer.WorkExperience {
		page.Experience = append(page.Experience, ExperienceView{
			ID:          w.ID,
			Company:     i18n.Resolve(w.Company, lang),
			Role:        i18n.Resolve(w.Role, lang),
			Description: i18n.Resolve(w.Description, lang),
			StartDate:   w.StartDate,
			EndDate:     w.EndDate,
		})
	}

	for _, c := range designer.Certifications {
		view := CertificationView{
			ID:     c.ID,
			Title:  i18n.Resolve(c.Title, lang),
			Issuer: i18n.Resolve(c.Issuer, lang),
			Year:   c.Year,
		}
		if c.Type == models.CertificationTypeAward {
			page.Awards = append(page.Awards, view)
		} else {
			page.Certifications = append(page.Certifications, view)
		}
	}

	return page, nil
}

// Contact возвращает контакты и варианты типа проекта.
func (s *PageService) Contact(ctx context.Context, lang i18n.Lang) (*ContactPage, error) {
	designer, err := s.settings.Designer(ctx)
	if err != nil {
		return nil, err
	}

	return &ContactPage{
		PageMeta:     newPageMeta(lang),
		Name:         designer.Name,
		Email:        designer.Email,
		Phone:        designer.Phone,
		Location:     designer.Location,
		Availability: i18n.Resolve(designer.Availability, lang),
		ProjectTypes: categoryOptions(lang),
		Labels:       models.ContactLabels.Resolve(lang),
	}, nil
}

// Layout собирает шапку, подвал и CSS-переменные бренда.
func (s *PageService) Layout(ctx context.Context, lang i18n.Lang) (*LayoutView, error) {
	designer, err := s.settings.Designer(ctx)
	if err != nil {
		return nil, err
	}
	footer, err := s.settings.Footer(ctx)
	if err != nil {
		return nil, err
	}
	brand, err := s.settings.Brand(ctx)
	if err != nil {
		return nil, err
	}

	return &LayoutView{
		PageMeta: newPageMeta(lang),
		Brand: BrandView{
			Name:           designer.Name,
			UseLogo:        brand.UseLogo && brand.LogoURL != "",
			LogoURL:        brand.LogoURL,
			HeaderLogoSize: logoSizeOrDefault(brand.HeaderLogoSize),
			FooterLogoSize: logoSizeOrDefault(brand.FooterLogoSize),
			CSSVariables:   typography.Resolve(brand.TypographyState()),
		},
		Navigation: navItems(models.DefaultNavigation(), lang),
		Footer:     s.footerView(footer, designer, lang),
	}, nil
}

// Dashboard возвращает сводку для админки.
func (s *PageService) Dashboard(ctx context.Context) (*Dashboard, error) {
	counts, err := s.projects.Counts(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := s.contacts.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Projects: counts, UnreadMessages: unread}, nil
}

func (s *PageService) footerView(footer *models.FooterSettings, designer *models.DesignerProfile, lang i18n.Lang) FooterView {
	copyright := footer.CopyrightText
	if copyright == "" {
		copyright = fmt.Sprintf("© %d %s", s.now().Year(), designer.Name)
	}

	links := footer.NavigationLinks
	if len(links) == 0 {
		links = models.DefaultNavigation()
	}

	social := footer.SocialLinks
	if len(social) == 0 {
		social = orderedSocialLinks(designer.SocialLinks)
	}

	return FooterView{
		Copyright:       copyright,
		ShowNavigation:  boolOrTrue(footer.ShowNavigation),
		ShowSocialLinks: boolOrTrue(footer.ShowSocialLinks),
		Navigation:      navItems(links, lang),
		SocialLinks:     social,
	}
}

// orderedSocialLinks превращает map соцсетей в список в порядке SocialPlatforms,
// пустые ссылки пропускаются.
func orderedSocialLinks(links map[string]string) []models.SocialLink {
	out := []models.SocialLink{}
	for _, platform := range models.SocialPlatforms {
		if url := strings.TrimSpace(links[platform]); url != "" {
			out = append(out, models.SocialLink{Platform: platform, URL: url})
		}
	}
	return out
}

func categoryOptions(lang i18n.Lang) []CategoryOption {
	options := make([]CategoryOption, 0, len(models.Categories))
	for _, key := range models.Categories {
		options = append(options, CategoryOption{Key: key, Label: i18n.Resolve(models.CategoryLabel(key), lang)})
	}
	return options
}

func navItems(links []models.NavLink, lang i18n.Lang) []NavItem {
	items := make([]NavItem, 0, len(links))
	for _, l := range links {
		items = append(items, NavItem{Name: i18n.Resolve(l.Name, lang), Path: l.Path})
	}
	return items
}

func logoSizeOrDefault(size string) string {
	if _, ok := models.ValidLogoSizes[size]; ok {
		return size
	}
	return models.LogoSizeMedium
}

func boolOrTrue(v *bool) bool {
	return v == nil || *v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
