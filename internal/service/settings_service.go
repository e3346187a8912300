package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/hadeelmohammed/portfolio-backend/internal/cache"
	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
	"github.com/hadeelmohammed/portfolio-backend/internal/validation"
)

const (
	settingsCachePrefix = "site_settings:"
	settingsCacheAllKey = settingsCachePrefix + "all"
)

// SettingsRepository описывает хранилище site_settings.
type SettingsRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context) ([]models.SiteSetting, error)
	Upsert(ctx context.Context, key string, value []byte) error
	UpsertMany(ctx context.Context, values map[string][]byte) error
}

// cachedSetting различает «строки нет» и «значение null».
type cachedSetting struct {
	Found bool            `json:"found"`
	Value json.RawMessage `json:"value,omitempty"`
}

// SettingsService читает и пишет настройки сайта через кэш.
type SettingsService struct {
	repo  SettingsRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewSettingsService создаёт сервис настроек.
func NewSettingsService(repo SettingsRepository, c cache.Cache, ttl time.Duration) *SettingsService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &SettingsService{repo: repo, cache: c, ttl: ttl}
}

func settingsCacheKey(key string) string {
	return settingsCachePrefix + key
}

// Get возвращает сырое JSON-значение ключа или nil, если ключ не сохранён.
func (s *SettingsService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if !models.IsSettingsKey(key) {
		return nil, apperror.ErrUnknownSetting
	}

	entry, err := cache.GetOrSet(ctx, s.cache, settingsCacheKey(key), s.ttl, func() (cachedSetting, error) {
		raw, err := s.repo.Get(ctx, key)
		if err != nil {
			return cachedSetting{}, err
		}
		if raw == nil {
			return cachedSetting{}, nil
		}
		return cachedSetting{Found: true, Value: raw}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("settings service: get %s: %w", key, err)
	}
	if !entry.Found {
		return nil, nil
	}
	return entry.Value, nil
}

// GetAll возвращает все сохранённые ключи одной группой.
func (s *SettingsService) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	all, err := cache.GetOrSet(ctx, s.cache, settingsCacheAllKey, s.ttl, func() (map[string]json.RawMessage, error) {
		rows, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make(map[string]json.RawMessage, len(rows))
		for _, row := range rows {
			out[row.Key] = json.RawMessage(row.Value)
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("settings service: get all: %w", err)
	}
	return all, nil
}

// Set проверяет значение и сохраняет документ без потери полей.
// После успешной записи сбрасываются ключ и групповая запись кэша.
func (s *SettingsService) Set(ctx context.Context, key string, raw json.RawMessage) (json.RawMessage, error) {
	if !models.IsSettingsKey(key) {
		return nil, apperror.ErrUnknownSetting
	}

	canonical, err := canonicalizeSetting(key, raw)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, key, canonical); err != nil {
		return nil, fmt.Errorf("settings service: save %s: %w", key, err)
	}
	s.invalidate(ctx, key)

	return canonical, nil
}

// SetMany сохраняет несколько ключей атомарно.
func (s *SettingsService) SetMany(ctx context.Context, values map[string]any) error {
	encoded := make(map[string][]byte, len(values))
	for key, v := range values {
		if !models.IsSettingsKey(key) {
			return apperror.ErrUnknownSetting
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("settings service: encode %s: %w", key, err)
		}
		canonical, err := canonicalizeSetting(key, raw)
		if err != nil {
			return err
		}
		encoded[key] = canonical
	}

	if err := s.repo.UpsertMany(ctx, encoded); err != nil {
		return fmt.Errorf("settings service: save many: %w", err)
	}
	s.invalidate(ctx, "*")
	return nil
}

// Designer возвращает профиль дизайнера или значения по умолчанию.
func (s *SettingsService) Designer(ctx context.Context) (*models.DesignerProfile, error) {
	var profile models.DesignerProfile
	found, err := s.decodeInto(ctx, models.SettingsKeyDesigner, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		profile = models.DefaultDesignerProfile()
	}
	return &profile, nil
}

// Home возвращает тексты главной страницы.
func (s *SettingsService) Home(ctx context.Context) (*models.HomeSettings, error) {
	var home models.HomeSettings
	found, err := s.decodeInto(ctx, models.SettingsKeyHome, &home)
	if err != nil {
		return nil, err
	}
	if !found {
		home = models.DefaultHomeSettings()
	}
	return &home, nil
}

// Footer возвращает настройки подвала.
func (s *SettingsService) Footer(ctx context.Context) (*models.FooterSettings, error) {
	var footer models.FooterSettings
	found, err := s.decodeInto(ctx, models.SettingsKeyFooter, &footer)
	if err != nil {
		return nil, err
	}
	if !found {
		footer = models.DefaultFooterSettings()
	}
	return &footer, nil
}

// Brand возвращает настройки бренда и типографики.
func (s *SettingsService) Brand(ctx context.Context) (*models.BrandSettings, error) {
	var brand models.BrandSettings
	found, err := s.decodeInto(ctx, models.SettingsKeyBrand, &brand)
	if err != nil {
		return nil, err
	}
	if !found {
		brand = models.DefaultBrandSettings()
	}
	return &brand, nil
}

// decodeInto декодирует сохранённое значение. found=false, если строки нет.
func (s *SettingsService) decodeInto(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("settings service: decode %s: %w", key, err)
	}
	return true, nil
}

// invalidate сбрасывает всю группу site_settings: ключ, сводную запись и производные.
func (s *SettingsService) invalidate(ctx context.Context, key string) {
	if err := s.cache.InvalidateByPrefix(ctx, settingsCachePrefix); err != nil && logger.Log != nil {
		logger.Log.WithError(err).WithField("key", key).Warn("settings service: не удалось сбросить кэш")
	}
}

// canonicalizeSetting проверяет значение по типизированной структуре, но сохраняет
// документ в том виде, в каком он пришёл. Сервис дописывает только поля, которые
// заполняет сам: обрезанное имя, id записей опыта и наград, тип награды.
func canonicalizeSetting(key string, raw json.RawMessage) ([]byte, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, apperror.Validation(map[string]string{"value": "value is required"})
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, decodeError(err)
	}
	if doc == nil {
		return nil, apperror.Validation(map[string]string{"value": "value must be a JSON object"})
	}

	var fields map[string]string
	switch key {
	case models.SettingsKeyDesigner:
		var v models.DesignerProfile
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, decodeError(err)
		}
		if fields = validateDesigner(&v); len(fields) == 0 {
			if err := patchDesigner(doc, &v); err != nil {
				return nil, err
			}
		}
	case models.SettingsKeyHome:
		var v models.HomeSettings
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, decodeError(err)
		}
		fields = collectErrors(map[string]error{
			"heroImage": validation.ValidateURL("heroImage", v.HeroImage),
		})
	case models.SettingsKeyFooter:
		var v models.FooterSettings
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, decodeError(err)
		}
		fields = validateFooter(&v)
	case models.SettingsKeyBrand:
		var v models.BrandSettings
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, decodeError(err)
		}
		fields = validateBrand(&v)
	default:
		return nil, apperror.ErrUnknownSetting
	}

	if len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("settings service: encode %s: %w", key, err)
	}
	return out, nil
}

// patchDesigner переносит в документ значения, выставленные validateDesigner.
func patchDesigner(doc map[string]json.RawMessage, p *models.DesignerProfile) error {
	if err := setField(doc, "name", p.Name); err != nil {
		return err
	}
	if err := patchEntries(doc, "workExperience", func(i int, entry map[string]json.RawMessage) error {
		return setField(entry, "id", p.WorkExperience[i].ID)
	}); err != nil {
		return err
	}
	return patchEntries(doc, "certifications", func(i int, entry map[string]json.RawMessage) error {
		if err := setField(entry, "id", p.Certifications[i].ID); err != nil {
			return err
		}
		return setField(entry, "type", p.Certifications[i].Type)
	})
}

// patchEntries вызывает fill для каждого элемента списка field, остальные поля элемента не трогает.
func patchEntries(doc map[string]json.RawMessage, field string, fill func(i int, entry map[string]json.RawMessage) error) error {
	raw, ok := doc[field]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return decodeError(err)
	}
	for i := range entries {
		if entries[i] == nil {
			entries[i] = map[string]json.RawMessage{}
		}
		if err := fill(i, entries[i]); err != nil {
			return err
		}
	}

	out, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("settings service: encode %s: %w", field, err)
	}
	doc[field] = out
	return nil
}

func setField(doc map[string]json.RawMessage, field string, value any) error {
	out, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("settings service: encode %s: %w", field, err)
	}
	doc[field] = out
	return nil
}

func decodeError(err error) error {
	return apperror.Wrap(err, apperror.ErrCodeBadRequest, "invalid settings payload")
}

func validateDesigner(p *models.DesignerProfile) map[string]string {
	p.Name = strings.TrimSpace(p.Name)
	errs := map[string]error{
		"name":          validation.ValidateNonEmpty("name", p.Name),
		"portraitImage": validation.ValidateURL("portraitImage", p.PortraitImage),
	}
	if p.Email != "" {
		errs["email"] = validation.ValidateEmail(p.Email)
	}
	for platform, link := range p.SocialLinks {
		if !isSocialPlatform(platform) {
			errs["socialLinks."+platform] = fmt.Errorf("unknown platform %s", platform)
			continue
		}
		errs["socialLinks."+platform] = validation.ValidateURL(platform, link)
	}
	for i := range p.WorkExperience {
		// у новых записей из формы id ещё нет
		if p.WorkExperience[i].ID == "" {
			p.WorkExperience[i].ID = uuid.NewString()
		}
	}
	for i := range p.Certifications {
		c := &p.Certifications[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Type == "" {
			c.Type = models.CertificationTypeCertification
		}
		if c.Type != models.CertificationTypeCertification && c.Type != models.CertificationTypeAward {
			errs[fmt.Sprintf("certifications.%d.type", i)] = fmt.Errorf("type must be certification or award")
		}
	}
	return collectErrors(errs)
}

func validateFooter(f *models.FooterSettings) map[string]string {
	errs := map[string]error{}
	for i, link := range f.SocialLinks {
		if !isSocialPlatform(link.Platform) {
			errs[fmt.Sprintf("socialLinks.%d.platform", i)] = fmt.Errorf("unknown platform %s", link.Platform)
		}
		errs[fmt.Sprintf("socialLinks.%d.url", i)] = validation.ValidateURL("url", link.URL)
	}
	for i, link := range f.NavigationLinks {
		if !strings.HasPrefix(link.Path, "/") {
			errs[fmt.Sprintf("navigationLinks.%d.path", i)] = fmt.Errorf("path must start with /")
		}
	}
	return collectErrors(errs)
}

func validateBrand(b *models.BrandSettings) map[string]string {
	errs := map[string]error{
		"logoUrl": validation.ValidateURL("logoUrl", b.LogoURL),
	}
	for field, size := range map[string]string{"headerLogoSize": b.HeaderLogoSize, "footerLogoSize": b.FooterLogoSize} {
		if size == "" {
			continue
		}
		if _, ok := models.ValidLogoSizes[size]; !ok {
			errs[field] = fmt.Errorf("%s must be small, medium or large", field)
		}
	}
	if b.UseLogo && strings.TrimSpace(b.LogoURL) == "" {
		errs["logoUrl"] = fmt.Errorf("logoUrl is required when useLogo is enabled")
	}
	return collectErrors(errs)
}

func isSocialPlatform(platform string) bool {
	for _, p := range models.SocialPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

func collectErrors(errs map[string]error) map[string]string {
	fields := map[string]string{}
	for field, err := range errs {
		if err != nil {
			fields[field] = err.Error()
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
