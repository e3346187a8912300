package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadeelmohammed/portfolio-backend/internal/cache"
	"github.com/hadeelmohammed/portfolio-backend/internal/http/middleware"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository"
	"github.com/hadeelmohammed/portfolio-backend/internal/service"
)

// fakeProjects — минимальная реализация service.ProjectRepository на map.
type fakeProjects struct {
	mu    sync.Mutex
	items map[uuid.UUID]models.Project
	seq   int
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{items: map[uuid.UUID]models.Project{}}
}

func (f *fakeProjects) all() []models.Project {
	out := make([]models.Project, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeProjects) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Project{}
	for _, p := range f.all() {
		if filter.Category == "" || filter.Category == "all" || p.Category == filter.Category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjects) ListFeatured(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Project{}
	for _, p := range f.all() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjects) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProjects) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	return &p, nil
}

func (f *fakeProjects) SlugExists(ctx context.Context, slug string) (bool, error) {
	p, _ := f.GetBySlug(ctx, slug)
	return p != nil, nil
}

func (f *fakeProjects) Create(ctx context.Context, p *models.Project) error {
	if exists, _ := f.SlugExists(ctx, p.Slug); exists {
		return repository.ErrSlugTaken
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	p.ID = uuid.New()
	p.CreatedAt = time.Date(2024, 1, 1, f.seq, 0, 0, 0, time.UTC)
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProjects) Update(ctx context.Context, p *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[p.ID]; !ok {
		return repository.ErrProjectNotFound
	}
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProjects) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeProjects) ToggleFeatured(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	p.Featured = !p.Featured
	f.items[id] = p
	return &p, nil
}

func (f *fakeProjects) Counts(ctx context.Context) (*repository.ProjectCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := &repository.ProjectCounts{ByCategory: map[string]int{}}
	for _, p := range f.items {
		counts.Total++
		if p.Featured {
			counts.Featured++
		}
		counts.ByCategory[p.Category]++
	}
	return counts, nil
}

// fakeMessages — входящие заявки в памяти.
type fakeMessages struct {
	mu    sync.Mutex
	items []models.ContactMessage
}

func (f *fakeMessages) Create(ctx context.Context, msg *models.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()
	f.items = append([]models.ContactMessage{*msg}, f.items...)
	return nil
}

func (f *fakeMessages) List(ctx context.Context) ([]models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ContactMessage{}, f.items...), nil
}

func (f *fakeMessages) find(id uuid.UUID) int {
	for i := range f.items {
		if f.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeMessages) GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(id)
	if i < 0 {
		return nil, repository.ErrMessageNotFound
	}
	msg := f.items[i]
	return &msg, nil
}

func (f *fakeMessages) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(id)
	if i < 0 {
		return repository.ErrMessageNotFound
	}
	f.items[i].IsRead = true
	return nil
}

func (f *fakeMessages) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(id)
	if i < 0 {
		return repository.ErrMessageNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

func (f *fakeMessages) CountUnread(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.items {
		if !m.IsRead {
			n++
		}
	}
	return n, nil
}

// fakeSettings — строки site_settings в памяти.
type fakeSettings struct {
	mu   sync.Mutex
	rows map[string][]byte
}

func (f *fakeSettings) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[key], nil
}

func (f *fakeSettings) List(ctx context.Context) ([]models.SiteSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.SiteSetting{}
	for k, v := range f.rows {
		out = append(out, models.SiteSetting{Key: k, Value: v})
	}
	return out, nil
}

func (f *fakeSettings) Upsert(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[key] = value
	return nil
}

func (f *fakeSettings) UpsertMany(ctx context.Context, values map[string][]byte) error {
	for k, v := range values {
		_ = f.Upsert(ctx, k, v)
	}
	return nil
}

type testServer struct {
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := cache.NewMemory(time.Minute)
	t.Cleanup(func() { _ = mem.Close() })

	settings := service.NewSettingsService(&fakeSettings{rows: map[string][]byte{}}, mem, time.Minute)
	projects := service.NewProjectService(newFakeProjects())
	contacts := service.NewContactService(&fakeMessages{}, nil, nil)
	pages := service.NewPageService(settings, projects, contacts)

	settingsHandler := NewSettingsHandler(settings)
	projectHandler := NewProjectHandler(projects)
	contactHandler := NewContactHandler(contacts)
	languageHandler := NewLanguageHandler()
	pageHandler := NewPageHandler(pages)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api", middleware.Language(false))
	api.GET("/language", languageHandler.Get)
	api.POST("/language/toggle", languageHandler.Toggle)
	api.PUT("/language", languageHandler.Set)
	api.GET("/settings/:key", settingsHandler.Get)
	api.GET("/projects/:slug", projectHandler.GetBySlug)
	api.POST("/contact", contactHandler.Submit)
	api.GET("/pages/layout", pageHandler.Layout)

	admin := api.Group("/admin", func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, uuid.New())
		c.Next()
	})
	admin.PUT("/settings/:key", settingsHandler.Put)
	admin.POST("/projects", projectHandler.Create)
	admin.PUT("/projects/:id", projectHandler.Update)
	admin.GET("/messages", contactHandler.List)
	admin.GET("/messages/unread/count", contactHandler.UnreadCount)
	admin.GET("/messages/:id", contactHandler.Get)

	return &testServer{engine: r}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestLanguageHandler_ToggleRoundTrip(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/language", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"lang":"en","dir":"ltr"}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/language/toggle", nil)
	assert.JSONEq(t, `{"lang":"ar","dir":"rtl"}`, w.Body.String())
	assert.Equal(t, "rtl", w.Header().Get(middleware.HeaderTextDirection))

	w = s.do(t, http.MethodPost, "/api/language/toggle", nil, &http.Cookie{Name: middleware.LanguageCookie, Value: "ar"})
	assert.JSONEq(t, `{"lang":"en","dir":"ltr"}`, w.Body.String())
}

func TestLanguageHandler_SetRejectsUnknown(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPut, "/api/language", map[string]string{"lang": "fr"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/language", map[string]string{"lang": "ar-SA"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"lang":"ar","dir":"rtl"}`, w.Body.String())
}

func TestProjectHandler_CreateAndReadLocalized(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/projects/bloom-coffee-co", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/admin/projects", map[string]any{
		"category":       "branding",
		"title_en":       "Bloom Coffee Co.",
		"title_ar":       "بلوم كوفي",
		"description_en": "Brand identity",
		"tools":          []string{"Illustrator"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Project](t, w)
	assert.Equal(t, "bloom-coffee-co", created.Slug)

	w = s.do(t, http.MethodGet, "/api/projects/bloom-coffee-co?lang=ar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[models.ProjectView](t, w)
	assert.Equal(t, "بلوم كوفي", view.Title)
	// описания на арабском нет, берётся английское
	assert.Equal(t, "Brand identity", view.Description)
	assert.Equal(t, []string{}, view.GalleryImages)

	// редактирование заголовка не меняет slug
	w = s.do(t, http.MethodPut, "/api/admin/projects/"+created.ID.String(), map[string]any{
		"category": "branding",
		"title_en": "Bloom Roastery",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "bloom-coffee-co", decode[models.Project](t, w).Slug)
}

func TestProjectHandler_ValidationErrors(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/admin/projects", map[string]any{"category": "web"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[middleware.ErrorResponse](t, w)
	assert.Contains(t, body.Errors, "category")
	assert.Contains(t, body.Errors, "title_en")

	w = s.do(t, http.MethodPost, "/api/admin/projects", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/admin/projects/not-a-uuid", map[string]any{"category": "branding"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandler_InboxFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/contact", map[string]string{
		"name":         "A",
		"email":        "not-an-email",
		"project_type": "branding",
		"message":      "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decode[middleware.ErrorResponse](t, w).Errors
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "message")

	w = s.do(t, http.MethodPost, "/api/contact", map[string]string{
		"name":         "  Sara Ali ",
		"email":        "sara@example.com",
		"project_type": "packaging",
		"message":      "I need packaging for a new tea brand.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/admin/messages/unread/count", nil)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/admin/messages", nil)
	list := decode[struct {
		Items []models.ContactMessage `json:"items"`
		Total int                     `json:"total"`
	}](t, w)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Sara Ali", list.Items[0].Name)

	w = s.do(t, http.MethodGet, "/api/admin/messages/"+list.Items[0].ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.ContactMessage](t, w).IsRead)

	w = s.do(t, http.MethodGet, "/api/admin/messages/unread/count", nil)
	assert.JSONEq(t, `{"count":0}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/admin/messages/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsHandler_PutAndGet(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/settings/home_settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"key":"home_settings","value":null}`, w.Body.String())

	w = s.do(t, http.MethodPut, "/api/admin/settings/theme", `{"a":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/admin/settings/footer_settings", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/admin/settings/footer_settings", `{"copyrightText":"© Hadeel Studio","navigationLinks":[],"socialLinks":[]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/pages/layout?lang=ar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	layout := decode[service.LayoutView](t, w)
	assert.Equal(t, "© Hadeel Studio", layout.Footer.Copyright)
	assert.Len(t, layout.Footer.Navigation, 4)
	assert.Equal(t, "rtl", layout.Dir)
}
