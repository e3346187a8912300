package i18n

import (
	"context"
	"errors"
	"sync"
)

// ErrNoLanguageContext возвращается, если сессия языка не установлена в контекст.
var ErrNoLanguageContext = errors.New("i18n: языковой контекст не установлен, подключите middleware Language")

// Store хранит выбор языка между сессиями.
type Store interface {
	Load() (string, bool)
	Save(lang Lang)
}

// Observer вызывается на каждом переходе, включая начальный.
type Observer func(lang Lang)

// Session — состояние языка одного клиента: en или ar.
// Наблюдатели вызываются синхронно в порядке подписки.
type Session struct {
	mu        sync.Mutex
	lang      Lang
	store     Store
	observers []Observer
	mounted   bool
}

// NewSession читает сохранённый выбор; при его отсутствии используется Default.
func NewSession(store Store) *Session {
	lang := Default
	if store != nil {
		if raw, ok := store.Load(); ok {
			lang = ParseOrDefault(raw)
		}
	}
	return &Session{lang: lang, store: store}
}

// Subscribe регистрирует наблюдателя. После Mount новый наблюдатель
// сразу получает текущее состояние.
func (s *Session) Subscribe(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	mounted := s.mounted
	lang := s.lang
	s.mu.Unlock()

	if mounted {
		fn(lang)
	}
}

// Mount выполняет начальный переход: направление и сохранение.
func (s *Session) Mount() {
	s.mu.Lock()
	s.mounted = true
	s.mu.Unlock()
	s.transition(s.Lang())
}

// Lang возвращает текущий язык.
func (s *Session) Lang() Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Dir возвращает направление текста текущего языка.
func (s *Session) Dir() string {
	return s.Lang().Dir()
}

// Toggle переключает en <-> ar и возвращает новый язык.
func (s *Session) Toggle() Lang {
	next := s.Lang().Other()
	s.transition(next)
	return next
}

// Set устанавливает язык явно.
func (s *Session) Set(lang Lang) error {
	if !lang.Valid() {
		return ErrInvalidLang
	}
	s.transition(lang)
	return nil
}

// Resolve разрешает LocalizedText для текущего языка.
func (s *Session) Resolve(t *LocalizedText) string {
	return Resolve(t, s.Lang())
}

func (s *Session) transition(lang Lang) {
	s.mu.Lock()
	s.lang = lang
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	store := s.store
	s.mu.Unlock()

	for _, fn := range observers {
		fn(lang)
	}
	if store != nil {
		store.Save(lang)
	}
}

type sessionKey struct{}

// WithSession кладёт сессию в контекст.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext достаёт сессию из контекста.
func FromContext(ctx context.Context) (*Session, error) {
	if ctx == nil {
		return nil, ErrNoLanguageContext
	}
	s, ok := ctx.Value(sessionKey{}).(*Session)
	if !ok || s == nil {
		return nil, ErrNoLanguageContext
	}
	return s, nil
}

// MustFromContext паникует без сессии: это ошибка сборки роутера, а не запроса.
func MustFromContext(ctx context.Context) *Session {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}

// MemoryStore — хранилище выбора в памяти, используется в тестах и фоновых задачах.
type MemoryStore struct {
	mu    sync.Mutex
	value string
	set   bool
}

// NewMemoryStore создаёт хранилище с начальным значением (пустая строка — нет значения).
func NewMemoryStore(initial string) *MemoryStore {
	return &MemoryStore{value: initial, set: initial != ""}
}

func (m *MemoryStore) Load() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.set
}

func (m *MemoryStore) Save(lang Lang) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = string(lang)
	m.set = true
}
