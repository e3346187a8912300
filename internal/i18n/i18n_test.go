package i18n

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   *LocalizedText
		lang Lang
		want string
	}{
		{"nil", nil, EN, ""},
		{"preferred", Text("Hello", "مرحبا"), AR, "مرحبا"},
		{"fallback to en", Text("Hello", ""), AR, "Hello"},
		{"fallback to ar", Text("", "مرحبا"), EN, "مرحبا"},
		{"both empty", Text("", ""), AR, ""},
		{"plain en", Plain("Legacy"), EN, "Legacy"},
		{"plain ar", Plain("Legacy"), AR, "Legacy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.in, tt.lang))
		})
	}
}

func TestLocalizedText_UnmarshalShapes(t *testing.T) {
	var doc struct {
		Legacy  *LocalizedText `json:"legacy"`
		Pair    *LocalizedText `json:"pair"`
		Null    *LocalizedText `json:"null"`
		Missing *LocalizedText `json:"missing,omitempty"`
	}
	raw := `{"legacy":"Old title","pair":{"en":"","ar":"عنوان"},"null":null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.True(t, doc.Legacy.IsPlain())
	assert.Equal(t, "Old title", Resolve(doc.Legacy, AR))
	assert.Equal(t, "عنوان", Resolve(doc.Pair, EN))
	assert.Nil(t, doc.Null)
	assert.Nil(t, doc.Missing)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"legacy":"Old title","pair":{"en":"","ar":"عنوان"},"null":null}`, string(out))
}

func TestLocalizedText_UnmarshalRejectsNumbers(t *testing.T) {
	var v LocalizedText
	assert.Error(t, json.Unmarshal([]byte(`42`), &v))
}

func TestParse(t *testing.T) {
	for raw, want := range map[string]Lang{"ar": AR, "ar-SA": AR, "en_US": EN, "EN": EN} {
		got, err := Parse(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := Parse("fr")
	assert.ErrorIs(t, err, ErrInvalidLang)
	assert.Equal(t, EN, ParseOrDefault("not a tag"))
}

func TestSession_Toggle(t *testing.T) {
	store := NewMemoryStore("")
	s := NewSession(store)

	var dirs []string
	s.Subscribe(func(l Lang) { dirs = append(dirs, l.Dir()) })
	s.Mount()

	assert.Equal(t, EN, s.Lang())
	assert.Equal(t, AR, s.Toggle())
	assert.Equal(t, DirRTL, s.Dir())
	assert.Equal(t, EN, s.Toggle())
	assert.Equal(t, DirLTR, s.Dir())

	assert.Equal(t, []string{DirLTR, DirRTL, DirLTR}, dirs)
	saved, ok := store.Load()
	assert.True(t, ok)
	assert.Equal(t, "en", saved)
}

func TestSession_RestoresPersistedChoice(t *testing.T) {
	assert.Equal(t, AR, NewSession(NewMemoryStore("ar")).Lang())
	assert.Equal(t, EN, NewSession(NewMemoryStore("xx")).Lang())
	assert.Equal(t, EN, NewSession(nil).Lang())
}

func TestSession_SetInvalid(t *testing.T) {
	s := NewSession(nil)
	assert.ErrorIs(t, s.Set("de"), ErrInvalidLang)
	require.NoError(t, s.Set(AR))
	assert.Equal(t, "مرحبا", s.Resolve(Text("", "مرحبا")))
}

func TestFromContext_FailsLoudly(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoLanguageContext)
	assert.Panics(t, func() { MustFromContext(context.Background()) })

	s := NewSession(nil)
	got, err := FromContext(WithSession(context.Background(), s))
	require.NoError(t, err)
	assert.Same(t, s, got)
}
