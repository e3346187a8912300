package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hadeelmohammed/portfolio-backend/internal/i18n"
)

const (
	// LanguageCookie хранит выбранный язык между визитами.
	LanguageCookie = "lang"

	languageCookieMaxAge = 365 * 24 * 60 * 60

	HeaderTextDirection = "X-Text-Direction"
)

// cookieStore читает выбор языка из ?lang= или cookie и сохраняет его в cookie.
type cookieStore struct {
	c      *gin.Context
	secure bool
}

func (s cookieStore) Load() (string, bool) {
	if q := s.c.Query("lang"); q != "" {
		if _, err := i18n.Parse(q); err == nil {
			return q, true
		}
	}
	raw, err := s.c.Cookie(LanguageCookie)
	if err != nil || raw == "" {
		return "", false
	}
	return raw, true
}

// Save оставляет в ответе один Set-Cookie языка: последний переход за запрос.
func (s cookieStore) Save(lang i18n.Lang) {
	header := s.c.Writer.Header()
	if prev := header.Values("Set-Cookie"); len(prev) > 0 {
		kept := prev[:0:0]
		for _, v := range prev {
			if !strings.HasPrefix(v, LanguageCookie+"=") {
				kept = append(kept, v)
			}
		}
		header.Del("Set-Cookie")
		for _, v := range kept {
			header.Add("Set-Cookie", v)
		}
	}
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(LanguageCookie, string(lang), languageCookieMaxAge, "/", "", s.secure, false)
}

// Language создаёт языковую сессию запроса и кладёт её в контекст.
// Первый наблюдатель выставляет заголовки направления, сохранение в cookie идёт после него.
func Language(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := i18n.NewSession(cookieStore{c: c, secure: secureCookie})
		session.Subscribe(func(lang i18n.Lang) {
			c.Header("Content-Language", lang.Tag().String())
			c.Header(HeaderTextDirection, lang.Dir())
		})
		session.Mount()

		c.Request = c.Request.WithContext(i18n.WithSession(c.Request.Context(), session))
		c.Next()
	}
}

// LangFromContext возвращает язык запроса. Без middleware Language падает.
func LangFromContext(c *gin.Context) i18n.Lang {
	return i18n.MustFromContext(c.Request.Context()).Lang()
}
