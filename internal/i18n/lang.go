package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Lang — язык интерфейса сайта.
type Lang string

const (
	EN Lang = "en"
	AR Lang = "ar"
)

// Default используется, когда сохранённого выбора нет или он некорректен.
const Default = EN

// Направления текста документа.
const (
	DirLTR = "ltr"
	DirRTL = "rtl"
)

// ErrInvalidLang возвращается для неподдерживаемого языка.
var ErrInvalidLang = errors.New("i18n: неподдерживаемый язык")

// Parse разбирает BCP-47 тег ("ar-SA", "en_US", "AR") до базового языка.
func Parse(raw string) (Lang, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidLang
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return "", ErrInvalidLang
	}

	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return EN, nil
	case "ar":
		return AR, nil
	}
	return "", ErrInvalidLang
}

// ParseOrDefault возвращает Default для пустого или некорректного значения.
func ParseOrDefault(raw string) Lang {
	lang, err := Parse(raw)
	if err != nil {
		return Default
	}
	return lang
}

// Valid сообщает, входит ли язык в поддерживаемый набор.
func (l Lang) Valid() bool {
	return l == EN || l == AR
}

// Other возвращает второй язык пары.
func (l Lang) Other() Lang {
	if l == AR {
		return EN
	}
	return AR
}

// Dir возвращает направление текста для языка.
func (l Lang) Dir() string {
	if l == AR {
		return DirRTL
	}
	return DirLTR
}

// Tag возвращает language.Tag для заголовка Content-Language.
func (l Lang) Tag() language.Tag {
	if l == AR {
		return language.Arabic
	}
	return language.English
}

func (l Lang) String() string {
	return string(l)
}
