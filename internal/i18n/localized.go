package i18n

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// LocalizedText хранит либо пару {en, ar}, либо устаревшую одноязычную строку.
// Остальной код видит только результат Resolve.
type LocalizedText struct {
	EN    string
	AR    string
	plain bool
}

// Text создаёт двуязычное значение.
func Text(en, ar string) *LocalizedText {
	return &LocalizedText{EN: en, AR: ar}
}

// Plain создаёт устаревшее одноязычное значение.
func Plain(s string) *LocalizedText {
	return &LocalizedText{EN: s, AR: s, plain: true}
}

// IsPlain сообщает, что значение пришло в старом строковом формате.
func (t *LocalizedText) IsPlain() bool {
	return t != nil && t.plain
}

// Get возвращает значение конкретного языка без подстановки.
func (t *LocalizedText) Get(lang Lang) string {
	if t == nil {
		return ""
	}
	if lang == AR {
		return t.AR
	}
	return t.EN
}

// Resolve выбирает строку для языка с подстановкой второго языка.
// Никогда не возвращает ошибку: nil и пустые пары дают "".
func Resolve(t *LocalizedText, lang Lang) string {
	if t == nil {
		return ""
	}
	if t.plain {
		return t.EN
	}
	if v := t.Get(lang); v != "" {
		return v
	}
	return t.Get(lang.Other())
}

// Resolve — метод-обёртка для удобства в шаблонах ответов.
func (t *LocalizedText) Resolve(lang Lang) string {
	return Resolve(t, lang)
}

type localizedPair struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// MarshalJSON сохраняет исходную форму значения.
func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.plain {
		return json.Marshal(t.EN)
	}
	return json.Marshal(localizedPair{EN: t.EN, AR: t.AR})
}

// UnmarshalJSON принимает строку, объект {en, ar} или null.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = LocalizedText{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("i18n: некорректная строка: %w", err)
		}
		*t = LocalizedText{EN: s, AR: s, plain: true}
		return nil
	case '{':
		var pair localizedPair
		if err := json.Unmarshal(data, &pair); err != nil {
			return fmt.Errorf("i18n: некорректный объект: %w", err)
		}
		*t = LocalizedText{EN: pair.EN, AR: pair.AR}
		return nil
	}

	return fmt.Errorf("i18n: ожидалась строка или объект {en, ar}")
}
