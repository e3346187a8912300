package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MinContactNameLength    = 2
	MaxContactNameLength    = 100
	MaxContactEmailLength   = 255
	MinContactMessageLength = 10
	MaxContactMessageLength = 1000
	MaxProjectTitleLength   = 200
	MaxToolsCount           = 30
	MaxToolLength           = 50
	MaxGalleryImages        = 40
	MaxURLLength            = 2048
)

var (
	emailLocalRegex  = regexp.MustCompile(`^[a-z0-9._+-]+$`)
	emailDomainRegex = regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
)

// ValidateLength проверяет длину строки в символах.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s must be at least %d characters", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s must be at most %d characters", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("invalid email format")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("email local part must be 1 to 64 characters")
	}
	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("email domain must be 1 to 255 characters")
	}
	if !emailLocalRegex.MatchString(localPart) {
		return fmt.Errorf("email local part contains invalid characters")
	}
	if !emailDomainRegex.MatchString(domainPart) {
		return fmt.Errorf("email domain has invalid format")
	}

	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateURL проверяет абсолютную http(s) ссылку или путь от корня сайта.
func ValidateURL(fieldName, link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil
	}
	if err := ValidateLength(fieldName, link, 0, MaxURLLength); err != nil {
		return err
	}
	if strings.HasPrefix(link, "/") && !strings.HasPrefix(link, "//") {
		return nil
	}

	parsedURL, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("%s has invalid URL format", fieldName)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s must start with http:// or https://", fieldName)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s must contain a host", fieldName)
	}
	return nil
}

// ValidateTools проверяет список инструментов проекта.
func ValidateTools(tools []string) error {
	if len(tools) > MaxToolsCount {
		return fmt.Errorf("tools cannot contain more than %d items", MaxToolsCount)
	}

	seen := make(map[string]bool)
	for _, tool := range tools {
		tool = strings.TrimSpace(tool)
		if tool == "" {
			return fmt.Errorf("tool cannot be empty")
		}
		if utf8.RuneCountInString(tool) > MaxToolLength {
			return fmt.Errorf("tool cannot be longer than %d characters", MaxToolLength)
		}
		key := strings.ToLower(tool)
		if seen[key] {
			return fmt.Errorf("tool '%s' is listed twice", tool)
		}
		seen[key] = true
	}
	return nil
}
