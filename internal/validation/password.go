package validation

import (
	"fmt"
	"unicode"
)

// ValidatePassword проверяет пароль на соответствие требованиям безопасности.
// Требования:
// - Минимум 8 символов
// - Должен содержать заглавные буквы
// - Должен содержать строчные буквы
// - Должен содержать цифры
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	var (
		hasUpper  = false
		hasLower  = false
		hasNumber = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain an uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain a lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain a digit")
	}

	return nil
}
