package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// BucketProjectImages — каталог изображений проектов.
const BucketProjectImages = "project-images"

// ErrInvalidPath возвращается для путей, выходящих за пределы хранилища.
var ErrInvalidPath = errors.New("storage: недопустимый путь файла")

// PhotoStorage хранит изображения в каталогах-бакетах на диске.
type PhotoStorage struct {
	rootPath string
}

// NewPhotoStorage создаёт файловое хранилище.
func NewPhotoStorage(rootPath string) (*PhotoStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}
	return &PhotoStorage{rootPath: rootPath}, nil
}

// Save атомарно записывает файл и возвращает путь вида bucket/name.
func (s *PhotoStorage) Save(ctx context.Context, bucket, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relative, err := cleanRelative(bucket, name)
	if err != nil {
		return "", err
	}

	targetPath := filepath.Join(s.rootPath, filepath.FromSlash(relative))
	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: не удалось создать каталог бакета: %w", err)
	}

	tempPath := targetPath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: ошибка записи файла: %w", err)
	}
	if err := os.Rename(tempPath, targetPath); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	return relative, nil
}

// Delete удаляет файл из хранилища. Отсутствующий файл не считается ошибкой.
func (s *PhotoStorage) Delete(ctx context.Context, relativePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bucket, name, ok := strings.Cut(relativePath, "/")
	if !ok {
		return ErrInvalidPath
	}
	relative, err := cleanRelative(bucket, name)
	if err != nil {
		return err
	}

	target := filepath.Join(s.rootPath, filepath.FromSlash(relative))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл: %w", err)
	}
	return nil
}

// PublicURL строит публичную ссылку: base + /media/ + bucket/name.
func PublicURL(baseURL, relativePath string) string {
	return strings.TrimRight(baseURL, "/") + "/media/" + relativePath
}

// cleanRelative запрещает подкаталоги и выход за пределы бакета.
func cleanRelative(bucket, name string) (string, error) {
	if bucket == "" || name == "" ||
		strings.ContainsAny(bucket, `/\`) || strings.ContainsAny(name, `/\`) ||
		strings.Contains(bucket, "..") || strings.Contains(name, "..") {
		return "", ErrInvalidPath
	}
	return path.Join(bucket, name), nil
}
