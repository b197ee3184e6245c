// Package item reads and writes the shop's flat JSON item file.
package item

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/ShopKeeper_Go/internal/domain"
	"github.com/osse101/ShopKeeper_Go/internal/logger"
	"github.com/osse101/ShopKeeper_Go/internal/utils"
)

// Loader moves item lists between the catalog and files on disk
type Loader interface {
	Load(ctx context.Context, path string) ([]domain.Item, error)
	Save(ctx context.Context, path string, items []domain.Item) error
}

// fileLoader reads and writes inside one catalog directory. Paths handed to
// it are names relative to that directory.
type fileLoader struct {
	dir string
}

// NewLoader creates a Loader confined to dir
func NewLoader(dir string) Loader {
	return &fileLoader{dir: dir}
}

// ResolvePath joins name onto dir. Absolute names and names that climb out of
// dir with ".." are rejected with domain.ErrInvalidInput.
func ResolvePath(dir, name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf(ErrFmtPathOutsideDir, domain.ErrInvalidInput, name)
	}
	return filepath.Join(dir, name), nil
}

// Load reads and parses an item file. Nothing is returned unless the whole
// file parsed.
func (l *fileLoader) Load(ctx context.Context, name string) ([]domain.Item, error) {
	path, err := ResolvePath(l.dir, name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadFile, domain.ErrIO, path, err)
	}

	items, err := Import(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.FromContext(ctx).Info(LogMsgImported, "path", path, "count", len(items))
	return items, nil
}

// Save writes items to the named file, creating subdirectories as needed.
// The previous file is left intact if anything fails.
func (l *fileLoader) Save(ctx context.Context, name string, items []domain.Item) error {
	path, err := ResolvePath(l.dir, name)
	if err != nil {
		return err
	}

	data, err := Export(items)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
		return fmt.Errorf(ErrFmtWriteFile, domain.ErrIO, path, err)
	}

	if err := utils.WriteFileAtomic(path, data, FilePermission); err != nil {
		return fmt.Errorf(ErrFmtWriteFile, domain.ErrIO, path, err)
	}

	logger.FromContext(ctx).Info(LogMsgExported, "path", path, "count", len(items))
	return nil
}
