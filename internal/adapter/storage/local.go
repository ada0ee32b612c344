// Package storage persists uploaded files on the local disk.
package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/config"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// Upload is a single incoming file.
type Upload struct {
	Name string
	Size int64
	Body io.Reader
}

// Local writes uploads below a root directory grouped by folder.
type Local struct {
	root       string
	publicPath string
	maxSize    int64
	allowed    []string
}

// NewLocal creates the upload root if needed.
func NewLocal(cfg config.StorageConfig) (*Local, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{
		root:       cfg.UploadDir,
		publicPath: strings.TrimRight(cfg.PublicPath, "/"),
		maxSize:    cfg.MaxFileSize,
		allowed:    cfg.AllowedTypes(),
	}, nil
}

// Root returns the directory served under the public path.
func (l *Local) Root() string { return l.root }

// Save validates and stores one file in folder. The content type is sniffed
// from the first bytes, not taken from the client.
func (l *Local) Save(ctx context.Context, folder string, up Upload) (domain.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return domain.StoredFile{}, err
	}
	if l.maxSize > 0 && up.Size > l.maxSize {
		return domain.StoredFile{}, domain.NewValidationError("file",
			fmt.Sprintf("%s exceeds the %d byte limit", up.Name, l.maxSize))
	}

	br := bufio.NewReaderSize(up.Body, 512)
	head, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return domain.StoredFile{}, fmt.Errorf("read upload: %w", err)
	}
	contentType := http.DetectContentType(head)
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	if len(l.allowed) > 0 && !slices.Contains(l.allowed, contentType) {
		return domain.StoredFile{}, domain.NewValidationError("file",
			fmt.Sprintf("%s has unsupported type %s", up.Name, contentType))
	}

	folder = sanitizeFolder(folder)
	dir := filepath.Join(l.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.StoredFile{}, fmt.Errorf("create folder: %w", err)
	}

	name := uuid.NewString() + extensionFor(contentType)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return domain.StoredFile{}, fmt.Errorf("create file: %w", err)
	}

	var src io.Reader = br
	if l.maxSize > 0 {
		src = io.LimitReader(br, l.maxSize+1)
	}
	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err == nil && l.maxSize > 0 && n > l.maxSize {
		err = domain.NewValidationError("file", fmt.Sprintf("%s exceeds the %d byte limit", up.Name, l.maxSize))
	}
	if err != nil {
		_ = os.Remove(filepath.Join(dir, name))
		return domain.StoredFile{}, err
	}

	rel := path.Join(folder, name)
	return domain.StoredFile{
		Name:        filepath.Base(up.Name),
		Path:        rel,
		URL:         l.publicPath + "/" + rel,
		ContentType: contentType,
		Size:        n,
	}, nil
}

// Remove deletes a previously stored file. Missing files are ignored.
func (l *Local) Remove(rel string) error {
	p := filepath.Join(l.root, filepath.FromSlash(path.Clean("/"+rel)))
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", rel, err)
	}
	return nil
}

var extensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// extensionFor maps a sniffed content type to the stored file extension.
// The client's file name never decides it.
func extensionFor(contentType string) string {
	if ext, ok := extensions[contentType]; ok {
		return ext
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(path.Clean("/"+folder), "/")
	if folder == "" || folder == "." {
		return "misc"
	}
	return folder
}
