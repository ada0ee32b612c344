package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/limopeace/beatlenut-trails-sub002/internal/adapter/storage"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const (
	multipartMemory = 32 << 20
	// formOverhead leaves room for text fields and part headers.
	formOverhead = 1 << 20
)

type fileStore interface {
	Save(ctx context.Context, folder string, up storage.Upload) (domain.StoredFile, error)
	Remove(rel string) error
}

// UploadLimits bounds a multipart request. Zero values disable a limit.
type UploadLimits struct {
	MaxFiles    int
	MaxFileSize int64
}

// uploader stores the files of a multipart form.
type uploader struct {
	store  fileStore
	limits UploadLimits
	log    *slog.Logger
}

func newUploader(store fileStore, limits UploadLimits, log *slog.Logger) uploader {
	return uploader{store: store, limits: limits, log: log}
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// maxBody is the largest multipart body accepted, or 0 for no cap.
func (u uploader) maxBody() int64 {
	if u.limits.MaxFiles <= 0 || u.limits.MaxFileSize <= 0 {
		return 0
	}
	return int64(u.limits.MaxFiles)*u.limits.MaxFileSize + formOverhead
}

// parseForm reads a multipart body. The caller reads text fields from
// r.MultipartForm or r.FormValue afterwards.
func (u uploader) parseForm(w http.ResponseWriter, r *http.Request) error {
	if n := u.maxBody(); n > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, n)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		}
		return domain.NewValidationError("body", "invalid multipart form")
	}
	return nil
}

// save stores every file sent under field into folder.
func (u uploader) save(r *http.Request, field, folder string) ([]domain.StoredFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	if u.limits.MaxFiles > 0 && len(headers) > u.limits.MaxFiles {
		return nil, domain.NewValidationError(field, fmt.Sprintf("at most %d files allowed", u.limits.MaxFiles))
	}

	out := make([]domain.StoredFile, 0, len(headers))
	for _, fh := range headers {
		f, err := u.saveOne(r.Context(), folder, fh)
		if err != nil {
			u.discard(r.Context(), out)
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// discard removes stored files whose request failed afterwards.
func (u uploader) discard(ctx context.Context, files []domain.StoredFile) {
	for _, f := range files {
		if err := u.store.Remove(f.Path); err != nil {
			u.log.WarnContext(ctx, "remove orphaned upload",
				slog.String("path", f.Path), slog.String("error", err.Error()))
		}
	}
}

func (u uploader) saveOne(ctx context.Context, folder string, fh *multipart.FileHeader) (domain.StoredFile, error) {
	src, err := fh.Open()
	if err != nil {
		return domain.StoredFile{}, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	return u.store.Save(ctx, folder, storage.Upload{Name: fh.Filename, Size: fh.Size, Body: src})
}

// formList returns a repeated form field, also accepting one comma-separated value.
func formList(r *http.Request, name string) []string {
	var out []string
	for _, v := range r.MultipartForm.Value[name] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func fileURLs(files []domain.StoredFile) []string {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		urls = append(urls, f.URL)
	}
	return urls
}

// documentUploads turns stored files into approval documents. The document
// type comes from the matching documentTypes entry or defaults to "other".
func documentUploads(files []domain.StoredFile, types []string) []domain.DocumentUpload {
	docs := make([]domain.DocumentUpload, 0, len(files))
	for i, f := range files {
		typ := "other"
		if i < len(types) && types[i] != "" {
			typ = types[i]
		}
		docs = append(docs, domain.DocumentUpload{Type: typ, Name: f.Name, Path: f.Path})
	}
	return docs
}
