// Package uploads accepts image files attached to create requests,
// validates them, and writes them under the upload root. Stored files are
// addressed by generated names and served read-only at /uploads/... —
// nothing here tracks which records reference which files.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sidra-al/Double-H-Portfolio/internal/httpx"
)

const (
	// MaxFiles bounds the number of images per create request.
	MaxFiles = 10
	// MaxFileSize bounds each file to 5 MB.
	MaxFileSize = 5 << 20
)

var allowedExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
}

var allowedMIMETokens = []string{"jpeg", "jpg", "png", "webp"}

// Receiver stores validated image files under a fixed upload root.
type Receiver struct {
	root string
}

func NewReceiver(root string) *Receiver {
	return &Receiver{root: root}
}

// Store validates every file, then writes them into <root>/<subdir>/ and
// returns reference paths of the form /uploads/<subdir>/<name> in input
// order. Validation is all-or-nothing: a single bad file fails the batch
// before anything touches disk. Files written before a later write error
// are not cleaned up.
func (r *Receiver) Store(files []*multipart.FileHeader, subdir string) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > MaxFiles {
		return nil, httpx.Validation(fmt.Sprintf("Too many files: at most %d images per request", MaxFiles))
	}

	for _, fh := range files {
		if err := validate(fh); err != nil {
			return nil, err
		}
	}

	dir := filepath.Join(r.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, httpx.Internal("Failed to prepare upload directory", err)
	}

	refs := make([]string, 0, len(files))
	for _, fh := range files {
		name := storageName(fh.Filename)
		if err := save(fh, filepath.Join(dir, name)); err != nil {
			return nil, httpx.Internal("Failed to store uploaded file", err)
		}
		refs = append(refs, "/uploads/"+subdir+"/"+name)
	}
	return refs, nil
}

// validate requires both an allow-listed extension and an image-like
// declared MIME type; either check failing rejects the file.
func validate(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return httpx.UnsupportedFile("Only image files are allowed: " + fh.Filename)
	}
	if !allowedMIME(fh.Header.Get("Content-Type")) {
		return httpx.UnsupportedFile("Only image files are allowed: " + fh.Filename)
	}
	if fh.Size > MaxFileSize {
		return httpx.Validation(fmt.Sprintf("File too large: %s exceeds the 5 MB limit", fh.Filename))
	}
	return nil
}

func allowedMIME(mimeType string) bool {
	mimeType = strings.ToLower(mimeType)
	for _, token := range allowedMIMETokens {
		if strings.Contains(mimeType, token) {
			return true
		}
	}
	return false
}

// storageName builds a collision-resistant name keeping the original
// extension: <unix-millis>-<random><ext>.
func storageName(original string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), strings.ToLower(filepath.Ext(original)))
}

func save(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
