// SPDX-License-Identifier: GPL-3.0-only

// Package uploads stores profile images on disk and hands back the
// public URLs the persistence layer records. Type and size limits are
// enforced here, before any database row exists.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"matchbase-server/commons"

	"github.com/google/uuid"
)

const (
	MaxFiles    = 10
	MaxFileSize = 5 * 1024 * 1024
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Saver struct {
	Dir       string
	PublicURL string
}

func NewSaver() *Saver {
	return &Saver{
		Dir:       commons.GetEnv("UPLOADS_DIR", "uploads/profile-images"),
		PublicURL: "/uploads/profile-images",
	}
}

// SaveAll writes every uploaded file and returns their public URLs in
// upload order. The first rejected file fails the whole batch; files
// already written for this batch are removed again.
func (s *Saver) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxFiles {
		return nil, fmt.Errorf("too many files, maximum %d images allowed", MaxFiles)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, err
	}

	var urls []string
	var written []string
	cleanup := func() {
		for _, path := range written {
			if err := os.Remove(path); err != nil {
				commons.Logger.Warnf("Failed to remove uploaded file %s: %v", path, err)
			}
		}
	}

	for _, fh := range files {
		url, path, err := s.saveOne(fh)
		if err != nil {
			cleanup()
			return nil, err
		}
		urls = append(urls, url)
		written = append(written, path)
	}
	return urls, nil
}

// Remove deletes previously saved files, addressed by the public URLs
// SaveAll returned. Callers use it when a later step fails after the
// files already hit disk, so a rolled-back registration leaves no
// orphans behind.
func (s *Saver) Remove(urls []string) {
	for _, url := range urls {
		path := filepath.Join(s.Dir, filepath.Base(url))
		if err := os.Remove(path); err != nil {
			commons.Logger.Warnf("Failed to remove uploaded file %s: %v", path, err)
		}
	}
}

func (s *Saver) saveOne(fh *multipart.FileHeader) (string, string, error) {
	if fh.Size > MaxFileSize {
		return "", "", fmt.Errorf("file %s is too large, maximum size is 5MB", fh.Filename)
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	// Sniff the real content type rather than trusting the client header.
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", "", err
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedTypes[contentType]
	if !ok {
		return "", "", fmt.Errorf("invalid file type %s, only JPEG, PNG, GIF and WebP images are allowed", contentType)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", "", err
	}

	name := "profile-" + uuid.NewString() + ext
	path := filepath.Join(s.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", "", err
	}

	return s.PublicURL + "/" + name, path, nil
}
