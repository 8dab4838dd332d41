package utils

import (
	"errors"
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrUnsupportedMedia is returned for uploads that are neither images nor videos.
var ErrUnsupportedMedia = errors.New("only images and videos allowed")

// SaveUpload writes an uploaded media file into dir and returns the public
// path it will be served from. Filenames combine a millisecond timestamp
// with a random suffix so concurrent uploads never collide.
func SaveUpload(c *fiber.Ctx, file *multipart.FileHeader, dir string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return "", ErrUnsupportedMedia
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
