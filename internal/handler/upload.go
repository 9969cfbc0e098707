package handler

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// saveUpload writes an optional uploaded image into dir under a generated
// unique filename that keeps the original extension, and returns that
// filename. When no file was posted it returns "" with no error, so the
// caller omits the image from its mutation.
func saveUpload(c echo.Context, dir string) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// No file field in the form, or the form is not multipart.
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(filepath.Join(dir, name))
		return "", err
	}
	return name, nil
}

// removeUpload deletes a previously saved upload. Used to roll the file
// back when the database mutation after it fails.
func removeUpload(dir, name string) {
	if name != "" {
		_ = os.Remove(filepath.Join(dir, name))
	}
}
