package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

const PostImageFolder = "posts"

// StorePostImage copies an uploaded image into the media directory.
// Anything that is not sniffed as an image is rejected as a validation error.
func StorePostImage(file *multipart.FileHeader) (models.PostImage, error) {
	src, err := file.Open()
	if err != nil {
		return models.PostImage{}, fmt.Errorf("unable to open uploaded file: %v", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return models.PostImage{}, fmt.Errorf("unable to detect uploaded file type: %v", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return models.PostImage{}, NewValidationError("image", "upload a valid image")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return models.PostImage{}, fmt.Errorf("unable to rewind uploaded file: %v", err)
	}

	dir := filepath.Join(viper.GetString("media.dir"), PostImageFolder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return models.PostImage{}, fmt.Errorf("unable to prepare media folder: %v", err)
	}

	base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), base, mtype.Extension())
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return models.PostImage{}, fmt.Errorf("unable to create media file: %v", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return models.PostImage{}, fmt.Errorf("unable to write media file: %v", err)
	}

	return models.PostImage{
		Path:     filepath.ToSlash(filepath.Join(PostImageFolder, name)),
		MimeType: mtype.String(),
		Size:     size,
	}, nil
}

func RemovePostImage(image models.PostImage) error {
	if image.IsEmpty() {
		return nil
	}
	return os.Remove(filepath.Join(viper.GetString("media.dir"), filepath.FromSlash(image.Path)))
}
