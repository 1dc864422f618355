package filemgr

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"eventease/utils"

	"github.com/disintegration/imaging"
)

var packagePicDir = "./static/packagepic"

// Supported banner upload types.
var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SaveBannerImage stores an uploaded package banner plus a 300px-wide
// thumbnail and returns their public paths.
func SaveBannerImage(file *multipart.FileHeader) (string, string, error) {
	if !SupportedImageTypes[file.Header.Get("Content-Type")] {
		return "", "", fmt.Errorf("unsupported image type")
	}

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := utils.GenerateID(16)
	fileName := uniqueID + ".jpg"

	originalPath := filepath.Join(packagePicDir, fileName)
	thumbDir := filepath.Join(packagePicDir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := ensureDirExists(packagePicDir); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, originalPath); err != nil {
		return "", "", fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/static/packagepic/" + fileName, "/static/packagepic/thumb/" + fileName, nil
}
