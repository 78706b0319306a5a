// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	photoMaxDim     = 512 // foto profil jemaat di-resize fit 512px
	photoQuality    = 80
	photoUploadDir  = "uploads/members"
	photoPublicBase = "/uploads/members"
)

// ConvertToWebP: decode (jpeg/png), resize fit, encode WebP lossy.
func ConvertToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	img = imaging.Fit(img, photoMaxDim, photoMaxDim, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: photoQuality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveMemberPhoto menyimpan foto profil (sudah dinormalisasi ke WebP) dan
// mengembalikan URL publiknya.
func SaveMemberPhoto(fileHeader *multipart.FileHeader) (string, error) {
	data, err := ConvertToWebP(fileHeader)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(photoUploadDir, 0o755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan folder upload: %w", err)
	}

	filename := GenerateUniqueFilename(fileHeader.Filename) + ".webp"
	if err := os.WriteFile(filepath.Join(photoUploadDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menulis foto: %w", err)
	}

	return photoPublicBase + "/" + filename, nil
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := sanitizeFilename(originalFilename)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), base)
}
