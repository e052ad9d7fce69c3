package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryService is the object storage collaborator. Uploaded files get a
// generated key of the shape uploads/<uuid>.<ext>; the returned secure URL is
// the public address of the object. There is no deletion path: objects
// orphaned by removing an image from a product simply stay behind.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("missing Cloudinary credentials")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadFile uploads a single file and returns its public URL. The original
// filename only contributes its extension; the key itself is random.
func (s *CloudinaryService) UploadFile(ctx context.Context, file multipart.File, originalFilename string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(originalFilename), ".")
	publicID := "uploads/" + uuid.NewString()
	if ext != "" {
		publicID = publicID + "." + ext
	}

	overwrite := false
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:  publicID,
		Overwrite: &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}

// UploadMultiple uploads files one at a time, in the order given, and returns
// the URLs in the same order. Sequential on purpose: the first URL becomes
// the default product image, so the result order must follow selection order.
func (s *CloudinaryService) UploadMultiple(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
		}

		url, err := s.UploadFile(ctx, file, fileHeader.Filename)
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
