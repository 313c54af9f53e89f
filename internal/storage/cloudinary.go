package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryStore struct {
	*cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudinaryURL string) (FileStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	cld.Config.URL.Secure = true

	return &CloudinaryStore{cld}, nil
}

func (cld *CloudinaryStore) UploadFile(ctx context.Context, file []byte, filename string, folder string) (string, error) {
	name := objectName(filename)
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		PublicID:       strings.TrimSuffix(name, path.Ext(name)),
		UniqueFilename: api.Bool(false),
		Overwrite:      api.Bool(true),
	}

	result, err := cld.Upload.Upload(ctx, bytes.NewReader(file), uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload file to cloudinary: %w", err)
	}

	return result.SecureURL, nil
}

func (cld *CloudinaryStore) DeleteFile(ctx context.Context, fileURL string) error {
	publicID, err := cloudinaryPublicID(fileURL)
	if err != nil {
		return err
	}

	_, err = cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from cloudinary: %w", err)
	}

	return nil
}

// cloudinaryPublicID extracts "folder/name" from
// https://res.cloudinary.com/<cloud>/image/upload/v1712345678/folder/name.jpg.
func cloudinaryPublicID(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse file URL: %w", err)
	}

	_, after, found := strings.Cut(u.Path, "/upload/")
	if !found || after == "" {
		return "", fmt.Errorf("not a cloudinary upload URL: %s", fileURL)
	}

	segments := strings.Split(after, "/")
	if len(segments) > 1 && isVersionSegment(segments[0]) {
		segments = segments[1:]
	}

	publicID := strings.Join(segments, "/")
	return strings.TrimSuffix(publicID, path.Ext(publicID)), nil
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
