package storage

import (
	"context"
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ErrStorageDisabled is returned by the no-op store.
var ErrStorageDisabled = errors.New("asset storage is not configured")

// FileStore keeps auction images and serves them from a public URL.
type FileStore interface {
	UploadFile(ctx context.Context, file []byte, filename string, folder string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}

// AuctionFolder is where the images of one auction are kept.
func AuctionFolder(auctionID uuid.UUID) string {
	return path.Join("auctions", auctionID.String())
}

// objectName keeps the extension of the uploaded file but never its name.
func objectName(filename string) string {
	return uuid.NewString() + strings.ToLower(path.Ext(filename))
}

func contentType(file []byte) string {
	return http.DetectContentType(file)
}

// NoopStore rejects uploads. It is used when ASSET_STORE is "none".
type NoopStore struct{}

func (NoopStore) UploadFile(context.Context, []byte, string, string) (string, error) {
	return "", ErrStorageDisabled
}

func (NoopStore) DeleteFile(context.Context, string) error {
	return nil
}
