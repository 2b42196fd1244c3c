package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const MaxImageSize = 5 << 20

var (
	ErrNotAnImage    = errors.New("uploaded file is not an image")
	ErrImageTooLarge = errors.New("uploaded image is too large")
)

// ImageStore keeps product pictures. Each product has at most one, stored
// as {productId}.png, and a new upload replaces the old file.
type ImageStore interface {
	SaveProductImage(ctx context.Context, productID uuid.UUID, src io.Reader) (string, error)
}

type diskStore struct {
	dir        string
	publicPath string
}

func NewDiskStore(dir string, publicPath string) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	if !strings.HasSuffix(publicPath, "/") {
		publicPath += "/"
	}

	return &diskStore{dir: dir, publicPath: publicPath}, nil
}

// SaveProductImage returns the public path the image is served from.
func (d *diskStore) SaveProductImage(ctx context.Context, productID uuid.UUID, src io.Reader) (string, error) {

	data, err := io.ReadAll(io.LimitReader(src, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		return "", ErrNotAnImage
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := productID.String() + ".png"

	tmp, err := os.CreateTemp(d.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(d.dir, name)); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return d.publicPath + name, nil
}
