package domain

import (
	"errors"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
)

var (
	ErrUnsupportedSchema = errors.New("unsupported url scheme")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
)

// WebResourceReaderRepository fetches the raw bytes behind one url scheme
// (http(s), ipfs or data).
type WebResourceReaderRepository interface {
	Get(c ctx.Ctx, url string) ([]byte, error)
}

// WebResourceWriterRepository stores an object at path and returns its public url
type WebResourceWriterRepository interface {
	Store(c ctx.Ctx, path string, data []byte, contentType string) (string, error)
}

// WebResourceUseCase reads token metadata and images wherever their uri points.
type WebResourceUseCase interface {
	// Get dispatches on the url scheme, a failing ipfs gateway url is retried over ipfs
	Get(c ctx.Ctx, url string) ([]byte, error)
	// GetJson is Get that also rejects bodies which are not valid json
	GetJson(c ctx.Ctx, url string) ([]byte, error)
	// Archive copies data to cloud storage, it fails when no writer is configured
	Archive(c ctx.Ctx, path string, data []byte, contentType string) (string, error)
}
