package pinata

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
)

var (
	ErrRequestFailed = errors.New("request failed")
	ErrNoCredentials = errors.New("no pinata credentials")
	ErrInvalidJwt    = errors.New("invalid pinata jwt")
	ErrJwtExpired    = errors.New("pinata jwt expired")
	ErrEmptyIpfsHash = errors.New("empty ipfs hash in response")
)

var (
	defaultEndpoint   = "https://api.pinata.cloud"
	defaultHttpClient = &http.Client{Timeout: 60 * time.Second}
)

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type CidVersion uint8

const (
	CidVersion_0 CidVersion = 0
	CidVersion_1 CidVersion = 1
)

type PinOptions struct {
	Metadata      *PinataMetadata `json:"pinataMetadata,omitempty"`
	Options       *PinataOptions  `json:"pinataOptions,omitempty"`
	PinataContent interface{}     `json:"pinataContent"`
}

type Options func(*PinOptions) error

func GetPinOptions(opts ...Options) (*PinOptions, error) {
	res := &PinOptions{}

	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func WithMetadata(metadata PinataMetadata) Options {
	return func(options *PinOptions) error {
		options.Metadata = &metadata
		return nil
	}
}

func WithOptions(pinataOptions PinataOptions) Options {
	return func(options *PinOptions) error {
		options.Options = &pinataOptions
		return nil
	}
}

// Config selects the credentials. Jwt takes precedence over the api key pair.
type Config struct {
	Jwt       string
	ApiKey    string
	ApiSecret string
	// Endpoint defaults to https://api.pinata.cloud
	Endpoint   string
	HttpClient *http.Client
}

// HasCredentials reports whether cfg can authenticate against pinata
func (cfg Config) HasCredentials() bool {
	return len(cfg.Jwt) > 0 || (len(cfg.ApiKey) > 0 && len(cfg.ApiSecret) > 0)
}

type Service interface {
	Pin(c ctx.Ctx, file io.Reader, extension string, opts ...Options) (string, error)
	PinJson(c ctx.Ctx, value interface{}, opts ...Options) (string, error)
}
