package pinata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/xerrors"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
)

const (
	pinPath     = "/pinning/pinFileToIPFS"
	pinJsonPath = "/pinning/pinJSONToIPFS"
)

type pinataImpl struct {
	jwt       string
	apiKey    string
	apiSecret string
	endpoint  string
	client    *http.Client
}

func New(cfg Config) (Service, error) {
	if !cfg.HasCredentials() {
		return nil, ErrNoCredentials
	}
	if len(cfg.Jwt) > 0 {
		if err := checkJwt(cfg.Jwt, time.Now()); err != nil {
			return nil, err
		}
	}
	im := &pinataImpl{
		jwt:       cfg.Jwt,
		apiKey:    cfg.ApiKey,
		apiSecret: cfg.ApiSecret,
		endpoint:  cfg.Endpoint,
		client:    cfg.HttpClient,
	}
	if len(im.endpoint) == 0 {
		im.endpoint = defaultEndpoint
	}
	if im.client == nil {
		im.client = defaultHttpClient
	}
	return im, nil
}

// checkJwt rejects a token that is malformed or already expired. The
// signature belongs to pinata and can't be verified here.
func checkJwt(token string, now time.Time) error {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return xerrors.Errorf("%w: %v", ErrInvalidJwt, err)
	}
	if !claims.VerifyExpiresAt(now.Unix(), false) {
		return ErrJwtExpired
	}
	return nil
}

func (im *pinataImpl) Pin(c ctx.Ctx, file io.Reader, extension string, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}

	var b bytes.Buffer

	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", "file."+extension); err != nil {
		c.WithField("err", err).Error("w.CreateFormFile failed")
		return "", err
	} else if _, err := io.Copy(fw, file); err != nil {
		c.WithField("err", err).Error("io.Copy failed")
		return "", err
	}

	if opts.Metadata != nil {
		if b, err := json.Marshal(opts.Metadata); err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", err
		} else if err := w.WriteField("pinataMetadata", string(b)); err != nil {
			return "", err
		}
	}

	if opts.Options != nil {
		if b, err := json.Marshal(opts.Options); err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", err
		} else if err := w.WriteField("pinataOptions", string(b)); err != nil {
			return "", err
		}
	}

	if err := w.Close(); err != nil {
		c.WithField("err", err).Error("w.Close failed")
		return "", err
	}

	req, err := http.NewRequestWithContext(c, http.MethodPost, fmt.Sprintf("%s%s", im.endpoint, pinPath), &b)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequestWithContext failed")
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return im.do(c, req)
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}

	opts.PinataContent = value

	body, err := json.Marshal(opts)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	req, err := http.NewRequestWithContext(c, http.MethodPost, fmt.Sprintf("%s%s", im.endpoint, pinJsonPath), bytes.NewBuffer(body))
	if err != nil {
		c.WithField("err", err).Error("http.NewRequestWithContext failed")
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	return im.do(c, req)
}

func (im *pinataImpl) do(c ctx.Ctx, req *http.Request) (string, error) {
	if len(im.jwt) > 0 {
		req.Header.Set("Authorization", "Bearer "+im.jwt)
	} else {
		req.Header.Set("pinata_api_key", im.apiKey)
		req.Header.Set("pinata_secret_api_key", im.apiSecret)
	}

	resp, err := im.client.Do(req)
	if err != nil {
		c.WithField("err", err).Error("client.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithFields(log.Fields{
			"status":    resp.StatusCode,
			"errorBody": string(errorBody),
		}).Error("Request failed")
		return "", xerrors.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, string(errorBody))
	}

	type payload struct {
		IpfsHash string `json:"IpfsHash"`
	}

	p := &payload{}

	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", err
	}
	if len(p.IpfsHash) == 0 {
		return "", ErrEmptyIpfsHash
	}

	return p.IpfsHash, nil
}
