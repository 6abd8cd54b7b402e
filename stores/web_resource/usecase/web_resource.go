package usecase

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	bCtx "github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/ipfsuri"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

var ErrArchiveNotConfigured = errors.New("archive storage not configured")

type WebResourceUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	// CloudStorageWriter is optional, Archive fails without it
	CloudStorageWriter domain.WebResourceWriterRepository
}

// route is the reader of one scheme plus how the url is handed to it
type route struct {
	reader domain.WebResourceReaderRepository
	target func(rawUrl string) string
}

type webResourceUseCase struct {
	routes map[string]route
	writer domain.WebResourceWriterRepository
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	asIs := func(u string) string { return u }
	return &webResourceUseCase{
		routes: map[string]route{
			"http":  {cfg.HttpReader, asIs},
			"https": {cfg.HttpReader, asIs},
			"ipfs":  {cfg.IpfsReader, func(u string) string { return strings.TrimPrefix(u, ipfsuri.Scheme) }},
			"data":  {cfg.DataUriReader, asIs},
		},
		writer: cfg.CloudStorageWriter,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.fetch(c, rawUrl, true)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.fetch(c, rawUrl, true)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithField("url", rawUrl).Warn("body is not json")
		return nil, domain.ErrInvalidJsonFormat
	}
	return data, nil
}

func (u *webResourceUseCase) fetch(c bCtx.Ctx, rawUrl string, fallback bool) ([]byte, error) {
	parsed, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{"url": rawUrl, "err": err}).Error("url.Parse failed")
		return nil, err
	}
	r, ok := u.routes[parsed.Scheme]
	if !ok || r.reader == nil {
		return nil, domain.ErrUnsupportedSchema
	}

	data, err := r.reader.Get(c, r.target(rawUrl))
	if err == nil {
		return data, nil
	}

	// content behind a failing gateway may still be reachable over ipfs
	if fallback && parsed.Scheme == "https" {
		if ipfsUrl, ok := ipfsuri.FromGatewayUrl(rawUrl); ok {
			c.WithFields(log.Fields{"url": rawUrl, "ipfsUrl": ipfsUrl}).Info("gateway failed, trying ipfs")
			return u.fetch(c, ipfsUrl, false)
		}
	}

	c.WithFields(log.Fields{"scheme": parsed.Scheme, "url": rawUrl, "err": err}).Error("fetch failed")
	return nil, err
}

func (u *webResourceUseCase) Archive(c bCtx.Ctx, path string, data []byte, contentType string) (string, error) {
	if u.writer == nil {
		return "", ErrArchiveNotConfigured
	}
	publicUrl, err := u.writer.Store(c, path, data, contentType)
	if err != nil {
		c.WithFields(log.Fields{"path": path, "err": err}).Error("writer.Store failed")
		return "", err
	}
	return publicUrl, nil
}
