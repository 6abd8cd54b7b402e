package repository

import (
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	bCtx "github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

const archiveCacheControl = "public, max-age=86400"

type CloudStorageWriterRepoCfg struct {
	Timeout    time.Duration
	Client     *storage.Client
	BucketName string
	// Url is the public base the bucket is served from, defaults to storage.googleapis.com
	Url string
}

type cloudStorageWriterRepo struct {
	bucket  *storage.BucketHandle
	timeout time.Duration
	baseUrl *url.URL
}

func NewCloudStorageWriterRepo(cfg *CloudStorageWriterRepoCfg) (domain.WebResourceWriterRepository, error) {
	rawUrl := cfg.Url
	if rawUrl == "" {
		rawUrl = "https://storage.googleapis.com/" + cfg.BucketName + "/"
	}
	baseUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}

	r := &cloudStorageWriterRepo{timeout: cfg.Timeout, baseUrl: baseUrl}
	if cfg.Client != nil {
		r.bucket = cfg.Client.Bucket(cfg.BucketName)
	}
	return r, nil
}

// Store uploads body as object path and returns the public url of the object
func (r *cloudStorageWriterRepo) Store(c bCtx.Ctx, path string, body []byte, contentType string) (string, error) {
	path = strings.TrimPrefix(path, "/")
	ref, err := url.Parse(path)
	if err != nil {
		c.WithFields(log.Fields{"path": path, "err": err}).Error("url.Parse failed")
		return "", err
	}

	tc, cancel := bCtx.WithTimeout(c, r.timeout)
	defer cancel()

	w := r.bucket.Object(path).NewWriter(tc)
	w.CacheControl = archiveCacheControl
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := w.Write(body); err != nil {
		c.WithFields(log.Fields{"path": path, "err": err}).Error("object write failed")
		_ = w.Close()
		return "", err
	}
	// the upload is only committed on Close
	if err := w.Close(); err != nil {
		c.WithFields(log.Fields{"path": path, "err": err}).Error("object commit failed")
		return "", err
	}
	return r.baseUrl.ResolveReference(ref).String(), nil
}
