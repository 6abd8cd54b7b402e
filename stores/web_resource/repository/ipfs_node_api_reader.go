package repository

import (
	"errors"
	"io"
	"io/ioutil"
	"strings"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

var errEmptyIpfsPath = errors.New("empty ipfs path")

type ipfsNodeApiReaderRepo struct {
	shell   *ipfsapi.Shell
	timeout time.Duration
}

// NewIpfsNodeApiReaderRepo reads `cid[/path]` through the cat endpoint of a node's http api
func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsNodeApiReaderRepo{shell: s, timeout: timeout}
}

func (r *ipfsNodeApiReaderRepo) Get(c ctx.Ctx, path string) ([]byte, error) {
	// the node wants a bare cid path, gateway style /ipfs/ prefixes are dropped
	path = strings.TrimPrefix(strings.TrimPrefix(path, "/"), "ipfs/")
	if path == "" {
		return nil, errEmptyIpfsPath
	}

	tc, cancel := ctx.WithTimeout(c, r.timeout)
	defer cancel()

	resp, err := r.shell.Request("cat", path).Send(tc)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "path": path}).Error("cat request failed")
		return nil, err
	}
	defer resp.Close()
	if resp.Error != nil {
		c.WithFields(log.Fields{"err": resp.Error, "path": path}).Warn("node refused cat")
		return nil, resp.Error
	}
	return ioutil.ReadAll(io.LimitReader(resp.Output, MaxResourceSize))
}
