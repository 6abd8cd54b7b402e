package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/keys"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache/provider"
)

type resolveFunc func(name string) (common.Address, error)

type impl struct {
	resolve resolveFunc
	cache   cache.Service
}

// New resolves names against backend, results are kept in cacheProvider for ttl
func New(backend bind.ContractBackend, cacheProvider provider.Provider, ttl time.Duration) ENS {
	return newImpl(func(name string) (common.Address, error) {
		return goens.Resolve(backend, name)
	}, cacheProvider, ttl)
}

func newImpl(resolve resolveFunc, cacheProvider provider.Provider, ttl time.Duration) *impl {
	return &impl{
		resolve: resolve,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxEns,
			Cache: cacheProvider,
		}),
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := keys.RedisKey("resolve", name)
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolve(name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.EmptyAddress
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		val := domain.ToDomainAddress(addr)
		return &val, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}
