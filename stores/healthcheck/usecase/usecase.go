package usecase

import (
	"fmt"
	"time"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	hcdomain "github.com/Beat1ngHeart/Custom-NFT/domain/healthcheck"
)

const chainTimeout = 3 * time.Second

type impl struct {
	repo    hcdomain.HealthCheckRepo
	chain   domain.ChainClient
	// chainId is the network the node must serve, zero accepts any
	chainId domain.ChainId
}

func New(repo hcdomain.HealthCheckRepo, chain domain.ChainClient, chainId domain.ChainId) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:    repo,
		chain:   chain,
		chainId: chainId,
	}
}

func (im *impl) Check(c ctx.Ctx) hcdomain.Report {
	report := hcdomain.Report{
		hcdomain.CheckStore: "ok",
		hcdomain.CheckChain: "ok",
	}

	if err := im.repo.PingDB(c); err != nil {
		report[hcdomain.CheckStore] = err.Error()
	}

	tc, cancel := ctx.WithTimeout(c, chainTimeout)
	defer cancel()
	if id, err := im.chain.ChainId(tc); err != nil {
		c.WithField("err", err).Warn("chain.ChainId failed")
		report[hcdomain.CheckChain] = err.Error()
	} else if im.chainId != 0 && id != im.chainId {
		report[hcdomain.CheckChain] = fmt.Sprintf("node serves chain %d, expected %d", id, im.chainId)
	}
	return report
}
