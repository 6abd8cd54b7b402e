package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	hcdomain "github.com/Beat1ngHeart/Custom-NFT/domain/healthcheck"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mocks"
)

type fakeRepo struct {
	err error
}

func (f *fakeRepo) PingDB(c ctx.Ctx) error {
	return f.err
}

func TestCheck(t *testing.T) {
	tests := []struct {
		desc     string
		pingErr  error
		chainId  domain.ChainId
		chainErr error
		want     hcdomain.Report
	}{
		{"healthy", nil, 31337, nil, hcdomain.Report{"store": "ok", "chain": "ok"}},
		{"store down", errors.New("redis down"), 31337, nil, hcdomain.Report{"store": "redis down", "chain": "ok"}},
		{"node down", nil, 0, errors.New("connection refused"), hcdomain.Report{"store": "ok", "chain": "connection refused"}},
		{"wrong network", nil, 1, nil, hcdomain.Report{"store": "ok", "chain": "node serves chain 1, expected 31337"}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			chain := mocks.NewChainClient(t)
			chain.On("ChainId", mock.Anything).Return(tt.chainId, tt.chainErr).Once()

			res := New(&fakeRepo{tt.pingErr}, chain, 31337).Check(ctx.Background())
			require.Equal(t, tt.want, res)
			require.Equal(t, tt.pingErr == nil && tt.chainErr == nil && tt.chainId == 31337, res.Healthy())
		})
	}
}
