package contract

import (
	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

type Deployment struct {
	Address    domain.Address `json:"address"`
	TxHash     domain.TxHash  `json:"txHash"`
	EnvContent string         `json:"envContent"`
}

// Repository keeps the address of the last deployed contract
type Repository interface {
	Get(c ctx.Ctx) (domain.Address, error)
	Set(c ctx.Ctx, addr domain.Address) error
}

// AddressProvider resolves the nft contract in use
type AddressProvider interface {
	ContractAddress(c ctx.Ctx) (domain.Address, error)
}

type UseCase interface {
	AddressProvider
	Deploy(c ctx.Ctx, bytecode string) (*Deployment, error)
}
