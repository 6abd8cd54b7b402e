package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// ToDomainAddress converts to the lower case hex form used across the domain
func ToDomainAddress(addr common.Address) Address {
	return Address(strings.ToLower(addr.Hex()))
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok || id.Sign() < 0 {
		return nil, xerrors.Errorf("invalid token id %s", i)
	}
	return id, nil
}

type TxHash string

// Cid is an IPFS content identifier in its bare form
type Cid string

func (c Cid) String() string {
	return string(c)
}

// ContentRef is a pinned piece of content. Url is derived from Cid by the pinning client.
type ContentRef struct {
	Cid Cid    `json:"cid" bson:"cid"`
	Url string `json:"url" bson:"url"`
}
