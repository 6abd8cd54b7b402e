package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxMetadata is used for prefixing cached metadata documents
	PfxMetadata = "metadata"
	// PfxEns is used for prefixing cached ens resolutions
	PfxEns = "ens"

	// ListingsKey holds the json array of all active listings
	ListingsKey = "products"
	// ContractAddressKey holds the address of the last deployed nft contract
	ContractAddressKey = "nft_contract_address"
)

// ListingsChannel is the pub/sub channel announcing writes to ListingsKey
var ListingsChannel = RedisKey(ListingsKey, "updated")

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}
