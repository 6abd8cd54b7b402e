package nftmetadata

import (
	"encoding/json"

	"github.com/Beat1ngHeart/Custom-NFT/base/ipfsuri"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

const (
	DefaultName        = "Untitled"
	DefaultDescription = "This is an NFT listing"
)

// Build assembles the metadata document of a pinned asset. Identical inputs
// give identical documents, so pinning them again yields the same cid.
func Build(name, description string, attributes []domain.Attribute, pinnedAssetCid domain.Cid) *domain.MetadataDocument {
	if len(name) == 0 {
		name = DefaultName
	}
	if len(description) == 0 {
		description = DefaultDescription
	}
	attrs := make([]domain.Attribute, len(attributes))
	copy(attrs, attributes)

	return &domain.MetadataDocument{
		Name:        name,
		Description: description,
		Image:       ipfsuri.ToUri(pinnedAssetCid.String()),
		Attributes:  attrs,
	}
}

// Encode returns the canonical json form of doc
func Encode(doc *domain.MetadataDocument) ([]byte, error) {
	if doc.Attributes == nil {
		clone := *doc
		clone.Attributes = []domain.Attribute{}
		doc = &clone
	}
	return json.Marshal(doc)
}
