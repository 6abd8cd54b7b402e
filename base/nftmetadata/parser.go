package nftmetadata

import (
	"bytes"
	"encoding/json"

	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

// Parse reads a fetched metadata document. Only a payload that is not a
// json object fails; fields of unexpected types are left empty.
func Parse(data []byte) (*domain.MetadataDocument, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, domain.NewPipelineError(domain.ErrParse, "metadata is not a json object", domain.ErrInvalidJsonFormat)
	}

	doc := &domain.MetadataDocument{
		Name:        stringField(fields["name"]),
		Description: stringField(fields["description"]),
		Image:       stringField(fields["image"]),
		Attributes:  attributesField(fields["attributes"]),
	}
	return doc, nil
}

func stringField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func attributesField(raw json.RawMessage) []domain.Attribute {
	type rawAttribute struct {
		TraitType string      `json:"trait_type"`
		Value     interface{} `json:"value"`
	}

	attrs := []domain.Attribute{}
	if len(raw) == 0 {
		return attrs
	}

	var rawAttrs []rawAttribute
	decoder := json.NewDecoder(bytes.NewReader(raw))
	// keep numbers as written
	decoder.UseNumber()
	if err := decoder.Decode(&rawAttrs); err != nil {
		return attrs
	}
	for _, a := range rawAttrs {
		attrs = append(attrs, domain.Attribute{TraitType: a.TraitType, Value: a.Value})
	}
	return attrs
}
