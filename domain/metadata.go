package domain

// Attribute is one trait of a metadata document, Value is a string or a number
type Attribute struct {
	TraitType string      `json:"trait_type" bson:"trait_type"`
	Value     interface{} `json:"value" bson:"value"`
}

// MetadataDocument follows the ERC-721 metadata JSON schema
type MetadataDocument struct {
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description" bson:"description"`
	Image       string      `json:"image" bson:"image"`
	Attributes  []Attribute `json:"attributes" bson:"attributes"`
}
