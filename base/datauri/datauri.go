package datauri

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"
)

const (
	Schema       = "data:"
	base64Suffix = ";base64"
)

var (
	ErrInvalidDataUri = xerrors.New("invalid data uri")
	ErrNoData         = xerrors.New("no data part provided")
)

// Decode parses data:[<mediatype>][;base64],<data> and returns the payload with its media type
func Decode(uri string) ([]byte, string, error) {
	if !strings.HasPrefix(uri, Schema) {
		return nil, "", ErrInvalidDataUri
	}
	uriParts := strings.SplitN(strings.TrimPrefix(uri, Schema), ",", 2)
	if len(uriParts) < 2 || len(uriParts[1]) == 0 {
		return nil, "", ErrNoData
	}

	header := uriParts[0]
	if strings.HasSuffix(header, base64Suffix) {
		data, err := base64.StdEncoding.DecodeString(uriParts[1])
		if err != nil {
			return nil, "", xerrors.Errorf("decode base64 payload: %w", err)
		}
		return data, strings.TrimSuffix(header, base64Suffix), nil
	}
	// treat as plain text
	return []byte(uriParts[1]), header, nil
}

// Encode returns data as a base64 data uri, the media type is sniffed from the content
func Encode(data []byte) string {
	mtype := mimetype.Detect(data)
	return Schema + mtype.String() + base64Suffix + "," + base64.StdEncoding.EncodeToString(data)
}
