// Package ipfsuri converts between the forms an IPFS reference takes: a bare
// cid, an ipfs:// uri and an http gateway url.
package ipfsuri

import (
	"regexp"
	"strings"
)

const (
	// Scheme prefixes an ipfs uri
	Scheme = "ipfs://"
	// DefaultGateway resolves cids through pinata's public gateway
	DefaultGateway = "https://gateway.pinata.cloud/ipfs/"
)

var (
	gatewayPathRegex     = regexp.MustCompile(`ipfs/([^/?]+)`)
	knownGateways        = []string{DefaultGateway, "https://ipfs.io/ipfs/", "https://cloudflare-ipfs.com/ipfs/", "https://ipfs.foundation.app/ipfs/"}
	dedicatedPinataRegex = regexp.MustCompile(`^https://.*.mypinata.cloud/ipfs/`)
)

// Normalize reduces a reference to the bare cid the nft contract expects.
//   - http(s) urls with an ipfs/<cid> path yield <cid>, dropping any sub path or query
//   - ipfs://<cid> yields <cid>
//   - anything else is returned as is
func Normalize(ref string) string {
	if strings.HasPrefix(ref, "http") {
		if m := gatewayPathRegex.FindStringSubmatch(ref); m != nil {
			return m[1]
		}
	}
	if strings.HasPrefix(ref, Scheme) {
		return strings.Replace(ref, Scheme, "", 1)
	}
	return ref
}

// GatewayUrl makes ref fetchable over http. ipfs uris and bare cids are
// resolved through gateway, http urls are kept.
func GatewayUrl(gateway, ref string) string {
	if len(gateway) == 0 {
		gateway = DefaultGateway
	}
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	switch {
	case strings.HasPrefix(ref, Scheme):
		return gateway + strings.Replace(ref, Scheme, "", 1)
	case strings.HasPrefix(ref, "http"):
		return ref
	default:
		return gateway + ref
	}
}

// ToUri returns the ipfs:// form of cid
func ToUri(cid string) string {
	return Scheme + cid
}

// FromGatewayUrl maps a url on a well known gateway back to its ipfs:// uri, ok is false for other urls
func FromGatewayUrl(url string) (string, bool) {
	for _, p := range knownGateways {
		if strings.HasPrefix(url, p) {
			return strings.Replace(url, p, Scheme, 1), true
		}
	}
	if dedicatedPinataRegex.MatchString(url) {
		return dedicatedPinataRegex.ReplaceAllLiteralString(url, Scheme), true
	}
	return "", false
}
