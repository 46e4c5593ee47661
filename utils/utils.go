package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"inventory-app/models"

	"golang.org/x/exp/slices"
)

// HashPassword returns the hex sha256 digest of a plaintext password. The
// users table stores this digest and login matches on username AND digest, so
// the hash has to stay deterministic and unsalted.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// ParseHubs splits the delimited hubs column into hub codes. The ALL sentinel
// is returned as-is in a single-element slice.
func ParseHubs(hubs string) []string {
	if hubs == "" {
		return nil
	}
	var codes []string
	for _, h := range strings.Split(hubs, ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			codes = append(codes, h)
		}
	}
	return codes
}

// HasHubAccess reports whether a hubs column value authorizes a hub code.
func HasHubAccess(hubs, hub string) bool {
	if hubs == models.HubsAll {
		return true
	}
	return slices.Contains(ParseHubs(hubs), hub)
}
