package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"ride-route-service/internal/domain"
)

// Fingerprint derives a stable cache key from the strategy and the flattened
// location list. Equal problems (same driver, same passengers in the same
// order) planned with the same strategy share a key.
func Fingerprint(strategy Strategy, stops []domain.Stop) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\n", strategy)
	for _, s := range stops {
		fmt.Fprintf(h, "%d:%s:%.9f:%.9f\n", s.Index, s.Type, s.Location.Lon, s.Location.Lat)
	}
	return hex.EncodeToString(h.Sum(nil))
}
