// Package instrument generates the synthetic payment instrument issued
// to an account at signup. Values are randomly sampled, not checked
// for collisions, and not cryptographically unpredictable: this is a
// placeholder for a real issuance system and must not be reused as a
// security primitive.
package instrument

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
)

// Number returns four space-separated, zero-padded 4-digit groups.
func Number() string {
	groups := make([]string, 4)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04d", rand.IntN(10000))
	}
	return groups[0] + " " + groups[1] + " " + groups[2] + " " + groups[3]
}

// Expiry returns MM/YY for the current month, four years out.
func Expiry(now time.Time) string {
	year := (now.Year() + 4) % 100
	return fmt.Sprintf("%02d/%02d", int(now.Month()), year)
}

// CVV returns a zero-padded 3-digit security code.
func CVV() string {
	return fmt.Sprintf("%03d", rand.IntN(1000))
}

// Issue bundles a freshly generated instrument in the active state.
func Issue(now time.Time) domain.Card {
	return domain.Card{
		Number: Number(),
		Expiry: Expiry(now),
		CVV:    CVV(),
		Status: domain.CardActive,
	}
}
