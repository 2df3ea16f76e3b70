package allowlist

import "github.com/aleister1102/secretgate/internal/models"

// Suppress stamps each finding with its identity and splits the findings into
// those that block the commit and those acknowledged by the allowlist. Input
// order is preserved within each group.
func Suppress(findings []models.SecretFinding, allowed Set) (blocking, suppressed []models.SecretFinding) {
	for _, f := range findings {
		f.Identity = Identity(f.SecretText)
		if allowed.Contains(f.Identity) {
			suppressed = append(suppressed, f)
			continue
		}
		blocking = append(blocking, f)
	}
	return blocking, suppressed
}
