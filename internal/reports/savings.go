package reports

import (
	"strings"

	"github.com/ryanuber/go-glob"
)

// savingsPattern matches category names that represent money moved to
// savings rather than spent. This is a naming convention carried over
// from the data, not a stored flag; keep all matching behind
// IsSavingsCategory so a real category attribute can replace it later.
const savingsPattern = "*spar*"

// IsSavingsCategory reports whether a category name marks the category
// as a savings category. Matching is case-insensitive.
func IsSavingsCategory(name string) bool {
	return glob.Glob(savingsPattern, strings.ToLower(name))
}
