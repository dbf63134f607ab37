package shared

import (
	"strings"
)

// BuildCacheKey joins the given parts into a namespaced redis key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}
