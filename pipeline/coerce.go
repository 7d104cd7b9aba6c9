package pipeline

import (
	"strconv"
	"strings"
)

// MissingToken is the literal the source dumps use for "unknown".
const MissingToken = `\N`

// CoerceYear collapses the catalog's year encodings into one absence
// representation. The source stores unknown years as nil, "", or the "\N"
// token, and known years as either numeric scalars or digit strings; all of
// them must normalize before any range comparison. Unconvertible input is
// treated as absent, never as an error.
func CoerceYear(v any) *int {
	switch y := v.(type) {
	case nil:
		return nil
	case int:
		return &y
	case int32:
		n := int(y)
		return &n
	case int64:
		n := int(y)
		return &n
	case float64:
		// Truncates toward zero, matching integer conversion of the
		// source's float-encoded years.
		n := int(y)
		return &n
	case string:
		s := strings.TrimSpace(y)
		if s == "" || s == MissingToken {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}
