package parsing

import (
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"
)

// FirstText returns the first truthy string or number candidate as
// NFC-normalised text, or fallback when none is set.
func FirstText(fallback string, candidates ...gjson.Result) string {
	for _, c := range candidates {
		if !Truthy(c) || c.Type == gjson.JSON || c.Type == gjson.True {
			continue
		}
		s := strings.TrimSpace(norm.NFC.String(c.String()))
		if s != "" {
			return s
		}
	}
	return fallback
}
