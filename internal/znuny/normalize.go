package znuny

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

var idSuffixPattern = regexp.MustCompile(`([a-z])ID`)

// normalize rewrites every mapping key in a decoded response to one casing
// convention: leading character lower-cased, and "ID" following a lowercase
// letter rewritten to "Id" (TicketID becomes ticketId). The platform mixes
// conventions freely depending on the endpoint, so the whole tree gets the
// same treatment. Sequence indices and scalar values pass through unchanged.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, nested := range val {
			out[normalizeKey(k)] = normalize(nested)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, nested := range val {
			out[i] = normalize(nested)
		}
		return out
	default:
		return v
	}
}

func normalizeKey(key string) string {
	first, size := utf8.DecodeRuneInString(key)
	if first == utf8.RuneError {
		return key
	}

	key = string(unicode.ToLower(first)) + key[size:]
	return idSuffixPattern.ReplaceAllString(key, "${1}Id")
}
