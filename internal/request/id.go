package request

import (
	"net/http"
	"strconv"
	"strings"
)

// ParseID parses a positive int64 identifier from a path or query value.
func ParseID(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// PathID parses a positive int64 identifier from a route path value.
func PathID(r *http.Request, name string) (int64, bool) {
	return ParseID(r.PathValue(name))
}
