package helpers

import (
	"fmt"
	"net/http"
	"strconv"
)

// Limits for the upcoming-events query parameter.
const (
	DefaultUpcomingLimit = 3
	MaxUpcomingLimit     = 50
)

// PathID reads the named path value as a positive int64 id.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// ParseLimit reads limit from the query string and clamps it to [1, MaxUpcomingLimit].
// Missing or malformed values fall back to DefaultUpcomingLimit.
func ParseLimit(r *http.Request) int {
	limit := DefaultUpcomingLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = v
			if limit > MaxUpcomingLimit {
				limit = MaxUpcomingLimit
			}
		}
	}
	return limit
}
