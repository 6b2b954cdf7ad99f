package types

import (
	"os"
	"strings"
)

// AllowedOrigins is the cross-origin allow list for the API. The Vite
// dev server is always permitted; deployed frontends are added through
// CLIENT_URL or the comma-separated ALLOWED_ORIGINS.
var AllowedOrigins = allowedOrigins()

func allowedOrigins() []string {
	origins := []string{"http://localhost:5173"}

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
