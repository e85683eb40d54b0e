package cache

import (
	"path"
	"strings"
)

// Strategy selects how an intercepted request is served.
type Strategy string

const (
	// StrategyNetworkFirst prefers the live origin, falling back to cache.
	StrategyNetworkFirst Strategy = "network-first"
	// StrategyCacheFirst serves from the static partition, filling on miss.
	StrategyCacheFirst Strategy = "cache-first"
	// StrategyCacheFirstImage is cache-first against the bounded image partition.
	StrategyCacheFirstImage Strategy = "cache-first-image"
)

// RequestDescriptor is the minimal, transport-agnostic shape of an
// intercepted request. Keeping classification a pure function of this struct
// keeps the policy testable apart from the serving plumbing.
type RequestDescriptor struct {
	Method      string
	Navigation  bool   // top-level page navigation
	Destination string // "image", "style", "script", "font", "document", ""
	Accept      string
	Path        string
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".ico":  true,
	".avif": true,
}

var staticExtensions = map[string]bool{
	".css":   true,
	".js":    true,
	".mjs":   true,
	".woff":  true,
	".woff2": true,
	".ttf":   true,
	".otf":   true,
}

// Classify maps a request to its caching strategy. Navigations and anything
// negotiating HTML go network-first so pages stay fresh; images and fixed
// assets are cheap to serve stale.
func Classify(d RequestDescriptor) Strategy {
	if d.Navigation || strings.Contains(d.Accept, "text/html") {
		return StrategyNetworkFirst
	}
	ext := strings.ToLower(path.Ext(d.Path))
	if d.Destination == "image" || imageExtensions[ext] {
		return StrategyCacheFirstImage
	}
	if staticExtensions[ext] {
		return StrategyCacheFirst
	}
	return StrategyNetworkFirst
}
