package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		desc     RequestDescriptor
		expected Strategy
	}{
		{"navigation", RequestDescriptor{Navigation: true, Path: "/personal-injury-chicago"}, StrategyNetworkFirst},
		{"html accept header", RequestDescriptor{Accept: "text/html,application/xhtml+xml", Path: "/about"}, StrategyNetworkFirst},
		{"image destination", RequestDescriptor{Destination: "image", Path: "/assets/hero"}, StrategyCacheFirstImage},
		{"png extension", RequestDescriptor{Path: "/assets/img/team.png"}, StrategyCacheFirstImage},
		{"webp extension", RequestDescriptor{Path: "/assets/img/office.webp"}, StrategyCacheFirstImage},
		{"stylesheet", RequestDescriptor{Path: "/assets/css/main.css"}, StrategyCacheFirst},
		{"script", RequestDescriptor{Path: "/assets/js/main.js"}, StrategyCacheFirst},
		{"font", RequestDescriptor{Path: "/assets/fonts/serif.woff2"}, StrategyCacheFirst},
		{"api call falls through", RequestDescriptor{Path: "/v1/health", Accept: "application/json"}, StrategyNetworkFirst},
		{"extensionless asset", RequestDescriptor{Path: "/manifest"}, StrategyNetworkFirst},
		{"navigation to image path stays network-first", RequestDescriptor{Navigation: true, Path: "/gallery.png"}, StrategyNetworkFirst},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.desc))
		})
	}
}
