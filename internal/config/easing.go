package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"out-sine":     ease.OutSine,
	"out-expo":     ease.OutExpo,
	"out-back":     ease.OutBack,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
}

// EasingByName looks up an easing function. An empty name means linear.
func EasingByName(name string) (ease.TweenFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (known: %s)", name, strings.Join(EasingNames(), ", "))
	}
	return fn, nil
}

// EasingNames lists the accepted easing names, sorted
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
