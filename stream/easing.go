package stream

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fogleman/ease"
)

// An EasingFunc maps linear progress in [0, 1] to eased progress in [0, 1].
type EasingFunc func(t float64) float64

// Monotonic curves that stay inside [0, 1].
var easings = map[string]EasingFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"inquart":    ease.InQuart,
	"outquart":   ease.OutQuart,
	"inoutquart": ease.InOutQuart,
	"inquint":    ease.InQuint,
	"outquint":   ease.OutQuint,
	"inoutquint": ease.InOutQuint,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"inexpo":     ease.InExpo,
	"outexpo":    ease.OutExpo,
	"inoutexpo":  ease.InOutExpo,
	"incirc":     ease.InCirc,
	"outcirc":    ease.OutCirc,
	"inoutcirc":  ease.InOutCirc,
}

// LookupEasing finds an easing curve by name. Names are case-insensitive and
// may use dashes or underscores, so "in-out-quad" and "InOutQuad" match.
// An empty name is linear.
func LookupEasing(name string) (EasingFunc, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if key == "" {
		return ease.Linear, nil
	}

	fn, ok := easings[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown easing %q", ErrInvalidConfiguration, name)
	}
	return fn, nil
}

// EasingNames lists the registered easing names.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
