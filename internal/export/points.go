package export

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ha1tch/nestdraw/internal/geom"
)

// ParsePoints reads anchors written as "x,y;x,y;..." in normalized
// editor space.
func ParsePoints(s string) ([]geom.Vec2, error) {
	var pts []geom.Vec2
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, errors.Errorf("point %q: want x,y", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
		if err != nil {
			return nil, errors.Wrapf(err, "point %q", pair)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
		if err != nil {
			return nil, errors.Wrapf(err, "point %q", pair)
		}
		pts = append(pts, geom.V(float32(x), float32(y)))
	}
	return pts, nil
}
