package render

import (
	"fmt"
	"strings"

	"github.com/muhzinmohammed/infinite-canvas-notes/physics"
)

const (
	// StringStrokeWidth is the visible stroke; HitStrokeWidth is the wide
	// transparent stroke drawn over the same path so a 2px string is still
	// easy to hover and click.
	StringStrokeWidth = 2.0
	HitStrokeWidth    = 14.0

	EndpointRadius = 5.0
)

// StringPath builds an SVG path d-attribute through the chain points,
// smoothed with quadratic segments through successive midpoints so the
// polyline doesn't show its joints. The client reuses the same d for the
// visible stroke and the hit-region stroke.
func StringPath(points []physics.Point) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f", points[0].X, points[0].Y)
	for i := 1; i < len(points)-1; i++ {
		mx := (points[i].X + points[i+1].X) / 2
		my := (points[i].Y + points[i+1].Y) / 2
		fmt.Fprintf(&b, " Q %.2f %.2f %.2f %.2f", points[i].X, points[i].Y, mx, my)
	}
	if len(points) > 1 {
		last := points[len(points)-1]
		fmt.Fprintf(&b, " L %.2f %.2f", last.X, last.Y)
	}
	return b.String()
}
