package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sketchlab/internal/pendulum"
)

// TrailsToSVG writes every pendulum path of the field as its own polyline in
// the pendulum's colour. Trail points are relative to the canvas centre.
func TrailsToSVG(field *pendulum.Field, trail *pendulum.Trail, width, height int) string {
	cx, cy := float64(width)/2, float64(height)/2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
`, width, height, width, height))

	for i := 0; i < trail.Pendulums(); i++ {
		points := trail.Points(i)
		if len(points) < 2 {
			continue
		}

		stroke := "#ffffff"
		if i < len(field.Bobs) {
			stroke = field.Bobs[i].Color.Clamped().Hex()
		}
		sb.WriteString(fmt.Sprintf(`<path id="pendulum-%d" fill="none" stroke="%s" stroke-width="1.5" stroke-linejoin="round" d="M`, i, stroke))

		for j, p := range points {
			if j > 0 {
				sb.WriteString(" L")
			}
			sb.WriteString(fmt.Sprintf("%.2f,%.2f", cx+p.X, cy+p.Y))
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
