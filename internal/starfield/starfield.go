// Package starfield generates the decorative animated background: twinkling
// stars plus a sun (light mode) or moon (dark mode).
package starfield

import (
	"math/rand/v2"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/theme"
)

// DefaultCount is the number of stars drawn on the page.
const DefaultCount = 100

type Star struct {
	ID       int
	X, Y     float64 // percent of the viewport
	Size     float64 // px
	Delay    float64 // s
	Duration float64 // s
	Opacity  float64
}

type Ray struct {
	Angle int     // degrees
	Delay float64 // s
}

// Body is the sun or the moon.
type Body struct {
	Kind     string
	Period   int // seconds per full rotation
	Gradient string
	Glow     string
	Rays     []Ray
}

type Scene struct {
	Visuals theme.Visuals
	Stars   []Star
	Body    Body
}

// Generate returns n stars drawn from rng. A negative n yields no stars.
func Generate(rng *rand.Rand, n int) []Star {
	stars := make([]Star, max(n, 0))
	for i := range stars {
		stars[i] = Star{
			ID:       i,
			X:        rng.Float64() * 100,
			Y:        rng.Float64() * 100,
			Size:     rng.Float64()*3 + 1,
			Delay:    rng.Float64() * 5,
			Duration: 4 + rng.Float64()*2,
			Opacity:  rng.Float64()*0.8 + 0.2,
		}
	}
	return stars
}

// NewScene assembles the background for the state's current mode.
func NewScene(st *theme.State, stars []Star) Scene {
	v := st.Visuals()
	return Scene{Visuals: v, Stars: stars, Body: bodyFor(v.Celestial)}
}

func bodyFor(kind string) Body {
	if kind == "sun" {
		rays := make([]Ray, 8)
		for i := range rays {
			rays[i] = Ray{Angle: i * 45, Delay: float64(i) * 0.3}
		}
		return Body{
			Kind:     "sun",
			Period:   60,
			Gradient: "radial-gradient(circle at 35% 35%, #FFEB3B 0%, #FFC107 15%, #FF9800 35%, #FF6F00 60%, #E65100 85%, #BF360C 100%)",
			Glow:     "0 0 120px rgba(255, 193, 7, 0.6), 0 0 200px rgba(255, 152, 0, 0.4), 0 0 300px rgba(255, 111, 0, 0.2)",
			Rays:     rays,
		}
	}
	return Body{
		Kind:     "moon",
		Period:   120,
		Gradient: "radial-gradient(circle at 35% 30%, #F8F8F8 0%, #E0E0E0 25%, #BDBDBD 50%, #9E9E9E 75%, #757575 100%)",
		Glow:     "0 0 60px rgba(245, 245, 245, 0.15), inset -25px -25px 50px rgba(0, 0, 0, 0.4)",
	}
}
