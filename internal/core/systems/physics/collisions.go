package physics

import (
	"sort"

	"github.com/zeusync/arena/pkg/sequence"
)

// resolve tests the stored pair (i, j) and writes any outcome back through the
// store. Both sides are addressed by index into the same slice.
func (w *World) resolve(i, j int) bool {
	c, ok := w.particles[i].Collide(w.particles[j])
	if !ok {
		return false
	}

	w.particles[i].Vel = c.Vel1.Scale(ContactDamping)
	w.particles[j].Vel = c.Vel2.Scale(ContactDamping)
	w.particles[i].Pos = c.Pos1
	w.particles[j].Pos = c.Pos2

	if w.onContact != nil {
		w.onContact(i, j)
	}
	return true
}

func (w *World) collideAllPairs() uint32 {
	var checks uint32
	for i, j := range sequence.NewPairs(0, len(w.particles)).All() {
		w.resolve(i, j)
		checks++
	}
	return checks
}

func (w *World) collideSweepAndPrune() uint32 {
	sort.Stable(byLeftBound{w})

	var checks uint32
	n := len(w.particles)
	for i1 := 0; i1 < n; i1++ {
		for i2 := i1 + 1; i2 < n; i2++ {
			if w.particles[i1].RightBound() < w.particles[i2].LeftBound() {
				break
			}
			if w.resolve(i1, i2) {
				w.colors[i1].R--
				w.colors[i2].B++
			}
			checks++
		}
	}
	return checks
}

// byLeftBound orders the entity table by the integer part of each particle's
// left bound, moving colors together with their particles.
type byLeftBound struct{ w *World }

func (s byLeftBound) Len() int { return len(s.w.particles) }

func (s byLeftBound) Less(i, j int) bool {
	return sortKey(s.w.particles[i]) < sortKey(s.w.particles[j])
}

func (s byLeftBound) Swap(i, j int) {
	s.w.particles[i], s.w.particles[j] = s.w.particles[j], s.w.particles[i]
	s.w.colors[i], s.w.colors[j] = s.w.colors[j], s.w.colors[i]
}

// sortKey truncates the left bound toward zero. Particles whose bounds share
// an integer part keep their previous relative order.
func sortKey(p Particle) int32 {
	return int32(p.LeftBound())
}
