package physics

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/arena/pkg/generic"
)

var digests = generic.NewPool(xxhash.New)

// Checksum hashes the bit patterns of every particle and color. Two worlds
// with equal checksums hold bit-identical entity tables.
func (w *World) Checksum() uint64 {
	d := digests.Get()
	defer digests.Put(d)
	d.Reset()

	var buf [23]byte
	for i, p := range w.particles {
		binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(p.Pos.X))
		binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(p.Pos.Y))
		binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(p.Vel.X))
		binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(p.Vel.Y))
		binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(p.Radius))
		c := w.colors[i]
		buf[20], buf[21], buf[22] = c.R, c.G, c.B
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
