// Package bvh builds a bounding-volume hierarchy over a triangle soup and
// answers ray and segment queries against it: the line-of-sight engine
// described in the design's component B.
package bvh

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/arl/meetpoint/internal/geom"
)

// triBytes is the on-disk size of one triangle: nine little-endian
// float32s, no header and no count.
const triBytes = 9 * 4

// LoadTriFile reads a triangle soup from a .tri file: a contiguous run of
// 36-byte records, each nine little-endian float32s (p1, p2, p3). The
// format carries no header and no count; the stream ends at EOF. A
// trailing partial record (fewer than 36 bytes remaining) is silently
// ignored, matching the reference loader's buffered-read behavior.
func LoadTriFile(r io.Reader) ([]geom.Triangle, error) {
	var tris []geom.Triangle
	buf := make([]byte, triBytes)

	for {
		n, err := io.ReadFull(r, buf)
		if n == triBytes {
			var v [9]float64
			for i := 0; i < 9; i++ {
				bits := binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
				v[i] = float64(math.Float32frombits(bits))
			}
			tris = append(tris, geom.Triangle{
				P1: geom.NewPosition(v[0], v[1], v[2]),
				P2: geom.NewPosition(v[3], v[4], v[5]),
				P3: geom.NewPosition(v[6], v[7], v[8]),
			})
		}
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return tris, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
