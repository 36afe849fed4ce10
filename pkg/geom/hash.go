package geom

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit hash of the box, combining both corner vectors.
// Equal boxes always hash to the same value. The hash is stable within a
// process run and across runs: it is xxHash64 over the six components in
// fixed little-endian order.
func (b Box) Hash() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(b.Min.X))
	binary.LittleEndian.PutUint32(buf[4:], uint32(b.Min.Y))
	binary.LittleEndian.PutUint32(buf[8:], uint32(b.Min.Z))
	binary.LittleEndian.PutUint32(buf[12:], uint32(b.Max.X))
	binary.LittleEndian.PutUint32(buf[16:], uint32(b.Max.Y))
	binary.LittleEndian.PutUint32(buf[20:], uint32(b.Max.Z))
	return xxhash.Sum64(buf[:])
}
