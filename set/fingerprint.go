package set

import (
	"github.com/senderista/rotated-array-set/internal/hash"
	"github.com/senderista/rotated-array-set/internal/pool"
)

// Fingerprint returns a 64-bit xxHash64 digest of the set's contents in
// ascending order. Two sets with equal elements under the same encoding
// produce the same fingerprint regardless of insertion history, making it a
// cheap equality probe across replicas or snapshots.
//
// encode appends v's byte representation to dst and returns the extended
// slice, in the manner of binary.Append. The encoding does not need to be
// self-delimiting: each element is length-framed before hashing.
//
// Example:
//
//	fp := s.Fingerprint(func(dst []byte, v int64) []byte {
//	    return binary.BigEndian.AppendUint64(dst, uint64(v))
//	})
//
// O(n) plus one encode call per element; the scratch buffer is pooled, so
// steady-state fingerprinting does not allocate.
func (s *Set[T]) Fingerprint(encode func(dst []byte, v T) []byte) uint64 {
	st := hash.NewStream()
	buf := pool.GetScratch()
	defer pool.PutScratch(buf)

	for v := range s.All() {
		buf.B = encode(buf.B[:0], v)
		st.WriteRecord(buf.B)
	}

	return st.Sum64()
}
