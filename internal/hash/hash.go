// Package hash derives order-sensitive fingerprints from streams of encoded
// elements, it uses xxHash64 to generate hash values.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Stream folds a sequence of encoded records into one xxHash64 value.
//
// Each record is framed with a uvarint length prefix before being fed to the
// digest, so record boundaries are part of the hash input and two different
// record sequences cannot collapse onto the same concatenated byte stream.
type Stream struct {
	d      *xxhash.Digest
	prefix [binary.MaxVarintLen64]byte
}

// NewStream returns a Stream ready to accept records.
func NewStream() *Stream {
	return &Stream{d: xxhash.New()}
}

// Reset restores the stream to its initial state.
func (s *Stream) Reset() {
	s.d.Reset()
}

// WriteRecord feeds one encoded element to the digest, framed by its length.
func (s *Stream) WriteRecord(rec []byte) {
	n := binary.PutUvarint(s.prefix[:], uint64(len(rec)))
	_, _ = s.d.Write(s.prefix[:n])
	_, _ = s.d.Write(rec)
}

// Sum64 returns the fingerprint of everything written since the last Reset.
func (s *Stream) Sum64() uint64 {
	return s.d.Sum64()
}
