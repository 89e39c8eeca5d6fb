package hash

import (
	"encoding/binary"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestStreamMatchesFramedDigest(t *testing.T) {
	records := [][]byte{
		[]byte("alpha"),
		[]byte("beta"),
		{},
		[]byte("gamma"),
	}

	s := NewStream()
	for _, rec := range records {
		s.WriteRecord(rec)
	}

	want := xxhash.New()
	var prefix [binary.MaxVarintLen64]byte
	for _, rec := range records {
		n := binary.PutUvarint(prefix[:], uint64(len(rec)))
		_, _ = want.Write(prefix[:n])
		_, _ = want.Write(rec)
	}

	require.Equal(t, want.Sum64(), s.Sum64())
}

func TestStreamDeterministic(t *testing.T) {
	s1 := NewStream()
	s2 := NewStream()
	for _, rec := range [][]byte{[]byte("x"), []byte("yz")} {
		s1.WriteRecord(rec)
		s2.WriteRecord(rec)
	}

	require.Equal(t, s1.Sum64(), s2.Sum64())
}

func TestStreamFramingSeparatesBoundaries(t *testing.T) {
	// Same concatenated bytes, different record boundaries.
	s1 := NewStream()
	s1.WriteRecord([]byte("ab"))

	s2 := NewStream()
	s2.WriteRecord([]byte("a"))
	s2.WriteRecord([]byte("b"))

	require.NotEqual(t, s1.Sum64(), s2.Sum64())
}

func TestStreamOrderSensitive(t *testing.T) {
	s1 := NewStream()
	s1.WriteRecord([]byte("a"))
	s1.WriteRecord([]byte("b"))

	s2 := NewStream()
	s2.WriteRecord([]byte("b"))
	s2.WriteRecord([]byte("a"))

	require.NotEqual(t, s1.Sum64(), s2.Sum64())
}

func TestStreamReset(t *testing.T) {
	s := NewStream()
	s.WriteRecord([]byte("stale"))
	s.Reset()
	s.WriteRecord([]byte("fresh"))

	want := NewStream()
	want.WriteRecord([]byte("fresh"))

	require.Equal(t, want.Sum64(), s.Sum64())
}
