package export

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedBundle is returned by ReadBundleIndex for data that is not a
// well-formed ICNS bundle.
var ErrMalformedBundle = errors.New("export: malformed icns bundle")

// BundleEntry is one chunk of an ICNS bundle.
type BundleEntry struct {
	Type   string // four-character OSType
	Length uint32 // chunk length including its 8-byte header
}

// ReadBundleIndex lists the chunks of an ICNS bundle in file order without
// decoding their images.
func ReadBundleIndex(r io.Reader) ([]BundleEntry, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedBundle, err)
	}
	if string(hdr[:4]) != "icns" {
		return nil, fmt.Errorf("%w: magic %q", ErrMalformedBundle, hdr[:4])
	}
	total := binary.BigEndian.Uint32(hdr[4:])
	if total < 8 {
		return nil, fmt.Errorf("%w: length %d", ErrMalformedBundle, total)
	}

	var entries []BundleEntry
	for read := uint32(8); read < total; {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return nil, fmt.Errorf("%w: chunk at %d: %v", ErrMalformedBundle, read, err)
		}
		e := BundleEntry{Type: string(hdr[:4]), Length: binary.BigEndian.Uint32(hdr[4:])}
		if e.Length < 8 || e.Length > total-read {
			return nil, fmt.Errorf("%w: chunk %q at %d has length %d", ErrMalformedBundle, e.Type, read, e.Length)
		}
		if _, err := io.CopyN(io.Discard, r, int64(e.Length-8)); err != nil {
			return nil, fmt.Errorf("%w: chunk %q: %v", ErrMalformedBundle, e.Type, err)
		}
		entries = append(entries, e)
		read += e.Length
	}
	return entries, nil
}
