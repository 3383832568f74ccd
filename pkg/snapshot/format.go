package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// Magic bytes to identify our file format
	MagicBytes = "GREC"
	// Current version
	FormatVersion = 1
	// File extension for snapshot files
	FileExtension = ".grec"
)

const (
	// FlagCompressed marks an LZ4-compressed payload. Payloads LZ4 cannot
	// shrink are stored raw.
	FlagCompressed uint8 = 1 << iota
)

// FileHeader represents the header of a snapshot file
type FileHeader struct {
	Magic    [4]byte // "GREC"
	Version  uint8   // Format version
	Flags    uint8
	Reserved [2]byte
	Length   uint32 // Uncompressed payload length
}

// WriteHeader writes the file header to the given writer
func WriteHeader(w io.Writer, flags uint8, length int) error {
	header := FileHeader{
		Magic:   [4]byte{'G', 'R', 'E', 'C'},
		Version: FormatVersion,
		Flags:   flags,
		Length:  uint32(length),
	}

	return binary.Write(w, binary.LittleEndian, header)
}

// ReadHeader reads and validates the file header
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Validate magic bytes
	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid file format: expected %s, got %s", MagicBytes, string(header.Magic[:]))
	}

	// Validate version
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported file version: %d", header.Version)
	}

	return &header, nil
}

// SnapshotRecord is one stored record
type SnapshotRecord struct {
	ID     uint64                 `msgpack:"id"`
	Fields map[string]interface{} `msgpack:"fields"`
}

// SnapshotData represents the payload we store
type SnapshotData struct {
	Schema   []string               `msgpack:"schema"`
	NextID   uint64                 `msgpack:"next_id"`
	Records  []SnapshotRecord       `msgpack:"records"`
	Metadata map[string]interface{} `msgpack:"metadata,omitempty"`
}
