// Package snapshot saves and restores the contents of a record store. It sits
// outside the store: saving reads All(), restoring hands the saved records
// and id counter back to the store in one all-or-nothing call.
package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/adfharrison1/go-records/pkg/domain"
)

// Source is anything whose records can be snapshotted
type Source interface {
	All() []domain.Record
	Schema() domain.Schema
	NextID() domain.RecordID
}

// Restorer is anything saved records can be restored into
type Restorer interface {
	Restore(records []domain.Record, nextID domain.RecordID) error
}

// Inserter is anything seed records can be inserted into
type Inserter interface {
	Insert(fields domain.Fields) (domain.RecordID, error)
}

// Write encodes the source's records as MessagePack, compresses them with
// LZ4 and writes header and payload to w.
func Write(w io.Writer, src Source) error {
	data := SnapshotData{
		Schema:   src.Schema().Names(),
		NextID:   uint64(src.NextID()),
		Records:  []SnapshotRecord{},
		Metadata: map[string]interface{}{"saved_at": time.Now().UTC().Format(time.RFC3339)},
	}
	for _, r := range src.All() {
		data.Records = append(data.Records, SnapshotRecord{ID: uint64(r.ID), Fields: r.Fields})
	}

	msgpackData, err := msgpack.Marshal(&data)
	if err != nil {
		return fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	compressedData := make([]byte, lz4.CompressBlockBound(len(msgpackData)))
	var hashTable [1 << 16]int
	n, err := lz4.CompressBlock(msgpackData, compressedData, hashTable[:])
	if err != nil {
		return fmt.Errorf("failed to compress data: %w", err)
	}

	payload, flags := msgpackData, uint8(0)
	if n > 0 && n < len(msgpackData) {
		payload, flags = compressedData[:n], FlagCompressed
	}

	if err := WriteHeader(w, flags, len(msgpackData)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// Read decodes a snapshot written by Write
func Read(r io.Reader) (*SnapshotData, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid file header: %w", err)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if header.Flags&FlagCompressed != 0 {
		decompressedData := make([]byte, header.Length)
		n, err := lz4.UncompressBlock(payload, decompressedData)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress data: %w", err)
		}
		payload = decompressedData[:n]
	}
	if len(payload) != int(header.Length) {
		return nil, fmt.Errorf("payload length %d does not match header length %d", len(payload), header.Length)
	}

	var data SnapshotData
	if err := msgpack.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
	}
	return &data, nil
}

// Restore loads the snapshot's records into dst with their saved ids and
// storage order. Either every record is restored or none is.
func Restore(dst Restorer, data *SnapshotData) (int, error) {
	records := make([]domain.Record, len(data.Records))
	for i, rec := range data.Records {
		records[i] = domain.Record{ID: domain.RecordID(rec.ID), Fields: domain.Fields(rec.Fields)}
	}
	if err := dst.Restore(records, domain.RecordID(data.NextID)); err != nil {
		return 0, fmt.Errorf("failed to restore snapshot: %w", err)
	}
	return len(records), nil
}

// Save writes a snapshot of src to filename, replacing it atomically
func Save(filename string, src Source) error {
	var buf bytes.Buffer
	if err := Write(&buf, src); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}

// Load restores the snapshot in filename into dst. A missing file restores
// nothing and is not an error.
func Load(filename string, dst Restorer) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := Read(file)
	if err != nil {
		return 0, err
	}
	return Restore(dst, data)
}
