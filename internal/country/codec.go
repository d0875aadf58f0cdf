package country

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

// snapshotMagic starts every encoded snapshot.
var snapshotMagic = []byte("HKDB")

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion byte = 1

const snapshotHeaderLen = 5

// MarshalSnapshot encodes db as magic, version byte and zstd-compressed JSON.
func MarshalSnapshot(db *Database) ([]byte, error) {
	if db == nil {
		return nil, errors.Newf("cannot encode nil database").
			Component("country").
			Category(errors.CategorySnapshot).
			Build()
	}

	payload, err := json.Marshal(db)
	if err != nil {
		return nil, errors.New(err).
			Component("country").
			Category(errors.CategorySnapshot).
			Context("operation", "encode").
			Build()
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, errors.New(err).
			Component("country").
			Category(errors.CategorySnapshot).
			Build()
	}
	defer func() { _ = enc.Close() }()

	out := make([]byte, 0, snapshotHeaderLen+len(payload)/4)
	out = append(out, snapshotMagic...)
	out = append(out, SnapshotVersion)
	out = enc.EncodeAll(payload, out)

	GetLogger().Debug("snapshot encoded",
		logger.Int("json_bytes", len(payload)),
		logger.Int("encoded_bytes", len(out)))

	return out, nil
}

// UnmarshalSnapshot decodes bytes produced by MarshalSnapshot.
func UnmarshalSnapshot(data []byte) (*Database, error) {
	if len(data) < snapshotHeaderLen || !bytes.Equal(data[:len(snapshotMagic)], snapshotMagic) {
		return nil, errors.Newf("not a country snapshot").
			Component("country").
			Category(errors.CategorySnapshot).
			Context("size", len(data)).
			Build()
	}
	if v := data[len(snapshotMagic)]; v != SnapshotVersion {
		return nil, errors.New(fmt.Errorf("unsupported snapshot version %d", v)).
			Component("country").
			Category(errors.CategorySnapshot).
			Context("version", int(v)).
			Build()
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.New(err).
			Component("country").
			Category(errors.CategorySnapshot).
			Build()
	}
	defer dec.Close()

	payload, err := dec.DecodeAll(data[snapshotHeaderLen:], nil)
	if err != nil {
		return nil, errors.New(err).
			Component("country").
			Category(errors.CategorySnapshot).
			Context("operation", "decompress").
			Build()
	}

	db := Empty()
	if err := json.Unmarshal(payload, db); err != nil {
		return nil, errors.New(err).
			Component("country").
			Category(errors.CategorySnapshot).
			Context("operation", "decode").
			Build()
	}
	if db.Entities == nil {
		db.Entities = map[DXCC]Entity{}
	}
	if db.Prefixes == nil {
		db.Prefixes = map[string][]Prefix{}
	}

	return db, nil
}
