package wire

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Write serializes a plan as msgpack.
func Write(w io.Writer, p *Plan) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(p)
}

// Read deserializes a plan, rejecting incompatible schema versions.
func Read(r io.Reader) (*Plan, error) {
	var p Plan
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, p.Schema, SchemaVersion)
	}
	return &p, nil
}
