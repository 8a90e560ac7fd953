package codec

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"

	"langconv/internal/store"
)

// JSONCodec handles flat JSON objects whose member values are strings.
// Members are read in their serialized order; non-string values are skipped.
type JSONCodec struct{}

func NewJSONCodec() *JSONCodec { return &JSONCodec{} }

func (c *JSONCodec) Ext() string { return ".json" }

func (c *JSONCodec) Decode(data []byte) (*store.Records, error) {
	obj := orderedmap.New()
	if err := json.Unmarshal(data, obj); err != nil {
		if !json.Valid(data) {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		// Valid JSON with a non-object top level holds no entries.
		return store.New(), nil
	}

	rec := store.New()
	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		if s, ok := v.(string); ok {
			rec.Set(key, s)
		}
	}

	return rec, nil
}

func (c *JSONCodec) Encode(rec *store.Records) ([]byte, error) {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return out, nil
}
