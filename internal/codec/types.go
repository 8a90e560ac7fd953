package codec

import "langconv/internal/store"

// Codec converts between one on-disk localization format and Records.
// Codecs are pure byte transcoders; file I/O belongs to the caller.
type Codec interface {
	// Ext returns the file extension this codec owns, including the dot.
	Ext() string
	// Decode parses raw file content into Records.
	Decode(data []byte) (*store.Records, error)
	// Encode renders Records as raw file content.
	Encode(rec *store.Records) ([]byte, error)
}
