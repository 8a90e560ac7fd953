package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"langconv/internal/store"
)

// LangCodec handles the line-oriented .lang format: one key=value pair per
// line, # comments, blank lines ignored, no escaping.
type LangCodec struct{}

func NewLangCodec() *LangCodec { return &LangCodec{} }

func (c *LangCodec) Ext() string { return ".lang" }

func (c *LangCodec) Decode(data []byte) (*store.Records, error) {
	rec := store.New()

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// The first = delimits key and value; lines without one carry no pair.
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		rec.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lang text: %w", err)
	}

	return rec, nil
}

func (c *LangCodec) Encode(rec *store.Records) ([]byte, error) {
	var buf bytes.Buffer
	for _, key := range rec.Keys() {
		value, _ := rec.Get(key)
		fmt.Fprintf(&buf, "%s=%s\n", key, value)
	}
	return buf.Bytes(), nil
}
