package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"langconv/internal/codec"
)

// Mode selects which conversion direction(s) a batch run performs.
type Mode int

const (
	LangToJSON Mode = iota + 1
	JSONToLang
	Both
)

// Failure records why a single file could not be read or written.
type Failure struct {
	Stem    string
	Message string
}

// Report accumulates the outcome of one batch run. Failure slices keep
// insertion order; a file appears in at most one of them.
type Report struct {
	Converted     int
	ReadFailures  []Failure
	WriteFailures []Failure
}

// OK reports whether every processed file converted cleanly.
func (r *Report) OK() bool {
	return len(r.ReadFailures) == 0 && len(r.WriteFailures) == 0
}

// Converter runs batch conversions between an input and an output directory.
type Converter struct {
	In  string
	Out string
	// Notify is called exactly once per successfully written file.
	Notify func(inPath, outPath string)

	lang *codec.LangCodec
	json *codec.JSONCodec
}

func New(in, out string) *Converter {
	return &Converter{
		In:   in,
		Out:  out,
		lang: codec.NewLangCodec(),
		json: codec.NewJSONCodec(),
	}
}

// Run converts every matching file in the input directory, one at a time.
// Per-file failures are recorded in the report; only a missing or unreadable
// input directory aborts the run.
func (c *Converter) Run(mode Mode) (*Report, error) {
	report := &Report{}

	entries, err := os.ReadDir(c.In)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var src, dst codec.Codec
		switch ext := strings.ToLower(filepath.Ext(entry.Name())); {
		case ext == ".lang" && (mode == LangToJSON || mode == Both):
			src, dst = c.lang, c.json
		case ext == ".json" && (mode == JSONToLang || mode == Both):
			src, dst = c.json, c.lang
		default:
			continue
		}

		c.convertFile(entry.Name(), src, dst, report)
	}

	log.Info().
		Int("converted", report.Converted).
		Int("read_failures", len(report.ReadFailures)).
		Int("write_failures", len(report.WriteFailures)).
		Str("input", c.In).
		Msg("Batch run complete")

	return report, nil
}

func (c *Converter) convertFile(name string, src, dst codec.Codec, report *Report) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	inPath := filepath.Join(c.In, name)
	outPath := filepath.Join(c.Out, stem+dst.Ext())

	data, err := os.ReadFile(inPath)
	if err != nil {
		report.ReadFailures = append(report.ReadFailures, Failure{Stem: stem, Message: err.Error()})
		return
	}

	rec, err := src.Decode(data)
	if err != nil {
		report.ReadFailures = append(report.ReadFailures, Failure{Stem: stem, Message: err.Error()})
		return
	}

	encoded, err := dst.Encode(rec)
	if err != nil {
		report.WriteFailures = append(report.WriteFailures, Failure{Stem: stem, Message: err.Error()})
		return
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		report.WriteFailures = append(report.WriteFailures, Failure{Stem: stem, Message: err.Error()})
		return
	}

	if err := os.WriteFile(outPath, encoded, 0644); err != nil {
		report.WriteFailures = append(report.WriteFailures, Failure{Stem: stem, Message: err.Error()})
		return
	}

	report.Converted++
	if c.Notify != nil {
		c.Notify(inPath, outPath)
	}
}
