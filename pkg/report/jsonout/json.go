// Package jsonout renders a comparison report as an indented JSON document,
// the machine-readable counterpart of the Excel workbook.
package jsonout

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/honeybbq/netdiff/pkg/nderrors"
	"github.com/honeybbq/netdiff/pkg/report"
)

// Sink writes the triples as JSON to a destination URL through the abstract
// file service.
type Sink struct {
	fs  afs.Service
	url string
}

// NewSink 构造 JSON 报告输出。
func NewSink(fs afs.Service, url string) *Sink {
	return &Sink{fs: fs, url: url}
}

// Write 实现 report.Sink。
func (s *Sink) Write(ctx context.Context, triples []report.Triple) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(triples); err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	if err := s.fs.Upload(ctx, s.url, file.DefaultFileOsMode, &buf); err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	return nil
}
