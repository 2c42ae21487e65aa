// Package excel renders a comparison report as an Excel workbook: pre and
// post values side by side with a colored status column.
package excel

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/xuri/excelize/v2"

	"github.com/honeybbq/netdiff/pkg/diff"
	"github.com/honeybbq/netdiff/pkg/nderrors"
	"github.com/honeybbq/netdiff/pkg/report"
)

const sheetName = "Comparison"

// Status fill colors, matching the usual green/pink review palette.
const (
	matchFill    = "90EE90"
	mismatchFill = "FFB6C1"
)

// Sink writes the comparison workbook to a destination URL through the
// abstract file service (local path, s3://, mem:// all work).
type Sink struct {
	fs  afs.Service
	url string
}

// NewSink 构造 Excel 报告输出。
func NewSink(fs afs.Service, url string) *Sink {
	return &Sink{fs: fs, url: url}
}

// Write 实现 report.Sink。
func (s *Sink) Write(ctx context.Context, triples []report.Triple) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	if err := s.layout(f, triples); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	if err := s.fs.Upload(ctx, s.url, file.DefaultFileOsMode, &buf); err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	return nil
}

func (s *Sink) layout(f *excelize.File, triples []report.Triple) error {
	if err := f.SetColWidth(sheetName, "A", "B", 50); err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	if err := f.SetColWidth(sheetName, "C", "C", 20); err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}

	commandStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "1F4E79", Size: 12},
	})
	if err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	matchStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{matchFill}},
	})
	if err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	mismatchStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{mismatchFill}},
	})
	if err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}

	rowNum := 1
	for _, row := range report.Rows(triples) {
		indent := strings.Repeat("  ", row.Depth)
		switch row.Kind {
		case report.KindCommand:
			cellA, _ := excelize.CoordinatesToCellName(1, rowNum)
			cellC, _ := excelize.CoordinatesToCellName(3, rowNum)
			if err := f.SetCellValue(sheetName, cellA, row.Label); err != nil {
				return nderrors.New(nderrors.KindReport, err)
			}
			if err := f.SetCellStyle(sheetName, cellA, cellA, commandStyle); err != nil {
				return nderrors.New(nderrors.KindReport, err)
			}
			if err := s.status(f, cellC, row.Status, matchStyle, mismatchStyle); err != nil {
				return err
			}
		case report.KindSection, report.KindRecord:
			cellA, _ := excelize.CoordinatesToCellName(1, rowNum)
			if err := f.SetCellValue(sheetName, cellA, indent+row.Label); err != nil {
				return nderrors.New(nderrors.KindReport, err)
			}
			if row.Status != "" {
				cellC, _ := excelize.CoordinatesToCellName(3, rowNum)
				if err := s.status(f, cellC, row.Status, matchStyle, mismatchStyle); err != nil {
					return err
				}
			}
		case report.KindField:
			cellA, _ := excelize.CoordinatesToCellName(1, rowNum)
			cellB, _ := excelize.CoordinatesToCellName(2, rowNum)
			cellC, _ := excelize.CoordinatesToCellName(3, rowNum)
			if err := f.SetCellValue(sheetName, cellA, fmt.Sprintf("%s%s: %s", indent, row.Label, row.Pre)); err != nil {
				return nderrors.New(nderrors.KindReport, err)
			}
			if err := f.SetCellValue(sheetName, cellB, fmt.Sprintf("%s%s: %s", indent, row.Label, row.Post)); err != nil {
				return nderrors.New(nderrors.KindReport, err)
			}
			if err := s.status(f, cellC, row.Status, matchStyle, mismatchStyle); err != nil {
				return err
			}
		}
		rowNum++
	}
	return nil
}

func (s *Sink) status(f *excelize.File, cell, status string, matchStyle, mismatchStyle int) error {
	if err := f.SetCellValue(sheetName, cell, status); err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	style := matchStyle
	if status != diff.StatusMatch {
		style = mismatchStyle
	}
	if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
		return nderrors.New(nderrors.KindReport, err)
	}
	return nil
}
