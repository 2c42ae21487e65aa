package integration

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/viant/afs"

	"github.com/honeybbq/netdiff/catalog"
	"github.com/honeybbq/netdiff/pkg/report"
	"github.com/honeybbq/netdiff/pkg/report/excel"
	"github.com/honeybbq/netdiff/pkg/report/jsonout"
)

func TestCompare_FullCatalogue(t *testing.T) {
	t.Parallel()

	pre := loadTranscript(t, "pre_check.txt")
	post := loadTranscript(t, "post_check.txt")

	pipeline := &catalog.Pipeline{}
	triples, err := pipeline.Compare(context.Background(), pre, post, catalog.All())
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if len(triples) != 22 {
		t.Fatalf("expected 22 triples, got %d", len(triples))
	}

	verdicts := verdictsByCommand(triples)
	wantMismatch := map[string]bool{
		"show_arp_no_resolve":        true, // 10.0.0.2 的 MAC 变化
		"show_rsvp_session":          true, // lsp-to-pe2 Up -> Dn
		"show_bgp_summary":           true, // 报文计数与 flap 次数变化
		"show_rsvp_session_match_dn": true, // post 侧多出一条 Dn 记录
	}
	for command, verdict := range verdicts {
		want := "match"
		if wantMismatch[command] {
			want = "mismatch"
		}
		if verdict != want {
			t.Errorf("command %s: verdict = %s, want %s", command, verdict, want)
		}
	}
}

func TestCompare_SameTranscriptAllMatch(t *testing.T) {
	t.Parallel()

	pre := loadTranscript(t, "pre_check.txt")
	pipeline := &catalog.Pipeline{}
	triples, err := pipeline.Compare(context.Background(), pre, pre, catalog.All())
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, tr := range triples {
		if tr.Result.Verdict != "match" {
			t.Errorf("command %s: self-comparison must match, got %s", tr.Command, tr.Result.Verdict)
		}
	}
}

func TestCompare_ParseIsDeterministic(t *testing.T) {
	t.Parallel()

	pre := loadTranscript(t, "pre_check.txt")
	pipeline := &catalog.Pipeline{}

	first, err := pipeline.ParseTranscript(context.Background(), pre, catalog.All())
	if err != nil {
		t.Fatal(err)
	}
	second, err := pipeline.ParseTranscript(context.Background(), pre, catalog.All())
	if err != nil {
		t.Fatal(err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Error("two parses of the same transcript differ")
	}
}

func TestCompare_JSONReport(t *testing.T) {
	t.Parallel()

	pre := loadTranscript(t, "pre_check.txt")
	post := loadTranscript(t, "post_check.txt")
	pipeline := &catalog.Pipeline{}
	triples, err := pipeline.Compare(context.Background(), pre, post, catalog.All())
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	fs := afs.New()
	dest := filepath.Join(t.TempDir(), "report.json")
	if err := jsonout.NewSink(fs, dest).Write(ctx, triples); err != nil {
		t.Fatalf("write json report: %v", err)
	}

	data, err := fs.DownloadWithURL(ctx, dest)
	if err != nil {
		t.Fatalf("read report back: %v", err)
	}
	var decoded []report.Triple
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if len(decoded) != 22 {
		t.Errorf("expected 22 commands in report, got %d", len(decoded))
	}
}

func TestCompare_ExcelReport(t *testing.T) {
	t.Parallel()

	pre := loadTranscript(t, "pre_check.txt")
	post := loadTranscript(t, "post_check.txt")
	pipeline := &catalog.Pipeline{}
	triples, err := pipeline.Compare(context.Background(), pre, post, catalog.All())
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	fs := afs.New()
	dest := filepath.Join(t.TempDir(), "report.xlsx")
	if err := excel.NewSink(fs, dest).Write(ctx, triples); err != nil {
		t.Fatalf("write excel report: %v", err)
	}

	ok, err := fs.Exists(ctx, dest)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("excel report was not written")
	}
}

func TestCompare_Selection(t *testing.T) {
	t.Parallel()

	selection := []byte("commands:\n  - show_arp_no_resolve\n  - show_bgp_summary\n")
	cmds, err := catalog.Select(selection)
	if err != nil {
		t.Fatal(err)
	}

	pre := loadTranscript(t, "pre_check.txt")
	post := loadTranscript(t, "post_check.txt")
	pipeline := &catalog.Pipeline{}
	triples, err := pipeline.Compare(context.Background(), pre, post, cmds)
	if err != nil {
		t.Fatal(err)
	}
	if len(triples) != 2 {
		t.Fatalf("expected 2 triples, got %d", len(triples))
	}
	if triples[0].Command != "show_arp_no_resolve" || triples[1].Command != "show_bgp_summary" {
		t.Errorf("selection order not preserved: %s, %s", triples[0].Command, triples[1].Command)
	}
}
