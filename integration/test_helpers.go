package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/honeybbq/netdiff/pkg/report"
)

// loadTranscript 读取 testdata 下的一份终端抓屏。
func loadTranscript(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read transcript %s: %v", name, err)
	}
	return string(data)
}

// verdictsByCommand 把比较产物折叠成 命令名 → 结论 的索引。
func verdictsByCommand(triples []report.Triple) map[string]string {
	out := make(map[string]string, len(triples))
	for _, tr := range triples {
		out[tr.Command] = tr.Result.Verdict
	}
	return out
}
