package catalog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/honeybbq/netdiff/pkg/diff"
	"github.com/honeybbq/netdiff/pkg/netdiff"
	"github.com/honeybbq/netdiff/pkg/report"
	"github.com/honeybbq/netdiff/pkg/segmenter"
)

// Pipeline 将 目录 × (切分 → 解析 → 比较) 串成一次完整运行。
// Pipeline 本身无状态；同一个实例可并发执行多次 Compare。
type Pipeline struct {
	Primary netdiff.PrimaryParser // optional structured parser
	Logger  *zerolog.Logger       // optional
}

// ParseTranscript extracts and parses every given command from one
// transcript. Commands absent from the transcript still appear in the
// result, as their zero-value collections.
func (p *Pipeline) ParseTranscript(ctx context.Context, transcript string, cmds []*Entry) (map[string]map[string]any, error) {
	opts := netdiff.ParseOptions{Primary: p.Primary, Logger: p.Logger}
	out := make(map[string]map[string]any, len(cmds))
	for _, cmd := range cmds {
		seg := segmenter.Extract(transcript, cmd.Signature())
		parsed, err := cmd.Parse(ctx, seg, opts)
		if err != nil {
			return nil, err
		}
		out[cmd.Name()] = parsed
	}
	return out, nil
}

// Compare runs the full pre/post comparison for the given commands and
// returns one report triple per command, in catalogue order.
func (p *Pipeline) Compare(ctx context.Context, pre, post string, cmds []*Entry) ([]report.Triple, error) {
	parseOpts := netdiff.ParseOptions{Primary: p.Primary, Logger: p.Logger}
	diffOpts := netdiff.DiffOptions{Logger: p.Logger}

	triples := make([]report.Triple, 0, len(cmds))
	for _, cmd := range cmds {
		preParsed, err := cmd.Parse(ctx, segmenter.Extract(pre, cmd.Signature()), parseOpts)
		if err != nil {
			return nil, err
		}
		postParsed, err := cmd.Parse(ctx, segmenter.Extract(post, cmd.Signature()), parseOpts)
		if err != nil {
			return nil, err
		}
		result := diff.Collections(preParsed, postParsed, cmd.DiffSpec(), diffOpts)
		if p.Logger != nil {
			p.Logger.Info().
				Str("command", cmd.Name()).
				Str("verdict", result.Verdict).
				Msg("command compared")
		}
		triples = append(triples, report.Triple{
			Command: cmd.Name(),
			Pre:     preParsed,
			Post:    postParsed,
			Result:  result,
		})
	}
	return triples, nil
}
