package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/viant/afs"

	"github.com/honeybbq/netdiff/catalog"
	"github.com/honeybbq/netdiff/pkg/nderrors"
	"github.com/honeybbq/netdiff/pkg/netdiff"
	"github.com/honeybbq/netdiff/pkg/parser"
	"github.com/honeybbq/netdiff/pkg/report"
	"github.com/honeybbq/netdiff/pkg/report/excel"
	"github.com/honeybbq/netdiff/pkg/report/jsonout"
	"github.com/honeybbq/netdiff/pkg/segmenter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "netdiff",
		Short:         "Compare pre/post snapshots of network device command output",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(
		newCompareCmd(&verbose),
		newParseCmd(&verbose),
		newCommandsCmd(),
	)
	return root
}

// selectCommands resolves the optional --commands selection file against the
// catalogue; without one the full catalogue runs.
func selectCommands(ctx context.Context, fs afs.Service, selectionURL string) ([]*catalog.Entry, error) {
	if selectionURL == "" {
		return catalog.All(), nil
	}
	data, err := fs.DownloadWithURL(ctx, selectionURL)
	if err != nil {
		return nil, nderrors.New(nderrors.KindCatalog, err)
	}
	return catalog.Select(data)
}

// primaryParser resolves the --primary flag. Only the stub is registered so
// far; every command falls back to its own parser until a structured CLI
// parser is plugged in here.
func primaryParser(name string) netdiff.PrimaryParser {
	if name == "" {
		return nil
	}
	return parser.NewNotImplementedPrimary(name)
}

func loadTranscript(ctx context.Context, fs afs.Service, url string) (string, error) {
	data, err := fs.DownloadWithURL(ctx, url)
	if err != nil {
		return "", fmt.Errorf("read transcript %s: %w", url, err)
	}
	return string(data), nil
}

func newCompareCmd(verbose *bool) *cobra.Command {
	var (
		preURL    string
		postURL   string
		outURL    string
		jsonURL   string
		selection string
		primary   string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Parse two transcripts, diff them, and write the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := newLogger(*verbose)
			fs := afs.New()

			cmds, err := selectCommands(ctx, fs, selection)
			if err != nil {
				return err
			}
			pre, err := loadTranscript(ctx, fs, preURL)
			if err != nil {
				return err
			}
			post, err := loadTranscript(ctx, fs, postURL)
			if err != nil {
				return err
			}

			pipeline := &catalog.Pipeline{Logger: &logger, Primary: primaryParser(primary)}
			triples, err := pipeline.Compare(ctx, pre, post, cmds)
			if err != nil {
				return err
			}

			sinks := make([]report.Sink, 0, 2)
			if outURL != "" {
				sinks = append(sinks, excel.NewSink(fs, outURL))
			}
			if jsonURL != "" {
				sinks = append(sinks, jsonout.NewSink(fs, jsonURL))
			}
			for _, sink := range sinks {
				if err := sink.Write(ctx, triples); err != nil {
					return err
				}
			}

			mismatches := 0
			for _, t := range triples {
				fmt.Fprintf(cmd.OutOrStdout(), "%-45s %s\n", t.Command, t.Result.Verdict)
				if t.Result.Verdict != "match" {
					mismatches++
				}
			}
			logger.Info().
				Int("commands", len(triples)).
				Int("mismatches", mismatches).
				Msg("comparison finished")
			return nil
		},
	}
	cmd.Flags().StringVar(&preURL, "pre", "", "pre-change transcript path or URL")
	cmd.Flags().StringVar(&postURL, "post", "", "post-change transcript path or URL")
	cmd.Flags().StringVar(&outURL, "out", "", "Excel report destination")
	cmd.Flags().StringVar(&jsonURL, "json", "", "JSON report destination")
	cmd.Flags().StringVar(&selection, "commands", "", "YAML command selection file")
	cmd.Flags().StringVar(&primary, "primary", "", "external structured parser to consult first")
	_ = cmd.MarkFlagRequired("pre")
	_ = cmd.MarkFlagRequired("post")
	return cmd
}

func newParseCmd(verbose *bool) *cobra.Command {
	var (
		inputURL string
		command  string
		primary  string
	)
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract and parse one command from a transcript, print JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := newLogger(*verbose)
			fs := afs.New()

			entry, err := catalog.Lookup(command)
			if err != nil {
				return err
			}
			transcript, err := loadTranscript(ctx, fs, inputURL)
			if err != nil {
				return err
			}

			pipeline := &catalog.Pipeline{Logger: &logger, Primary: primaryParser(primary)}
			parsed, err := pipeline.ParseTranscript(ctx, transcript, []*catalog.Entry{entry})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(parsed[entry.Name()])
		},
	}
	cmd.Flags().StringVar(&inputURL, "input", "", "transcript path or URL")
	cmd.Flags().StringVar(&command, "command", "", "catalogue command name")
	cmd.Flags().StringVar(&primary, "primary", "", "external structured parser to consult first")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("command")
	return cmd
}

func newCommandsCmd() *cobra.Command {
	var fromTranscript string
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List catalogue commands, or the command lines in a transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromTranscript == "" {
				for _, name := range catalog.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			fs := afs.New()
			transcript, err := loadTranscript(cmd.Context(), fs, fromTranscript)
			if err != nil {
				return err
			}
			for _, line := range segmenter.Commands(transcript) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fromTranscript, "from-transcript", "", "list command lines typed in this transcript")
	return cmd
}
