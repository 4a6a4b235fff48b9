// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/embedchain/pipeline"
)

// flags shared by every subcommand.
type rootFlags struct {
	corpus  string
	config  string
	workers int
	verbose bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "embedchain",
		Short: "Train word embeddings and find the best semantic chain",
		Long: `embedchain builds word embeddings from a corpus (one sentence per line):
PPMI co-occurrence statistics, a randomized spectral bootstrap and
contrastive refinement. It then orders the strongest words into the
chain with the highest sum of consecutive similarities.

Examples:
  embedchain train --corpus corpus.txt
  embedchain train --corpus corpus.txt --config embedchain.yaml --top 5
  embedchain neighbors fox dog --corpus corpus.txt -k 3
  cat corpus.txt | embedchain project fox --corpus -`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.corpus, "corpus", "", "corpus file, one sentence per line (\"-\" for stdin)")
	pf.StringVar(&f.config, "config", "", "YAML config file (defaults when empty)")
	pf.IntVar(&f.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to stderr")
	_ = root.MarkPersistentFlagRequired("corpus")

	root.AddCommand(newTrainCmd(f), newNeighborsCmd(f), newProjectCmd(f))

	return root
}

// trained loads the config and corpus and returns a trained Pipeline.
func (f *rootFlags) trained(cmd *cobra.Command) (*pipeline.Pipeline, pipeline.TrainingStats, error) {
	cfg := pipeline.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = pipeline.LoadConfig(f.config); err != nil {
			return nil, pipeline.TrainingStats{}, err
		}
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	sentences, err := f.readCorpus(cmd.InOrStdin())
	if err != nil {
		return nil, pipeline.TrainingStats{}, err
	}
	p, err := pipeline.New(cfg, pipeline.WithLogger(logger), pipeline.WithWorkers(f.workers))
	if err != nil {
		return nil, pipeline.TrainingStats{}, err
	}
	stats, err := p.Train(sentences)
	if err != nil {
		return nil, pipeline.TrainingStats{}, err
	}

	return p, stats, nil
}

func (f *rootFlags) readCorpus(stdin io.Reader) ([]string, error) {
	r := stdin
	if f.corpus != "-" {
		file, err := os.Open(f.corpus)
		if err != nil {
			return nil, fmt.Errorf("open corpus: %w", err)
		}
		defer file.Close()
		r = file
	}

	return readSentences(r)
}

// readSentences returns the non-blank lines of r.
func readSentences(r io.Reader) ([]string, error) {
	var (
		out []string
		sc  = bufio.NewScanner(r)
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	return out, nil
}
