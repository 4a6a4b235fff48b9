// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/embedchain/embedding"
)

func newTrainCmd(f *rootFlags) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train on the corpus and print statistics and the best chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, stats, err := f.trained(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run:          %s\n", stats.RunID)
			fmt.Fprintf(out, "sentences:    %d (%d tokens)\n", stats.Sentences, stats.Tokens)
			fmt.Fprintf(out, "vocabulary:   %d (%d ppmi entries)\n", stats.VocabularySize, stats.PPMIEntries)
			fmt.Fprintf(out, "embeddings:   %d x %d\n", stats.EmbeddingCount, stats.Dim)
			fmt.Fprintf(out, "refinement:   %d updates, %d skipped, mean loss %.4f\n", stats.Updates, stats.Skipped, stats.MeanLoss)
			if stats.Nodes == 0 {
				fmt.Fprintln(out, "chain:        (empty)")
				return nil
			}
			ord := p.Ordering()
			fmt.Fprintf(out, "chain:        %s\n", strings.Join(ord.Labels, " -> "))
			fmt.Fprintf(out, "score:        %.6f (%s, %d considered)\n", ord.Score, stats.SearchStrategy, stats.PermutationsConsidered)
			if top > 0 {
				for _, w := range embedding.TopByMagnitude(p.Embeddings(), top) {
					fmt.Fprintf(out, "  %-16s %s\n", w, formatVector(p.Project(w)))
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "also print projections of the N strongest words")

	return cmd
}

func newNeighborsCmd(f *rootFlags) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "neighbors WORD...",
		Short: "Print the nearest neighbours of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := f.trained(cmd)
			if err != nil {
				return err
			}
			words := make([]string, len(args))
			for i, a := range args {
				words[i] = strings.ToLower(a)
			}
			batch, err := p.NearestBatch(words, k)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, w := range words {
				fmt.Fprintf(out, "%s:\n", w)
				for _, n := range batch[i] {
					fmt.Fprintf(out, "  %-16s %.4f\n", n.Word, n.Similarity)
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "count", "k", 5, "neighbours per word")

	return cmd
}

func newProjectCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "project WORD...",
		Short: "Print the softmax projection of each word's embedding",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := f.trained(cmd)
			if err != nil {
				return err
			}
			for _, a := range args {
				w := strings.ToLower(a)
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", w, formatVector(p.Project(w)))
			}

			return nil
		},
	}
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.3f", x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
