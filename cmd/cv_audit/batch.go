package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-auditor/internal/audit"
	"github.com/jonathan/cv-auditor/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Audit every CV profile in a directory",
	Long: "Audits each *.json profile in --dir concurrently and writes <name>.audit.json files " +
		"to --out-dir, then prints one summary line per profile.",
	RunE: runBatch,
}

var (
	batchDir         string
	batchOutDir      string
	batchCountry     string
	batchConcurrency int
)

const auditSuffix = ".audit.json"

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of CV profile JSON files (required)")
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Directory for audit files (default --dir)")
	batchCmd.Flags().StringVarP(&batchCountry, "country", "c", "", "Target country code (default from config, FR)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Parallel audits (default from config, 4)")

	if err := batchCmd.MarkFlagRequired("dir"); err != nil {
		panic(fmt.Sprintf("failed to mark dir flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

// batchResult is the outcome of auditing one profile file.
type batchResult struct {
	File  string
	Audit *types.Audit
	Err   error
}

func runBatch(cmd *cobra.Command, _ []string) error {
	files, err := profileFiles(batchDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no profile files found in %s", batchDir)
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		concurrency = settings.Concurrency
	}
	outDir := pick(batchOutDir, batchDir)
	country := pick(batchCountry, settings.Country)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := auditFiles(ctx, newEngine(), files, country, outDir, concurrency)
	if err != nil {
		return err
	}

	failed := printBatchSummary(cmd.OutOrStdout(), results)
	if failed > 0 {
		return fmt.Errorf("%d of %d profiles failed", failed, len(results))
	}
	return nil
}

// profileFiles lists the profile JSON files of dir, skipping earlier audit output.
func profileFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if !strings.HasSuffix(m, auditSuffix) {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// auditFiles audits files with at most concurrency audits in flight. A bad
// profile is recorded in its result; only cancellation aborts the batch.
func auditFiles(ctx context.Context, engine *audit.Engine, files []string, country, outDir string, concurrency int) ([]batchResult, error) {
	results := make([]batchResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, concurrency))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = auditOne(engine, file, country, outDir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	return results, nil
}

func auditOne(engine *audit.Engine, file, country, outDir string) batchResult {
	res := batchResult{File: file}

	profile, err := readProfile(file)
	if err != nil {
		res.Err = err
		return res
	}
	result, err := engine.Analyze(profile, country)
	if err != nil {
		res.Err = err
		return res
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + auditSuffix
	if err := writeJSON(io.Discard, filepath.Join(outDir, name), result); err != nil {
		res.Err = err
		return res
	}
	res.Audit = result
	return res
}

// printBatchSummary writes one line per result and returns the number of failures.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func printBatchSummary(w io.Writer, results []batchResult) int {
	failed := 0
	for _, r := range results {
		base := filepath.Base(r.File)
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "%-30s ERROR %v\n", base, r.Err)
			continue
		}
		fmt.Fprintf(w, "%-30s %3d %-2s %-10s %d critical\n",
			base, r.Audit.Score, r.Audit.Grade, r.Audit.Readiness, len(r.Audit.CriticalErrors))
	}
	fmt.Fprintf(w, "\nAudited %d profiles, %d failed\n", len(results), failed)
	return failed
}
