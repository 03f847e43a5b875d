package cmd

import (
	"github.com/itsmostafa/bookindex/internal/config"
	"github.com/itsmostafa/bookindex/internal/output"
	"github.com/itsmostafa/bookindex/internal/pageindex"
	"github.com/spf13/cobra"
)

var inputDir string
var outputDir string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan the book and write the keyword reports",
	Long: `Scan every annotated keyword against the pages of its sections and write
no_occurence.txt, keyword_occurrence.tsv and too_many_occurrence.tsv.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if inputDir != "" {
			cfg.InputDir = inputDir
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}

		w := cmd.OutOrStdout()
		output.FormatHeader(w, cfg)

		book, err := pageindex.Load(ctx, cfg, logger)
		if err != nil {
			return err
		}

		result := pageindex.Scan(book, logger)
		if err := ctx.Err(); err != nil {
			return err
		}

		paths, err := pageindex.WriteReports(cfg.ResolvedOutputDir(), cfg.Files, result, cfg.Threshold)
		if err != nil {
			return err
		}

		output.FormatSummary(w, result, cfg.Threshold, paths)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&inputDir, "dir", "d", "", "Directory holding the input files (overrides config)")
	runCmd.Flags().StringVar(&outputDir, "out", "", "Directory for the reports (default: input directory)")

	rootCmd.AddCommand(runCmd)
}
