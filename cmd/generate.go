package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/axlewave/leadgen-cli/internal/model"
	"github.com/axlewave/leadgen-cli/internal/pipeline"
)

var (
	generateType          string
	generateJSON          bool
	generateTopN          int
	generateMaxCandidates int
)

var generateCmd = &cobra.Command{
	Use:   "generate [request]",
	Short: "Generate ranked leads from a natural language request",
	Long: "Classifies the request, discovers candidate companies via web search, " +
		"enriches them into profiles, and prints the top leads ranked by fit.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		userInput := strings.Join(args, " ")

		override, err := parseTypeOverride(generateType)
		if err != nil {
			return err
		}

		if generateTopN > 0 {
			cfg.Pipeline.TopN = generateTopN
		}
		if generateMaxCandidates > 0 {
			cfg.Pipeline.MaxCandidates = generateMaxCandidates
		}

		st, err := initStore()
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		p, err := buildPipeline(st)
		if err != nil {
			return err
		}

		result := p.GenerateLeads(ctx, userInput, override)

		if generateJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Print(pipeline.FormatReport(result))
		if result.Status == model.RunStatusError {
			os.Exit(1)
		}
		return nil
	},
}

// parseTypeOverride validates the --type flag. Empty means classify from the
// request text.
func parseTypeOverride(s string) (model.IntentType, error) {
	if s == "" {
		return "", nil
	}
	t := model.IntentType(strings.ToLower(s))
	if !t.Valid() || t == model.IntentUnclear {
		return "", eris.Errorf("invalid --type %q (supported: customer, partner, both)", s)
	}
	return t, nil
}

func init() {
	generateCmd.Flags().StringVar(&generateType, "type", "", "skip intent classification: customer, partner, or both")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "print the full result as JSON")
	generateCmd.Flags().IntVar(&generateTopN, "top-n", 0, "override the number of ranked leads per list")
	generateCmd.Flags().IntVar(&generateMaxCandidates, "max-candidates", 0, "override the discovery candidate cap")
	rootCmd.AddCommand(generateCmd)
}
