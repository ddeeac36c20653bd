package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/korpus-id/koref/internal/pipeline"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <input.tsv>",
	Short: "Print corpus statistics without writing output",
	Long: `Stats runs the full resolution engine over an annotation dump and
prints the corpus statistics (paragraph, token, mention, cluster, and
singleton counts plus per-kind link and per-type mention tallies), without
writing any JSONL output.

The same policy flags as convert apply, since the policies change which
mentions and clusters survive.

Example:
  koref stats corpus.tsv
  koref stats corpus.tsv --use-appos --remove-singletons`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&useAppos, "use-appos", false, "fuse appositive phrases into the head mention's span")
	statsCmd.Flags().BoolVar(&useExappos, "use-exappos", false, "retain extended-appositive target mentions")
	statsCmd.Flags().BoolVar(&useAliases, "use-aliases", false, "retain alias target mentions")
	statsCmd.Flags().BoolVar(&removeSingletons, "remove-singletons", false, "drop mentions that belong to no cluster")
	statsCmd.Flags().StringVar(&textPrefix, "text-prefix", "#Text=", "literal prefix before the paragraph text line")
	statsCmd.Flags().IntVar(&tokenColumn, "token-column", 2, "0-based column of the token surface text")
	statsCmd.Flags().IntVar(&labelColumn, "label-column", 3, "0-based column of the pipe-separated label list")
}

func runStats(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg := buildConfig()
	// Flag values are authoritative here; stats shares the flag variables
	// with convert but has no viper binding of its own.
	cfg.Policy.UseAppos = useAppos
	cfg.Policy.UseExappos = useExappos
	cfg.Policy.UseAliases = useAliases
	cfg.Policy.RemoveSingletons = removeSingletons

	log := newLogger()
	defer func() { _ = log.Sync() }()

	p := pipeline.NewPipeline(cfg, log)

	result, err := p.ConvertFile(context.Background(), input, "", os.Stderr)
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	result.Stats.Report(os.Stdout, cfg.Policy.RemoveSingletons)

	return nil
}
