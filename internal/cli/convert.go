package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/korpus-id/koref/internal/model"
	"github.com/korpus-id/koref/internal/pipeline"
)

var (
	outPath          string
	useAppos         bool
	useExappos       bool
	useAliases       bool
	removeSingletons bool
	workers          int
	textPrefix       string
	tokenColumn      int
	labelColumn      int
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input.tsv>",
	Short: "Convert a TSV annotation dump to JSONL coreference records",
	Long: `Convert resolves an annotation dump paragraph by paragraph:
- Extract mention spans from per-token labels
- Parse IDENT/APPOS/ALIAS/EXAPPOS relations into mention pairs
- Group coreference pairs into clusters
- Fuse appositive phrases into head mentions (--use-appos)
- Apply alias, extended-appositive, and singleton removal policies
- Write one {"text", "tokens", "corefs"} record per paragraph

Example:
  koref convert corpus.tsv
  koref convert corpus.tsv -o corpus.jsonl --use-appos --remove-singletons
  koref convert corpus.tsv --workers 4 --use-aliases`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output flags
	convertCmd.Flags().StringVarP(&outPath, "output", "o", "", "output JSONL path (default: input path with .jsonl)")

	// Policy flags
	convertCmd.Flags().BoolVar(&useAppos, "use-appos", false, "fuse appositive phrases into the head mention's span")
	convertCmd.Flags().BoolVar(&useExappos, "use-exappos", false, "retain extended-appositive target mentions")
	convertCmd.Flags().BoolVar(&useAliases, "use-aliases", false, "retain alias target mentions")
	convertCmd.Flags().BoolVar(&removeSingletons, "remove-singletons", false, "drop mentions that belong to no cluster")

	// Input layout flags
	convertCmd.Flags().StringVar(&textPrefix, "text-prefix", "#Text=", "literal prefix before the paragraph text line")
	convertCmd.Flags().IntVar(&tokenColumn, "token-column", 2, "0-based column of the token surface text")
	convertCmd.Flags().IntVar(&labelColumn, "label-column", 3, "0-based column of the pipe-separated label list")

	// Concurrency flags
	convertCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent paragraph workers")

	_ = viper.BindPFlag("policy.use_appos", convertCmd.Flags().Lookup("use-appos"))
	_ = viper.BindPFlag("policy.use_exappos", convertCmd.Flags().Lookup("use-exappos"))
	_ = viper.BindPFlag("policy.use_aliases", convertCmd.Flags().Lookup("use-aliases"))
	_ = viper.BindPFlag("policy.remove_singletons", convertCmd.Flags().Lookup("remove-singletons"))
	_ = viper.BindPFlag("concurrency.workers", convertCmd.Flags().Lookup("workers"))
}

// buildConfig assembles the effective configuration from defaults, config
// file, environment, and flags
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Policy.UseAppos = viper.GetBool("policy.use_appos")
	cfg.Policy.UseExappos = viper.GetBool("policy.use_exappos")
	cfg.Policy.UseAliases = viper.GetBool("policy.use_aliases")
	cfg.Policy.RemoveSingletons = viper.GetBool("policy.remove_singletons")
	cfg.Input.TextPrefix = textPrefix
	cfg.Input.TokenColumn = tokenColumn
	cfg.Input.LabelColumn = labelColumn
	if w := viper.GetInt("concurrency.workers"); w > 0 {
		cfg.Concurrency.Workers = w
	}
	cfg.Output.Verbose = verbose
	return cfg
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := outPath
	if output == "" {
		output = strings.TrimSuffix(input, ".tsv") + ".jsonl"
	}

	cfg := buildConfig()

	if verbose {
		fmt.Fprintf(os.Stderr, "Converting: %s\n", input)
		fmt.Fprintf(os.Stderr, "Output: %s\n", output)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", cfg.Concurrency.Workers)
		fmt.Fprintf(os.Stderr, "Policy: appos=%v exappos=%v aliases=%v remove-singletons=%v\n",
			cfg.Policy.UseAppos, cfg.Policy.UseExappos, cfg.Policy.UseAliases, cfg.Policy.RemoveSingletons)
		fmt.Fprintln(os.Stderr)
	}

	log := newLogger()
	defer func() { _ = log.Sync() }()

	p := pipeline.NewPipeline(cfg, log)

	result, err := p.ConvertFile(context.Background(), input, output, os.Stderr)
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Saving data to %s ...\n", output)
	result.Stats.Report(os.Stderr, cfg.Policy.RemoveSingletons)

	return nil
}
