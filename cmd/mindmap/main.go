package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/mindmap/internal/app"
	"github.com/chriscorrea/mindmap/internal/config"
	"github.com/chriscorrea/mindmap/internal/counter"
	"github.com/chriscorrea/mindmap/internal/fetch"
	"github.com/chriscorrea/mindmap/internal/mindmap"
	"github.com/chriscorrea/mindmap/internal/rank"
	"github.com/chriscorrea/mindmap/internal/render"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments.
// Flags left unset take their value from env.
func buildConfig(cmd *cobra.Command, args []string, env *config.Config) (app.Config, error) {
	flags := cmd.Flags()

	selector, _ := flags.GetString("selector")
	tokenLimit, _ := flags.GetInt("token-limit")
	wordLimit, _ := flags.GetInt("word-limit")
	charLimit, _ := flags.GetInt("character-limit")
	jsonFlag, _ := flags.GetBool("json")
	treeFlag, _ := flags.GetBool("tree")
	outlineFlag, _ := flags.GetBool("outline")
	quiet, _ := flags.GetBool("quiet")
	includeAll, _ := flags.GetBool("include-all")
	fetchTimeout, _ := flags.GetDuration("fetch-timeout")
	userAgent, _ := flags.GetString("user-agent")
	maxBytes, _ := flags.GetInt64("max-bytes")

	// generation settings: flag when given, environment otherwise
	gen := env.Generation
	if flags.Changed("style") {
		gen.Style, _ = flags.GetString("style")
	}
	if flags.Changed("complexity") {
		gen.Complexity, _ = flags.GetString("complexity")
	}
	if flags.Changed("ranker") {
		gen.Ranker, _ = flags.GetString("ranker")
	}
	if flags.Changed("max-length") {
		gen.MaxTextLength, _ = flags.GetInt("max-length")
	}
	if flags.Changed("timeout") {
		gen.Timeout, _ = flags.GetDuration("timeout")
	}

	ranker, err := rank.ParseMethod(gen.Ranker)
	if err != nil {
		return app.Config{}, err
	}

	// determine counting method and max units; no limit by default since the
	// generator caps its own input
	var countingMethod counter.CountingMethod
	var maxUnits int
	switch {
	case tokenLimit > 0:
		countingMethod = counter.Tokens
		maxUnits = tokenLimit
	case wordLimit > 0:
		countingMethod = counter.Words
		maxUnits = wordLimit
	case charLimit > 0:
		countingMethod = counter.Characters
		maxUnits = charLimit
	}

	// determine output format
	var format render.Format
	switch {
	case treeFlag:
		format = render.Tree
	case outlineFlag:
		format = render.Outline
	case jsonFlag:
		format = render.JSON
	default:
		format, err = render.ParseFormat(env.Output.Format)
		if err != nil {
			return app.Config{}, err
		}
	}

	opts := render.Options{Emoji: env.Output.Emoji, Seed: env.Output.Seed}
	if flags.Changed("emoji") {
		opts.Emoji, _ = flags.GetBool("emoji")
	}
	if flags.Changed("seed") {
		opts.Seed, _ = flags.GetInt64("seed")
	}

	// positional arguments are sources; none means stdin
	sources := args
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	return app.Config{
		Sources:        sources,
		Selector:       selector,
		IncludeAll:     includeAll,
		FetchTimeout:   fetchTimeout,
		UserAgent:      userAgent,
		MaxBytes:       maxBytes,
		MaxUnits:       maxUnits,
		CountingMethod: countingMethod,
		Style:          mindmap.ParseStyle(gen.Style),
		Complexity:     mindmap.ParseComplexity(gen.Complexity),
		Ranker:         ranker,
		MaxTextLength:  gen.MaxTextLength,
		Timeout:        gen.Timeout,
		Format:         format,
		Render:         opts,
		Quiet:          quiet,
	}, nil
}

// setupLogger configures the default slog logger; debug overrides level
func setupLogger(debug bool, level slog.Level) {
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mindmap [sources...]",
		Short: "Generate a mind map from Vietnamese text",
		Long: `Mindmap reads Vietnamese text and builds a mind map from it: a central topic,
main branches, and sub-topics, using lexical heuristics only. Sources may include
URLs, local files, or standard input; HTML is reduced to its main content.

Examples:
  mindmap bai-viet.txt
  mindmap --tree --style academic https://example.com/bai-viet
  cat ghi-chu.md | mindmap --complexity detailed`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			env, err := config.Load(envFile)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			debug, _ := cmd.Flags().GetBool("debug")
			setupLogger(debug, env.SlogLevel())

			cfg, err := buildConfig(cmd, args, env)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			// create context with signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			result, err := app.Run(ctx, cfg)
			if err != nil {
				return fmt.Errorf("mindmap failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("selector", "s", "", "CSS selector for HTML sources")
	flags.BoolP("include-all", "i", false, "Include all content without readability or boilerplate filtering")
	flags.Duration("fetch-timeout", 0, "HTTP timeout for URL sources (default 30s)")
	flags.String("user-agent", "", "User-Agent header for URL sources (default \""+fetch.UserAgent+"\")")
	flags.Int64("max-bytes", 0, "Size limit per source in bytes (0 = built-in limits)")

	// limit flags
	flags.IntP("token-limit", "t", 0, "Limit input to number of tokens")
	flags.IntP("word-limit", "w", 0, "Limit input to number of words")
	flags.IntP("character-limit", "c", 0, "Limit input to number of characters")
	cmd.MarkFlagsMutuallyExclusive("token-limit", "word-limit", "character-limit")

	// generation flags
	flags.String("style", "balanced", "Branch title style: balanced, academic, creative, business")
	flags.String("complexity", "medium", "Number of branches: simple, medium, detailed, comprehensive")
	flags.String("ranker", "centrality", "Sentence ranking: centrality, frequency, bm25")
	flags.Int("max-length", 1500, "Characters of input the generator analyzes")
	flags.Duration("timeout", 0, "Return the fallback mind map if generation takes longer (0 = no limit)")

	// output format flags
	flags.Bool("json", false, "Output JSON (default)")
	flags.Bool("tree", false, "Output a terminal tree")
	flags.Bool("outline", false, "Output a Markdown outline")
	cmd.MarkFlagsMutuallyExclusive("json", "tree", "outline")
	flags.Bool("emoji", false, "Decorate tree and outline labels with emoji")
	flags.Int64("seed", 0, "Seed for emoji decoration")

	// other flags
	flags.String("env-file", config.DefaultEnvFile, "Read defaults from this .env file")
	flags.BoolP("quiet", "q", false, "Suppress warnings and progress output")
	flags.BoolP("debug", "D", false, "Enable debug logging")
	_ = flags.MarkHidden("debug")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
