package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gmh5225/awesome-game-security-site/internal/config"
	"github.com/gmh5225/awesome-game-security-site/internal/fetch"
	"github.com/gmh5225/awesome-game-security-site/internal/parser"
	"github.com/gmh5225/awesome-game-security-site/internal/search"
	"github.com/gmh5225/awesome-game-security-site/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "awesite",
	Short: "Terminal browser for the awesome-game-security list",
	Long: `Fetches the awesome-game-security README, parses it into tagged
resource records, and lets you search, filter, and browse them with
category navigation and pagination.

The list is re-fetched in the background every five minutes while the
browser is open.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print matching resources without the interactive UI",
	Long: `Runs the same fetch, parse, filter, and pagination pipeline as the
interactive browser and prints one page of results to stdout, as text
or JSON. Useful for piping.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category tree from the Contents block",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(dumpCmd, categoriesCmd)

	rootCmd.PersistentFlags().StringP("url", "u", "", "Source document URL")
	rootCmd.PersistentFlags().StringP("query", "q", "", "Free-text query")
	rootCmd.PersistentFlags().StringP("tag", "t", "", "Exact tag to filter by")
	rootCmd.PersistentFlags().StringP("category", "c", "", "Category to browse (navigation mode)")
	rootCmd.PersistentFlags().String("parent", "", "Parent category hint for --category")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Skip the on-disk document cache")

	dumpCmd.Flags().Bool("json", false, "Output JSON")
	dumpCmd.Flags().Int("page", 1, "Page to print")
	dumpCmd.Flags().Int("page-size", 0, "Resources per section page (0 = configured)")

	categoriesCmd.Flags().Bool("json", false, "Output JSON")

	viper.BindPFlag("source_url", rootCmd.PersistentFlags().Lookup("url"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	return ui.Run(buildFetcher(cmd), queryFromFlags(cmd))
}

func runDump(cmd *cobra.Command, args []string) error {
	text, stale, err := buildFetcher(cmd).Document(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	if stale {
		fmt.Fprintln(os.Stderr, "Warning: source unreachable, serving cached copy")
	}

	doc := parser.Parse(text, parseOptions())
	q := queryFromFlags(cmd)
	merged := parser.MergeByURL(search.Filter(doc.Resources, q))

	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize <= 0 {
		pageSize = config.GetPageSize()
	}
	result := search.Paginate(merged, page, pageSize, search.Strategy(config.GetPageStrategy()))

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(struct {
			Query       string           `json:"query,omitempty"`
			Page        int              `json:"page"`
			Sections    []search.Section `json:"sections"`
			HasMore     bool             `json:"hasMore"`
			HasPrevious bool             `json:"hasPrevious"`
		}{q.Text, page, result.Sections, result.HasMore, result.HasPrevious})
	}

	if len(result.Sections) == 0 {
		fmt.Println("No resources found")
		return nil
	}

	for _, sec := range result.Sections {
		fmt.Println(sec.Name)
		for _, r := range sec.Resources {
			if r.Description != r.Title {
				fmt.Printf("  %s — %s\n", r.Title, r.Description)
			} else {
				fmt.Printf("  %s\n", r.Title)
			}
			fmt.Printf("    %s  [%s]\n", r.URL, strings.Join(r.Sections, "] ["))
		}
	}

	marker := fmt.Sprintf("page %d", page)
	if result.HasMore {
		marker += " (more available)"
	}
	fmt.Println(marker)
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	text, stale, err := buildFetcher(cmd).Document(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	if stale {
		fmt.Fprintln(os.Stderr, "Warning: source unreachable, serving cached copy")
	}

	cats := parser.Categories(text)

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(cats)
	}

	for _, cat := range cats {
		fmt.Println(cat.Name)
		for _, sub := range cat.SubCategories {
			fmt.Printf("  > %s\n", sub)
		}
	}
	return nil
}

// buildFetcher wires the fetcher to the configured URL and, unless
// disabled, the on-disk document cache.
func buildFetcher(cmd *cobra.Command) *fetch.Fetcher {
	f := fetch.New(config.GetSourceURL(), config.GetHTTPTimeout())

	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		cache, err := fetch.NewDiskCache(config.GetCacheDir(), config.GetCacheTTL())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: document cache disabled: %v\n", err)
		} else {
			f = f.WithCache(cache)
		}
	}
	return f
}

// queryFromFlags turns the shareable flag state into an initial query.
// --category takes precedence over --tag, which takes precedence over
// the free-text --query.
func queryFromFlags(cmd *cobra.Command) search.Query {
	queryFlag, _ := cmd.Flags().GetString("query")
	tag, _ := cmd.Flags().GetString("tag")
	category, _ := cmd.Flags().GetString("category")
	parent, _ := cmd.Flags().GetString("parent")

	switch {
	case category != "":
		return search.Query{Text: category, Mode: search.ModeNavigation, ParentCategory: parent}
	case tag != "":
		return search.Query{Text: tag, Mode: search.ModeTag}
	default:
		return search.Query{Text: queryFlag, Mode: search.ModeFreeText}
	}
}

func parseOptions() parser.Options {
	return parser.Options{
		KeyPolicy:      parser.KeyPolicy(config.GetDedupKey()),
		MergeLookahead: config.GetMergeLookahead(),
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
