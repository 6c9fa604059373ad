package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	paperFile string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "paperpage",
	Short: "Static project pages for research papers",
	Long: `Paperpage renders a research paper's project page (title, authors,
abstract, teaser video, method, evaluation scenarios and a copyable BibTeX
citation) from a single YAML content file. It builds a static site, serves
a live-reloading preview, and exposes the paper to AI agents via MCP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load(".env")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".paperpage.yml", "config file path")
	rootCmd.PersistentFlags().StringVarP(&paperFile, "paper", "p", "", "paper content file (overrides config; empty uses the built-in page)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
