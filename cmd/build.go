package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nesc-lab/paperpage/internal/progress"
	"github.com/nesc-lab/paperpage/internal/render"
	"github.com/nesc-lab/paperpage/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static project page",
	Long: `Renders the paper into index.html with its stylesheet, script and
citation.bib, copies matching media from the assets directory, and checks the
written page.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().String("assets", "", "override assets directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if assets, _ := cmd.Flags().GetString("assets"); assets != "" {
		cfg.AssetsDir = assets
	}

	p, err := loadPaper(cfg)
	if err != nil {
		return err
	}

	renderer, err := render.New(render.Options{
		CopyReset: cfg.CopyReset(),
		AssetBase: cfg.AssetBase,
	})
	if err != nil {
		return err
	}

	generator := &site.Generator{
		Paper:     p,
		OutputDir: cfg.OutputDir,
		AssetsDir: cfg.AssetsDir,
		Assets:    cfg.Assets,
		AssetBase: cfg.AssetBase,
		Renderer:  renderer,
		Reporter:  progress.NewReporter(),
	}
	res, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Project page built: %s (%d files, %d assets)\n", cfg.OutputDir, len(res.Files), len(res.Assets))
	if res.Report != nil {
		debugf("Sections: %v\n", res.Report.Nav)
		for _, sc := range res.Report.Scenarios {
			debugf("  %s: %s (%d metrics)\n", sc.ID, sc.Title, len(sc.Metrics))
		}
	}
	if len(res.Assets) == 0 {
		fmt.Fprintf(os.Stderr, "Note: no assets copied from %s\n", cfg.AssetsDir)
	}
	return nil
}
