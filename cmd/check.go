package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nesc-lab/paperpage/internal/render"
)

var checkCmd = &cobra.Command{
	Use:   "check [index.html]",
	Short: "Validate the paper and check the page structure",
	Long: `Validates the paper content file and checks the rendered page: every
navigation entry must point at exactly one section, and the embedded citation
must decode. With an argument, an already built page is checked instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var page io.Reader

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		page = f
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := loadPaper(cfg)
		if err != nil {
			return err
		}
		r, err := render.New(render.Options{
			CopyReset: cfg.CopyReset(),
			AssetBase: cfg.AssetBase,
		})
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := r.Render(&buf, p); err != nil {
			return err
		}
		page = &buf
	}

	report, err := render.Check(page)
	if report != nil {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sections: %v\n", report.Nav)
		for _, sc := range report.Scenarios {
			fmt.Fprintf(out, "%s  %s\n", sc.ID, sc.Title)
			for _, m := range sc.Metrics {
				fmt.Fprintf(out, "    %s %s\n", m[0], m[1])
			}
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}
