package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nesc-lab/paperpage/internal/clipboard"
)

var citeCmd = &cobra.Command{
	Use:   "cite",
	Short: "Print the BibTeX citation, or copy it to the clipboard",
	RunE:  runCite,
}

func init() {
	citeCmd.Flags().Bool("copy", false, "copy the citation to the system clipboard")
	rootCmd.AddCommand(citeCmd)
}

func runCite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := loadPaper(cfg)
	if err != nil {
		return err
	}

	copyFlag, _ := cmd.Flags().GetBool("copy")
	if !copyFlag {
		fmt.Fprintln(cmd.OutOrStdout(), p.Citation)
		return nil
	}

	ind := clipboard.NewIndicator(cfg.CopyReset(), func(s clipboard.State) {
		debugf("copy indicator: %s\n", s)
	})
	defer ind.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	copier := clipboard.NewCopier(clipboard.NewSystemWriter(), ind)
	if err := copier.Copy(ctx, p.Citation); err != nil {
		if errors.Is(err, clipboard.ErrUnsupported) {
			fmt.Fprintln(os.Stderr, "No clipboard tool found; printing the citation instead.")
			fmt.Fprintln(cmd.OutOrStdout(), p.Citation)
			return nil
		}
		return err
	}
	fmt.Fprintln(os.Stderr, "Citation copied to clipboard.")
	return nil
}
