package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nesc-lab/paperpage/internal/config"
	"github.com/nesc-lab/paperpage/internal/paper"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a paper content file with an interactive wizard",
	Long: `Runs an interactive wizard that asks for the essentials of a project page,
writes them to a paper content file and creates a .paperpage.yml pointing at it.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("output", "paper.yml", "path of the paper content file to create")
	initCmd.Flags().Bool("force", false, "overwrite an existing content file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if _, err := paper.RunWizard(path); err != nil {
		return err
	}

	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		cfg.Paper = path
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Configuration saved to %s\n", cfgFile)
	}

	fmt.Println("Run `paperpage serve` to preview the page.")
	return nil
}
