package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nesc-lab/paperpage/internal/livereload"
	"github.com/nesc-lab/paperpage/internal/server"
	"github.com/nesc-lab/paperpage/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the project page on a local server",
	Long: `Starts a local HTTP server that renders the page from the current content
file. With live reload on, edits to the content file are picked up and open
pages refresh automatically. An edit that fails to load is reported and the
previous page keeps being served.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("no-reload", false, "disable live reload")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if noReload, _ := cmd.Flags().GetBool("no-reload"); noReload {
		cfg.Server.LiveReload = false
	}

	p, err := loadPaper(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:       cfg.Server.Port,
		AssetsDir:  cfg.AssetsDir,
		AssetBase:  cfg.AssetBase,
		AllowAll:   cfg.Server.AllowAll,
		LiveReload: cfg.Server.LiveReload,
		CopyReset:  cfg.CopyReset(),
	}, p)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if cfg.Server.LiveReload && cfg.Paper != "" {
		w, err := livereload.Watch(cfg.Paper, srv.SetPaper)
		if err != nil {
			return err
		}
		defer w.Close()
		fmt.Fprintf(os.Stderr, "  Watching: %s\n", cfg.Paper)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "paperpage v%s serving %q at %s\n", Version, p.Title, url)
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if open, _ := cmd.Flags().GetBool("open"); open {
		go site.OpenBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
