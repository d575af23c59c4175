package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/chrisdamba/nutriplan/internal/api"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/repositories"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the plan editor API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runServe(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen-addr", ":8080", "Address the API listens on")
	bindFlags(serveCmd.Flags(), map[string]string{"listen_addr": "listen-addr"})
}

func runServe(ctx context.Context, cfg *models.Config) error {
	repo, closeRepo, err := openPlanRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	cat, err := loadCatalog(ctx, cfg, repo)
	if err != nil {
		return err
	}

	var week models.WeeklyPlan
	if repo != nil {
		week, err = repo.LoadPlan(ctx)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("failed to load stored plan: %w", err)
		}
	}

	session := api.NewSession(cat, generatorFunc(cfg), week, repo)
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.NewRouter(session),
	}

	go func() {
		log.Printf("Listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	session.Wait()
	log.Printf("Server stopped")
	return nil
}
