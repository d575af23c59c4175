package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/factories"
	"github.com/spf13/cobra"
)

var (
	catalogOut  string
	synthSeed   int64
	synthGroups int
	synthItems  int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the food groups and items of the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		repo, closeRepo, err := openPlanRepository(cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		cat, err := loadCatalog(cmd.Context(), cfg, repo)
		if err != nil {
			return err
		}
		printCatalog(os.Stdout, cat)
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		repo, closeRepo, err := openPlanRepository(cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		cat, err := loadCatalog(cmd.Context(), cfg, repo)
		if err != nil {
			return err
		}
		return writeCatalog(cat, catalogOut)
	},
}

var catalogPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Store the catalog file in Redis so every command and the API use it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.CatalogFile == "" {
			return fmt.Errorf("--catalog-file is required")
		}
		repo, closeRepo, err := openPlanRepository(cfg)
		if err != nil {
			return err
		}
		defer closeRepo()
		if repo == nil {
			return fmt.Errorf("--redis-url is required")
		}

		cat, err := catalog.Load(cfg.CatalogFile)
		if err != nil {
			return err
		}
		if err := repo.SaveCatalog(cmd.Context(), cat.Groups()); err != nil {
			return fmt.Errorf("failed to store catalog: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Stored %d groups from %s\n", len(cat.GroupNames()), cfg.CatalogFile)
		return nil
	},
}

var catalogSynthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Generate a synthetic catalog for testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		factory := factories.NewCatalogFactory(synthSeed)
		if synthGroups > 0 {
			factory.MaxGroups = synthGroups
			factory.MinGroups = synthGroups
		}
		if synthItems > 0 {
			factory.MaxItems = synthItems
		}
		return writeCatalog(factory.CreateCatalog(), catalogOut)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogExportCmd, catalogPushCmd, catalogSynthCmd)

	catalogCmd.PersistentFlags().StringVarP(&catalogOut, "out", "o", "", "Write JSON to this file instead of stdout")
	catalogSynthCmd.Flags().Int64Var(&synthSeed, "synth-seed", 1, "Seed of the synthetic catalog")
	catalogSynthCmd.Flags().IntVar(&synthGroups, "groups", 0, "Exact number of groups (random if 0)")
	catalogSynthCmd.Flags().IntVar(&synthItems, "max-items", 0, "Maximum items per group")
}

func writeCatalog(cat *catalog.Catalog, path string) error {
	if path == "" {
		return cat.WriteJSON(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cat.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	for _, g := range cat.Groups() {
		fmt.Fprintf(w, "%s (max %s per day)\n", g.Name, g.MaxDaily)
		for _, item := range g.Items {
			fmt.Fprintf(w, "  %-6s %-32s %-18s %4d kcal\n", item.ID, item.Name, item.Portion, item.Calories)
		}
	}
}
