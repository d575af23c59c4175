package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/chrisdamba/nutriplan/internal/cloudwriter"
	"github.com/chrisdamba/nutriplan/internal/shopping"
	"github.com/spf13/cobra"
)

var (
	shoppingPlanFile string
	shoppingOut      string
	shoppingUpload   bool
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Print the shopping list for the week",
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
		week, err := currentPlan(cmd.Context(), cfg, cat, repo, shoppingPlanFile)
		if err != nil {
			return err
		}

		list := shopping.Build(cat, week)
		if list.Empty() {
			log.Printf("The plan is empty, nothing to buy")
		}

		var w io.WriteCloser = nopCloser{os.Stdout}
		switch {
		case shoppingUpload:
			factory, err := cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
			if err != nil {
				return err
			}
			objectPath := path.Join(cfg.OutputFolder, "shopping-list.txt")
			w, err = factory.NewWriter(cfg.CloudStorage.BucketName, objectPath)
			if err != nil {
				return err
			}
			log.Printf("Uploading shopping list to s3://%s/%s", cfg.CloudStorage.BucketName, objectPath)
		case shoppingOut != "":
			f, err := os.Create(shoppingOut)
			if err != nil {
				return err
			}
			w = f
		}

		if _, err := io.WriteString(w, list.Text()); err != nil {
			w.Close()
			return fmt.Errorf("failed to write shopping list: %w", err)
		}
		return w.Close()
	},
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func init() {
	rootCmd.AddCommand(shoppingCmd)
	shoppingCmd.Flags().StringVar(&shoppingPlanFile, "plan-file", "", "Read the plan from a JSON file")
	shoppingCmd.Flags().StringVar(&shoppingOut, "out", "", "Write the list to this file instead of stdout")
	shoppingCmd.Flags().BoolVar(&shoppingUpload, "upload", false, "Upload the list to the configured S3 bucket")
}
