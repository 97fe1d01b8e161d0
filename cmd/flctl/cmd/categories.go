package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	categoriesRoot := &cobra.Command{
		Use:   "categories",
		Short: "Inspect and maintain the category table",
	}

	categoriesRoot.AddCommand(
		categoriesShowCmd(),
		categoriesRefreshCmd(),
		categoriesProbeCmd(),
	)

	return categoriesRoot
}

func categoriesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the label to category table",
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := newClient().Categories(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(t)
			}
			return printCategoryTable(t)
		},
	}
}

func categoriesRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Rebuild the table from the eBay category tree",
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := newClient().RefreshCategories(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(t)
			}
			return printCategoryTable(t)
		},
	}
}

func categoriesProbeCmd() *cobra.Command {
	var (
		candidates []string
		pinLabel   string
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Find leaf categories with trial offers",
		Long: "Create and delete a trial offer per candidate category on the\n" +
			"connected seller account to learn which ids accept listings.",
		Example: `  # Probe the built-in plant candidates and pin the first leaf
  flctl categories probe --pin plants

  # Probe specific ids
  flctl categories probe --candidate 159912 --candidate 165362`,
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := newClient().ProbeCategories(context.Background(), candidates, pinLabel)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if err := printProbeResults(resp.Results); err != nil {
				return err
			}
			if resp.Pinned != "" {
				fmt.Printf("\nPinned %s as %q\n", resp.Pinned, pinLabel)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&candidates, "candidate", nil, "category id to probe (repeatable)")
	cmd.Flags().StringVar(&pinLabel, "pin", "", "pin the first leaf found under this label")

	return cmd
}
