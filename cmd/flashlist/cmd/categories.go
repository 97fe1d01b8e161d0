package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/flashlist/internal/category"
)

var (
	probeUser       string
	probeCandidates []string
	probePin        string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Maintain the category table",
}

var categoriesRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the category table from the eBay taxonomy",
	RunE:  runCategoriesRefresh,
}

var categoriesProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Find leaf categories with trial offers on a seller account",
	Long: "Create and delete one unpublished offer per candidate category on the\n" +
		"seller account of --user. Do not run while that seller is publishing.",
	RunE: runCategoriesProbe,
}

func init() {
	categoriesProbeCmd.Flags().StringVar(&probeUser, "user", "", "user whose eBay account runs the probe")
	categoriesProbeCmd.Flags().StringSliceVar(&probeCandidates, "candidate", nil, "category id to probe (default plant candidates)")
	categoriesProbeCmd.Flags().StringVar(&probePin, "pin", "", "pin the first leaf found under this label")
	cobra.CheckErr(categoriesProbeCmd.MarkFlagRequired("user"))

	categoriesCmd.AddCommand(categoriesRefreshCmd, categoriesProbeCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesRefresh(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	snap, err := a.categories.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refreshing categories: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "source: %s (%d labels)\n", snap.Source, len(snap.Entries))
	labels := make([]string, 0, len(snap.Entries))
	for label := range snap.Entries {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	for _, label := range labels {
		fmt.Fprintf(out, "  %-20s %s\n", label, snap.Entries[label])
	}
	return nil
}

func runCategoriesProbe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	token, err := a.tokens.ValidToken(ctx, probeUser)
	if err != nil {
		return fmt.Errorf("loading token for %s: %w", probeUser, err)
	}

	candidates := probeCandidates
	if len(candidates) == 0 {
		candidates = category.PlantCandidates
	}

	results, err := a.prober.Probe(ctx, token, candidates)
	if err != nil {
		return fmt.Errorf("probing categories: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "%-10s %-9s %s\n", r.CategoryID, r.Verdict, r.Detail)
	}

	if probePin == "" {
		return nil
	}
	id, ok := category.FirstLeaf(results)
	if !ok {
		return fmt.Errorf("no leaf among %d candidates; nothing pinned", len(candidates))
	}
	if err := a.categories.Pin(ctx, probePin, id); err != nil {
		return fmt.Errorf("pinning %s: %w", id, err)
	}
	fmt.Fprintf(out, "pinned %s as %q\n", id, probePin)
	return nil
}
