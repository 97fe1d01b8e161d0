package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/flashlist/internal/api/client"
	domain "github.com/donaldgifford/flashlist/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tPRICE\tMARKETPLACES\n")
	for i := range listings {
		tw.writef("%s\t%s\t$%.2f\t%s\n",
			listings[i].ID,
			truncate(listings[i].Title, 40),
			listings[i].Price,
			statusSummary(listings[i].MarketplaceStatus),
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("Price:\t$%.2f\n", l.Price)
	tw.writef("Category:\t%s\n", l.Category)
	tw.writef("Condition:\t%s\n", l.Condition)
	tw.writef("Tags:\t%s\n", strings.Join(l.Tags, ", "))
	tw.writef("Status:\t%s\n", statusSummary(l.MarketplaceStatus))
	if l.EbayItemID != "" {
		tw.writef("eBay Item:\t%s\n", l.EbayItemID)
	}
	tw.writef("Created:\t%s\n", l.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printReports(reports []apiclient.PublishReport) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("MARKETPLACE\tSTATUS\tERROR\n")
	for _, r := range reports {
		tw.writef("%s\t%s\t%s\n", r.Marketplace, r.Status, truncate(r.Error, 60))
	}
	return tw.finish()
}

func printStats(st *apiclient.ListingStats) error {
	fmt.Printf("Listings: %d\n\n", st.Total)

	tw := newTabWriter(os.Stdout)
	tw.writef("STATUS\tCOUNT\n")
	for _, s := range []domain.Status{
		domain.StatusPending, domain.StatusPosted, domain.StatusFailed, domain.StatusDeleted,
	} {
		tw.writef("%s\t%d\n", s, st.ByStatus[s])
	}
	if err := tw.finish(); err != nil {
		return err
	}

	if len(st.TopCategories) == 0 {
		return nil
	}
	fmt.Println()
	tw = newTabWriter(os.Stdout)
	tw.writef("CATEGORY\tLISTINGS\n")
	for _, c := range st.TopCategories {
		tw.writef("%s\t%d\n", c.Category, c.Count)
	}
	return tw.finish()
}

func printCategoryTable(t *apiclient.CategoryTable) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Source:\t%s\n", t.Source)
	tw.writef("Refreshed:\t%s\n\n", t.RefreshedAt.Format("2006-01-02 15:04:05"))
	tw.writef("LABEL\tCATEGORY ID\n")

	labels := make([]string, 0, len(t.Entries))
	for label := range t.Entries {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	for _, label := range labels {
		tw.writef("%s\t%s\n", label, t.Entries[label])
	}
	return tw.finish()
}

func printProbeResults(results []apiclient.ProbeResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("CATEGORY ID\tVERDICT\tDETAIL\n")
	for _, r := range results {
		tw.writef("%s\t%s\t%s\n", r.CategoryID, r.Verdict, truncate(r.Detail, 60))
	}
	return tw.finish()
}

// statusSummary renders a status map as "ebay=posted mercari=pending".
func statusSummary(s domain.MarketplaceStatus) string {
	if len(s) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(s))
	for m := range s {
		keys = append(keys, string(m))
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+string(s[domain.Marketplace(k)]))
	}
	return strings.Join(parts, " ")
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
