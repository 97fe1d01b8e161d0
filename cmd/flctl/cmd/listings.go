package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/flashlist/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Create, publish, and inspect listings",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
		listingsCreateCmd(),
		listingsEditCmd(),
		listingsDeleteCmd(),
		listingsPublishCmd(),
		listingsStatsCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		marketplace string
		status      string
		limit       int
		offset      int
		orderBy     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your listings with optional filters",
		Example: `  # List all listings
  flctl listings list

  # Listings whose eBay publish failed
  flctl listings list --marketplace ebay --status failed

  # Sort by price with pagination
  flctl listings list --order-by price --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListListings(context.Background(), &apiclient.ListListingsParams{
				Marketplace: marketplace,
				Status:      status,
				Limit:       limit,
				Offset:      offset,
				OrderBy:     orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}

			fmt.Printf("Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(resp.Listings)
		},
	}
	cmd.Flags().StringVar(&marketplace, "marketplace", "", "marketplace filter")
	cmd.Flags().StringVar(&status, "status", "", "status filter (pending, posted, failed, deleted)")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&orderBy, "order-by", "", "sort order (created_at, price, title)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show listing details",
		Example: `  flctl listings get 0b5c7f2e-3c8a-4d53-9a53-1f1f6b0f4b8e`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(l)
			}

			return printListingDetail(l)
		},
	}
}

func listingsCreateCmd() *cobra.Command {
	var in apiclient.NewListing

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing and publish it",
		Long: "Create a listing and publish it to each marketplace. A failed\n" +
			"publish is reported but still creates the listing; retry it with\n" +
			"'flctl listings publish'.",
		Example: `  flctl listings create --title "Monstera deliciosa" --price 25 \
    --category plants --condition New --image https://img.example.com/m.jpg`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.CreateListing(context.Background(), &in)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Printf("Created listing %s\n\n", resp.Listing.ID)
			return printReports(resp.Reports)
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "listing title")
	cmd.Flags().StringVar(&in.Description, "description", "", "listing description")
	cmd.Flags().StringVar(&in.Category, "category", "", "category label")
	cmd.Flags().StringVar(&in.Brand, "brand", "", "brand")
	cmd.Flags().StringVar(&in.Condition, "condition", "", "condition (New, Used, ...)")
	cmd.Flags().StringSliceVar(&in.Tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringSliceVar(&in.ImageURLs, "image", nil, "public image URL (repeatable)")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "asking price in USD")
	cmd.Flags().StringSliceVar(&in.Marketplaces, "marketplace", []string{"ebay"}, "target marketplace (repeatable)")
	cobra.CheckErr(cmd.MarkFlagRequired("title"))

	return cmd
}

func listingsEditCmd() *cobra.Command {
	var (
		title, description, category, brand, condition string
		tags, images, marketplaces                      []string
		price                                           float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a listing",
		Long: "Change listing fields. Only the flags you pass are sent. Passing\n" +
			"--marketplace replaces the targets; added marketplaces are published.",
		Example: `  flctl listings edit 0b5c7f2e-3c8a-4d53-9a53-1f1f6b0f4b8e --price 19.99
  flctl listings edit 0b5c7f2e-3c8a-4d53-9a53-1f1f6b0f4b8e --marketplace ebay --marketplace mercari`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var e apiclient.ListingEdit
			flags := cmd.Flags()
			if flags.Changed("title") {
				e.Title = &title
			}
			if flags.Changed("description") {
				e.Description = &description
			}
			if flags.Changed("category") {
				e.Category = &category
			}
			if flags.Changed("brand") {
				e.Brand = &brand
			}
			if flags.Changed("condition") {
				e.Condition = &condition
			}
			if flags.Changed("tag") {
				e.Tags = &tags
			}
			if flags.Changed("image") {
				e.ImageURLs = &images
			}
			if flags.Changed("price") {
				e.Price = &price
			}
			if flags.Changed("marketplace") {
				e.Marketplaces = marketplaces
			}

			resp, err := newClient().UpdateListing(context.Background(), args[0], &e)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Printf("Updated listing %s\n", resp.Listing.ID)
			if len(resp.Reports) == 0 {
				return nil
			}
			fmt.Println()
			return printReports(resp.Reports)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "listing title")
	cmd.Flags().StringVar(&description, "description", "", "listing description")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&brand, "brand", "", "brand")
	cmd.Flags().StringVar(&condition, "condition", "", "condition (New, Used, ...)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag (repeatable, replaces all tags)")
	cmd.Flags().StringSliceVar(&images, "image", nil, "public image URL (repeatable, replaces all images)")
	cmd.Flags().Float64Var(&price, "price", 0, "asking price in USD")
	cmd.Flags().StringSliceVar(&marketplaces, "marketplace", nil, "target marketplace (repeatable, replaces targets)")

	return cmd
}

func listingsStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize your listings",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := newClient().Stats(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(st)
			}
			return printStats(st)
		},
	}
}

func listingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a listing locally",
		Long:  "Delete a listing from FlashList. Live marketplace listings are left as they are.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().DeleteListing(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted listing %s\n", args[0])
			return nil
		},
	}
}

func listingsPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "publish <id> <marketplace>",
		Short:   "Retry publishing a failed listing",
		Example: `  flctl listings publish 0b5c7f2e-3c8a-4d53-9a53-1f1f6b0f4b8e ebay`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := newClient().Republish(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(r)
			}
			return printReports([]apiclient.PublishReport{*r})
		},
	}
}
