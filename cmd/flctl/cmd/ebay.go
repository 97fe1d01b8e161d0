package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/flashlist/internal/api/client"
)

func ebayCmd() *cobra.Command {
	ebayRoot := &cobra.Command{
		Use:   "ebay",
		Short: "Manage the eBay seller connection",
	}

	ebayRoot.AddCommand(
		ebayConnectCmd(),
		ebayStatusCmd(),
		ebayRefreshCmd(),
		ebayDisconnectCmd(),
		ebayPoliciesCmd(),
	)

	return ebayRoot
}

func ebayConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Print the eBay consent URL",
		Long: "Print the eBay consent URL. Open it in a browser and sign in as the\n" +
			"seller; eBay redirects back to the server, which stores the tokens.",
		RunE: func(_ *cobra.Command, _ []string) error {
			u, err := newClient().StartOAuth(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(u)
			return nil
		},
	}
}

func ebayStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the eBay connection status",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := newClient().EbayStatus(context.Background())
			if err != nil {
				return err
			}
			return printConnection(st)
		},
	}
}

func ebayRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Force an access token refresh",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := newClient().RefreshToken(context.Background())
			if apiclient.IsStatus(err, http.StatusNotFound) {
				return errors.New("no eBay account connected; run 'flctl ebay connect'")
			}
			if err != nil {
				return err
			}
			return printConnection(st)
		},
	}
}

func ebayDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Remove the stored eBay tokens",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := newClient().Disconnect(context.Background()); err != nil {
				return err
			}
			fmt.Println("Disconnected from eBay.")
			return nil
		},
	}
}

func ebayPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "Create any missing default business policies",
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := newClient().BootstrapPolicies(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(p)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Fulfillment:\t%s\n", p.FulfillmentPolicyID)
			tw.writef("Payment:\t%s\n", p.PaymentPolicyID)
			tw.writef("Return:\t%s\n", p.ReturnPolicyID)
			return tw.finish()
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the eBay API call budget",
		RunE: func(_ *cobra.Command, _ []string) error {
			q, err := newClient().GetQuota(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(q)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Daily:\t%d / %d (%d left)\n", q.DailyUsed, q.DailyLimit, q.Remaining)
			tw.writef("Resets:\t%s\n", q.ResetAt.Format("2006-01-02 15:04:05"))
			switch {
			case q.Remote != nil:
				tw.writef("eBay:\t%d / %d (%d left)\n", q.Remote.Count, q.Remote.Limit, q.Remote.Remaining)
			case q.RemoteError != "":
				tw.writef("eBay:\tunavailable (%s)\n", q.RemoteError)
			}
			return tw.finish()
		},
	}
}

func printConnection(st *apiclient.ConnectionStatus) error {
	if jsonOutput() {
		return outputJSON(st)
	}
	if !st.Connected {
		fmt.Println("Not connected. Run 'flctl ebay connect'.")
		return nil
	}

	tw := newTabWriter(os.Stdout)
	tw.writef("Seller:\t%s\n", st.ExternalUserID)
	tw.writef("Expires:\t%s\n", st.ExpiresAt.Format("2006-01-02 15:04:05"))
	tw.writef("Refreshed:\t%v\n", st.Refreshed)
	return tw.finish()
}
