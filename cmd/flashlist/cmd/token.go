package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/flashlist/internal/auth"
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Mint an API bearer token for a user",
	Long: "Mint an API bearer token signed with auth.jwt_secret. Pass it to flctl\n" +
		"with --token or FLCTL_TOKEN.",
	Example: `  flashlist token 7d0f7c4e-1c61-4d3f-8f0e-2f2b4d1f9a10 --ttl 720h`,
	Args:    cobra.ExactArgs(1),
	RunE:    runToken,
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (default auth.token_ttl)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	ttl := cfg.Auth.TokenTTL
	if tokenTTL > 0 {
		ttl = tokenTTL
	}

	a := auth.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer, auth.WithTTL(ttl))
	tok, err := a.Mint(args[0])
	if err != nil {
		return fmt.Errorf("minting token: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
	return err
}
