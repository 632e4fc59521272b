// Command gcal-auth authorizes Google Calendar access once and saves token.json.
//
// Usage:
//
//	go run ./cmd/gcal-auth [--credentials google-credentials.json] [--token token.json]
//
// Open the printed URL, sign in, and paste the authorization code back.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"travel-backoffice/pkg/gcalendar"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var credentialsPath, tokenPath string

	cmd := &cobra.Command{
		Use:          "gcal-auth",
		Short:        "Authorize Google Calendar access and save an OAuth token",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credentialsPath, err)
			}

			config, err := gcalendar.NewOAuthConfig(data)
			if err != nil {
				return fmt.Errorf("%q is not an OAuth desktop app credentials file: %w", credentialsPath, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Step 1: open this URL in a browser and sign in with the calendar owner account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, config.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "Step 2: paste the authorization code and press Enter: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := config.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}

			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken saved to %s. Restart the API and consumer to enable stay mirroring.\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsPath, "credentials", "google-credentials.json", "OAuth desktop app credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenPath, "Where to write the token")

	return cmd
}
