package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/ffb-cli/internal/session"
	"github.com/sells-group/ffb-cli/pkg/ffb"
)

// errSessionInvalid marks a --status check that found no usable session.
// Printed guidance accompanies it; the error only drives the exit code.
var errSessionInvalid = eris.New("login: session invalid")

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Capture a site session via the browser",
	Long:  "Opens a browser window for login and captures the session cookies and API nonce. With --headless, credentials are submitted automatically (flags, FFB_USERNAME/FFB_PASSWORD, or config).",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		store, err := newSessionStore()
		if err != nil {
			return fail(err)
		}

		if ok, _ := cmd.Flags().GetBool("status"); ok {
			clientCfg := ffb.Config{APIBase: cfg.Site.APIBase, PageBase: cfg.Site.BaseURL}
			return loginStatus(ctx, clientCfg, store)
		}
		if ok, _ := cmd.Flags().GetBool("logout"); ok {
			if err := store.Clear(); err != nil {
				return fail(err)
			}
			fmt.Println("Logged out.")
			return nil
		}

		capturer := session.NewCapturer(store, cfg.Site, cfg.Auth)

		var cookies int
		if ok, _ := cmd.Flags().GetBool("headless"); ok {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			cookies, err = capturer.Headless(ctx, username, password)
		} else {
			fmt.Println("A browser window will open. Log in to the site; capture continues automatically.")
			cookies, err = capturer.Interactive(ctx)
		}
		if err != nil {
			return fail(err)
		}

		fmt.Printf("Logged in. Captured %d cookies and an API nonce.\n", cookies)
		return nil
	},
}

// loginStatus reports the saved session's age and then verifies it against
// the auth endpoint. An unreachable API is reported but does not fail the
// check; an expired session does.
func loginStatus(ctx context.Context, clientCfg ffb.Config, store *session.Store) error {
	rec, ok := store.Load()
	if !ok {
		fmt.Println("Not logged in.")
		return errSessionInvalid
	}
	if age, ok := store.AgeHours(); ok {
		fmt.Printf("Logged in. Session captured %.1f hours ago.\n", age)
	}

	client := ffb.New(clientCfg, ffb.WithSession(rec))
	switch err := client.VerifyAuth(ctx); {
	case err == nil:
		fmt.Println("Session is valid.")
		return nil
	case eris.Is(err, ffb.ErrAuthExpired):
		fmt.Fprintln(os.Stderr, "Session expired. Run `ffb login` to re-authenticate.")
		return errSessionInvalid
	default:
		fmt.Fprintf(os.Stderr, "Could not verify session: %v\n", err)
		return nil
	}
}

func init() {
	loginCmd.Flags().Bool("headless", false, "submit credentials without a visible browser")
	loginCmd.Flags().StringP("username", "u", "", "username for headless login")
	loginCmd.Flags().StringP("password", "p", "", "password for headless login")
	loginCmd.Flags().Bool("status", false, "show session status and exit")
	loginCmd.Flags().Bool("logout", false, "clear the saved session")
	rootCmd.AddCommand(loginCmd)
}
