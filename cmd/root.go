package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/ffb-cli/internal/cache"
	"github.com/sells-group/ffb-cli/internal/config"
	"github.com/sells-group/ffb-cli/internal/session"
	"github.com/sells-group/ffb-cli/pkg/ffb"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ffb",
	Short: "Fantasy Footballers data from the command line",
	Long:  "Pulls premium rankings, projections, trade values, and start/sit verdicts plus public player search and news, rendered as tables or JSON.",
	// Failures are reported by fail() with guidance; suppress cobra's own
	// error/usage echo.
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Credentials may live in a local .env file.
		_ = godotenv.Load()

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newSessionStore opens the per-user session store.
func newSessionStore() (*session.Store, error) {
	path, err := config.SessionPath()
	if err != nil {
		return nil, err
	}
	return session.NewStore(path), nil
}

// newClient builds the API client. With requireAuth the saved session is
// loaded and attached; a missing session fails up front instead of as a
// confusing 401 later.
func newClient(requireAuth bool) (*ffb.Client, error) {
	clientCfg := ffb.Config{
		APIBase:  cfg.Site.APIBase,
		PageBase: cfg.Site.BaseURL,
	}
	if !requireAuth {
		return ffb.New(clientCfg), nil
	}

	store, err := newSessionStore()
	if err != nil {
		return nil, err
	}
	rec, ok := store.Load()
	if !ok {
		return nil, eris.Wrap(ffb.ErrNotLoggedIn, "run `ffb login` first")
	}
	return ffb.New(clientCfg, ffb.WithSession(rec)), nil
}

// newCache opens the on-disk response cache.
func newCache() (cache.Cache, error) {
	dir, err := config.CacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir), nil
}

func projectionsTTL() time.Duration {
	return time.Duration(cfg.Cache.ProjectionsTTLMins) * time.Minute
}

func playersTTL() time.Duration {
	return time.Duration(cfg.Cache.PlayersTTLHours) * time.Hour
}

// fail prints a terminal failure for the invocation. Auth expiry gets
// re-login guidance instead of a raw error chain.
func fail(err error) error {
	switch {
	case eris.Is(err, ffb.ErrAuthExpired):
		fmt.Fprintln(os.Stderr, "Session expired. Run `ffb login` to re-authenticate.")
	case eris.Is(err, ffb.ErrNotLoggedIn):
		fmt.Fprintln(os.Stderr, "Not logged in. Run `ffb login` first.")
	default:
		fmt.Fprintln(os.Stderr, err.Error())
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
