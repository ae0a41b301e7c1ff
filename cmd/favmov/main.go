// Package main provides the favmov binary, a command-line client for the
// Favorite Movies API: browse the catalog, manage the account and keep a
// personal favorites list.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/favmov/favmov-go/internal/client"
	"github.com/favmov/favmov-go/internal/store"
	"github.com/favmov/favmov-go/internal/tmdb"
)

func main() {
	// .env is optional for the CLI.
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the CLI's shared state: config, persisted stores and clients.
type app struct {
	apiURL    string
	tmdbKey   string
	session   *store.SessionStore
	favorites *store.FavoritesCache
	language  *store.LanguageStore
}

func newApp() (*app, error) {
	dir := os.Getenv("FAVMOV_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".favmov")
	}

	session, err := store.OpenSession(dir)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	favorites, err := store.OpenFavorites(dir)
	if err != nil {
		return nil, fmt.Errorf("opening favorites cache: %w", err)
	}
	language, err := store.OpenLanguage(dir)
	if err != nil {
		return nil, fmt.Errorf("opening language store: %w", err)
	}

	apiURL := os.Getenv("FAVMOV_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:3000"
	}

	return &app{
		apiURL:    apiURL,
		tmdbKey:   os.Getenv("TMDB_API_KEY"),
		session:   session,
		favorites: favorites,
		language:  language,
	}, nil
}

// api returns a client carrying the current session token, which may be empty.
func (a *app) api() *client.Client {
	return client.New(a.apiURL, a.session.Token())
}

// authedAPI returns a client for protected endpoints, failing when logged out.
func (a *app) authedAPI() (*client.Client, error) {
	if !a.session.Authenticated() {
		return nil, fmt.Errorf("not logged in; run 'favmov login' first")
	}
	return a.api(), nil
}

// catalog returns the TMDB gateway used for browsing and search.
func (a *app) catalog() (*tmdb.Client, error) {
	if a.tmdbKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is not set")
	}
	return tmdb.NewClient(a.tmdbKey), nil
}

// handleAuthErr clears the local session when the server rejects the token.
// A 401 drops the client back to the logged-out state.
func (a *app) handleAuthErr(err error) error {
	if client.IsUnauthorized(err) {
		_ = a.session.Logout()
		return fmt.Errorf("session expired, please log in again")
	}
	return err
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favmov",
		Short: "Favorite Movies command-line client",
		Long: `favmov browses popular movies from the catalog, shows details,
and keeps a personal favorites list backed by the Favorite Movies API.

Configuration comes from the environment (or a .env file):
  FAVMOV_API_URL  API server base URL (default http://localhost:3000)
  FAVMOV_HOME     local state directory (default ~/.favmov)
  TMDB_API_KEY    catalog API key, required for popular/search`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		registerCmd(),
		loginCmd(),
		logoutCmd(),
		whoamiCmd(),
		setPhotoCmd(),
		popularCmd(),
		searchCmd(),
		detailsCmd(),
		favoritesCmd(),
		langCmd(),
	)

	return cmd
}
