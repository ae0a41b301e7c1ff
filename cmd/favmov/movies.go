package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/favmov/favmov-go/internal/search"
	"github.com/favmov/favmov-go/internal/tmdb"
)

func popularCmd() *cobra.Command {
	var page int
	var all bool

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "List popular movies from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			catalog, err := a.catalog()
			if err != nil {
				return err
			}

			language := a.language.Code()

			if !all {
				movies, err := catalog.Popular(cmd.Context(), language, page)
				if err != nil {
					return fmt.Errorf("failed to fetch movies, please try again")
				}
				printMovies(movies)
				return nil
			}

			// Append pages until the catalog returns an empty one.
			for p := 1; ; p++ {
				movies, err := catalog.Popular(cmd.Context(), language, p)
				if err != nil {
					return fmt.Errorf("failed to fetch movies, please try again")
				}
				if len(movies) == 0 {
					return nil
				}
				printMovies(movies)
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page until the catalog runs out")
	return cmd
}

func searchCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog for movies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			catalog, err := a.catalog()
			if err != nil {
				return err
			}

			language := a.language.Code()

			if !interactive {
				if len(args) == 0 {
					return fmt.Errorf("query argument required (or use --interactive)")
				}
				movies, err := catalog.Search(cmd.Context(), args[0], language)
				if err != nil {
					return fmt.Errorf("search failed, please try again")
				}
				printMovies(movies)
				return nil
			}

			return runInteractiveSearch(catalog, language)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read queries from stdin, debounced")
	return cmd
}

// runInteractiveSearch reads queries line by line and prints a five-entry
// preview for each, debouncing input and cancelling superseded requests.
func runInteractiveSearch(catalog *tmdb.Client, language string) error {
	var mu sync.Mutex

	runner := search.NewRunner(search.DefaultDelay,
		catalog.SearchFunc(language),
		func(query string, movies []tmdb.Movie) {
			mu.Lock()
			defer mu.Unlock()
			if query == "" {
				return
			}
			fmt.Printf("\nResults for %q:\n", query)
			printMovies(movies)
			fmt.Print("> ")
		},
		func(query string, err error) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Printf("\nsearch failed, please try again\n> ")
		},
	)
	defer runner.Close()

	fmt.Println("Type to search, empty line to clear, Ctrl-D to quit.")
	fmt.Print("> ")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		runner.Query(scanner.Text())
	}
	fmt.Println()
	return scanner.Err()
}

func detailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <movie-id>",
		Short: "Show movie details via the API server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movieID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			api, err := a.authedAPI()
			if err != nil {
				return err
			}

			raw, err := api.MovieDetails(cmd.Context(), movieID, a.language.Code())
			if err != nil {
				return a.handleAuthErr(err)
			}

			var details tmdb.MovieDetails
			if err := json.Unmarshal(raw, &details); err != nil {
				return err
			}

			fmt.Printf("%s (%s)\n", details.Title, details.ReleaseDate)
			if details.Tagline != "" {
				fmt.Printf("%s\n", details.Tagline)
			}
			if len(details.Genres) > 0 {
				names := make([]string, len(details.Genres))
				for i, g := range details.Genres {
					names[i] = g.Name
				}
				fmt.Printf("Genres: %s\n", strings.Join(names, ", "))
			}
			if details.Runtime > 0 {
				fmt.Printf("Runtime: %d min\n", details.Runtime)
			}
			fmt.Printf("Rating: %.1f\n", details.VoteAverage)
			if details.Overview != "" {
				fmt.Printf("\n%s\n", details.Overview)
			}
			return nil
		},
	}
}

func printMovies(movies []tmdb.Movie) {
	if len(movies) == 0 {
		fmt.Println("No movies found.")
		return
	}
	for _, m := range movies {
		year := m.ReleaseDate
		if len(year) >= 4 {
			year = year[:4]
		}
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		fmt.Printf("%8d  %-40s %s  %.1f  %s\n", m.ID, m.Title, year, m.VoteAverage, strings.Join(names, "/"))
	}
}
