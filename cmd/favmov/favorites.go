package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/favmov/favmov-go/internal/model"
	"github.com/favmov/favmov-go/internal/store"
)

func favoritesCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorite movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if offline {
				printCached(a.favorites.List())
				return nil
			}

			api, err := a.authedAPI()
			if err != nil {
				return err
			}

			favorites, err := api.Favorites(cmd.Context())
			if err != nil {
				return a.handleAuthErr(err)
			}

			// Mirror the server's list into the offline cache.
			cached := make([]store.CachedMovie, len(favorites))
			for i, f := range favorites {
				cached[i] = store.CachedMovie{
					ID:         f.MovieID,
					Title:      f.Title,
					PosterPath: f.PosterPath,
					Overview:   f.Overview,
				}
			}
			if err := a.favorites.Replace(cached); err != nil {
				return err
			}

			printCached(cached)
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "show the local cache without contacting the server")

	cmd.AddCommand(favoritesAddCmd(), favoritesRemoveCmd(), favoritesCheckCmd())
	return cmd
}

func favoritesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <movie-id>",
		Short: "Add a movie to favorites",
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

			catalog, err := a.catalog()
			if err != nil {
				return err
			}

			details, err := catalog.MovieDetails(cmd.Context(), movieID, a.language.Code())
			if err != nil {
				return fmt.Errorf("failed to fetch movie details, please try again")
			}

			favorite, err := api.AddFavorite(cmd.Context(), model.AddFavoriteRequest{
				MovieID:    details.ID,
				Title:      details.Title,
				PosterPath: details.PosterPath,
				Overview:   details.Overview,
			})
			if err != nil {
				return a.handleAuthErr(err)
			}

			if err := a.favorites.Add(store.CachedMovie{
				ID:         favorite.MovieID,
				Title:      favorite.Title,
				PosterPath: favorite.PosterPath,
				Overview:   favorite.Overview,
			}); err != nil {
				return err
			}

			fmt.Printf("Added %q to favorites\n", favorite.Title)
			return nil
		},
	}
}

func favoritesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <movie-id>",
		Short: "Remove a movie from favorites",
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

			if err := api.RemoveFavorite(cmd.Context(), movieID); err != nil {
				return a.handleAuthErr(err)
			}

			if err := a.favorites.Remove(movieID); err != nil {
				return err
			}

			fmt.Println("Removed from favorites")
			return nil
		},
	}
}

func favoritesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <movie-id>",
		Short: "Check whether a movie is in favorites",
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

			isFavorite, err := api.CheckFavorite(cmd.Context(), movieID)
			if err != nil {
				return a.handleAuthErr(err)
			}

			if isFavorite {
				fmt.Println("yes")
			} else {
				fmt.Println("no")
			}
			return nil
		},
	}
}

func printCached(movies []store.CachedMovie) {
	if len(movies) == 0 {
		fmt.Println("No favorites yet.")
		return
	}
	for _, m := range movies {
		fmt.Printf("%8d  %s\n", m.ID, m.Title)
	}
}
