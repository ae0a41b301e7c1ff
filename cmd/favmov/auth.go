package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <name> <email> <password>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			auth, err := a.api().Register(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			if err := a.session.Login(auth.Token, auth.User); err != nil {
				return err
			}

			fmt.Printf("Registered and logged in as %s <%s>\n", auth.User.Name, auth.User.Email)
			return nil
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in to the Favorite Movies API",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			auth, err := a.api().Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if err := a.session.Login(auth.Token, auth.User); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s <%s>\n", auth.User.Name, auth.User.Email)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.session.Logout(); err != nil {
				return err
			}

			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if !a.session.Authenticated() {
				fmt.Println("Not logged in")
				return nil
			}

			user := a.session.User()
			if remote {
				api, err := a.authedAPI()
				if err != nil {
					return err
				}
				fresh, err := api.Me(cmd.Context())
				if err != nil {
					return a.handleAuthErr(err)
				}
				if err := a.session.UpdateUser(fresh); err != nil {
					return err
				}
				user = &fresh
			}

			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			if user.PhotoURL != nil {
				fmt.Printf("Photo: %s\n", *user.PhotoURL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "fetch the profile from the server instead of the local snapshot")
	return cmd
}

func setPhotoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-photo <file>",
		Short: "Upload a profile photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			api, err := a.authedAPI()
			if err != nil {
				return err
			}

			user, err := api.UpdatePhoto(cmd.Context(), args[0])
			if err != nil {
				return a.handleAuthErr(err)
			}

			if err := a.session.UpdateUser(user); err != nil {
				return err
			}

			if user.PhotoURL != nil {
				fmt.Printf("Photo updated: %s\n", *user.PhotoURL)
			} else {
				fmt.Println("Photo updated")
			}
			return nil
		},
	}
}
