package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var supportedLanguages = map[string]bool{"pt": true, "en": true}

func langCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lang [code]",
		Short: "Show or set the catalog language (pt, en)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Println(a.language.Code())
				return nil
			}

			code := args[0]
			if !supportedLanguages[code] {
				return fmt.Errorf("unsupported language %q (supported: pt, en)", code)
			}

			if err := a.language.Set(code); err != nil {
				return err
			}

			fmt.Printf("Language set to %s\n", code)
			return nil
		},
	}
}
