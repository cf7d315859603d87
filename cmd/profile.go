package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/axlewave/leadgen-cli/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile [customer|partner]",
	Short: "Print the discovery profile the pipeline targets",
	Long:  "Renders the customer or partner profile text derived from the configured company context.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := profile.NewProvider(cfg.Profile.ContextPath)

		which := "customer"
		if len(args) == 1 {
			which = args[0]
		}

		switch which {
		case "customer":
			fmt.Println(p.CustomerProfile())
		case "partner":
			fmt.Println(p.PartnerProfile())
		default:
			return eris.Errorf("unknown profile %q (supported: customer, partner)", which)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
