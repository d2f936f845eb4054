package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"teller-ledger/app"
	"teller-ledger/domain"
)

// Variables to hold flag values for teller commands
var (
	tellerCode      string
	tellerTillCode  string
	tellerFirstName string
	tellerLastName  string
	tellerEmail     string
	tellerBranch    string
)

// tellerCmd represents the teller command group
var tellerCmd = &cobra.Command{
	Use:   "teller",
	Short: "Manage tellers",
	Long:  `Provides commands for registering, deactivating and listing tellers.`,
}

var tellerRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new teller",
	Run: func(cmd *cobra.Command, args []string) {
		teller, err := shiftService.RegisterTeller(app.RegisterTellerCommand{
			Code:      tellerCode,
			TillCode:  tellerTillCode,
			FirstName: tellerFirstName,
			LastName:  tellerLastName,
			Email:     tellerEmail,
			Branch:    tellerBranch,
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to register teller: %w", err))
		}
		fmt.Printf("Registered teller '%s' (id %s) at till '%s', branch '%s'.\n",
			teller.Code, teller.ID, teller.TillCode, teller.Branch)
	},
}

var tellerDeactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Deactivate a teller",
	Long:  `Marks a teller inactive. Inactive tellers cannot open new shifts.`,
	Run: func(cmd *cobra.Command, args []string) {
		teller, err := shiftService.DeactivateTeller(tellerCode)
		if err != nil {
			exitWithError(fmt.Errorf("failed to deactivate teller: %w", err))
		}
		fmt.Printf("Deactivated teller '%s'.\n", teller.Code)
	},
}

var tellerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tellers",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			list []*domain.Teller
			err  error
		)
		if tellerBranch != "" {
			list, err = shiftService.ListTellersByBranch(tellerBranch)
		} else {
			list, err = shiftService.ListActiveTellers()
		}
		if err != nil {
			exitWithError(fmt.Errorf("failed to list tellers: %w", err))
		}
		for _, t := range list {
			fmt.Printf("%s  till=%s  branch=%s  active=%t\n", t.Code, t.TillCode, t.Branch, t.Active)
		}
	},
}

func init() {
	rootCmd.AddCommand(tellerCmd)

	tellerCmd.AddCommand(tellerRegisterCmd)
	tellerRegisterCmd.Flags().StringVar(&tellerCode, "code", "", "Teller code (required)")
	tellerRegisterCmd.Flags().StringVar(&tellerTillCode, "till", "", "Till code (required)")
	tellerRegisterCmd.Flags().StringVar(&tellerFirstName, "first-name", "", "First name")
	tellerRegisterCmd.Flags().StringVar(&tellerLastName, "last-name", "", "Last name")
	tellerRegisterCmd.Flags().StringVar(&tellerEmail, "email", "", "Email address")
	tellerRegisterCmd.Flags().StringVar(&tellerBranch, "branch", "", "Branch code")
	_ = tellerRegisterCmd.MarkFlagRequired("code")
	_ = tellerRegisterCmd.MarkFlagRequired("till")

	tellerCmd.AddCommand(tellerDeactivateCmd)
	tellerDeactivateCmd.Flags().StringVar(&tellerCode, "code", "", "Teller code (required)")
	_ = tellerDeactivateCmd.MarkFlagRequired("code")

	tellerCmd.AddCommand(tellerListCmd)
	tellerListCmd.Flags().StringVar(&tellerBranch, "branch", "", "Filter by branch (default: active tellers)")
}
