package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"teller-ledger/app"
	"teller-ledger/domain"
)

// Variables to hold flag values for shift commands
var (
	shiftTellerCode string
	shiftCode       string
	shiftLines      []string
	shiftNote       string
)

// shiftCmd represents the shift command group
var shiftCmd = &cobra.Command{
	Use:   "shift",
	Short: "Open and close teller shifts",
	Long: `Provides commands for opening a shift with a counted cash float and
closing it by reconciling the final count against the expected balance.`,
}

var shiftOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a shift for a teller",
	Run: func(cmd *cobra.Command, args []string) {
		count, err := parseCashCount(shiftLines)
		if err != nil {
			exitWithError(err)
		}

		shift, err := shiftService.OpenShift(app.OpenShiftCommand{
			TellerCode:   shiftTellerCode,
			OpeningCount: count,
			Note:         shiftNote,
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to open shift: %w", err))
		}

		opening, _ := shift.OpeningTotal()
		fmt.Printf("Opened shift '%s' for teller '%s' with float %s (%s).\n",
			shift.Code, shift.TellerCode, opening.StringFixed(2), formatCashCount(shift.OpeningCount))
	},
}

var shiftCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close a shift and reconcile the cash count",
	Run: func(cmd *cobra.Command, args []string) {
		count, err := parseCashCount(shiftLines)
		if err != nil {
			exitWithError(err)
		}

		shift, err := shiftService.CloseShift(app.CloseShiftCommand{
			ShiftCode:    shiftCode,
			ClosingCount: count,
			Note:         shiftNote,
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to close shift: %w", err))
		}

		fmt.Printf("Closed shift '%s'. Expected %s, declared %s, discrepancy %s.\n",
			shift.Code, shift.ExpectedBalance.StringFixed(2),
			shift.DeclaredBalance.StringFixed(2), shift.Discrepancy.StringFixed(2))
		if shift.Alert {
			fmt.Println("ALERT: the declared count does not match the expected balance.")
		}
	},
}

var shiftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a shift by code",
	Run: func(cmd *cobra.Command, args []string) {
		shift, err := shiftService.GetShift(shiftCode)
		if err != nil {
			exitWithError(fmt.Errorf("failed to load shift: %w", err))
		}
		printShift(shift)
	},
}

func printShift(shift *domain.Shift) {
	fmt.Printf("Shift %s\n", shift.Code)
	fmt.Printf("  Teller: %s  Till: %s  Branch: %s\n", shift.TellerCode, shift.TillCode, shift.Branch)
	fmt.Printf("  State: %s  Opened: %s\n", shift.State, shift.OpenedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Opening count: %s\n", formatCashCount(shift.OpeningCount))
	if shift.ClosedAt != nil {
		fmt.Printf("  Closed: %s\n", shift.ClosedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Closing count: %s\n", formatCashCount(shift.ClosingCount))
		fmt.Printf("  Expected: %s  Declared: %s  Discrepancy: %s  Alert: %t\n",
			shift.ExpectedBalance.StringFixed(2), shift.DeclaredBalance.StringFixed(2),
			shift.Discrepancy.StringFixed(2), shift.Alert)
	}
	if shift.Notes != "" {
		fmt.Printf("  Notes: %s\n", shift.Notes)
	}
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.AddCommand(shiftOpenCmd)
	shiftOpenCmd.Flags().StringVar(&shiftTellerCode, "teller", "", "Teller code (required)")
	shiftOpenCmd.Flags().StringArrayVar(&shiftLines, "line", nil, "Opening count line as denomination:count, repeatable (required)")
	shiftOpenCmd.Flags().StringVar(&shiftNote, "note", "", "Opening note")
	_ = shiftOpenCmd.MarkFlagRequired("teller")
	_ = shiftOpenCmd.MarkFlagRequired("line")

	shiftCmd.AddCommand(shiftCloseCmd)
	shiftCloseCmd.Flags().StringVar(&shiftCode, "code", "", "Shift code (required)")
	shiftCloseCmd.Flags().StringArrayVar(&shiftLines, "line", nil, "Closing count line as denomination:count, repeatable (required)")
	shiftCloseCmd.Flags().StringVar(&shiftNote, "note", "", "Closing note")
	_ = shiftCloseCmd.MarkFlagRequired("code")
	_ = shiftCloseCmd.MarkFlagRequired("line")

	shiftCmd.AddCommand(shiftShowCmd)
	shiftShowCmd.Flags().StringVar(&shiftCode, "code", "", "Shift code (required)")
	_ = shiftShowCmd.MarkFlagRequired("code")
}
