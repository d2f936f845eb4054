package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"teller-ledger/app"
	"teller-ledger/domain"
	"teller-ledger/shared"
)

// Variables to hold flag values for query commands
var (
	queryBranch     string
	queryTellerCode string
	queryShiftCode  string
	queryClientID   string
	queryKind       string
	queryLimit      int
	querySkip       int
)

// queryCmd represents the query command group
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query shifts and ledger entries",
	Long:  `Provides read-only commands for listing shifts and ledger entries.`,
}

var queryShiftsCmd = &cobra.Command{
	Use:   "shifts",
	Short: "List shifts by branch, teller, or alert status",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			shifts []*domain.Shift
			err    error
		)
		switch {
		case queryTellerCode != "":
			shifts, err = shiftService.ListShiftsByTeller(app.ListShiftsByTellerQuery{
				TellerCode: queryTellerCode,
				Limit:      queryLimit,
				Skip:       querySkip,
			})
		case queryBranch != "":
			shifts, err = shiftService.ListShifts(app.ListShiftsQuery{
				Branch: queryBranch,
				Limit:  queryLimit,
				Skip:   querySkip,
			})
		default:
			exitWithError(fmt.Errorf("either --branch or --teller is required"))
		}
		if err != nil {
			exitWithError(fmt.Errorf("failed to list shifts: %w", err))
		}
		for _, shift := range shifts {
			fmt.Printf("%s  teller=%s  state=%s  alert=%t\n", shift.Code, shift.TellerCode, shift.State, shift.Alert)
		}
	},
}

var queryAlertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List shifts closed with a discrepancy",
	Run: func(cmd *cobra.Command, args []string) {
		shifts, err := shiftService.ListAlertShifts(app.ListAlertShiftsQuery{Limit: queryLimit, Skip: querySkip})
		if err != nil {
			exitWithError(fmt.Errorf("failed to list alert shifts: %w", err))
		}
		for _, shift := range shifts {
			fmt.Printf("%s  teller=%s  expected=%s  declared=%s  discrepancy=%s\n",
				shift.Code, shift.TellerCode, shift.ExpectedBalance.StringFixed(2),
				shift.DeclaredBalance.StringFixed(2), shift.Discrepancy.StringFixed(2))
		}
	},
}

var queryEntriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List ledger entries by shift, teller, or client",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			entries []*domain.TransactionEntry
			err     error
		)
		switch {
		case queryShiftCode != "":
			entries, err = shiftService.ListEntries(app.ListEntriesQuery{
				ShiftCode: queryShiftCode,
				Kind:      shared.TransactionKind(queryKind),
				Limit:     queryLimit,
				Skip:      querySkip,
			})
		case queryTellerCode != "":
			entries, err = shiftService.ListEntriesByTeller(app.ListEntriesByTellerQuery{
				TellerCode: queryTellerCode,
				Limit:      queryLimit,
				Skip:       querySkip,
			})
		case queryClientID != "":
			entries, err = shiftService.ListEntriesByClient(app.ListEntriesByClientQuery{
				ClientID: queryClientID,
				Limit:    queryLimit,
				Skip:     querySkip,
			})
		default:
			exitWithError(fmt.Errorf("one of --shift, --teller or --client is required"))
		}
		if err != nil {
			exitWithError(fmt.Errorf("failed to list entries: %w", err))
		}
		for _, entry := range entries {
			fmt.Printf("%s  %s  %s  shift=%s  at=%s\n", entry.Code, entry.Kind,
				entry.Amount.StringFixed(2), entry.ShiftCode,
				entry.CreatedAt.Format("2006-01-02 15:04:05"))
		}
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.AddCommand(queryShiftsCmd)
	queryShiftsCmd.Flags().StringVar(&queryBranch, "branch", "", "Branch code")
	queryShiftsCmd.Flags().StringVar(&queryTellerCode, "teller", "", "Teller code")
	queryShiftsCmd.Flags().IntVar(&queryLimit, "limit", 0, "Maximum number of results (0 = all)")
	queryShiftsCmd.Flags().IntVar(&querySkip, "skip", 0, "Number of results to skip")

	queryCmd.AddCommand(queryAlertsCmd)
	queryAlertsCmd.Flags().IntVar(&queryLimit, "limit", 0, "Maximum number of results (0 = all)")
	queryAlertsCmd.Flags().IntVar(&querySkip, "skip", 0, "Number of results to skip")

	queryCmd.AddCommand(queryEntriesCmd)
	queryEntriesCmd.Flags().StringVar(&queryShiftCode, "shift", "", "Shift code")
	queryEntriesCmd.Flags().StringVar(&queryTellerCode, "teller", "", "Teller code")
	queryEntriesCmd.Flags().StringVar(&queryClientID, "client", "", "Client ID")
	queryEntriesCmd.Flags().StringVar(&queryKind, "kind", "", "Filter by kind (DEPOSIT, WITHDRAWAL)")
	queryEntriesCmd.Flags().IntVar(&queryLimit, "limit", 0, "Maximum number of results (0 = all)")
	queryEntriesCmd.Flags().IntVar(&querySkip, "skip", 0, "Number of results to skip")
}
