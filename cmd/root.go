package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"teller-ledger/app"
	"teller-ledger/domain"
	"teller-ledger/logger"
	"teller-ledger/store"
)

var (
	// Shared application service instance
	shiftService *app.ShiftService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "teller-cli",
	Short: "A CLI for the teller shift reconciliation ledger",
	Long: `teller-cli is a command-line interface for tracking teller cash
shifts: opening a shift with a counted cash float, posting deposits and
withdrawals against it, and closing it by reconciling the final count
against the expected balance.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Initialize shared services here, using in-memory stores.
	shifts := store.NewInMemoryShiftStore()
	ledger := store.NewInMemoryLedgerStore()
	tellers := store.NewInMemoryTellerDirectory()
	shiftService = app.NewShiftService(shifts, ledger, tellers, logger.New())
}

// Helper function to print errors and exit
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// parseCashCount turns repeated "denomination:count" flag values
// (e.g. "20:5") into a CashCount. Validation proper happens in the
// engine; this only parses the syntax.
func parseCashCount(lines []string) (domain.CashCount, error) {
	count := make(domain.CashCount, 0, len(lines))
	for _, raw := range lines {
		parts := strings.SplitN(raw, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid cash count line %q, expected denomination:count", raw)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid count in line %q: %v", raw, err)
		}
		count = append(count, domain.DenominationLine{
			Denomination: domain.Denomination(parts[0]),
			Count:        n,
		})
	}
	return count, nil
}

func formatCashCount(count domain.CashCount) string {
	parts := make([]string, 0, len(count))
	for _, line := range count {
		parts = append(parts, fmt.Sprintf("%dx%s", line.Count, line.Denomination))
	}
	return strings.Join(parts, ", ")
}
