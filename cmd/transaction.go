package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"teller-ledger/app"
	"teller-ledger/shared"
)

// Variables to hold flag values for transaction commands
var (
	txShiftID   string
	txKind      string
	txAmountStr string
	txLines     []string
	txClientID  string
	txAccount   string
	txNote      string
)

// transactionCmd represents the transaction command group
var transactionCmd = &cobra.Command{
	Use:   "transaction",
	Short: "Post transactions against an open shift",
	Long:  `Provides commands for posting deposits and withdrawals to an open shift's ledger.`,
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a deposit or withdrawal",
	Run: func(cmd *cobra.Command, args []string) {
		amount, err := decimal.NewFromString(txAmountStr)
		if err != nil {
			exitWithError(fmt.Errorf("invalid amount format: %q. %v", txAmountStr, err))
		}

		count, err := parseCashCount(txLines)
		if err != nil {
			exitWithError(err)
		}

		entry, err := shiftService.PostTransaction(app.PostTransactionCommand{
			ShiftID:       txShiftID,
			Kind:          shared.TransactionKind(txKind),
			Amount:        amount,
			Count:         count,
			ClientID:      txClientID,
			AccountNumber: txAccount,
			Note:          txNote,
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to post transaction: %w", err))
		}

		fmt.Printf("Posted %s '%s' of %s against shift '%s'.\n",
			entry.Kind, entry.Code, entry.Amount.StringFixed(2), entry.ShiftCode)
	},
}

func init() {
	rootCmd.AddCommand(transactionCmd)

	transactionCmd.AddCommand(postCmd)
	postCmd.Flags().StringVar(&txShiftID, "shift-id", "", "Shift ID to post against (required)")
	postCmd.Flags().StringVar(&txKind, "kind", "", "Transaction kind (DEPOSIT, WITHDRAWAL) (required)")
	postCmd.Flags().StringVar(&txAmountStr, "amount", "", "Declared amount, must match the cash count total (required)")
	postCmd.Flags().StringArrayVar(&txLines, "line", nil, "Cash count line as denomination:count, repeatable (required)")
	postCmd.Flags().StringVar(&txClientID, "client", "", "Client ID")
	postCmd.Flags().StringVar(&txAccount, "account", "", "Account number")
	postCmd.Flags().StringVar(&txNote, "note", "", "Free-text note")
	_ = postCmd.MarkFlagRequired("shift-id")
	_ = postCmd.MarkFlagRequired("kind")
	_ = postCmd.MarkFlagRequired("amount")
	_ = postCmd.MarkFlagRequired("line")
}
