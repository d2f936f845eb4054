package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"teller-ledger/app"
	"teller-ledger/cmd"
	"teller-ledger/domain"
	"teller-ledger/logger"
	"teller-ledger/shared"
	"teller-ledger/store"
)

func main() {
	// With arguments, behave as the CLI. Without, run a demonstration
	// of a full shift lifecycle against in-memory stores.
	if len(os.Args) > 1 {
		cmd.Execute()
		return
	}

	log := logger.New()
	log.Info().Msg("starting teller shift ledger demo")

	shifts := store.NewInMemoryShiftStore()
	ledger := store.NewInMemoryLedgerStore()
	tellers := store.NewInMemoryTellerDirectory()
	service := app.NewShiftService(shifts, ledger, tellers, log)

	fmt.Println("\n--- Simulating a Teller Shift ---")

	fmt.Println("\n[Step 1] Registering a teller...")
	teller, err := service.RegisterTeller(app.RegisterTellerCommand{
		Code:      "CJ01",
		TillCode:  "CAJA01",
		FirstName: "Maria",
		LastName:  "Quinde",
		Branch:    "MATRIZ",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register teller")
	}
	fmt.Printf(" -> Teller '%s' registered at till '%s'.\n", teller.Code, teller.TillCode)

	fmt.Println("\n[Step 2] Opening a shift with a counted float...")
	opening := domain.CashCount{
		{Denomination: domain.DenomTwenty, Count: 5},
		{Denomination: domain.DenomTen, Count: 10},
	}
	shift, err := service.OpenShift(app.OpenShiftCommand{
		TellerCode:   teller.Code,
		OpeningCount: opening,
		Note:         "morning shift",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open shift")
	}
	openingTotal, _ := shift.OpeningTotal()
	fmt.Printf(" -> Shift '%s' opened with float %s.\n", shift.Code, openingTotal.StringFixed(2))

	fmt.Println("\n[Step 2b] Testing double open (should fail)...")
	_, err = service.OpenShift(app.OpenShiftCommand{TellerCode: teller.Code, OpeningCount: opening})
	if errors.Is(err, domain.ErrShiftAlreadyOpen) {
		fmt.Printf(" -> Second open rejected as expected: %v\n", err)
	} else {
		log.Fatal().Err(err).Msg("second open should have failed with ErrShiftAlreadyOpen")
	}

	fmt.Println("\n[Step 3] Posting a deposit of 50 backed by {50x1}...")
	deposit, err := service.PostTransaction(app.PostTransactionCommand{
		ShiftID:  shift.ID,
		Kind:     shared.Deposit,
		Amount:   decimal.NewFromInt(50),
		Count:    domain.CashCount{{Denomination: domain.DenomFifty, Count: 1}},
		ClientID: "CLI-001",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to post deposit")
	}
	fmt.Printf(" -> Deposit '%s' posted.\n", deposit.Code)

	fmt.Println("\n[Step 4] Posting a withdrawal of 30 backed by {10x3}...")
	withdrawal, err := service.PostTransaction(app.PostTransactionCommand{
		ShiftID:  shift.ID,
		Kind:     shared.Withdrawal,
		Amount:   decimal.NewFromInt(30),
		Count:    domain.CashCount{{Denomination: domain.DenomTen, Count: 3}},
		ClientID: "CLI-002",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to post withdrawal")
	}
	fmt.Printf(" -> Withdrawal '%s' posted.\n", withdrawal.Code)

	fmt.Println("\n[Step 4b] Testing amount mismatch (should fail)...")
	_, err = service.PostTransaction(app.PostTransactionCommand{
		ShiftID: shift.ID,
		Kind:    shared.Deposit,
		Amount:  decimal.NewFromInt(25),
		Count:   domain.CashCount{{Denomination: domain.DenomTwenty, Count: 1}},
	})
	if errors.Is(err, domain.ErrAmountMismatch) {
		fmt.Printf(" -> Mismatched post rejected as expected: %v\n", err)
	} else {
		log.Fatal().Err(err).Msg("mismatched post should have failed with ErrAmountMismatch")
	}

	fmt.Println("\n[Step 5] Closing the shift with a declared count of {20x5, 10x8, 50x1}...")
	closed, err := service.CloseShift(app.CloseShiftCommand{
		ShiftCode: shift.Code,
		ClosingCount: domain.CashCount{
			{Denomination: domain.DenomTwenty, Count: 5},
			{Denomination: domain.DenomTen, Count: 8},
			{Denomination: domain.DenomFifty, Count: 1},
		},
		Note: "end of day",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to close shift")
	}
	fmt.Printf(" -> Shift closed. Expected %s, declared %s, discrepancy %s, alert=%t.\n",
		closed.ExpectedBalance.StringFixed(2), closed.DeclaredBalance.StringFixed(2),
		closed.Discrepancy.StringFixed(2), closed.Alert)

	fmt.Println("\n[Step 5b] Testing double close (should fail)...")
	_, err = service.CloseShift(app.CloseShiftCommand{
		ShiftCode:    shift.Code,
		ClosingCount: domain.CashCount{{Denomination: domain.DenomTwenty, Count: 1}},
	})
	if errors.Is(err, domain.ErrShiftNotOpen) {
		fmt.Printf(" -> Second close rejected as expected: %v\n", err)
	} else {
		log.Fatal().Err(err).Msg("second close should have failed with ErrShiftNotOpen")
	}

	fmt.Println("\n[Step 6] Querying the shift ledger...")
	entries, err := service.ListEntries(app.ListEntriesQuery{ShiftCode: shift.Code})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list entries")
	}
	fmt.Printf(" -> %d entries (newest first):\n", len(entries))
	for _, entry := range entries {
		fmt.Printf("    %s  %s  %s\n", entry.Code, entry.Kind, entry.Amount.StringFixed(2))
	}

	fmt.Println("\n[Step 7] Querying shifts with alerts...")
	alerts, err := service.ListAlertShifts(app.ListAlertShiftsQuery{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list alert shifts")
	}
	for _, alertShift := range alerts {
		fmt.Printf(" -> %s  discrepancy %s\n", alertShift.Code, alertShift.Discrepancy.StringFixed(2))
	}

	fmt.Println("\n--- Simulation Complete ---")
}
