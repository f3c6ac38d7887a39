package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/phonescan/internal/config"
	"github.com/nao1215/phonescan/internal/database"
	"github.com/nao1215/phonescan/internal/report"
)

// NewHistoryCmd creates the history command.
// This command reviews past analysis results stored in the history database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [phone-number]",
		Short: "Review past analysis results",
		Long: `History lists the analysis records stored in the local database.

Every run of 'phonescan analyze' appends its result to the history, keyed
by the number exactly as it was entered. Records are never deduplicated,
so re-analyzing a number adds a new entry.

Examples:
  # List all analysis records for a number, newest first
  phonescan history 081234567890

  # Show the full stored report for a specific record
  phonescan history --id 5

  # Show the full stored report as JSON
  phonescan history --id 5 --json

  # List all numbers in the history
  phonescan history --list-numbers`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	// Listing flags
	cmd.Flags().BoolP("list-numbers", "L", false,
		"List all analyzed numbers in the history database")

	// Record selection flags
	cmd.Flags().Int64P("id", "i", 0,
		"Show the full stored report for a record by ID")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output the stored report in JSON format")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	listNumbers, err := cmd.Flags().GetBool("list-numbers")
	if err != nil {
		return err
	}

	recordID, err := cmd.Flags().GetInt64("id")
	if err != nil {
		return err
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database
	if !listNumbers && recordID == 0 && len(args) == 0 {
		return errors.New("phone number is required (use --list-numbers to see analyzed numbers)")
	}

	// Use XDG data directory for the history database
	dbDir := config.XDGDataDir()

	// Open database read-only; history never creates it
	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false
	hdb, err := database.Open(dbDir, opts)
	if err != nil {
		return fmt.Errorf("failed to open history database (run 'phonescan analyze' first): %w", err)
	}
	defer hdb.Close()

	ctx := context.Background()

	// Handle --list-numbers flag
	if listNumbers {
		return listHistoryNumbers(ctx, hdb)
	}

	// Handle --id flag
	if recordID != 0 {
		return showHistoryRecord(ctx, hdb, recordID, jsonOutput)
	}

	return listNumberHistory(ctx, hdb, args[0])
}

// listHistoryNumbers lists all numbers that have analysis records.
func listHistoryNumbers(ctx context.Context, hdb *database.HistoryDB) error {
	numbers, err := hdb.ListNumbers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list numbers: %w", err)
	}

	if len(numbers) == 0 {
		fmt.Println("No analyzed numbers found in the history database.")
		fmt.Println("\nUse 'phonescan analyze <number>' to analyze a phone number.")
		return nil
	}

	fmt.Printf("Analyzed numbers (%d):\n\n", len(numbers))
	for _, number := range numbers {
		fmt.Printf("  • %s\n", number)
	}
	fmt.Println("\nUse 'phonescan history <number>' to see analysis records for a number.")

	return nil
}

// listNumberHistory lists all analysis records for a specific number.
func listNumberHistory(ctx context.Context, hdb *database.HistoryDB, number string) error {
	records, err := hdb.GetHistory(ctx, number)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	if len(records) == 0 {
		fmt.Printf("No analysis records found for %s\n", number)
		fmt.Println("\nUse 'phonescan analyze' to analyze this number.")
		return nil
	}

	fmt.Printf("Analysis history for %s (%d records):\n\n", number, len(records))
	fmt.Printf("  %-6s  %-20s  %-12s  %-18s  %-6s  %s\n",
		"ID", "Date", "Provider", "Region", "Valid", "Category")
	fmt.Println("  " + strings.Repeat("-", 84))

	for _, record := range records {
		fmt.Printf("  %-6d  %-20s  %-12s  %-18s  %-6s  %s\n",
			record.ID,
			record.Timestamp.Format("2006-01-02 15:04:05"),
			record.Provider,
			record.Location,
			formatValid(record.Valid),
			record.Category,
		)
	}

	fmt.Println("\nUse 'phonescan history --id <id>' to see the full stored report.")

	return nil
}

// showHistoryRecord shows the full stored report for one record.
func showHistoryRecord(ctx context.Context, hdb *database.HistoryDB, id int64, jsonOutput bool) error {
	record, err := hdb.GetRecordByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get record %d: %w", id, err)
	}
	if record == nil {
		return fmt.Errorf("record with ID %d not found", id)
	}

	if record.Report == nil {
		// Stored JSON was malformed; fall back to the summary columns
		fmt.Printf("Record %d (%s, analyzed %s): stored report is unreadable\n",
			record.ID, record.PhoneNumber, record.Timestamp.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Provider: %s  Region: %s  Valid: %s  Category: %s\n",
			record.Provider, record.Location, formatValid(record.Valid), record.Category)
		return nil
	}

	if jsonOutput {
		_, err := report.NewJSONWriter(os.Stdout, report.WithPrettyPrint()).Write(record.Report)
		return err
	}

	_, err = report.NewSimpleWriter(os.Stdout, report.WithVerbose(true)).Write(record.Report)
	return err
}

// formatValid formats the validity verdict for display.
func formatValid(valid bool) string {
	if valid {
		return "yes"
	}
	return "no"
}
