package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/phonescan/internal/config"
)

//go:embed templates/phonescan.yml
var directoryTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new phonescan directory file",
		Long: `Initialize creates a new .phonescan.yml directory file in the current directory.

The generated file includes:
- Commented examples for carrier prefix overrides
- Commented examples for region rules (matched in declaration order)
- Commented examples for carrier directory profiles

Any section left empty keeps the corresponding built-in table.

Examples:
  # Create .phonescan.yml in current directory
  phonescan init

  # Create directory file at a specific path
  phonescan init -o mydirectory.yml

  # Force overwrite existing file
  phonescan init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the directory file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing directory file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("directory file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := directoryTemplate.ReadFile("templates/phonescan.yml")
	if err != nil {
		return fmt.Errorf("failed to read directory file template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write directory file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write directory file: %w", err)
	}

	fmt.Printf("Created directory file: %s\n", outputPath)
	fmt.Println("\nEdit this file to override the built-in numbering tables:")
	fmt.Println("  - Carrier names per three-digit prefix")
	fmt.Println("  - Region rules matched against the area prefix")
	fmt.Println("  - Carrier directory profiles")

	return nil
}
