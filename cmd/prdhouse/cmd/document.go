package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prdhouse/prdhouse/internal/prd"
)

var (
	documentInput  string
	documentOutput string
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Render the five-chapter markdown document for a PRD JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPRD(documentInput)
		if err != nil {
			return err
		}

		markdown := prd.GenerateDocument(data)
		if documentOutput == "-" {
			fmt.Println(markdown)
			return nil
		}
		if err := os.WriteFile(documentOutput, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		log.Info("document written", "path", documentOutput, "bytes", len(markdown))
		return nil
	},
}

func init() {
	documentCmd.Flags().StringVarP(&documentInput, "input", "i", "", "PRD JSON file (required)")
	documentCmd.Flags().StringVarP(&documentOutput, "output", "o", "-", "Output markdown file, or - for stdout")
	documentCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(documentCmd)
}
