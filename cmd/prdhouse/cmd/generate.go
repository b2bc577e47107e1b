package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prdhouse/prdhouse/internal/app"
	"github.com/prdhouse/prdhouse/internal/prd"
)

var (
	generateInput   string
	generateOutput  string
	generateQuery   string
	generateSummary string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an HTML prototype from a PRD JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPRD(generateInput)
		if err != nil {
			return err
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}

		result, err := application.GeneratePrototype(cmd.Context(), data, generateQuery,
			func(stage string, percent int, message string) {
				log.Info(message, "stage", stage, "percent", percent)
			})
		if err != nil {
			return err
		}

		if err := os.WriteFile(generateOutput, []byte(result.HTMLContent), 0644); err != nil {
			return fmt.Errorf("write prototype: %w", err)
		}
		log.Info("prototype written", "path", generateOutput, "bytes", len(result.HTMLContent))

		if generateSummary != "" {
			if err := os.WriteFile(generateSummary, []byte(result.InstructionsSummary), 0644); err != nil {
				return fmt.Errorf("write instructions summary: %w", err)
			}
		}

		if !result.Validation.Valid {
			for _, issue := range result.Validation.Issues {
				log.Warn(issue)
			}
		}

		fmt.Printf("✅ 原型生成完成：%s（匹配类型：%s，置信度：%d%%）\n",
			generateOutput, result.Match.MatchType, int(result.Match.Confidence*100+0.5))
		return nil
	},
}

func readPRD(path string) (*prd.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prd file: %w", err)
	}
	var data prd.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse prd json: %w", err)
	}
	return &data, nil
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "PRD JSON file (required)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "prototype.html", "Output HTML file")
	generateCmd.Flags().StringVarP(&generateQuery, "query", "q", "", "Extra free-form instruction for the model")
	generateCmd.Flags().StringVar(&generateSummary, "summary", "", "Also write the build-instruction summary to this file")
	generateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(generateCmd)
}
