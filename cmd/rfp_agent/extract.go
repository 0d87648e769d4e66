package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/rfp-manager/internal/config"
	"github.com/jonathan/rfp-manager/internal/db"
	"github.com/jonathan/rfp-manager/internal/extraction"
	"github.com/jonathan/rfp-manager/internal/types"
)

var (
	extractFile string
	extractText string
	extractSave bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured RFP draft from free text",
	Long:  `Run structured extraction on a free-text procurement need and print the resulting RFP draft as JSON. With --save the draft is persisted as a new RFP.`,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFile, "file", "", "Path to a text file containing the description")
	extractCmd.Flags().StringVar(&extractText, "text", "", "Description text (alternative to --file)")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "Persist the extracted draft as a new RFP")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	if (extractFile == "") == (extractText == "") {
		return fmt.Errorf("exactly one of --file or --text is required")
	}

	description := extractText
	if extractFile != "" {
		data, err := os.ReadFile(extractFile)
		if err != nil {
			return fmt.Errorf("failed to read description file: %w", err)
		}
		description = string(data)
	}

	cfg := config.LoadFromEnv()
	ctx := cmd.Context()

	draft, err := extraction.ExtractRFP(ctx, description, cfg.GeminiAPIKey)
	if err != nil {
		return err
	}

	if extractSave {
		rfp, err := saveDraft(ctx, cfg, draft)
		if err != nil {
			return err
		}
		return printJSON(rfp)
	}

	return printJSON(draft)
}

func saveDraft(ctx context.Context, cfg *config.Config, draft *types.RFPDraft) (*types.RFP, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	return database.CreateRFP(ctx, types.CreateRFPRequest{
		Title:        draft.Title,
		Requirements: draft.Requirements,
		Budget:       draft.Budget,
		DeliveryTime: draft.DeliveryTime,
		PaymentTerms: draft.PaymentTerms,
		Warranty:     draft.Warranty,
	})
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
