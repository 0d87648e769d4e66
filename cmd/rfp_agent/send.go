package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/rfp-manager/internal/config"
	"github.com/jonathan/rfp-manager/internal/db"
	"github.com/jonathan/rfp-manager/internal/dispatch"
	"github.com/jonathan/rfp-manager/internal/mail"
)

var (
	sendRFPID     string
	sendVendorIDs []string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Dispatch an RFP to a set of vendors",
	Long:  `Render the invitation for an RFP and send it to the given vendors, printing the per-recipient outcome.`,
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendRFPID, "rfp", "", "RFP id to dispatch (required)")
	sendCmd.Flags().StringSliceVar(&sendVendorIDs, "vendors", nil, "Comma-separated vendor ids (required)")
	_ = sendCmd.MarkFlagRequired("rfp")
	_ = sendCmd.MarkFlagRequired("vendors")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, _ []string) error {
	rfpID, err := uuid.Parse(sendRFPID)
	if err != nil {
		return fmt.Errorf("invalid RFP id %q: %w", sendRFPID, err)
	}

	vendorIDs := make([]uuid.UUID, 0, len(sendVendorIDs))
	for _, raw := range sendVendorIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid vendor id %q: %w", raw, err)
		}
		vendorIDs = append(vendorIDs, id)
	}

	cfg := config.LoadFromEnv()
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	if err := cfg.RequireSMTP(); err != nil {
		return err
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	transport, err := mail.NewClient(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
	if err != nil {
		return err
	}

	dispatcher := dispatch.NewDispatcher(database, transport)
	outcome, err := dispatcher.Dispatch(ctx, rfpID, vendorIDs)
	if err != nil {
		return err
	}

	return printJSON(outcome)
}
