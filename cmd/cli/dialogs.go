package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/redflagged/redflagged/api"
	"github.com/redflagged/redflagged/internal/models"
)

func flagID(args []string) (int, error) {
	return strconv.Atoi(args[0])
}

func makeReportCommand() *cobra.Command {
	req := api.ReportRequest{}

	cmd := &cobra.Command{
		Use:   "report <id>",
		Short: "Report a flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := flagID(args)
			if err != nil {
				return err
			}
			return reportFlag(id, req)
		},
	}

	cmd.Flags().StringVar(&req.ReportType, "type", models.ReportTypeIncorrect, "incorrect, inappropriate, personal or other")
	cmd.Flags().StringVar(&req.Explanation, "explanation", "", "What is wrong with the flag")
	cmd.Flags().StringVar(&req.Email, "email", "", "Contact email")

	return cmd
}

func reportFlag(id int, req api.ReportRequest) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Report(id, req)
	if err != nil {
		if res != nil {
			for field, message := range res.Errors {
				log.Warn("Invalid field", zap.String("field", field), zap.String("message", message))
			}
		}
		return err
	}

	log.Info("Report submitted", zap.Int("flag_id", id), zap.String("report_id", res.ID))
	return nil
}

func makeRespondCommand() *cobra.Command {
	req := api.RespondRequest{}

	cmd := &cobra.Command{
		Use:   "respond <id>",
		Short: "Respond to a flag as the company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := flagID(args)
			if err != nil {
				return err
			}
			return respondToFlag(id, req)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&req.Title, "title", "", "Your title")
	cmd.Flags().StringVar(&req.Email, "email", "", "Company email")
	cmd.Flags().StringVar(&req.Response, "response", "", "Official response")

	return cmd
}

func respondToFlag(id int, req api.RespondRequest) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Respond(id, req)
	if err != nil {
		if res != nil {
			for field, message := range res.Errors {
				log.Warn("Invalid field", zap.String("field", field), zap.String("message", message))
			}
		}
		return err
	}

	log.Info("Response submitted", zap.Int("flag_id", id), zap.String("response_id", res.ID))
	return nil
}
