package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func makeDumpSubmissionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "submissions",
		Short: "Dump pending submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpSubmissions()
		},
	}
}

func dumpSubmissions() error {
	client, err := newClient()
	if err != nil {
		return err
	}

	submissions, err := client.LoadSubmissions()
	if err != nil {
		return err
	}

	for _, s := range submissions {
		fmt.Printf("%s\t%s\t%s\t%s\t%s\t%s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.ID, s.Status, s.Company, s.Role, strings.Join(s.Violations, ","))
	}

	return nil
}

func makeDumpReportsCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Dump reports about a flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpReports(id)
		},
	}
	cmd.Flags().IntVar(&id, "flag", 1, "Flag id")

	return cmd
}

func dumpReports(id int) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	reports, err := client.LoadReports(id)
	if err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Printf("%s\t%s\t%s\t%s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Type, r.Email, r.Explanation)
	}

	return nil
}

func makeDumpResponsesCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "responses",
		Short: "Dump company responses to a flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpResponses(id)
		},
	}
	cmd.Flags().IntVar(&id, "flag", 1, "Flag id")

	return cmd
}

func dumpResponses(id int) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	responses, err := client.LoadResponses(id)
	if err != nil {
		return err
	}

	for _, r := range responses {
		fmt.Printf("%s\t%s, %s <%s>\t%s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Name, r.Title, r.Email, r.Response)
	}

	return nil
}
