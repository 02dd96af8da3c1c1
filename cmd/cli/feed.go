package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redflagged/redflagged/api"
	"github.com/redflagged/redflagged/internal/feed"
)

func makeFeedCommand() *cobra.Command {
	req := api.FlagsRequest{}

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "List flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listFeed(req)
		},
	}

	cmd.Flags().StringVar(&req.Search, "search", "", "Search text")
	cmd.Flags().StringVar(&req.Tag, "tag", "", "Violation tag")
	cmd.Flags().StringVar(&req.Period, "period", feed.PeriodAll, "all, week, month or year")
	cmd.Flags().StringVar(&req.Sort, "sort", feed.SortNewest, "newest, oldest or views")

	return cmd
}

func listFeed(req api.FlagsRequest) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	flags, err := client.ListFlags(req)
	if err != nil {
		return err
	}

	for _, flag := range flags {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", flag.ID, flag.Company, flag.Role, flag.Date, strings.Join(flag.Tags, ", "))
	}

	return nil
}

func makeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return showFlag(id)
		},
	}
}

func showFlag(id int) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	flag, err := client.GetFlag(id)
	if err != nil {
		return err
	}

	fmt.Printf("%s – %s\n", flag.Company, flag.Role)
	fmt.Printf("Reported: %s, %s views\n", flag.Date, feed.Views(flag.Views))
	if flag.Website != "" {
		fmt.Printf("Website: %s\n", flag.Website)
	}
	fmt.Printf("Violations: %s\n\n%s\n", strings.Join(flag.Tags, ", "), flag.Description)

	return nil
}
