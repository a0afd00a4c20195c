package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/csaide/riftdb/api/proto/riftpb"
)

func subscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscription",
		Aliases: []string{"sub"},
		Short:   "Manage subscriptions within a topic",
	}

	cmd.AddCommand(
		subscriptionCreateCmd(),
		subscriptionGetCmd(),
		subscriptionListCmd(),
		subscriptionDeleteCmd(),
	)
	return cmd
}

func subscriptionCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <topic> <name>",
		Short: "Create a subscription",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			sub, err := riftpb.NewSubscriptionsClient(conn).Create(cmd.Context(), &riftpb.CreateSubscriptionRequest{
				Topic: args[0],
				Name:  args[1],
			})
			if err != nil {
				return err
			}
			printSubscriptions(sub)
			return nil
		},
	}
}

func subscriptionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <topic> <name>",
		Short: "Get a subscription",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			sub, err := riftpb.NewSubscriptionsClient(conn).Get(cmd.Context(), &riftpb.GetSubscriptionRequest{
				Topic: args[0],
				Name:  args[1],
			})
			if err != nil {
				return err
			}
			printSubscriptions(sub)
			return nil
		},
	}
}

func subscriptionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <topic>",
		Short: "List the subscriptions of a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			stream, err := riftpb.NewSubscriptionsClient(conn).List(cmd.Context(), &riftpb.ListSubscriptionsRequest{Topic: args[0]})
			if err != nil {
				return err
			}

			var subs []*riftpb.Subscription
			for {
				sub, err := stream.Recv()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				subs = append(subs, sub)
			}
			printSubscriptions(subs...)
			return nil
		},
	}
}

func subscriptionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <topic> <name>",
		Short: "Delete a subscription and its backlog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			sub, err := riftpb.NewSubscriptionsClient(conn).Delete(cmd.Context(), &riftpb.DeleteSubscriptionRequest{
				Topic: args[0],
				Name:  args[1],
			})
			if err != nil {
				return err
			}
			fmt.Printf("deleted subscription %q from topic %q\n", sub.GetName(), sub.GetTopic())
			return nil
		},
	}
}

func printSubscriptions(subs ...*riftpb.Subscription) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTOPIC\tCREATED\tUPDATED")
	for _, sub := range subs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sub.GetName(), sub.GetTopic(), formatTime(sub.GetCreated()), formatTime(sub.GetUpdated()))
	}
	w.Flush()
}
