package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/csaide/riftdb/api/proto/riftpb"
)

func topicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Manage topics",
	}

	cmd.AddCommand(
		topicCreateCmd(),
		topicGetCmd(),
		topicListCmd(),
		topicDeleteCmd(),
	)
	return cmd
}

func topicCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			topic, err := riftpb.NewTopicsClient(conn).Create(cmd.Context(), &riftpb.CreateTopicRequest{Name: args[0]})
			if err != nil {
				return err
			}
			printTopics(topic)
			return nil
		},
	}
}

func topicGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Get a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			topic, err := riftpb.NewTopicsClient(conn).Get(cmd.Context(), &riftpb.GetTopicRequest{Name: args[0]})
			if err != nil {
				return err
			}
			printTopics(topic)
			return nil
		},
	}
}

func topicListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			stream, err := riftpb.NewTopicsClient(conn).List(cmd.Context(), &riftpb.ListTopicsRequest{})
			if err != nil {
				return err
			}

			var topics []*riftpb.Topic
			for {
				topic, err := stream.Recv()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				topics = append(topics, topic)
			}
			printTopics(topics...)
			return nil
		},
	}
}

func topicDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a topic and all of its subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			topic, err := riftpb.NewTopicsClient(conn).Delete(cmd.Context(), &riftpb.DeleteTopicRequest{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("deleted topic %q\n", topic.GetName())
			return nil
		},
	}
}

func printTopics(topics ...*riftpb.Topic) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCREATED\tUPDATED")
	for _, topic := range topics {
		fmt.Fprintf(w, "%s\t%s\t%s\n", topic.GetName(), formatTime(topic.GetCreated()), formatTime(topic.GetUpdated()))
	}
	w.Flush()
}

func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Local().Format(time.RFC3339)
}
