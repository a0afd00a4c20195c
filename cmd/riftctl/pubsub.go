package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/csaide/riftdb/api/proto/riftpb"
)

func publishCmd() *cobra.Command {
	var attributes map[string]string

	cmd := &cobra.Command{
		Use:   "publish <topic> <data>",
		Short: "Publish a message to a topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			msg := &riftpb.Message{
				Topic:      args[0],
				Data:       []byte(args[1]),
				Attributes: attributes,
			}
			if _, err := riftpb.NewPubSubClient(conn).Publish(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Println("committed")
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&attributes, "attribute", nil, "Message attributes as key=value pairs")
	return cmd
}

func subscribeCmd() *cobra.Command {
	var autoAck bool

	cmd := &cobra.Command{
		Use:   "subscribe <topic> <subscription>",
		Short: "Stream leased messages from a subscription",
		Long:  "Stream leased messages from a subscription until interrupted. Without --auto-ack, leases are left to expire and messages will be redelivered.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			client := riftpb.NewPubSubClient(conn)
			stream, err := client.Subscribe(cmd.Context(), &riftpb.SubscriptionRef{
				Topic: args[0],
				Name:  args[1],
			})
			if err != nil {
				return err
			}

			for {
				leased, err := stream.Recv()
				if err != nil {
					return err
				}
				lease := leased.GetLease()
				fmt.Printf("lease id=%d index=%d deadline=%s data=%q\n",
					lease.GetId(), lease.GetIndex(), formatTime(lease.GetDeadline()), leased.GetMessage().GetData())

				if autoAck {
					if _, err := client.Ack(cmd.Context(), lease); err != nil {
						return fmt.Errorf("ack lease %d: %w", lease.GetId(), err)
					}
				}
			}
		},
	}

	cmd.Flags().BoolVar(&autoAck, "auto-ack", false, "Acknowledge each message as soon as it is received")
	return cmd
}

func ackCmd() *cobra.Command {
	return settleCmd("ack", "Acknowledge a leased message, removing it from the backlog",
		func(client riftpb.PubSubClient) settleFunc { return client.Ack })
}

func nackCmd() *cobra.Command {
	return settleCmd("nack", "Negatively acknowledge a leased message, returning it to the backlog",
		func(client riftpb.PubSubClient) settleFunc { return client.Nack })
}

type settleFunc = func(ctx context.Context, in *riftpb.Lease, opts ...grpc.CallOption) (*riftpb.Confirmation, error)

func settleCmd(name, short string, settle func(riftpb.PubSubClient) settleFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <topic> <subscription> <lease-id> <index>",
		Short: short,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			leaseID, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("parse lease id: %w", err)
			}
			index, err := strconv.ParseUint(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("parse index: %w", err)
			}

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			lease := &riftpb.Lease{
				Topic:        args[0],
				Subscription: args[1],
				Id:           leaseID,
				Index:        index,
			}
			if _, err := settle(riftpb.NewPubSubClient(conn))(cmd.Context(), lease); err != nil {
				return err
			}
			fmt.Println("committed")
			return nil
		},
	}
}
