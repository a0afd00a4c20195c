package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var addr string

func main() {
	rootCmd := &cobra.Command{
		Use:   "riftctl",
		Short: "Manage a riftd instance",
		Long:  "riftctl speaks the rift gRPC API to manage topics, subscriptions, messages, and keys on a riftd instance",
	}

	defaultAddr := os.Getenv("RIFT_ADDR")
	if defaultAddr == "" {
		defaultAddr = "localhost:8081"
	}
	rootCmd.PersistentFlags().StringVar(&addr, "addr", defaultAddr, "Address of the riftd gRPC listener")

	rootCmd.AddCommand(
		topicCmd(),
		subscriptionCmd(),
		publishCmd(),
		subscribeCmd(),
		ackCmd(),
		nackCmd(),
		kvCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dial connects to the configured riftd instance.
func dial() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	return conn, nil
}
