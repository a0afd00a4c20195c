package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/csaide/riftdb/api/proto/riftpb"
)

func kvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Interact with the key/value store",
	}

	cmd.AddCommand(
		kvGetCmd(),
		kvSetCmd(),
		kvDelCmd(),
	)
	return cmd
}

func kvGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get the value stored at a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			value, err := riftpb.NewKVClient(conn).Get(cmd.Context(), &riftpb.Key{Key: []byte(args[0])})
			if err != nil {
				return err
			}
			if len(value.GetValue()) == 0 {
				fmt.Println("(not found)")
				return nil
			}
			fmt.Printf("%s\n", value.GetValue())
			return nil
		},
	}
}

func kvSetCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set the value stored at a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			prev, err := riftpb.NewKVClient(conn).Set(cmd.Context(), &riftpb.KeyValue{
				Key:   []byte(args[0]),
				Value: []byte(args[1]),
				TtlNs: uint64(ttl.Nanoseconds()),
			})
			if err != nil {
				return err
			}
			if len(prev.GetValue()) > 0 {
				fmt.Printf("replaced %s\n", prev.GetValue())
				return nil
			}
			fmt.Println("ok")
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Time to live for the entry; 0 means no expiry")
	return cmd
}

func kvDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <key>",
		Aliases: []string{"del"},
		Short:   "Delete the value stored at a key",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			prev, err := riftpb.NewKVClient(conn).Delete(cmd.Context(), &riftpb.Key{Key: []byte(args[0])})
			if err != nil {
				return err
			}
			if len(prev.GetValue()) == 0 {
				fmt.Println("(not found)")
				return nil
			}
			fmt.Printf("deleted %s\n", prev.GetValue())
			return nil
		},
	}
}
