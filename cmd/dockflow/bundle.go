package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dockflow/dockflow/pkg/bundle"
	"github.com/dockflow/dockflow/pkg/types"
	"github.com/spf13/cobra"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Encode and decode connection bundles",
	Long: `A connection bundle packs host, port, user, private key and an
optional password into a single base64 value, so one secret can rotate a
server's entire credential.`,
}

var bundleEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a connection bundle from individual fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetInt("port")
		user, _ := cmd.Flags().GetString("user")
		keyFile, _ := cmd.Flags().GetString("key-file")
		password, _ := cmd.Flags().GetString("password")

		key, err := os.ReadFile(keyFile)
		if err != nil {
			return fmt.Errorf("failed to read key file: %w", err)
		}

		encoded, err := bundle.Encode(&types.ConnectionCredential{
			Host:       host,
			Port:       port,
			User:       user,
			PrivateKey: string(key),
			Password:   password,
		})
		if err != nil {
			return err
		}

		// Validate our own output so a broken key is caught here, not at
		// deploy time
		if _, err := bundle.Decode(encoded); err != nil {
			return fmt.Errorf("bundle does not decode: %w", err)
		}

		fmt.Println(encoded)
		return nil
	},
}

var bundleDecodeCmd = &cobra.Command{
	Use:   "decode <bundle>",
	Short: "Decode a connection bundle and show its fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cred, err := bundle.Decode(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Host: %s\n", cred.Host)
		fmt.Printf("Port: %d\n", cred.Port)
		fmt.Printf("User: %s\n", cred.User)
		fmt.Printf("Key:  %d lines\n", strings.Count(cred.PrivateKey, "\n"))
		if cred.Password != "" {
			fmt.Println("Password: set")
		}
		return nil
	},
}

func init() {
	bundleEncodeCmd.Flags().String("host", "", "Server host (required)")
	bundleEncodeCmd.Flags().Int("port", 22, "SSH port")
	bundleEncodeCmd.Flags().String("user", "root", "SSH user")
	bundleEncodeCmd.Flags().String("key-file", "", "Path to the private key file (required)")
	bundleEncodeCmd.Flags().String("password", "", "Optional sudo password")
	_ = bundleEncodeCmd.MarkFlagRequired("host")
	_ = bundleEncodeCmd.MarkFlagRequired("key-file")

	bundleCmd.AddCommand(bundleEncodeCmd)
	bundleCmd.AddCommand(bundleDecodeCmd)
	rootCmd.AddCommand(bundleCmd)
}
