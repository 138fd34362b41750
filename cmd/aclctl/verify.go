package main

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"github.com/fharding1/aclgo"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var (
		keyHex     string
		blindedHex string
		sigHex     string
		message    string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a standalone signature against a verifying key",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyBytes, err := hex.DecodeString(keyHex)
			if err != nil {
				return fmt.Errorf("decode key: %w", err)
			}
			vk, err := acl.DecodeVerifyingKey(keyBytes)
			if err != nil {
				return fmt.Errorf("decode verifying key: %w", err)
			}

			blinded, err := hex.DecodeString(blindedHex)
			if err != nil {
				return fmt.Errorf("decode blinded commitment: %w", err)
			}
			sig, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("decode signature: %w", err)
			}

			digest := sha512.Sum512([]byte(message))
			if err := acl.Verify(vk, digest[:], blinded, sig); err != nil {
				logger.Info("signature rejected", "error", err)
				return err
			}

			logger.Info("signature valid")
			fmt.Println("ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded verifying key")
	cmd.Flags().StringVar(&blindedHex, "blinded", "", "hex-encoded blinded commitment")
	cmd.Flags().StringVar(&sigHex, "signature", "", "hex-encoded signature")
	cmd.Flags().StringVar(&message, "message", "", "application message that was signed")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("blinded")
	_ = cmd.MarkFlagRequired("signature")

	return cmd
}
