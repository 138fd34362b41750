package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/fharding1/aclgo"
	"github.com/spf13/cobra"
)

func newKeygenCmd() *cobra.Command {
	var seedHex string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Derive a signing key and its verifying key from a seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseOrGenerateSeed(seedHex)
			if err != nil {
				return err
			}

			sk, vk := acl.SigningKeyFromSeed(seed)
			logger.Info("derived signing key", "verifying_key", hex.EncodeToString(vk.Bytes()))

			fmt.Printf("seed:           %s\n", hex.EncodeToString(seed[:]))
			fmt.Printf("verifying_key:  %s\n", hex.EncodeToString(vk.Bytes()))

			sk.Zero()
			return nil
		},
	}

	cmd.Flags().StringVar(&seedHex, "seed", "", "32-byte hex seed; a random one is generated if omitted")
	return cmd
}

func parseOrGenerateSeed(seedHex string) ([acl.SeedSize]byte, error) {
	var seed [acl.SeedSize]byte
	if seedHex == "" {
		if _, err := rand.Read(seed[:]); err != nil {
			return seed, fmt.Errorf("generate random seed: %w", err)
		}
		return seed, nil
	}

	b, err := hex.DecodeString(seedHex)
	if err != nil {
		return seed, fmt.Errorf("decode seed: %w", err)
	}
	if len(b) != acl.SeedSize {
		return seed, fmt.Errorf("seed must be %d bytes, got %d", acl.SeedSize, len(b))
	}
	copy(seed[:], b)
	return seed, nil
}
