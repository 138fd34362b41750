package main

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"strconv"
	"strings"

	"github.com/fharding1/aclgo"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var (
		seedHex       string
		attrsCSV      string
		message       string
		transcriptOut string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a full issuance and verification in one process",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseOrGenerateSeed(seedHex)
			if err != nil {
				return err
			}
			attrValues, err := parseAttributes(attrsCSV)
			if err != nil {
				return err
			}

			sk, vk := acl.SigningKeyFromSeed(seed)
			signer := acl.NewSigner(sk)
			user := acl.NewUser(vk)

			ids := make([]acl.AttributeID, len(attrValues))
			attrs := make([]acl.Attribute, len(attrValues))
			for i, v := range attrValues {
				ids[i][0] = byte(i + 1)
				attrs[i] = acl.NewAttribute(v)
			}

			digest := sha512.Sum512([]byte(message))
			tr := &transcript{}

			logger.Debug("building commitment", "attributes", attrValues)
			commitment, err := acl.Commit(rand.Reader, ids, attrs)
			if err != nil {
				return fmt.Errorf("commit: %w", err)
			}
			tr.record("commitment", commitment.Bytes())

			logger.Debug("signer preparing session")
			state, prepareMsg, err := signer.Prepare(rand.Reader, commitment.Bytes())
			if err != nil {
				return fmt.Errorf("prepare: %w", err)
			}
			tr.record("prepare_message", prepareMsg)

			logger.Debug("user issuing challenge")
			userState, challenge, err := user.Challenge(rand.Reader, commitment, digest[:], prepareMsg)
			if err != nil {
				return fmt.Errorf("challenge: %w", err)
			}
			tr.record("challenge", challenge)

			logger.Debug("signer presigning")
			preSig, err := signer.Presign(state, challenge)
			if err != nil {
				return fmt.Errorf("presign: %w", err)
			}
			tr.record("presignature", preSig)

			logger.Debug("user finalising signature")
			sig, blinded, err := user.Finalise(userState, preSig)
			if err != nil {
				return fmt.Errorf("finalise: %w", err)
			}
			tr.record("signature", sig.Bytes())
			tr.record("blinded_commitment", blinded.Bytes())

			if err := acl.Verify(vk, digest[:], blinded.Bytes(), sig.Bytes()); err != nil {
				return fmt.Errorf("verify: %w", err)
			}
			logger.Info("issuance verified", "message", message)

			fmt.Printf("signature:          %x\n", sig.Bytes())
			fmt.Printf("blinded_commitment: %x\n", blinded.Bytes())

			sk.Zero()

			if transcriptOut != "" {
				if err := tr.writeFile(transcriptOut); err != nil {
					return fmt.Errorf("write transcript: %w", err)
				}
				logger.Info("wrote transcript", "path", transcriptOut)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&seedHex, "seed", "", "32-byte hex signer seed; random if omitted")
	cmd.Flags().StringVar(&attrsCSV, "attrs", "1,2,3,4", "comma-separated uint64 attribute values; slot 0 is never committed")
	cmd.Flags().StringVar(&message, "message", "", "application message to sign")
	cmd.Flags().StringVar(&transcriptOut, "transcript", "", "write a CBOR transcript of every round's wire bytes to this path")

	return cmd
}

func parseAttributes(csv string) ([]uint64, error) {
	parts := strings.Split(csv, ",")
	values := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse attribute %q: %w", p, err)
		}
		values[i] = v
	}
	return values, nil
}
