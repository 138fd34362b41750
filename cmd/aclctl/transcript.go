package main

import (
	"os"

	"github.com/fxamacker/cbor/v2"
)

// transcriptRound captures the wire bytes exchanged in one message of a
// demo issuance, for offline inspection with --transcript.
type transcriptRound struct {
	Name  string `cbor:"name"`
	Bytes []byte `cbor:"bytes"`
}

type transcript struct {
	Rounds []transcriptRound `cbor:"rounds"`
}

func (t *transcript) record(name string, b []byte) {
	t.Rounds = append(t.Rounds, transcriptRound{Name: name, Bytes: b})
}

func (t *transcript) writeFile(path string) error {
	b, err := cbor.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
