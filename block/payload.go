package block

import (
	"encoding/hex"
	"fmt"

	"github.com/mezonai/starnotary/jsonx"
)

// Star is the application data notarized by a claim. The chain treats it as
// opaque; the fields follow the registry submission shape.
type Star struct {
	Dec           string `json:"dec"`
	RA            string `json:"ra"`
	Magnitude     string `json:"magnitude,omitempty"`
	Constellation string `json:"constellation,omitempty"`
	Story         string `json:"story"`
}

// StarClaim binds a star record to the wallet address that proved ownership.
type StarClaim struct {
	Owner string `json:"owner"`
	Star  Star   `json:"star"`
}

// GenesisData is the fixed canonical payload of the genesis block.
type GenesisData struct {
	Data string `json:"data"`
}

// Payload is the tagged variant stored in a block body: exactly one of Genesis
// or Claim is set.
type Payload struct {
	Genesis *GenesisData `json:"genesis,omitempty"`
	Claim   *StarClaim   `json:"claim,omitempty"`
}

func encodePayload(p *Payload) ([]byte, error) {
	raw, err := jsonx.Marshal(p)
	if err != nil {
		return nil, err
	}
	out := make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(out, raw)
	return out, nil
}

// EncodeGenesisPayload builds the body of the genesis block.
func EncodeGenesisPayload(data string) ([]byte, error) {
	return encodePayload(&Payload{Genesis: &GenesisData{Data: data}})
}

// EncodeStarPayload builds the body of a star claim block.
func EncodeStarPayload(owner string, star Star) ([]byte, error) {
	return encodePayload(&Payload{Claim: &StarClaim{Owner: owner, Star: star}})
}

// DecodePayload decodes the stored body back to structured form. The genesis
// marker decodes to a nil claim so callers scanning for ownership data never
// match genesis.
func (b *Block) DecodePayload() (*StarClaim, error) {
	raw := make([]byte, hex.DecodedLen(len(b.Body)))
	if _, err := hex.Decode(raw, b.Body); err != nil {
		return nil, fmt.Errorf("decode block body: %w", err)
	}
	var p Payload
	if err := jsonx.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode block payload: %w", err)
	}
	if p.Genesis != nil {
		return nil, nil
	}
	if p.Claim == nil {
		return nil, fmt.Errorf("block payload carries neither genesis marker nor claim")
	}
	return p.Claim, nil
}
