package models

import (
	"fmt"
	"strconv"

	"github.com/vkarasev/go-casper-client/internal/casper"
)

// BlockIdentifier selects a block by hash or by height. The JSON form is
// the node's externally tagged enum: {"Hash": "..."} or {"Height": n}.
type BlockIdentifier struct {
	Hash   *casper.Digest `json:"Hash,omitempty"`
	Height *uint64        `json:"Height,omitempty"`
}

// ParseBlockIdentifier interprets the CLI's block identifier syntax: an
// empty string means the latest block (nil), digits mean a height, and a
// 64-character hex string means a block hash.
func ParseBlockIdentifier(s string) (*BlockIdentifier, error) {
	if s == "" {
		return nil, nil
	}
	if height, err := strconv.ParseUint(s, 10, 64); err == nil {
		return &BlockIdentifier{Height: &height}, nil
	}
	hash, err := casper.ParseDigest(s)
	if err != nil {
		return nil, fmt.Errorf("block identifier must be a height or a block hash: %w", err)
	}
	return &BlockIdentifier{Hash: &hash}, nil
}
