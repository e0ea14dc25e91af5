package models

import "github.com/vkarasev/go-casper-client/internal/casper"

// GetBalanceResult is the node's reply to state_get_balance. The balance
// is a decimal U512 motes amount.
type GetBalanceResult struct {
	APIVersion   string `json:"api_version"`
	BalanceValue string `json:"balance_value"`
	MerkleProof  string `json:"merkle_proof"`
}

// GetStateRootHashResult is the node's reply to chain_get_state_root_hash.
type GetStateRootHashResult struct {
	APIVersion    string         `json:"api_version"`
	StateRootHash *casper.Digest `json:"state_root_hash"`
}

// GetBlockResult is the node's reply to chain_get_block.
type GetBlockResult struct {
	APIVersion string `json:"api_version"`
	Block      *Block `json:"block"`
}

// Block is the JSON view of a block: header, body and finality proofs.
type Block struct {
	Hash   casper.Digest `json:"hash"`
	Header BlockHeader   `json:"header"`
	Body   BlockBody     `json:"body"`
	Proofs []BlockProof  `json:"proofs"`
}

type BlockHeader struct {
	ParentHash      casper.Digest    `json:"parent_hash"`
	StateRootHash   casper.Digest    `json:"state_root_hash"`
	BodyHash        casper.Digest    `json:"body_hash"`
	RandomBit       bool             `json:"random_bit"`
	AccumulatedSeed casper.Digest    `json:"accumulated_seed"`
	Timestamp       casper.Timestamp `json:"timestamp"`
	EraID           uint64           `json:"era_id"`
	Height          uint64           `json:"height"`
	ProtocolVersion string           `json:"protocol_version"`
}

type BlockBody struct {
	Proposer       casper.PublicKey `json:"proposer"`
	DeployHashes   []casper.Digest  `json:"deploy_hashes"`
	TransferHashes []casper.Digest  `json:"transfer_hashes"`
}

type BlockProof struct {
	PublicKey casper.PublicKey `json:"public_key"`
	Signature casper.Signature `json:"signature"`
}

// GetPeersResult is the node's reply to info_get_peers.
type GetPeersResult struct {
	APIVersion string      `json:"api_version"`
	Peers      []PeerEntry `json:"peers"`
}

type PeerEntry struct {
	NodeID  string `json:"node_id"`
	Address string `json:"address"`
}

// GetNodeStatusResult is the node's reply to info_get_status.
type GetNodeStatusResult struct {
	APIVersion            string            `json:"api_version"`
	ChainspecName         string            `json:"chainspec_name"`
	StartingStateRootHash casper.Digest     `json:"starting_state_root_hash"`
	Peers                 []PeerEntry       `json:"peers"`
	LastAddedBlockInfo    *MinimalBlockInfo `json:"last_added_block_info"`
	OurPublicSigningKey   *casper.PublicKey `json:"our_public_signing_key"`
	RoundLength           *string           `json:"round_length"`
	BuildVersion          string            `json:"build_version"`
	Uptime                string            `json:"uptime"`
}

// MinimalBlockInfo is the summary the node reports for its latest block.
type MinimalBlockInfo struct {
	Hash          casper.Digest    `json:"hash"`
	Timestamp     casper.Timestamp `json:"timestamp"`
	EraID         uint64           `json:"era_id"`
	Height        uint64           `json:"height"`
	StateRootHash casper.Digest    `json:"state_root_hash"`
	Creator       casper.PublicKey `json:"creator"`
}
