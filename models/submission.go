package models

import "time"

// Submission kinds recorded in the local history.
const (
	SubmissionPutDeploy  = "put-deploy"
	SubmissionTransfer   = "transfer"
	SubmissionSendDeploy = "send-deploy"
)

// Submission statuses. A row starts pending and is resolved by the
// deploy poller once execution results appear.
const (
	SubmissionPending = "pending"
	SubmissionSuccess = "success"
	SubmissionFailure = "failure"
)

// DeploySubmission is one row of the local submission history: a deploy
// the client sent to a node, kept for later lookup with get-deploy.
type DeploySubmission struct {
	// ID is the unique identifier of the record in the database.
	ID int64 `json:"id"`

	// DeployHash is the hex deploy hash returned by the node.
	DeployHash string `json:"deploy_hash"`

	// ChainName is the network the deploy was sent to.
	ChainName string `json:"chain_name"`

	// NodeAddress is the node the deploy was submitted to.
	NodeAddress string `json:"node_address"`

	// Kind records which command produced the submission.
	Kind string `json:"kind"`

	// Amount is the payment or transfer amount in motes, when known.
	Amount string `json:"amount,omitempty"`

	// Target is the transfer target public key hex, for transfers.
	Target string `json:"target,omitempty"`

	// Status is pending until execution results are observed.
	Status string `json:"status"`

	// SubmittedAt is when the client recorded the submission.
	SubmittedAt time.Time `json:"submitted_at"`
}
