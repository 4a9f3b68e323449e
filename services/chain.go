package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TxReceipt is the outcome of a claim submission to the game contract
type TxReceipt struct {
	Hash      string
	Confirmed bool
}

// TxBroadcaster submits a points claim to the chain on behalf of an address
// and reports whether the transaction confirmed. The real wallet/contract
// layer lives outside this service; implementations adapt it.
type TxBroadcaster interface {
	SubmitClaim(ctx context.Context, address string, points int) (TxReceipt, error)
}

// DevBroadcaster confirms every claim immediately with a synthetic
// transaction hash. Used for local play and tests.
type DevBroadcaster struct{}

func NewDevBroadcaster() *DevBroadcaster {
	return &DevBroadcaster{}
}

func (b *DevBroadcaster) SubmitClaim(ctx context.Context, address string, points int) (TxReceipt, error) {
	hash := fmt.Sprintf("0x%s", strings.ReplaceAll(uuid.NewString(), "-", ""))
	return TxReceipt{Hash: hash, Confirmed: true}, nil
}
