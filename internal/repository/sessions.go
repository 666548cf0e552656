package repository

import (
	"context"
	"fmt"

	"github.com/Aruzhan018/Wish_Board/internal/errs"
	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner executes a function inside a MongoDB multi-document transaction,
// so the like ledger flip and the counter adjustment commit or abort as one
// unit. Requires a replica set (or Atlas), which the deployment targets.
type TxRunner struct {
	client *mongo.Client
}

// NewTxRunner creates a transaction runner bound to the given client.
func NewTxRunner(client *mongo.Client) *TxRunner {
	return &TxRunner{client: client}
}

// WithTransaction runs fn within a session transaction. The context passed
// to fn carries the session; repository calls made with it join the
// transaction.
func (t *TxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("%w: failed to start session: %v", errs.ErrUnavailable, err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
