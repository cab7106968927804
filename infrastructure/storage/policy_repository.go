//go:generate go run go.uber.org/mock/mockgen -source=policy_repository.go -destination=../../mocks/mock_policy_repository.go -package=mocks
package storage

import (
	goerrors "errors"
	"fmt"
	"log/slog"

	"toxicity-coach/domain"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type IPolicyRepository interface {
	Threshold(scope domain.Scope, label domain.Label) (*float64, error)
	UpsertThreshold(scope domain.Scope, label domain.Label, threshold float64) error
}

// PolicyRepository persists per guild/channel threshold overrides.
// It is the ThresholdLookup used by the policy evaluator.
type PolicyRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewPolicyRepository(db *badger.DB, log *slog.Logger) *PolicyRepository {
	return &PolicyRepository{db: db, log: log}
}

// policyKey is "policy:{guild}:{channel}:{label}".
func policyKey(scope domain.Scope, label domain.Label) []byte {
	return []byte(fmt.Sprintf("policy:%s:%s:%s", scope.Guild, scope.Channel, label))
}

// Threshold returns nil without error when no override is stored.
func (p PolicyRepository) Threshold(scope domain.Scope, label domain.Label) (*float64, error) {
	var value wrapperspb.DoubleValue
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(policyKey(scope, label))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &value)
		})
	})
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read threshold %s/%s: %w", scope, label, err)
	}
	threshold := value.GetValue()
	return &threshold, nil
}

// UpsertThreshold inserts or replaces the override for the scope and label.
func (p PolicyRepository) UpsertThreshold(scope domain.Scope, label domain.Label, threshold float64) error {
	data, err := proto.Marshal(wrapperspb.Double(threshold))
	if err != nil {
		return fmt.Errorf("marshal threshold: %w", err)
	}
	err = p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(policyKey(scope, label), data)
	})
	if err != nil {
		return err
	}
	p.log.Debug("Threshold stored", "scope", scope.String(), "label", label, "threshold", threshold)
	return nil
}
