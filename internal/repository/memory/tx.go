package memory

import (
	"context"

	"relay/internal/entities"
	"relay/pkg/keylock"
)

type txKey struct{}

// tx копит записи до коммита и держит взятые блокировки до конца транзакции.
// Чтения внутри транзакции видят её собственные незакоммиченные записи.
type tx struct {
	held map[string]func()

	deliveries       map[string]entities.Delivery
	segments         map[string]entities.Segment
	proposals        map[string]map[string]entities.Proposal
	clearedProposals map[string]struct{}
	handovers        map[string]entities.HandoverEvent
}

func newTx() *tx {
	return &tx{
		held:             make(map[string]func()),
		deliveries:       make(map[string]entities.Delivery),
		segments:         make(map[string]entities.Segment),
		proposals:        make(map[string]map[string]entities.Proposal),
		clearedProposals: make(map[string]struct{}),
		handovers:        make(map[string]entities.HandoverEvent),
	}
}

func (t *tx) lock(locks *keylock.Locker, key string) {
	if _, ok := t.held[key]; ok {
		return
	}
	t.held[key] = locks.Lock(key)
}

func (t *tx) release() {
	for key, unlock := range t.held {
		unlock()
		delete(t.held, key)
	}
}

func txFrom(ctx context.Context) (*tx, bool) {
	t, ok := ctx.Value(txKey{}).(*tx)
	return t, ok
}

type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Do выполняет fn в транзакции. Вложенный вызов присоединяется к внешней.
// Записи становятся видимы атомарно, если fn вернула nil,
// иначе отбрасываются.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	t := newTx()
	defer t.release()

	err := fn(context.WithValue(ctx, txKey{}, t))
	if err != nil {
		return err
	}

	m.store.commit(t)
	return nil
}
