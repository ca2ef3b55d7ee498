package mocks

import (
	"context"
	"testing"

	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
)

// RollbackTx is a helper function to create a mocked StorageTx
// that expects to be rolled back and not have Commit called
func RollbackTx(t *testing.T) *StorageTxMock {
	return &StorageTxMock{
		RollbackFunc: func() error { return nil },
	}
}

// CommitTx is a helper function to create a mocked StorageTx
// that expects to be committed, it errors if a Rollback occurs
// before a Commit
func CommitTx(t *testing.T) *StorageTxMock {
	var commitCalled bool

	return &StorageTxMock{
		RollbackFunc: func() error {
			if !commitCalled {
				t.Error("rollback called before commit")
			}
			return nil
		},
		CommitFunc: func() error {
			commitCalled = true
			return nil
		},
	}
}

// CommitErrTx is a helper function to create a mocked StorageTx
// that has the Commit return an error
func CommitErrTx(t *testing.T) *StorageTxMock {
	return &StorageTxMock{
		RollbackFunc: func() error {
			return nil
		},
		CommitFunc: func() error {
			return errors.E(errors.Testing)
		},
	}
}

// NotUsedTx is a mocked StorageTx that doesn't expect to be used at all
func NotUsedTx(t *testing.T) *StorageTxMock {
	return new(StorageTxMock)
}

// StorageServiceWith returns a StorageServiceMock that hands out the storages
// given together with tx for all the *Tx methods, a nil storage panics when used
func StorageServiceWith(tx trackhaus.StorageTx, cs trackhaus.CatalogStorage, ps trackhaus.PlayStorage, ls trackhaus.ListenerStorage) *StorageServiceMock {
	return &StorageServiceMock{
		CatalogFunc: func(_ context.Context) trackhaus.CatalogStorage {
			return cs
		},
		CatalogTxFunc: func(_ context.Context, _ trackhaus.StorageTx) (trackhaus.CatalogStorage, trackhaus.StorageTx, error) {
			return cs, tx, nil
		},
		PlaysFunc: func(_ context.Context) trackhaus.PlayStorage {
			return ps
		},
		PlaysTxFunc: func(_ context.Context, _ trackhaus.StorageTx) (trackhaus.PlayStorage, trackhaus.StorageTx, error) {
			return ps, tx, nil
		},
		ListenersFunc: func(_ context.Context) trackhaus.ListenerStorage {
			return ls
		},
		ListenersTxFunc: func(_ context.Context, _ trackhaus.StorageTx) (trackhaus.ListenerStorage, trackhaus.StorageTx, error) {
			return ls, tx, nil
		},
		CloseFunc: func() error {
			return nil
		},
	}
}
