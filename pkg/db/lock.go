package db

import (
	"context"
	"os"
	"time"

	"github.com/RobertLuptonTheGood/eups/pkg/errors"
)

// Lock is an advisory exclusive lock held by mkdir-ing a directory that
// cannot exist twice; releasing it removes the directory. Grounded on
// python/eups/lock.py's takeLocks, which uses the same mkdir-as-mutex
// trick with bounded retry rather than flock, to stay portable across the
// network filesystems EUPS stacks are typically shared over.
type Lock struct {
	dir string
}

const lockRetryInterval = 1 * time.Second

// Acquire takes the exclusive lock at dir, retrying every lockRetryInterval
// until ctx is done. It returns a LockBusy error once ctx's deadline is
// reached while the directory is still held by someone else.
func Acquire(ctx context.Context, dir string) (*Lock, error) {
	for {
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return &Lock{dir: dir}, nil
		}
		if !os.IsExist(err) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, errors.LockBusy(dir)
		case <-time.After(lockRetryInterval):
		}
	}
}

// Release drops the lock. Releasing an already-released Lock is a no-op.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	err := os.Remove(l.dir)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
