package db

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/RobertLuptonTheGood/eups/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"
)

// sectionFileItem satisfies the item interface synthfs's CreateFileOperation
// expects, mirroring dodot's SynthfsExecutor.fileItem.
type sectionFileItem struct {
	path    string
	content []byte
}

func (f *sectionFileItem) Path() string       { return f.path }
func (f *sectionFileItem) Type() string       { return "file" }
func (f *sectionFileItem) Content() []byte    { return f.content }
func (f *sectionFileItem) Mode() fs.FileMode  { return 0644 }
func (f *sectionFileItem) IsDir() bool        { return false }
func (f *sectionFileItem) ModTime() time.Time { return time.Now() }
func (f *sectionFileItem) Size() int64        { return int64(len(f.content)) }

// Database is the read/write gateway onto one Stack's ups_db tree:
// declare/undeclare versions, tag/untag chains, and resolve either back
// to a version string. Grounded on python/eups/db/Database.py plus the
// declare/undeclare/tag/untag wrappers in Eups.py.
type Database struct {
	stack    *Stack
	fs       synthfs.FileSystem
	logger   zerolog.Logger
	lockWait time.Duration
}

// New creates a Database over stack's ups_db tree.
func New(stack *Stack) *Database {
	return &Database{
		stack:    stack,
		fs:       filesystem.NewOSFileSystem("/"),
		logger:   logging.GetLogger("db"),
		lockWait: 30 * time.Second,
	}
}

func (d *Database) withLock(fn func() error) error {
	if err := os.MkdirAll(d.stack.DBPath(), 0755); err != nil {
		return errors.Wrap(err, errors.CodeIO, "creating ups_db")
	}
	ctx, cancel := context.WithTimeout(context.Background(), d.lockWait)
	defer cancel()

	lock, err := Acquire(ctx, d.stack.LockDir())
	if err != nil {
		return err
	}
	defer lock.Release()
	return fn()
}

// atomicWrite writes data to path by creating a sibling temp file through
// synthfs and then rename(2)-ing it into place. synthfs's operation set
// (mirroring the shape dodot's SynthfsExecutor converts to) has no
// dedicated rename primitive, so the swap itself uses os.Rename, the
// platform's only atomic replace; synthfs still owns the actual content
// write and directory creation, keeping every filesystem mutation routed
// through one executor.
func (d *Database) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, errors.CodeIO, "creating product directory")
	}

	tmp := path + fmt.Sprintf(".tmp-%d", time.Now().UnixNano())
	relTmp, err := filepath.Rel("/", tmp)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "computing relative temp path")
	}

	pipeline := synthfs.NewMemPipeline()
	opID := core.OperationID(fmt.Sprintf("db-write-%s", relTmp))
	writeOp := operations.NewCreateFileOperation(opID, relTmp)
	writeOp.SetItem(&sectionFileItem{path: relTmp, content: data})
	if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(writeOp)); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "queueing section-file write")
	}

	executor := synthfs.NewExecutor()
	result := executor.Run(context.Background(), pipeline, d.fs)
	if result.GetError() != nil {
		return errors.Wrap(result.GetError(), errors.CodeIO, "writing section-file")
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, errors.CodeIO, "publishing section-file")
	}
	return nil
}

// FindVersionRecord reads the declared record for product/version.
func (d *Database) FindVersionRecord(product, version string) (*VersionRecord, error) {
	path := d.stack.VersionFilePath(product, version)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ProductNotFound(product, version, nil, d.stack.Root)
		}
		return nil, errors.Wrap(err, errors.CodeIO, "reading version record")
	}
	return ParseVersionRecord(data)
}

// FindChainRecord reads the chain record for product/tag.
func (d *Database) FindChainRecord(product, tag string) (*ChainRecord, error) {
	path := d.stack.ChainFilePath(product, tag)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.CodeIO, "reading chain record")
	}
	return ParseChainRecord(data)
}

// ResolveTag returns the version product/tag currently points to for
// flavor, if any.
func (d *Database) ResolveTag(product, tag, flavor string) (string, bool, error) {
	rec, err := d.FindChainRecord(product, tag)
	if err != nil {
		return "", false, err
	}
	if rec == nil {
		return "", false, nil
	}
	v, ok := rec.Versions[flavor]
	return v, ok, nil
}

// Declare atomically writes rec to its version file.
func (d *Database) Declare(rec *VersionRecord) error {
	if rec.DeclaredAt == "" {
		rec.DeclaredAt = time.Now().UTC().Format(time.RFC3339)
	}
	rec.ModifiedAt = rec.DeclaredAt
	return d.withLock(func() error {
		path := d.stack.VersionFilePath(rec.Product, rec.Version)
		d.logger.Debug().Str("product", rec.Product).Str("version", rec.Version).Str("path", path).Msg("declaring version")
		return d.atomicWrite(path, rec.Encode())
	})
}

// Undeclare removes product/version's declaration. It is not an error to
// undeclare a version that isn't declared.
func (d *Database) Undeclare(product, version string) error {
	return d.withLock(func() error {
		path := d.stack.VersionFilePath(product, version)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, errors.CodeIO, "removing version record")
		}
		return nil
	})
}

// Tag atomically points product's tag at version for flavor, merging with
// any existing per-flavor pointers already recorded under that tag.
func (d *Database) Tag(product, tag, flavor, version, modifier string) error {
	return d.withLock(func() error {
		rec, err := d.FindChainRecord(product, tag)
		if err != nil {
			return err
		}
		if rec == nil {
			rec = &ChainRecord{Product: product, Tag: tag, Versions: map[string]string{}}
		}
		rec.Versions[flavor] = version
		rec.Modifier = modifier
		rec.ModifiedAt = time.Now().UTC().Format(time.RFC3339)

		path := d.stack.ChainFilePath(product, tag)
		return d.atomicWrite(path, rec.Encode())
	})
}

// Untag removes product's tag pointer for flavor. If no flavors remain in
// the chain record afterward, the chain file itself is deleted.
func (d *Database) Untag(product, tag, flavor string) error {
	return d.withLock(func() error {
		rec, err := d.FindChainRecord(product, tag)
		if err != nil {
			return err
		}
		if rec == nil {
			return nil
		}
		delete(rec.Versions, flavor)

		path := d.stack.ChainFilePath(product, tag)
		if len(rec.Versions) == 0 {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return errors.Wrap(err, errors.CodeIO, "removing empty chain record")
			}
			return nil
		}
		rec.ModifiedAt = time.Now().UTC().Format(time.RFC3339)
		return d.atomicWrite(path, rec.Encode())
	})
}
