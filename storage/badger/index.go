package badger

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/minutemind/minutemind/core"
	"github.com/minutemind/minutemind/storage"
)

// Index implements storage.VectorIndex on a BadgerDB keyspace.
//
// Each upsert call runs inside a single transaction, so either every record
// of a call becomes durable or none does. Duplicate ids overwrite prior
// content (last-write-wins). The vector dimension is pinned on the first
// upsert and enforced on every later write and query.
type Index struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ storage.VectorIndex = (*Index)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenIndex opens a BadgerDB-backed vector index at the specified path,
// creating the directory if it doesn't exist. Opening an existing index is
// idempotent: prior records and the pinned dimension survive restarts.
func OpenIndex(filePath string, inMemory bool) (*Index, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Index{
		db:     db,
		logger: slog.Default().With("component", "vector-index"),
	}, nil
}

// Close closes the underlying BadgerDB database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// withTx executes a function within a BadgerDB transaction. The transaction
// is discarded automatically if fn returns an error.
func (ix *Index) withTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	tx := ix.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}

// Upsert implements storage.VectorIndex.
func (ix *Index) Upsert(ctx context.Context, records ...core.IndexRecord) error {
	if len(records) == 0 {
		return nil
	}
	if ix.db.IsClosed() {
		return fmt.Errorf("%w: %w", core.ErrIndexWrite, storage.ErrStorageClosed)
	}

	err := ix.withTx(func(tx *badger.Txn) error {
		dim, err := readDimension(tx)
		if err != nil {
			return err
		}

		for i := range records {
			record := &records[i]
			if err := core.ValidateIndexRecord(record); err != nil {
				return err
			}

			if dim == 0 {
				// First vector pins the index dimension.
				dim = len(record.Vector)
				if err := writeDimension(tx, dim); err != nil {
					return err
				}
			}
			if len(record.Vector) != dim {
				return fmt.Errorf("%w: record %s has dimension %d, index has %d",
					storage.ErrDimensionMismatch, record.ID, len(record.Vector), dim)
			}

			key := makeRecordKey(record.Metadata.MeetingID, record.Metadata.ChunkIndex)
			if err := tx.Set(key, storage.MarshalIndexRecord(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		ix.logger.Error("index write failed", "records", len(records), "err", err)
		return fmt.Errorf("%w: %w", core.ErrIndexWrite, err)
	}
	return nil
}

// rankedMatch pairs a record with its distance while ranking.
type rankedMatch struct {
	record   *core.IndexRecord
	distance float32
}

// Query implements storage.VectorIndex.
func (ix *Index) Query(ctx context.Context, vector []float32, k int, filter storage.Filter) (core.QueryResult, error) {
	if k <= 0 {
		return core.QueryResult{}, fmt.Errorf("%w: %w: k must be positive, got %d",
			core.ErrIndexQuery, storage.ErrInvalidQuery, k)
	}
	if ix.db.IsClosed() {
		return core.QueryResult{}, fmt.Errorf("%w: %w", core.ErrIndexQuery, storage.ErrStorageClosed)
	}

	var matches []rankedMatch
	err := ix.withTx(func(tx *badger.Txn) error {
		dim, err := readDimension(tx)
		if err != nil {
			return err
		}
		if dim != 0 && len(vector) != dim {
			return fmt.Errorf("%w: query vector has dimension %d, index has %d",
				storage.ErrDimensionMismatch, len(vector), dim)
		}

		prefix := makeAllRecordsPrefix()
		if filter.MeetingID != 0 {
			prefix = makeMeetingPrefix(filter.MeetingID)
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.IndexRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalIndexRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if !filter.Matches(record.Metadata) {
				continue
			}
			matches = append(matches, rankedMatch{
				record:   record,
				distance: cosineDistance(vector, record.Vector),
			})
		}
		return nil
	}, false)

	if err != nil {
		ix.logger.Error("index query failed", "err", err)
		return core.QueryResult{}, fmt.Errorf("%w: %w", core.ErrIndexQuery, err)
	}

	// Rank by ascending distance.
	slices.SortFunc(matches, func(a, b rankedMatch) int {
		if a.distance < b.distance {
			return -1
		}
		if a.distance > b.distance {
			return 1
		}
		return 0
	})
	if len(matches) > k {
		matches = matches[:k]
	}

	result := core.QueryResult{
		Documents: make([]string, len(matches)),
		Metadatas: make([]core.ChunkMetadata, len(matches)),
		Distances: make([]float32, len(matches)),
	}
	for i, m := range matches {
		result.Documents[i] = m.record.Document
		result.Metadatas[i] = m.record.Metadata
		result.Distances[i] = m.distance
	}
	return result, nil
}

// Count implements storage.VectorIndex.
func (ix *Index) Count(ctx context.Context, meetingID int64) (int, error) {
	if ix.db.IsClosed() {
		return 0, fmt.Errorf("%w: %w", core.ErrIndexQuery, storage.ErrStorageClosed)
	}

	prefix := makeAllRecordsPrefix()
	if meetingID != 0 {
		prefix = makeMeetingPrefix(meetingID)
	}

	count := 0
	err := ix.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	if err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrIndexQuery, err)
	}
	return count, nil
}

// readDimension returns the pinned vector dimension, or 0 if no record has
// been written yet.
func readDimension(tx *badger.Txn) (int, error) {
	item, err := tx.Get([]byte(indexMetaDimKey))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return 0, nil
		}
		return 0, err
	}

	var dim int
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return storage.ErrSerializationFailed
		}
		dim = int(binary.BigEndian.Uint64(val))
		return nil
	})
	return dim, err
}

// writeDimension pins the vector dimension for the index lifetime.
func writeDimension(tx *badger.Txn, dim int) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(dim))
	return tx.Set([]byte(indexMetaDimKey), buf)
}
