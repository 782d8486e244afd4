// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package state

import (
	"log"

	"github.com/hashicorp/go-memdb"
)

// FileHash is the last known checksum of a file on disk
type FileHash struct {
	Path string
	Hash []byte
}

type FileHashStore struct {
	db        *memdb.MemDB
	tableName string
	logger    *log.Logger
}

// SetHash records hash of the file at path and reports
// whether it differs from the previously recorded one
func (s *FileHashStore) SetHash(path string, hash []byte) (bool, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(s.tableName, "id", path)
	if err != nil {
		return false, err
	}
	if obj != nil && string(obj.(*FileHash).Hash) == string(hash) {
		return false, nil
	}

	err = txn.Insert(s.tableName, &FileHash{
		Path: path,
		Hash: hash,
	})
	if err != nil {
		return false, err
	}

	txn.Commit()
	return true, nil
}

func (s *FileHashStore) Hash(path string) ([]byte, error) {
	txn := s.db.Txn(false)

	obj, err := txn.First(s.tableName, "id", path)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, &RecordNotFoundError{Source: path}
	}
	return obj.(*FileHash).Hash, nil
}

func (s *FileHashStore) Forget(path string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	_, err := txn.DeleteAll(s.tableName, "id", path)
	if err != nil {
		return err
	}

	s.logger.Printf("state: forgot hash of %s", path)

	txn.Commit()
	return nil
}
