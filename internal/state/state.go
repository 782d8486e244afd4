// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package state

import (
	"io"
	"log"
	"time"

	"github.com/hashicorp/go-memdb"
)

const (
	documentsTableName  = "documents"
	fileHashesTableName = "file_hashes"
)

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		documentsTableName: {
			Name: documentsTableName,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &HandleFieldIndexer{Field: "Handle"},
				},
				"scope": {
					Name:         "scope",
					Indexer:      &memdb.StringFieldIndex{Field: "Scope"},
					AllowMissing: true,
				},
			},
		},
		fileHashesTableName: {
			Name: fileHashesTableName,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Path"},
				},
			},
		},
	},
}

type StateStore struct {
	DocumentStore *DocumentStore
	FileHashes    *FileHashStore

	db *memdb.MemDB
}

func NewStateStore() (*StateStore, error) {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, err
	}

	return &StateStore{
		db: db,
		DocumentStore: &DocumentStore{
			db:           db,
			tableName:    documentsTableName,
			logger:       defaultLogger,
			TimeProvider: time.Now,
		},
		FileHashes: &FileHashStore{
			db:        db,
			tableName: fileHashesTableName,
			logger:    defaultLogger,
		},
	}, nil
}

func (s *StateStore) SetLogger(logger *log.Logger) {
	s.DocumentStore.logger = logger
	s.FileHashes.logger = logger
}

var defaultLogger = log.New(io.Discard, "", 0)
