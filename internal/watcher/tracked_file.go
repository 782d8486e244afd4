// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package watcher

import (
	"crypto/sha256"
	"io"
	"os"
)

func trackedFileFromPath(path string) (TrackedFile, error) {
	b, err := fileSha256Sum(path)
	if err != nil {
		return nil, err
	}

	return &trackedFile{
		path:      path,
		sha256sum: b,
	}, nil
}

type trackedFile struct {
	path      string
	sha256sum []byte
}

func (tf *trackedFile) Path() string {
	return tf.path
}

func (tf *trackedFile) Sha256Sum() []byte {
	return tf.sha256sum
}

func fileSha256Sum(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := sha256.New()
	_, err = io.Copy(h, f)
	if err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}
