// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"
	"io"
	"os"
)

// A Mapping is a read-only view of a file's contents.
//
// For regular files this is a shared memory mapping. Pipes and other
// special files cannot be mapped, so they are read into memory
// instead.
type Mapping struct {
	data  []byte
	unmap func([]byte) error
}

// Map maps the file at path into memory. The caller must call Close
// when done with the data.
func Map(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, &os.PathError{Op: "read", Path: path, Err: err}
		}
		return &Mapping{data: data}, nil
	}

	size := fi.Size()
	if size == 0 {
		// mmap rejects zero-length mappings.
		return &Mapping{}, nil
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("mmap %s: file too large (%d bytes)", path, size)
	}
	data, err := mmap(f, int(size))
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: path, Err: err}
	}
	return &Mapping{data: data, unmap: munmap}, nil
}

// Data returns the mapped bytes. The slice must not be modified and
// must not be used after Close.
func (m *Mapping) Data() []byte {
	return m.data
}

// Close releases the mapping.
func (m *Mapping) Close() error {
	data, unmap := m.data, m.unmap
	m.data, m.unmap = nil, nil
	if unmap == nil || data == nil {
		return nil
	}
	return unmap(data)
}
