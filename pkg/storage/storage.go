// Package storage provides durable object storage for submission files.
package storage

import (
	"io"
	"io/fs"
)

// Object is a readable stored object.
type Object interface {
	io.ReadCloser
}

// Storage is an interface for storing and retrieving objects keyed by
// their blob path.
type Storage interface {
	Open(name string) (Object, error)
	Stat(name string) (fs.FileInfo, error)
	Put(name string, r io.Reader) (int64, error)
	Delete(name string) error
	Exists(name string) (bool, error)
	Rename(oldName, newName string) error
}
