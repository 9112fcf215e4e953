package rules

import (
	"compress/gzip"
	"encoding/gob"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/segmentio/fasthash/fnv1a"
)

const dataFile = "data"

// A Database remembers the content hash of the last patched output per
// file. It is purely informational (the status tool reads it); the patch
// itself never consults it.
type Database struct {
	*data
	location string
}

func NewDatabase(dir string) *Database {
	var d *data
	var err error
	var f *os.File
	if f, err = os.Open(filepath.Join(dir, dataFile)); err == nil {
		d, err = loadData(f)
		f.Close()
	}
	// error opening or loading the data file
	if err != nil {
		d = newData()
	}

	return &Database{
		location: dir,
		data:     d,
	}
}

// NewCacheDatabase stores the database in a shared cache directory, keyed
// by the working directory it was created from.
func NewCacheDatabase(dir, wd string) *Database {
	return NewDatabase(filepath.Join(dir, url.PathEscape(wd)))
}

func (db *Database) Save() error {
	if err := os.MkdirAll(db.location, os.ModePerm); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(db.location, dataFile))
	if err != nil {
		return err
	}
	defer f.Close()
	return db.data.WriteBytesTo(f)
}

type data struct {
	Patched Patched
}

func newData() *data {
	return &data{
		Patched: Patched{
			Hashes: make(map[uint64]uint64),
		},
	}
}

func (d *data) WriteBytesTo(w io.Writer) error {
	fz := gzip.NewWriter(w)
	enc := gob.NewEncoder(fz)
	err := enc.Encode(d)
	fz.Close()
	return err
}

func loadData(r io.Reader) (*data, error) {
	var dat data
	fz, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	dec := gob.NewDecoder(fz)
	err = dec.Decode(&dat)
	fz.Close()
	return &dat, err
}

// Patched maps a hash of the file path to a hash of the content that was
// last written for it.
type Patched struct {
	Hashes map[uint64]uint64
}

// Record stores the hash of 'doc' as the patched content for 'path'.
func (db *Database) Record(path string, doc []byte) {
	db.Patched.Hashes[fnv1a.HashString64(path)] = fnv1a.HashBytes64(doc)
}

// UpToDate reports whether 'doc' matches the content last recorded for
// 'path'.
func (db *Database) UpToDate(path string, doc []byte) bool {
	h, ok := db.Patched.Hashes[fnv1a.HashString64(path)]
	if !ok {
		return false
	}
	return h == fnv1a.HashBytes64(doc)
}
