package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDatabase(t *testing.T) {
	dir := t.TempDir()
	doc := []byte("<html><head></head></html>")

	db := NewDatabase(dir)
	if db.UpToDate("dist/index.html", doc) {
		t.Error("empty database reports up to date")
	}

	db.Record("dist/index.html", doc)
	if !db.UpToDate("dist/index.html", doc) {
		t.Error("recorded content not up to date")
	}
	if db.UpToDate("dist/index.html", []byte("other")) {
		t.Error("different content reports up to date")
	}
	if db.UpToDate("dist/other.html", doc) {
		t.Error("different path reports up to date")
	}

	if err := db.Save(); err != nil {
		t.Fatal(err)
	}

	db = NewDatabase(dir)
	if !db.UpToDate("dist/index.html", doc) {
		t.Error("recorded content lost after reload")
	}
}

func TestDatabaseCorrupt(t *testing.T) {
	dir := t.TempDir()
	// an unreadable data file falls back to an empty database
	writeFile(t, filepath.Join(dir, dataFile), "not gzip")

	db := NewDatabase(dir)
	if db.UpToDate("dist/index.html", []byte("x")) {
		t.Error("corrupt database reports up to date")
	}
}

func TestCacheDatabase(t *testing.T) {
	dir := t.TempDir()
	doc := []byte("content")

	db := NewCacheDatabase(dir, "/some/work/dir")
	db.Record("dist/index.html", doc)
	if err := db.Save(); err != nil {
		t.Fatal(err)
	}

	db = NewCacheDatabase(dir, "/some/work/dir")
	if !db.UpToDate("dist/index.html", doc) {
		t.Error("recorded content lost after reload")
	}

	db = NewCacheDatabase(dir, "/another/dir")
	if db.UpToDate("dist/index.html", doc) {
		t.Error("databases for different working dirs should be separate")
	}
}
