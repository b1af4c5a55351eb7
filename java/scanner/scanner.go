// Package scanner builds a java.Index from directories, jars and class files.
package scanner

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/beanscan/java"
)

var log = commonlog.GetLogger("beanscan.scanner")

// Scanner adds every class it finds to its index. Class files that fail to
// parse are recorded and skipped.
type Scanner struct {
	index  *java.Index
	errors []error
	files  int
}

func New(index *java.Index) *Scanner {
	if index == nil {
		index = java.NewIndex()
	}
	return &Scanner{index: index}
}

func (s *Scanner) Index() *java.Index { return s.index }

// Errors returns the per-file failures collected so far.
func (s *Scanner) Errors() []error { return s.errors }

// Files returns the number of class files parsed successfully.
func (s *Scanner) Files() int { return s.files }

// LoadIndex scans paths and returns the resulting index. Only an
// inaccessible path is an error; broken class files are logged.
func LoadIndex(paths ...string) (*java.Index, error) {
	s := New(nil)
	for _, path := range paths {
		if err := s.Scan(path); err != nil {
			return nil, err
		}
	}
	return s.index, nil
}

// Scan accepts a directory, a jar or zip archive, or a single class file.
func (s *Scanner) Scan(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	if info.IsDir() {
		return s.scanDirectory(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jar", ".zip", ".war":
		return s.scanZipFile(path)
	case ".class":
		s.scanClassFile(path)
		return nil
	}
	return fmt.Errorf("scan %s: not a directory, archive or class file", path)
}

func (s *Scanner) scanDirectory(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warningf("walk %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".class":
			s.scanClassFile(path)
		case ".jar":
			if err := s.scanZipFile(path); err != nil {
				s.fail(err)
			}
		}
		return nil
	})
}

func (s *Scanner) scanClassFile(path string) {
	class, err := java.ClassModelFromFile(path)
	if err != nil {
		s.fail(fmt.Errorf("parse %s: %w", path, err))
		return
	}
	s.add(class, path)
}

func (s *Scanner) scanZipFile(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open zip %s: %w", path, err)
	}
	defer r.Close()
	s.scanZip(&r.Reader, path)
	return nil
}

func (s *Scanner) scanZip(r *zip.Reader, name string) {
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		switch filepath.Ext(f.Name) {
		case ".class":
			s.scanZipEntryClass(f, name)
		case ".jar":
			s.scanJarInZip(f, name)
		}
	}
}

func (s *Scanner) scanZipEntryClass(f *zip.File, zipName string) {
	if strings.HasSuffix(f.Name, "module-info.class") || strings.HasSuffix(f.Name, "package-info.class") {
		return
	}
	rc, err := f.Open()
	if err != nil {
		s.fail(fmt.Errorf("open %s in %s: %w", f.Name, zipName, err))
		return
	}
	defer rc.Close()

	class, err := java.ClassModelFromReader(rc)
	if err != nil {
		s.fail(fmt.Errorf("parse %s in %s: %w", f.Name, zipName, err))
		return
	}
	s.add(class, zipName+"!/"+f.Name)
}

// scanJarInZip handles jars nested in archives, e.g. WEB-INF/lib.
func (s *Scanner) scanJarInZip(jarFile *zip.File, zipName string) {
	rc, err := jarFile.Open()
	if err != nil {
		s.fail(fmt.Errorf("open jar %s in %s: %w", jarFile.Name, zipName, err))
		return
	}
	defer rc.Close()

	jarData, err := io.ReadAll(rc)
	if err != nil {
		s.fail(fmt.Errorf("read jar %s in %s: %w", jarFile.Name, zipName, err))
		return
	}

	jarReader, err := zip.NewReader(bytes.NewReader(jarData), int64(len(jarData)))
	if err != nil {
		s.fail(fmt.Errorf("open jar %s as zip: %w", jarFile.Name, err))
		return
	}
	s.scanZip(jarReader, zipName+"!/"+jarFile.Name)
}

func (s *Scanner) add(class *java.ClassModel, origin string) {
	s.files++
	s.index.Add(class)
	log.Debugf("indexed %s from %s", class.Name, origin)
}

func (s *Scanner) fail(err error) {
	log.Warning(err.Error())
	s.errors = append(s.errors, err)
}
