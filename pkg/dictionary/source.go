package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source produces a dictionary, typically from external definition files.
type Source interface {
	Load(ctx context.Context) (*Dictionary, error)
}

// document is the on-disk shape of a dictionary file.
type document struct {
	Attributes []*AttributeType `yaml:"attributes" json:"attributes"`
	Vendors    []*Vendor        `yaml:"vendors" json:"vendors"`
}

// FileSource loads dictionary definitions from local YAML or JSON files.
type FileSource struct {
	// Path specifies a single file to load.
	Path string

	// Paths specifies multiple files to load and merge.
	Paths []string

	// Dir specifies a directory to scan for .yaml, .yml and .json files.
	Dir string
}

// Load reads and merges all configured files into one dictionary.
func (fs *FileSource) Load(ctx context.Context) (*Dictionary, error) {
	var filePaths []string

	if fs.Path != "" {
		filePaths = append(filePaths, fs.Path)
	}

	filePaths = append(filePaths, fs.Paths...)

	if fs.Dir != "" {
		dirFiles, err := scanDirectory(fs.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", fs.Dir, err)
		}
		filePaths = append(filePaths, dirFiles...)
	}

	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no dictionary files specified")
	}

	dict := New()

	for _, path := range filePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := loadFile(dict, path); err != nil {
			return nil, fmt.Errorf("failed to load dictionary %s: %w", path, err)
		}
	}

	return dict, nil
}

func loadFile(dict *Dictionary, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc document

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}

	if err != nil {
		return err
	}

	for _, attr := range doc.Attributes {
		if attr.VendorID == 0 {
			attr.VendorID = VendorNone
		}
		if err := dict.Register(attr); err != nil {
			return err
		}
	}

	for _, vendor := range doc.Vendors {
		if err := dict.RegisterVendor(vendor); err != nil {
			return err
		}
	}

	return nil
}

func scanDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	return paths, nil
}
