package cli

import (
	"bytes"
	"document-catalog/core"
	"document-catalog/stores"
	"document-catalog/stores/memory"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// fixtureFile is the on-disk layout read by --fixtures. JSON input is valid YAML.
type fixtureFile struct {
	Documents []core.Document `yaml:"documents"`
}

func loadFixtures(path string) ([]core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	var file fixtureFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode fixtures %s: %w", path, err)
	}
	return file.Documents, nil
}

// openStore builds a store from the configuration and saves every fixture into it.
func openStore(opts *RootOptions, fixturesPath string) (*memory.DocumentStore, error) {
	store, err := stores.GetStore(opts.Config.Store)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid store configuration", err)
	}
	if fixturesPath == "" {
		return store, nil
	}

	documents, err := loadFixtures(fixturesPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "cannot load fixtures", err)
	}
	for _, d := range documents {
		store.Save(d)
	}
	logrus.WithFields(logrus.Fields{
		"fixtures":  fixturesPath,
		"documents": store.Len(),
	}).Debug("Fixtures loaded")
	return store, nil
}
