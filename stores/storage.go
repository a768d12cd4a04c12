package stores

import (
	"document-catalog/config"
	"document-catalog/core"
	"document-catalog/stores/memory"
	"fmt"

	"github.com/sirupsen/logrus"
)

// GetStore builds the in-memory document store described by cfg.
func GetStore(cfg config.StoreConfig) (*memory.DocumentStore, error) {
	var generate core.IDGenerator

	storageField := logrus.Fields{
		"storageType": "in-memory",
		"idScheme":    cfg.IDScheme,
	}

	switch cfg.IDScheme {
	case config.IDSchemeUUID:
		generate = core.UUID
	case config.IDSchemeULID:
		generate = core.ULID
	default:
		return nil, fmt.Errorf("unknown id scheme %q", cfg.IDScheme)
	}

	logrus.WithFields(storageField).Info("Use storage")
	return memory.NewDocumentStore(memory.WithIDGenerator(generate)), nil
}
