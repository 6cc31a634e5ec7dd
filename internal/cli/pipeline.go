package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mkalis/restcat/internal/catalog"
	"github.com/mkalis/restcat/internal/config"
	"github.com/mkalis/restcat/internal/registry"
	"github.com/mkalis/restcat/internal/store"
)

// pipeline is one complete batch run: discover, load, build, flatten. The
// catalog and index are built exactly once and handed to each consumer;
// nothing is lazily initialized.
type pipeline struct {
	cfg   *config.Config
	log   *logrus.Logger
	reg   *registry.Registry
	docs  []store.Document
	cat   *catalog.Catalog
	index *catalog.Index
}

func runPipeline(cmd *cobra.Command) (*pipeline, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	reg, err := registry.Load(cfg.RegistryFile)
	if err != nil {
		return nil, err
	}

	docs, err := store.Discover(cfg.SchemaDir)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"documents":  len(docs),
		"registered": reg.Len(),
	}).Debug("discovered schema documents")

	cat, err := catalog.Build(docs, reg, log)
	if err != nil {
		return nil, err
	}

	index, err := catalog.Flatten(cat)
	if err != nil {
		return nil, err
	}
	log.WithField("operations", index.Len()).Debug("flattened catalog into index")

	return &pipeline{
		cfg:   cfg,
		log:   log,
		reg:   reg,
		docs:  docs,
		cat:   cat,
		index: index,
	}, nil
}
