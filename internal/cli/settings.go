package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/traceschema/internal/config"
	"github.com/vvka-141/traceschema/internal/logging"
	"github.com/vvka-141/traceschema/pkg/schemaxml"
	"github.com/vvka-141/traceschema/pkg/traceschema"
)

// settings is what every command needs after flags and config are merged.
type settings struct {
	config     *config.ProjectConfig
	configPath string
	logger     traceschema.Logger
	interfaces *traceschema.InterfaceTable
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	config.LoadEnv()

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	cfg, path, err := config.Resolve(getConfigFlag(cmd), workDir)
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		cfg = &config.ProjectConfig{}
		logger.Verbose("No config file found, using defaults")
	case err != nil:
		return nil, err
	default:
		logger.Verbose("Using config %s", path)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return &settings{
		config:     cfg,
		configPath: path,
		logger:     logger,
		interfaces: cfg.InterfaceTable(),
	}, nil
}

// decoder returns a decoder reporting to logger, or to the settings logger
// when logger is nil.
func (s *settings) decoder(logger traceschema.Logger) *schemaxml.Decoder {
	if logger == nil {
		logger = s.logger
	}
	return schemaxml.NewDecoder(
		schemaxml.WithInterfaces(s.interfaces),
		schemaxml.WithLogger(logger),
	)
}

// indent resolves the output indent: an explicit flag value wins over config.
func (s *settings) indent(flagValue int) int {
	if flagValue >= 0 {
		return flagValue
	}
	return s.config.EffectiveIndent(schemaxml.DefaultIndent)
}

// readDocument decodes one document through the command's provider.
func (s *settings) readDocument(path string, logger traceschema.Logger) (*traceschema.SchemaContext, []byte, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	ctx, err := s.decoder(logger).DeserializeBytes(data)
	if err != nil {
		return nil, data, schemaxml.WithSource(err, path)
	}
	return ctx, data, nil
}
