package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tidytext/internal/config"
	"tidytext/internal/logging"
	"tidytext/processor"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	runID string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
		runID:         uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// logger builds a run-scoped logger writing to w. Flag values take
// precedence over the config file.
func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	effective := *cfg
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		effective.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
	}
	if c.logFormatFlag != nil && strings.TrimSpace(*c.logFormatFlag) != "" {
		effective.Logging.Format = strings.ToLower(strings.TrimSpace(*c.logFormatFlag))
	}
	if err := effective.Validate(); err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(&effective, w)
	if err != nil {
		return nil, err
	}
	return logger.With(slog.String("run_id", c.runID)), nil
}

func (c *commandContext) newProcessor(logger *slog.Logger) (*processor.Processor, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return processor.New(cfg.Shorthand, processor.WithLogger(logger)), nil
}

// colorize reports whether status output to w should carry ANSI colours.
func (c *commandContext) colorize(w io.Writer) bool {
	mode := "auto"
	if cfg, err := c.ensureConfig(); err == nil {
		mode = cfg.Output.Color
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return shouldColorize(w)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
