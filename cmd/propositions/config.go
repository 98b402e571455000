package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// config is the contents of a --config file. Each field is a default for the
// flag of the same name.
type config struct {
	Format   string `toml:"format"`
	MaxDepth int    `toml:"max_depth"`
	Lines    *bool  `toml:"lines"`
	List     *bool  `toml:"list"`
	Vars     *bool  `toml:"vars"`
}

func loadConfig(path string) (*config, error) {
	var cfg config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't load config: %w", err)
	}
	for _, key := range md.Undecoded() {
		logger.Warningf("%s: unknown config key %s", path, key)
	}
	logger.Debugf("loaded config from %s", path)
	return &cfg, nil
}

// apply sets options from the config for flags that were not given
// explicitly.
func (cfg *config) apply(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	if cfg.Format != "" && !f.Changed("format") {
		opts.format = cfg.Format
	}
	if cfg.MaxDepth != 0 && !f.Changed("max-depth") {
		opts.maxDepth = cfg.MaxDepth
	}
	if cfg.Lines != nil && !f.Changed("lines") {
		opts.lines = *cfg.Lines
	}
	if cfg.List != nil && !f.Changed("list") {
		opts.list = *cfg.List
	}
	if cfg.Vars != nil && !f.Changed("vars") {
		opts.vars = *cfg.Vars
	}
}
