package gen

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"

	"isagen/log"
)

type Config struct {
	Paths       Paths       `toml:"paths"`
	Symbols     Symbols     `toml:"symbols"`
	Placeholder Placeholder `toml:"placeholder"`
	Stubs       StubsConfig `toml:"stubs"`
}

type Paths struct {
	Description string `toml:"description"`
	Table       string `toml:"table"`
	Stubs       string `toml:"stubs"`
}

type StubsConfig struct {
	Dialect  Dialect `toml:"dialect"`
	Receiver string  `toml:"receiver"`
}

// ConfigFilename is the configuration file looked up in the working
// directory when none is explicitly given.
const ConfigFilename = "isagen.toml"

var DefaultConfig = Config{
	Paths: Paths{
		Description: "data/instructions.json",
		Table:       "instruction_table.txt",
		Stubs:       "instruction_functions.txt",
	},
	Symbols: Symbols{
		InstructionKind: "InstructionType",
		AddressingMode:  "AddressingMode",
		Handler:         "Cpu",
	},
	Placeholder: Placeholder{
		Mnemonic: "NOP",
		Mode:     "impl",
	},
	Stubs: StubsConfig{
		Dialect:  Rust,
		Receiver: "CPU",
	},
}

// LoadConfig loads the configuration file at path. Settings absent from the
// file keep their default value.
//
// If path is empty, ConfigFilename is loaded if it exists, otherwise the
// default configuration is returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig
	if path == "" {
		if _, err := os.Stat(ConfigFilename); err != nil {
			return cfg, nil
		}
		path = ConfigFilename
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "can't load config")
	}
	for _, key := range md.Undecoded() {
		log.ModCLI.Warnf("%s: unknown config key %q", path, key.String())
	}

	log.ModCLI.Debugf("config loaded from %s", path)
	return cfg, nil
}

// SaveConfig writes cfg to path as TOML.
func SaveConfig(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0644)
}
