package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigBoardSize     = "board-size"
	ConfigWinLength     = "win-length"
	ConfigPlayerSymbol  = "player-symbol"
	ConfigBotSymbol     = "bot-symbol"
	ConfigEmptySymbol   = "empty-symbol"
	ConfigSearchDepth   = "search-depth"
	ConfigCacheCapacity = "cache-capacity"
	ConfigSearchThreads = "search-threads"
	ConfigSearchLog     = "search-log"
	ConfigColor         = "color"
	ConfigProgress      = "progress"
	ConfigLenient       = "lenient"
	ConfigDebug         = "debug"
	ConfigFile          = "config"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

type Config struct {
	*viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigBoardSize, 4)
	v.SetDefault(ConfigWinLength, 3)
	v.SetDefault(ConfigPlayerSymbol, "x")
	v.SetDefault(ConfigBotSymbol, "o")
	v.SetDefault(ConfigEmptySymbol, ".")
	v.SetDefault(ConfigSearchDepth, 5)
	v.SetDefault(ConfigCacheCapacity, 1000)
	v.SetDefault(ConfigSearchThreads, 1)
	v.SetDefault(ConfigSearchLog, "")
	v.SetDefault(ConfigColor, false)
	v.SetDefault(ConfigProgress, false)
	v.SetDefault(ConfigLenient, false)
	v.SetDefault(ConfigDebug, false)
}

// DefaultConfig is the classic 4x4, three-in-a-row
// game with a depth 5 search.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	return Config{v}
}

// Load reads the configuration from, in increasing order of precedence,
// defaults, an optional config file, INAROW_* environment variables and
// the command-line args.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("inarow", pflag.ContinueOnError)
	fs.Int(ConfigBoardSize, 4, "the board is board-size x board-size cells")
	fs.Int(ConfigWinLength, 3, "how many marks in a row win")
	fs.String(ConfigPlayerSymbol, "x", "the human player's mark")
	fs.String(ConfigBotSymbol, "o", "the bot's mark")
	fs.String(ConfigEmptySymbol, ".", "the symbol for an empty cell")
	fs.Int(ConfigSearchDepth, 5, "how many plies the bot looks ahead")
	fs.Int(ConfigCacheCapacity, 1000, "maximum number of memoized search results")
	fs.Int(ConfigSearchThreads, 1, "how many root moves to search at once")
	fs.String(ConfigSearchLog, "", "append a YAML log of every search to this file")
	fs.Bool(ConfigColor, false, "color the marks on the board")
	fs.Bool(ConfigProgress, false, "show a progress bar while the bot thinks")
	fs.Bool(ConfigLenient, false, "keep playing after a malformed or illegal move instead of exiting")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigFile, "", "path to a config file (yaml, toml or json)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("INAROW")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		log.Info().Str("path", c.ConfigFileUsed()).Msg("loaded-config-file")
	}
	return c.Validate()
}

// Validate checks the values that the board and the search can't recover
// from.
func (c *Config) Validate() error {
	size := c.GetInt(ConfigBoardSize)
	winLen := c.GetInt(ConfigWinLength)
	if size < 1 || winLen < 1 || winLen > size {
		return fmt.Errorf("%w: %s %d and %s %d (need 1 <= %s <= %s)", ErrInvalidConfig,
			ConfigBoardSize, size, ConfigWinLength, winLen, ConfigWinLength, ConfigBoardSize)
	}
	if c.GetInt(ConfigSearchDepth) < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, ConfigSearchDepth)
	}
	for _, key := range []string{ConfigPlayerSymbol, ConfigBotSymbol, ConfigEmptySymbol} {
		if len([]rune(c.GetString(key))) != 1 {
			return fmt.Errorf("%w: %s must be a single character", ErrInvalidConfig, key)
		}
	}
	return nil
}

// Symbol returns the single rune configured under key.
func (c *Config) Symbol(key string) rune {
	r := []rune(c.GetString(key))
	if len(r) == 0 {
		return 0
	}
	return r[0]
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
