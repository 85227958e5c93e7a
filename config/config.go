package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BLACKJACK"

type Config struct {
	Game struct {
		Bankroll int
		Seed     int64
	}
	Display struct {
		Color bool
	}
	Log struct {
		Level string
	}
	History struct {
		Backend string // memory | redis
		TTL     int    // seconds
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
}

var C Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.bankroll", 5000)
	v.SetDefault("game.seed", 0)
	v.SetDefault("display.color", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("history.backend", "memory")
	v.SetDefault("history.ttl", 3600)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

// Flags 命令行参数，--config 指定配置文件
func Flags(args []string) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet("blackjack", pflag.ContinueOnError)
	fs.String("config", "config/config.yaml", "path to config file")
	fs.Int("bankroll", 0, "starting money (overrides config)")
	fs.Int64("seed", 0, "shuffle seed, 0 uses the clock")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs, nil
}

// Load 读取配置文件（不存在时只用默认值与环境变量），结果写入 C
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := "config/config.yaml"
	if fs != nil {
		if p, err := fs.GetString("config"); err == nil && p != "" {
			path = p
		}
		if f := fs.Lookup("bankroll"); f != nil && f.Changed {
			_ = v.BindPFlag("game.bankroll", f)
		}
		if f := fs.Lookup("seed"); f != nil && f.Changed {
			_ = v.BindPFlag("game.seed", f)
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Display.Color = false
	}
	if cfg.Game.Bankroll <= 0 {
		return Config{}, fmt.Errorf("game.bankroll must be positive, got %d", cfg.Game.Bankroll)
	}
	switch cfg.History.Backend {
	case "memory", "redis":
	default:
		return Config{}, fmt.Errorf("unknown history.backend %q", cfg.History.Backend)
	}

	C = cfg
	return cfg, nil
}
