package config

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	Root     string `env:"CHARTFIX_ROOT" envDefault:"."`
	Backup   bool   `env:"CHARTFIX_BACKUP" envDefault:"true"`
	Workers  int    `env:"CHARTFIX_WORKERS" envDefault:"1"`
	Pretty   bool   `env:"CHARTFIX_PRETTY" envDefault:"false"`
	LogLevel string `env:"CHARTFIX_LOG_LEVEL" envDefault:"info"`
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}
