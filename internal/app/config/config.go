package config

import (
	"flag"
)

const defaultContentType = "text/html; charset=utf-8"

type Config struct {
	ContentType string
	Development bool
}

func Default() Config {
	return Config{
		ContentType: defaultContentType,
		Development: false,
	}
}

func ParseConfig(args []string) (Config, error) {
	var flagContentType string
	var flagDevelopment bool

	flags := flag.NewFlagSet("gsad", flag.ContinueOnError)
	flags.StringVar(&flagContentType, "content-type", defaultContentType, "content type of command responses without one")
	flags.BoolVar(&flagDevelopment, "dev", false, "use the development logger")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	newConfig := Config{
		ContentType: flagContentType,
		Development: flagDevelopment,
	}
	return newConfig, nil
}
