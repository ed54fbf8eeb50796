package cmd

import (
	"io"

	"deliveryapp/internal/adapters/out/console"
	"deliveryapp/internal/core/application/showcase"

	"github.com/labstack/gommon/log"
)

type CompositionRoot struct {
	out    io.Writer
	logger *log.Logger
}

// NewCompositionRoot wires narration and diagnostics to the same writer.
func NewCompositionRoot(config Config, out io.Writer) CompositionRoot {
	return CompositionRoot{
		out:    out,
		logger: console.NewLogger(out, config.LogPrefix, config.LogLevel),
	}
}

func (c *CompositionRoot) CreateShowcase() *showcase.Showcase {
	return showcase.NewShowcase(c.out, c.logger)
}
