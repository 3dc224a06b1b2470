package js

import (
	"strings"

	"github.com/dop251/goja"
	"github.com/rs/zerolog"
)

// consoleAPI implements console.log, console.warn, and console.error on
// top of the engine logger.
type consoleAPI struct {
	log *zerolog.Logger
}

func (c *consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", c.print(zerolog.InfoLevel))
	console.Set("info", c.print(zerolog.InfoLevel))
	console.Set("debug", c.print(zerolog.DebugLevel))
	console.Set("warn", c.print(zerolog.WarnLevel))
	console.Set("error", c.print(zerolog.ErrorLevel))
	vm.Set("console", console)
}

func (c *consoleAPI) print(level zerolog.Level) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		c.log.WithLevel(level).Str("source", "console").Msg(formatArgs(call.Arguments))
		return goja.Undefined()
	}
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
