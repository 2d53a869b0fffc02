package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hyperbolic-timechamber/fixed-stack-go/src/stackdemo"
)

type Context struct {
	Debug bool
}

type RunCmd struct {
	Size     int `name:"size" short:"s" default:"5" help:"Capacity of the stack."`
	Attempts int `name:"attempts" short:"n" default:"6" help:"Number of pushes and pops to attempt."`
}

func (cmd *RunCmd) Run(ctx *Context) error {
	if ctx.Debug {
		log.Printf("Running demo with size %d and %d attempts", cmd.Size, cmd.Attempts)
	}

	return stackdemo.Run(os.Stdout, cmd.Size, cmd.Attempts)
}

type CopyCmd struct {
	Values string `arg:"" name:"values" help:"Characters to build the original stack from."`
}

func (cmd *CopyCmd) Run(ctx *Context) error {
	if ctx.Debug {
		log.Printf("Copying stack built from %q", cmd.Values)
	}

	return stackdemo.Copy(os.Stdout, cmd.Values)
}

var cli struct {
	Debug bool `short:"d" help:"Enable debug mode."`

	Run  RunCmd  `cmd:"" name:"run" default:"1" help:"Overfill and then over-empty a fixed-length stack."`
	Copy CopyCmd `cmd:"" name:"copy" help:"Copy a stack and show the copies are independent."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("stackdemo"),
		kong.Description("Fixed-length character stack that reports full and empty conditions."),
	)
	err := ctx.Run(&Context{Debug: cli.Debug})
	ctx.FatalIfErrorf(err)
}
