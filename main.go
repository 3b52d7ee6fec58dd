package main

import (
	"fmt"
	"os"

	flag "github.com/ogier/pflag"

	"github.com/justinfleek/lattice-pose/config"
	"github.com/justinfleek/lattice-pose/log"
	"github.com/justinfleek/lattice-pose/render"
	"github.com/justinfleek/lattice-pose/shell"
	"github.com/justinfleek/lattice-pose/version"
)

func main() {
	serverPort := flag.String("server", "", "run the HTTP API server on the given port")
	jsonOutput := flag.Bool("json", false, "machine readable shell output")
	trace := flag.Bool("trace", false, "enable trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	if *trace {
		log.EnableTrace()
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		log.Error.Fatalln("failed to load config:", err)
	}

	if *serverPort != "" {
		runServerMode(*serverPort, cfg)
		return
	}

	ctx := &shell.ShellCtxt{
		Config:     cfg,
		RenderCfg:  cfg.RenderConfig(),
		Renderer:   render.New(),
		JSONOutput: *jsonOutput,
	}

	if err := shell.RunShell(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
