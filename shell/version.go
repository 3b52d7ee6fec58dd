package shell

import (
	"github.com/abiosoft/ishell"

	"github.com/justinfleek/lattice-pose/version"
)

func versionCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "version",
		Help: "print the version",
		Func: func(c *ishell.Context) {
			c.Println(version.Version)
		},
	}
}
