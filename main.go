package main

import (
	"fmt"
	"os"

	"github.com/deepc-skill/deepc/cmd"
	"github.com/deepc-skill/deepc/config"
	"github.com/deepc-skill/deepc/log"
)

func main() {
	for _, setup := range []func() error{config.Setup, log.Setup} {
		if err := setup(); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	cmd.Execute()
}
