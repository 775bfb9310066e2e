package main

import (
	"os"

	"github.com/wyfcoding/dateutil/internal/cli"
)

func main() {
	if err := cli.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
