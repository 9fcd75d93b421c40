package main

import (
	"os"

	"github.com/midbel/classics"
)

func main() {
	os.Exit(classics.Exec("nl", os.Args[1:]))
}
