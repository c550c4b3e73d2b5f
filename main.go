package main

import (
	cmd "github.com/unsaidhq/lingo/cmd/lingo"
	"github.com/unsaidhq/lingo/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting lingo")
	cmd.Execute()
}
