package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"ghcnd/export"
	"ghcnd/port"
)

type CmdArgs struct {
	Export *export.Config `arg:"subcommand:export" help:"Export a .dly file to CSV"`
	Import *port.Config   `arg:"subcommand:import" help:"Import .dly files into the observation database"`
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	args := CmdArgs{}
	parser := arg.MustParse(&args)

	switch {
	case args.Export != nil:
		args.Export.Execute()
	case args.Import != nil:
		args.Import.Execute()
	default:
		fmt.Println("Error: passing a subcommand is required.")
		fmt.Println()
		parser.WriteHelp(os.Stdout)
	}
}
