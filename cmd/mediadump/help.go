package main

import (
	"fmt"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"
)

var (
	flagInput          string
	flagMaxReads       int
	flagFormatRequired bool
	flagListen         string
	flagHelp           bool
	flagVersion        bool
)

func init() {
	flag.StringVarP(&flagInput, "input", "i", "fake:video/avc", "Stream spec to read")
	flag.IntVarP(&flagMaxReads, "max-reads", "n", 16, "Maximum number of reads")
	flag.BoolVarP(&flagFormatRequired, "format-required", "f", false, "Force format reads")
	flag.StringVarP(&flagListen, "listen", "l", "", "Serve event feed on this address")

	flag.BoolVarP(&flagHelp, "help", "h", false, "Print usage information and exit")
	flag.BoolVarP(&flagVersion, "version", "v", false, "Print version information and exit")
}

const helpString = `Dump the event sequence of a media stream spec

Usage: mediadump [OPTION]...

Stream source:
  -i, --input=SPEC       Stream spec, e.g. fake:video/avc,
                         fake:audio/opus,nosample or mp4:clip.mp4
                         (default: fake:video/avc)
  -n, --max-reads=NUM    Stop after NUM reads (default: 16)
  -f, --format-required  Pass formatRequired on every read

Inspection:
  -l, --listen=ADDR      Serve the event feed as a websocket on ADDR
                         (e.g. localhost:8000, endpoint /events)

Miscellaneous:
  -h, --help             Prints this help message and exits
  -v, --version          Prints version information and exits

Please report bugs to: aloha@lanikailabs.com`

// Help information is printed and program exits
func help() {
	y := color.New(color.FgYellow)
	b := color.New(color.FgCyan)

	y.Println("mediadump")
	b.Println("Deterministic media stream dumper")
	fmt.Println()
	fmt.Println(helpString)
}
