package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/lanikai/mediatest"
	"github.com/lanikai/mediatest/internal/inspect"

	// Registered stream types.
	_ "github.com/lanikai/mediatest/internal/mp4"
)

// Populated via -ldflags="-X ...". See Makefile.
var GitRevisionId string

func version() {
	fmt.Println("mediadump", GitRevisionId)
	fmt.Println("Copyright 2019 Lanikai Labs LLC. All rights reserved.")
}

func main() {
	flag.Parse()

	if flagHelp {
		help()
		os.Exit(0)
	}
	if flagVersion {
		version()
		os.Exit(0)
	}

	stream, err := mediatest.OpenStream(flagInput)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Optionally expose the read loop over a websocket for tailing.
	if flagListen != "" {
		rec := inspect.NewRecorder()
		stream = rec.Wrap(stream)
		defer rec.Close()

		server := inspect.NewServer(flagListen, rec)
		defer server.Shutdown()
		go server.Listen()
	}

	var holder mediatest.FormatHolder
	var buf mediatest.Buffer

	d := mediatest.NewDumper()
	for i := 0; i < flagMaxReads; i++ {
		buf.Clear()
		result := stream.Read(&holder, &buf, flagFormatRequired)

		d.StartBlock(fmt.Sprintf("read %d", i+1))
		d.Add("result", result)
		switch result {
		case mediatest.FormatRead:
			d.Add("format", holder.Format)
		case mediatest.BufferRead:
			if buf.EndOfStream() {
				d.Add("endOfStream", true)
			} else {
				d.AddTime("timeUs", buf.TimeUs)
				d.Add("keyframe", buf.HasFlag(mediatest.FlagKeyFrame))
				d.AddBytes("data", buf.Data)
			}
		}
		d.EndBlock()

		if buf.EndOfStream() {
			break
		}
	}

	fmt.Print(d.String())
}
