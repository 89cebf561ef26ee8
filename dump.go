//////////////////////////////////////////////////////////////////////////////
//
// Dumper builds indented field dumps for golden-string assertions.
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package mediatest

import (
	"fmt"
	"hash/fnv"
)

const dumpIndent = "  "

// Dumper accumulates a human-readable dump of named fields, grouped
// into nested blocks. Tests compare the final String() against a golden
// value instead of asserting on fields one by one.
//
// Byte payloads are dumped as length plus FNV-1a hash rather than raw
// bytes, keeping goldens short while still catching content changes.
type Dumper struct {
	buf    []byte
	indent int
}

// NewDumper returns an empty dumper.
func NewDumper() *Dumper {
	return &Dumper{}
}

func (d *Dumper) line(s string) {
	for i := 0; i < d.indent; i++ {
		d.buf = append(d.buf, dumpIndent...)
	}
	d.buf = append(d.buf, s...)
	d.buf = append(d.buf, '\n')
}

// Add appends "name = value" at the current indentation.
func (d *Dumper) Add(name string, value interface{}) *Dumper {
	d.line(fmt.Sprintf("%s = %v", name, value))
	return d
}

// AddTime appends a microsecond timestamp field.
func (d *Dumper) AddTime(name string, timeUs int64) *Dumper {
	d.line(fmt.Sprintf("%s = %d", name, timeUs))
	return d
}

// AddBytes appends a digest of the given payload.
func (d *Dumper) AddBytes(name string, data []byte) *Dumper {
	h := fnv.New32a()
	h.Write(data)
	d.line(fmt.Sprintf("%s = length %d, hash %08X", name, len(data), h.Sum32()))
	return d
}

// StartBlock opens a named block; subsequent fields are indented one
// level deeper until the matching EndBlock.
func (d *Dumper) StartBlock(name string) *Dumper {
	d.line(name + ":")
	d.indent++
	return d
}

// EndBlock closes the innermost open block.
func (d *Dumper) EndBlock() *Dumper {
	if d.indent == 0 {
		panic("mediatest.Dumper: EndBlock without StartBlock")
	}
	d.indent--
	return d
}

func (d *Dumper) String() string {
	return string(d.buf)
}
