// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command arraydump is a diagnostic tool for dense arrays carried as
// self-describing flat buffers: "make" builds a sample buffer file, "dump"
// decodes the trailer from the tail of such a file and pretty-prints the
// descriptor and elements.
package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nlpodyssey/densearray"
	"github.com/nlpodyssey/densearray/shape"
	"github.com/nlpodyssey/densearray/trailer"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	root := &cobra.Command{
		Use:           "arraydump",
		Short:         "inspect self-describing dense array buffers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(makeCommand(), dumpCommand())

	if err := root.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func makeCommand() *cobra.Command {
	var (
		shapeArg string
		elemKind string
	)
	cmd := &cobra.Command{
		Use:   "make <file>",
		Short: "write a sample buffer with a ramp of elements and a trailer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseShape(shapeArg)
			if err != nil {
				return err
			}
			tr, err := trailer.New(s)
			if err != nil {
				return err
			}
			size, err := elemSize(elemKind)
			if err != nil {
				return err
			}

			buf := make([]byte, 0, tr.ElemCount*size+tr.Size())
			for i := 0; i < tr.ElemCount; i++ {
				buf = appendElem(buf, elemKind, i)
			}
			buf = tr.Append(buf)

			if err := os.WriteFile(args[0], buf, 0o644); err != nil {
				return err
			}
			logger.Info("buffer written", "file", args[0], "shape", s, "elements", tr.ElemCount, "bytes", len(buf))
			return nil
		},
	}
	cmd.Flags().StringVar(&shapeArg, "shape", "", "comma-separated dimension sizes, innermost first (e.g. 5,4)")
	cmd.Flags().StringVar(&elemKind, "elem", "u8", "element kind: u8, i64 or f64")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}

func dumpCommand() *cobra.Command {
	var elemKind string
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "decode a buffer's trailer and pretty-print its elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tr, dataLen, err := trailer.ReadTail(buf)
			if err != nil {
				return err
			}
			size, err := elemSize(elemKind)
			if err != nil {
				return err
			}
			if dataLen != tr.ElemCount*size {
				return fmt.Errorf("buffer holds %d element bytes, shape %v with %s elements wants %d",
					dataLen, tr.Shape, elemKind, tr.ElemCount*size)
			}
			logger.Info("trailer decoded", "shape", tr.Shape, "rank", tr.Rank, "elements", tr.ElemCount)

			rendered, err := render(buf[:dataLen], tr.Shape, elemKind)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
	cmd.Flags().StringVar(&elemKind, "elem", "u8", "element kind: u8, i64 or f64")
	return cmd
}

func render(data []byte, s shape.Shape, elemKind string) (string, error) {
	switch elemKind {
	case "u8":
		a, err := densearray.New(data, s)
		if err != nil {
			return "", err
		}
		return a.Sprint()
	case "i64":
		elems := make([]int64, len(data)/8)
		for i := range elems {
			elems[i] = int64(binary.LittleEndian.Uint64(data[i*8:]))
		}
		a, err := densearray.New(elems, s)
		if err != nil {
			return "", err
		}
		return a.Sprint()
	case "f64":
		elems := make([]float64, len(data)/8)
		for i := range elems {
			elems[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
		}
		a, err := densearray.New(elems, s)
		if err != nil {
			return "", err
		}
		return a.Sprint()
	}
	return "", fmt.Errorf("unsupported element kind %q", elemKind)
}

func parseShape(arg string) (shape.Shape, error) {
	parts := strings.Split(arg, ",")
	s := make(shape.Shape, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", arg, err)
		}
		s[i] = v
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func appendElem(buf []byte, elemKind string, i int) []byte {
	switch elemKind {
	case "i64":
		return binary.LittleEndian.AppendUint64(buf, uint64(int64(i)))
	case "f64":
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(i)))
	}
	return append(buf, byte(i))
}

func elemSize(elemKind string) (int, error) {
	switch elemKind {
	case "u8":
		return 1, nil
	case "i64", "f64":
		return 8, nil
	}
	return 0, fmt.Errorf("unsupported element kind %q", elemKind)
}
