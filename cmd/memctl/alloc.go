package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joshuapare/memkit/mem"
	"github.com/spf13/cobra"
)

var (
	allocSequential bool
	allocClear      bool
	allocTouch      bool
)

func init() {
	cmd := newAllocCmd()
	cmd.Flags().BoolVar(&allocSequential, "sequential", false, "Advise the kernel of sequential access")
	cmd.Flags().BoolVar(&allocClear, "clear", false, "Zero-fill the region")
	cmd.Flags().BoolVar(&allocTouch, "touch", false, "Write one byte per page to fault the region in")
	rootCmd.AddCommand(cmd)
}

func newAllocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alloc <bytes>",
		Short: "Allocate, inspect, and free one region",
		Long: `The alloc command performs a single allocation of the given size,
reports the alignment and allocation flags the library chose, and
frees the region again.

Example:
  memctl alloc 4194304 --sequential --clear
  memctl alloc 100 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlloc(args)
		},
	}
	return cmd
}

type AllocReport struct {
	NumBytes    int
	Alignment   int
	HugePages   bool
	Sequential  bool
	ElapsedUsec int64
}

func runAlloc(args []string) error {
	numBytes, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid byte count %q: %w", args[0], err)
	}

	hint := mem.HintFor(numBytes)
	printVerbose("Policy: alignment %d, huge pages %v\n", hint.Alignment, hint.HugePages)

	start := time.Now()
	m, err := mem.Allocate(numBytes, allocSequential, allocClear)
	if err != nil {
		return err
	}
	if allocTouch {
		data := m.Bytes()
		for off := 0; off < len(data); off += 4096 {
			data[off] = 1
		}
	}
	elapsed := time.Since(start)

	report := AllocReport{
		NumBytes:    m.Len(),
		Alignment:   alignmentOf(uintptr(m.Ptr())),
		HugePages:   m.Flags()&mem.FlagHugePages != 0,
		Sequential:  m.Flags()&mem.FlagSequential != 0,
		ElapsedUsec: elapsed.Microseconds(),
	}
	if err := m.Free(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("Allocated %d bytes in %s\n", report.NumBytes, elapsed)
	printInfo("  Base alignment: %d bytes\n", report.Alignment)
	printInfo("  Huge pages requested: %v\n", report.HugePages)
	printInfo("  Sequential advisory: %v\n", report.Sequential)
	return nil
}

// alignmentOf returns the largest power-of-two boundary addr sits on,
// capped at 2 MiB since nothing above that is meaningful here.
func alignmentOf(addr uintptr) int {
	align := 1
	for align < mem.HugePageSize && addr%uintptr(align*2) == 0 {
		align *= 2
	}
	return align
}
