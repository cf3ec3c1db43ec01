package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/memkit/mem"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newProbeCmd())
}

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Report platform alignment and huge-page capabilities",
		Long: `The probe command performs a set of trial allocations and reports
what the platform actually delivered: page size, 64-byte and 2 MiB
alignment, and whether the huge-page request was honored.

Example:
  memctl probe
  memctl probe --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe()
		},
	}
	return cmd
}

type ProbeReport struct {
	PageSize          int
	CacheLineAligned  bool
	HugePageAligned   bool
	HugePageRequested bool
	SequentialAdvised bool
}

func runProbe() error {
	report := ProbeReport{PageSize: os.Getpagesize()}

	printVerbose("Allocating 4 KiB standard region\n")
	small, err := mem.Allocate(4096, false, false)
	if err != nil {
		return fmt.Errorf("standard allocation failed: %w", err)
	}
	report.CacheLineAligned = uintptr(small.Ptr())%mem.CacheLineAlignment == 0
	if err := small.Free(); err != nil {
		return err
	}

	printVerbose("Allocating 2 MiB huge-page-eligible region\n")
	huge, err := mem.Allocate(mem.HugePageSize, true, false)
	if err != nil {
		return fmt.Errorf("huge-page-eligible allocation failed: %w", err)
	}
	report.HugePageAligned = uintptr(huge.Ptr())%mem.HugePageSize == 0
	report.HugePageRequested = huge.Flags()&mem.FlagHugePages != 0
	report.SequentialAdvised = huge.Flags()&mem.FlagSequential != 0
	if err := huge.Free(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("Platform capabilities:\n")
	printInfo("  Page size: %d bytes\n", report.PageSize)
	printInfo("  64-byte alignment: %v\n", report.CacheLineAligned)
	printInfo("  2 MiB alignment: %v\n", report.HugePageAligned)
	printInfo("  Huge pages requested: %v\n", report.HugePageRequested)
	printInfo("  Sequential advisory recorded: %v\n", report.SequentialAdvised)
	return nil
}
