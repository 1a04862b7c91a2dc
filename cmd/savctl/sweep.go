package main

import (
	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/pkg/sav"
)

func init() {
	rootCmd.AddCommand(newSweepCmd())
}

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep <save>",
		Short: "Zero-fill every record whose checksum fails",
		Long: `The sweep command scans every populated slot of a modern save, clears
the ones whose record checksum fails, and reseals the affected sections.
Records that decode cleanly are never touched.

Example:
  savctl sweep box.sav`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(args)
		},
	}
}

func runSweep(args []string) error {
	savePath := args[0]
	s, err := sav.ReadSaveFile(savePath)
	if err != nil {
		return err
	}
	res, err := s.SweepCorruptSlots()
	if err != nil {
		return err
	}
	if res.Cleared > 0 {
		if err := sav.WriteSaveFile(savePath, s); err != nil {
			return err
		}
	}
	if jsonOut {
		return printJSON(res)
	}
	if res.Cleared == 0 {
		printInfo("scanned %d record(s), nothing to clear\n", res.Scanned)
		return nil
	}
	printInfo("scanned %d record(s), cleared %d corrupt slot(s)\n", res.Scanned, res.Cleared)
	return nil
}
