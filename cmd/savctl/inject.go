package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/pkg/sav"
	"github.com/boxkit/boxkit/pkg/types"
)

var (
	injectBox  int
	injectSlot int
)

func init() {
	cmd := newInjectCmd()
	cmd.Flags().IntVar(&injectBox, "box", 0, "Destination box (1-based; 0 = first empty slot)")
	cmd.Flags().IntVar(&injectSlot, "slot", 0, "Destination slot (1-based; 0 = first empty slot)")
	rootCmd.AddCommand(cmd)
}

func newInjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inject <save> <record.rec>...",
		Short: "Write encoded records into a modern save",
		Long: `The inject command places one or more encoded 80-byte records into a
modern save image and reseals the affected section checksums. Without --box
and --slot, records go into the first empty slots.

Suspicious records (failing checksum, unknown species) are injected with a
warning; structural problems abort before anything is written.

Example:
  savctl inject box.sav mudkip.rec
  savctl inject box.sav mudkip.rec --box 3 --slot 7`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInject(args)
		},
	}
}

func runInject(args []string) error {
	savePath := args[0]
	s, err := sav.ReadSaveFile(savePath)
	if err != nil {
		return err
	}
	empty, err := s.FindEmptySlots()
	if err != nil {
		return err
	}

	recordPaths := args[1:]
	if injectBox > 0 != (injectSlot > 0) {
		return fmt.Errorf("--box and --slot must be given together")
	}
	explicit := injectBox > 0
	if explicit && len(recordPaths) != 1 {
		return fmt.Errorf("--box/--slot target exactly one record")
	}
	if !explicit && len(empty) < len(recordPaths) {
		return fmt.Errorf("save has %d empty slot(s), %d record(s) given", len(empty), len(recordPaths))
	}

	placements := make([]types.Placement, 0, len(recordPaths))
	for i, p := range recordPaths {
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		ref := types.SlotRef{Box: injectBox - 1, Slot: injectSlot - 1}
		if !explicit {
			ref = empty[i]
		}
		placements = append(placements, types.Placement{SlotRef: ref, Data: data})
	}

	warnings, err := s.InjectBoxRecords(placements)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		printInfo("warning: %s\n", w)
	}
	if err := sav.WriteSaveFile(savePath, s); err != nil {
		return err
	}
	printInfo("injected %d record(s) into %s\n", len(placements), savePath)
	return nil
}
