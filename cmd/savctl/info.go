package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/pkg/sav"
	"github.com/boxkit/boxkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <save>",
		Short: "Detect a save image and report basic metadata",
		Long: `The info command detects the generation of a save image and displays
basic metadata: format, player name, save counter and occupancy.

Example:
  savctl info box.sav
  savctl info box.sav --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

func runInfo(args []string) error {
	path := args[0]
	printVerbose("Opening save: %s\n", path)

	s, err := sav.ReadSaveFile(path)
	if err != nil {
		return fmt.Errorf("failed to open save: %w", err)
	}
	rep, err := s.Validate()
	if err != nil {
		return err
	}

	result := map[string]interface{}{
		"file":   path,
		"format": rep.Kind.String(),
		"player": rep.PlayerName,
	}
	occupied := -1
	if rep.Kind == types.SaveModern {
		result["save_count"] = rep.SaveCount
		result["emu_header"] = rep.EmuHeader
		if empty, err := s.FindEmptySlots(); err == nil {
			occupied = 420 - len(empty)
			result["occupied_slots"] = occupied
		}
	} else if mons, err := s.LegacyRecords(); err == nil {
		occupied = len(mons)
		result["occupied_slots"] = occupied
	}

	if jsonOut {
		return printJSON(result)
	}

	printInfo("\nSave Information:\n")
	printInfo("  File: %s\n", path)
	if stat, err := os.Stat(path); err == nil {
		printInfo("  Size: %d bytes\n", stat.Size())
	}
	printInfo("  Format: %s\n", rep.Kind)
	if rep.PlayerName != "" {
		printInfo("  Player: %s\n", rep.PlayerName)
	}
	if rep.Kind == types.SaveModern {
		printInfo("  Save counter: %d\n", rep.SaveCount)
		printInfo("  Emulator header: %v\n", rep.EmuHeader)
	}
	if occupied >= 0 {
		printInfo("  Occupied slots: %d\n", occupied)
	}
	return nil
}
