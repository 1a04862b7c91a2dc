package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/pkg/sav"
	"github.com/boxkit/boxkit/pkg/types"
)

var (
	convertOTName  string
	convertTrainer uint16
	convertSecret  uint16
	convertDryRun  bool
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertOTName, "ot-name", "", "Owner name stamped onto converted records")
	cmd.Flags().Uint16Var(&convertTrainer, "trainer-id", 0, "Trainer id for converted records (default: legacy owner id)")
	cmd.Flags().Uint16Var(&convertSecret, "secret-id", 0, "Secret id for converted records")
	cmd.Flags().BoolVarP(&convertDryRun, "dry-run", "n", false, "Convert and report without writing the target save")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <legacy-save> <modern-save>",
		Short: "Transfer legacy box records into a modern save",
		Long: `The convert command extracts every plausible record from a legacy save,
rebuilds each as a valid modern record (nature and rarity preserved, IVs
doubled from DVs, moves replaced by the conservative fallback) and places
them into the first empty slots of the modern save.

Records whose key had to be constructed outside the generator search are
flagged in the output.

Example:
  savctl convert old.sav box.sav
  savctl convert old.sav box.sav --ot-name RED --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
}

func runConvert(args []string) error {
	legacyPath, modernPath := args[0], args[1]

	old, err := sav.ReadSaveFile(legacyPath)
	if err != nil {
		return err
	}
	mons, err := old.LegacyRecords()
	if err != nil {
		return err
	}
	if len(mons) == 0 {
		printInfo("no plausible records in %s\n", legacyPath)
		return nil
	}

	target, err := sav.ReadSaveFile(modernPath)
	if err != nil {
		return err
	}
	empty, err := target.FindEmptySlots()
	if err != nil {
		return err
	}
	if len(empty) < len(mons) {
		return fmt.Errorf("target has %d empty slot(s), need %d", len(empty), len(mons))
	}

	log := logger()
	defer log.Sync()

	placements := make([]types.Placement, 0, len(mons))
	forced := 0
	for i, m := range mons {
		res, err := sav.ConvertLegacyToModern(m, sav.ConvertOptions{
			TrainerID: convertTrainer,
			SecretID:  convertSecret,
			OTName:    convertOTName,
			Logger:    log,
		})
		if err != nil {
			return fmt.Errorf("record %d (species %d): %w", i, m.Species, err)
		}
		if res.KeyForced {
			forced++
		}
		printVerbose("species %3d -> box %d slot %d (attempts %d, dropped moves %d)\n",
			res.Record.Species, empty[i].Box+1, empty[i].Slot+1, res.Attempts, res.DroppedMoves)
		placements = append(placements, types.Placement{SlotRef: empty[i], Data: res.Data})
	}

	if convertDryRun {
		printInfo("dry run: %d record(s) convertible, %d forced key(s)\n", len(placements), forced)
		return nil
	}

	warnings, err := target.InjectBoxRecords(placements)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		printInfo("warning: %s\n", w)
	}
	if err := sav.WriteSaveFile(modernPath, target); err != nil {
		return err
	}
	printInfo("transferred %d record(s) into %s (%d forced key(s))\n", len(placements), modernPath, forced)
	return nil
}
