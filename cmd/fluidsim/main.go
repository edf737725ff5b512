// Command fluidsim runs the cellular fluid simulator against an input
// grid file and periodically writes a dump of its state.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/russiankolya/fluid-hw2/pkg/fluid"
)

var (
	inputPath     string
	dumpPath      string
	ticks         int
	saveRate      int
	seed          int64
	pressureType  string
	velocityType  string
	flowTypeFlag  string
	printProgress bool
)

var rootCmd = &cobra.Command{
	Use:   "fluidsim",
	Short: "Run the cellular fluid simulator against an input grid",
	RunE:  runSimulate,
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "input", "input.txt", "path to the input grid file")
	rootCmd.Flags().StringVar(&dumpPath, "dump", "dump.txt", "path to write periodic state dumps to")
	rootCmd.Flags().IntVar(&ticks, "ticks", fluid.DefaultTMax, "number of ticks to run")
	rootCmd.Flags().IntVar(&saveRate, "save-rate", fluid.DefaultSaveRate, "write a dump every N ticks")
	rootCmd.Flags().Int64Var(&seed, "seed", 1337, "seed for the pressure-draw random source")
	rootCmd.Flags().StringVar(&pressureType, "pressure-type", "float64", "pressure representation: float32, float64, fixedN.K")
	rootCmd.Flags().StringVar(&velocityType, "velocity-type", "fixed32.16", "velocity representation: float32, float64, fixedN.K")
	rootCmd.Flags().StringVar(&flowTypeFlag, "flow-type", "fixed32.15", "flow representation: float32, float64, fixedN.K")
	rootCmd.Flags().BoolVar(&printProgress, "print-moves", false, "print the grid to stdout on every tick that moved a particle")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	run, ok := lookupRunner(pressureType, velocityType, flowTypeFlag)
	if !ok {
		return fmt.Errorf("unsupported pressure/velocity/flow type combination: %s/%s/%s",
			pressureType, velocityType, flowTypeFlag)
	}
	return run()
}

// runWith loads the input grid, wires a Simulator over the three concrete
// scalar representations P, V, VF, runs it, and writes the final dump.
func runWith[P fluid.Value[P], V fluid.Value[V], VF fluid.Value[VF]](
	pSlot fluid.Slot[P], vSlot fluid.Slot[V], vfSlot fluid.Slot[VF],
) error {
	sim, err := fluid.LoadInput(inputPath, pSlot, vSlot, vfSlot)
	if err != nil {
		return err
	}
	sim.TMax = ticks
	sim.SaveRate = saveRate
	sim.DumpPath = dumpPath
	sim.SeedRandom(uint64(seed))

	if printProgress {
		sim.OnMoved = func(tick int, field [][]byte) {
			fluid.PrintTick(os.Stdout, tick, field)
		}
	}

	if err := sim.Run(); err != nil {
		return err
	}
	sim.SaveDump(dumpPath)
	return nil
}
