// flapgo is a minimal side-scrolling arcade game: fly a plane across a
// scrolling world and avoid the obstacles.
//
// Usage:
//
//	flapgo play                - run the game
//	flapgo genassets           - generate the placeholder sprite set
//	flapgo colliders <sprite>  - print a sprite's derived collision circles
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapgo",
	Short: "FlapGo - fly a plane through a scrolling obstacle course",
	Long: `FlapGo is a small side-scrolling arcade game. The world scrolls
leftward at a constant speed; tapping space boosts the plane upward
against gravity, and touching an obstacle ends the run.

Examples:
  flapgo genassets
  flapgo play
  flapgo play --config my-level.yaml
  flapgo colliders data/rockGrass.png`,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(genassetsCmd)
	rootCmd.AddCommand(collidersCmd)
}
