package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/flapgo/internal/assets"
)

var flagAssetDir string

var genassetsCmd = &cobra.Command{
	Use:   "genassets",
	Short: "Generate the placeholder sprite set",
	Long: `Write a generated placeholder version of every sprite the game
needs (background, plane frames, obstacles) into the asset directory.
The obstacle sprites carry real alpha silhouettes, so the mask-derived
colliders are meaningful.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := assets.Generate(flagAssetDir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("wrote placeholder sprites to %s\n", flagAssetDir)
	},
}

func init() {
	genassetsCmd.Flags().StringVar(&flagAssetDir, "dir", "data", "Output directory for the sprites")
}
