package main

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/flapgo/internal/collider"
)

var collidersCmd = &cobra.Command{
	Use:   "colliders <sprite.png>",
	Short: "Print the collision circles derived from a sprite's alpha mask",
	Long: `Analyze a sprite's alpha channel and print the vertical stack of
approximate collision circles the game would use for it. Useful for
checking how well a silhouette is covered.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		circles, err := deriveColliders(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if len(circles) == 0 {
			fmt.Println("no colliders (sprite is shorter than 10 rows or fully transparent)")
			return
		}
		for i, c := range circles {
			fmt.Printf("circle %d: x=%.2f y=%.2f r=%.2f\n", i, c.X, c.Y, c.R)
		}
	},
}

// deriveColliders decodes an image file and runs the alpha-mask analysis.
func deriveColliders(path string) ([]collider.Circle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return collider.FromImage(img), nil
}
