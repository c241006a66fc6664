package assets

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/flapgo/internal/collider"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestCreateBackgroundOpaque(t *testing.T) {
	img := CreateBackground()

	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != BackgroundWidth || h != BackgroundHeight {
		t.Fatalf("Expected %dx%d background, got %dx%d", BackgroundWidth, BackgroundHeight, w, h)
	}

	for _, p := range []image.Point{{0, 0}, {BackgroundWidth - 1, 0}, {0, BackgroundHeight - 1}, {400, 240}} {
		if alphaAt(img, p.X, p.Y) == 0 {
			t.Errorf("Expected background to be opaque at %v", p)
		}
	}
}

func TestCreateRockSilhouette(t *testing.T) {
	img := CreateRock()

	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != ObstacleWidth || h != ObstacleHeight {
		t.Fatalf("Expected %dx%d rock, got %dx%d", ObstacleWidth, ObstacleHeight, w, h)
	}

	// Narrow at the top: corners transparent, center opaque.
	if alphaAt(img, 0, 0) != 0 || alphaAt(img, ObstacleWidth-1, 0) != 0 {
		t.Error("Expected rock top corners to be transparent")
	}
	if alphaAt(img, ObstacleWidth/2, 0) == 0 {
		t.Error("Expected rock top center to be opaque")
	}
	// Wide at the bottom.
	if alphaAt(img, 4, ObstacleHeight-1) == 0 {
		t.Error("Expected rock base to span nearly the full width")
	}
}

func TestCreateIceSilhouette(t *testing.T) {
	img := CreateIce()

	// Wide at the top, narrow at the tip.
	if alphaAt(img, 4, 0) == 0 {
		t.Error("Expected ice top to span nearly the full width")
	}
	if alphaAt(img, 0, ObstacleHeight-1) != 0 || alphaAt(img, ObstacleWidth-1, ObstacleHeight-1) != 0 {
		t.Error("Expected ice bottom corners to be transparent")
	}
	if alphaAt(img, ObstacleWidth/2, ObstacleHeight-1) == 0 {
		t.Error("Expected ice tip to be opaque")
	}
}

func TestObstacleSilhouettesYieldColliders(t *testing.T) {
	rock := collider.FromImage(CreateRock())
	if len(rock) == 0 {
		t.Fatal("Expected the rock silhouette to produce colliders")
	}
	// The rock widens downward, so the derived radii grow down the stack.
	if rock[0].R >= rock[len(rock)-1].R {
		t.Errorf("Expected rock radii to grow toward the base, got first %v last %v",
			rock[0].R, rock[len(rock)-1].R)
	}

	ice := collider.FromImage(CreateIce())
	if len(ice) == 0 {
		t.Fatal("Expected the ice silhouette to produce colliders")
	}
	if ice[0].R <= ice[len(ice)-1].R {
		t.Errorf("Expected ice radii to shrink toward the tip, got first %v last %v",
			ice[0].R, ice[len(ice)-1].R)
	}
}

func TestCreatePlaneFramesDiffer(t *testing.T) {
	a := CreatePlaneFrame(0, 3)
	b := CreatePlaneFrame(1, 3)

	if w, h := a.Bounds().Dx(), a.Bounds().Dy(); w != PlaneWidth || h != PlaneHeight {
		t.Fatalf("Expected %dx%d plane frame, got %dx%d", PlaneWidth, PlaneHeight, w, h)
	}

	same := true
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected consecutive plane frames to differ")
	}
}

func TestGenerateWritesSpriteSet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	if err := Generate(dir); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []string{backgroundFile, rockFile, iceFile, planeFrameFile(0), planeFrameFile(1), planeFrameFile(2)}
	for _, name := range want {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to be generated: %v", name, err)
		}
	}
}
