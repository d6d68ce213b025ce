package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
	red   = color.NRGBA{255, 0, 0, 255}
)

// createInMemoryImage creates an in-memory test image filled with one color
func createInMemoryImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// fillRect paints r in c
func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// createSquareFrames creates 10x10 white frames, each with a 2x2 black square
// at (0,0), (8,8) and (4,4) respectively
func createSquareFrames() []image.Image {
	origins := []image.Point{{0, 0}, {8, 8}, {4, 4}}
	frames := make([]image.Image, len(origins))
	for i, p := range origins {
		img := createInMemoryImage(10, 10, white)
		fillRect(img, image.Rectangle{Min: p, Max: p.Add(image.Pt(2, 2))}, black)
		frames[i] = img
	}
	return frames
}

func TestFindTrimmedBoundingBox(t *testing.T) {
	img := createInMemoryImage(20, 10, white)
	fillRect(img, image.Rect(3, 2, 7, 9), red)

	box, ok := FindTrimmedBoundingBox(img, nil)
	if !ok {
		t.Fatal("FindTrimmedBoundingBox found no foreground")
	}

	want := BoundingBox{Left: 3, Top: 2, Right: 7, Bottom: 9}
	if box != want {
		t.Errorf("box: got %v, want %v", box, want)
	}
}

func TestFindTrimmedBoundingBox_ExplicitBackground(t *testing.T) {
	// Top-left is red, but white is the real background
	img := createInMemoryImage(10, 10, white)
	fillRect(img, image.Rect(0, 0, 1, 1), red)
	fillRect(img, image.Rect(5, 5, 6, 6), black)

	box, ok := FindTrimmedBoundingBox(img, white)
	if !ok {
		t.Fatal("FindTrimmedBoundingBox found no foreground")
	}
	want := BoundingBox{Left: 0, Top: 0, Right: 6, Bottom: 6}
	if box != want {
		t.Errorf("box: got %v, want %v", box, want)
	}

	// Sampling the top-left pixel treats everything but it as foreground
	box, ok = FindTrimmedBoundingBox(img, nil)
	if !ok {
		t.Fatal("FindTrimmedBoundingBox found no foreground")
	}
	want = BoundingBox{Left: 0, Top: 0, Right: 10, Bottom: 10}
	if box != want {
		t.Errorf("sampled box: got %v, want %v", box, want)
	}
}

func TestFindTrimmedBoundingBox_SquareFrames(t *testing.T) {
	want := []BoundingBox{
		{0, 0, 2, 2},
		{8, 8, 10, 10},
		{4, 4, 6, 6},
	}

	for i, f := range createSquareFrames() {
		box, ok := FindTrimmedBoundingBox(f, white)
		if !ok {
			t.Fatalf("frame %d: no foreground", i)
		}
		if box != want[i] {
			t.Errorf("frame %d: got %v, want %v", i, box, want[i])
		}
	}
}

func TestFindTrimmedBoundingBox_AllBackground(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		bg   color.Color
	}{
		{"sampled white", createInMemoryImage(10, 10, white), nil},
		{"explicit white", createInMemoryImage(10, 10, white), white},
		{"transparent", createInMemoryImage(5, 3, color.Transparent), nil},
		{"no pixels", image.NewNRGBA(image.Rect(0, 0, 0, 0)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := FindTrimmedBoundingBox(tt.img, tt.bg)
			if ok {
				t.Errorf("expected no foreground, got %v", box)
			}
			if !box.IsEmpty() {
				t.Errorf("expected empty box, got %v", box)
			}
		})
	}
}

func TestFindTrimmedBoundingBox_EverythingDiffersFromCorner(t *testing.T) {
	// Every pixel except the sampled corner differs, so the box is the full extent
	img := image.NewNRGBA(image.Rect(0, 0, 7, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x*30 + 1), uint8(y*40 + 1), 9, 255})
		}
	}
	img.SetNRGBA(0, 0, black)

	box, ok := FindTrimmedBoundingBox(img, nil)
	if !ok {
		t.Fatal("FindTrimmedBoundingBox found no foreground")
	}
	if box != BoxFromRect(img.Bounds()) {
		t.Errorf("box: got %v, want %v", box, BoxFromRect(img.Bounds()))
	}
}

func TestFindTrimmedBoundingBox_AlphaOnlyDifference(t *testing.T) {
	img := createInMemoryImage(6, 6, color.NRGBA{10, 20, 30, 255})
	img.SetNRGBA(4, 1, color.NRGBA{10, 20, 30, 128})

	box, ok := FindTrimmedBoundingBox(img, nil)
	if !ok {
		t.Fatal("alpha difference not detected")
	}
	want := BoundingBox{Left: 4, Top: 1, Right: 5, Bottom: 2}
	if box != want {
		t.Errorf("box: got %v, want %v", box, want)
	}
}

func TestFindTrimmedBoundingBox_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(100, 50, 110, 60))
	fillRect(img, img.Bounds(), white)
	fillRect(img, image.Rect(103, 52, 105, 58), red)

	box, ok := FindTrimmedBoundingBox(img, nil)
	if !ok {
		t.Fatal("FindTrimmedBoundingBox found no foreground")
	}
	want := BoundingBox{Left: 103, Top: 52, Right: 105, Bottom: 58}
	if box != want {
		t.Errorf("box: got %v, want %v", box, want)
	}
}

func TestFindTrimmedBoundingBox_DoesNotModifyInput(t *testing.T) {
	img := createInMemoryImage(4, 4, white)
	fillRect(img, image.Rect(1, 1, 2, 2), red)
	before := append([]uint8(nil), img.Pix...)

	FindTrimmedBoundingBox(img, black)

	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatalf("input modified at byte %d", i)
		}
	}
}

func TestFindTrimmedBoundingBoxes(t *testing.T) {
	frames := createSquareFrames()
	frames = append(frames, createInMemoryImage(10, 10, white))

	boxes := FindTrimmedBoundingBoxes(frames, white)
	if len(boxes) != 4 {
		t.Fatalf("got %d boxes, want 4", len(boxes))
	}

	want := []BoundingBox{{0, 0, 2, 2}, {8, 8, 10, 10}, {4, 4, 6, 6}, {}}
	for i := range want {
		if boxes[i] != want[i] {
			t.Errorf("box %d: got %v, want %v", i, boxes[i], want[i])
		}
	}
}
