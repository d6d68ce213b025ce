package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.NRGBA
	}{
		{"#FF8040", color.NRGBA{255, 128, 64, 255}},
		{"#ff8040", color.NRGBA{255, 128, 64, 255}},
		{"FF8040", color.NRGBA{255, 128, 64, 255}},
		{"#F00", color.NRGBA{255, 0, 0, 255}},
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"#FF000080", color.NRGBA{255, 0, 0, 128}},
		{"255,255,255", color.NRGBA{255, 255, 255, 255}},
		{"10, 20, 30", color.NRGBA{10, 20, 30, 255}},
		{"10,20,30,0", color.NRGBA{10, 20, 30, 0}},
		{"white", color.NRGBA{255, 255, 255, 255}},
		{"Black", color.NRGBA{0, 0, 0, 255}},
		{"transparent", color.NRGBA{0, 0, 0, 0}},
		{"  #000000 ", color.NRGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			got := color.NRGBAModel.Convert(c).(color.NRGBA)
			if got != tt.want {
				t.Errorf("ParseColor(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"#",
		"#12",
		"#12345",
		"#1234567",
		"#GGGGGG",
		"#GGGGGGGG",
		"1,2",
		"1,2,3,4,5",
		"256,0,0",
		"-1,0,0",
		"a,b,c",
		"notacolor",
	}

	for _, s := range invalid {
		t.Run(s, func(t *testing.T) {
			if _, err := ParseColor(s); err == nil {
				t.Errorf("ParseColor(%q) should fail", s)
			}
		})
	}
}

func TestHexString(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{color.NRGBA{255, 128, 64, 255}, "#FF8040"},
		{color.RGBA{0, 0, 0, 255}, "#000000"},
		{color.NRGBA{255, 0, 0, 128}, "#FF000080"},
	}

	for _, tt := range tests {
		if got := HexString(tt.c); got != tt.want {
			t.Errorf("HexString(%v): got %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestBackgroundAt(t *testing.T) {
	img := createInMemoryImage(4, 4, white)
	img.SetNRGBA(0, 0, red)

	got := color.NRGBAModel.Convert(BackgroundAt(img))
	if got != red {
		t.Errorf("BackgroundAt: got %v, want red", got)
	}

	offset := image.NewNRGBA(image.Rect(5, 5, 8, 8))
	offset.SetNRGBA(5, 5, black)
	if got := color.NRGBAModel.Convert(BackgroundAt(offset)); got != black {
		t.Errorf("BackgroundAt offset image: got %v, want black", got)
	}

	if BackgroundAt(image.NewNRGBA(image.Rectangle{})) != nil {
		t.Error("BackgroundAt of empty image should be nil")
	}
}
