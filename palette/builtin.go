// Package palette provides the colour palettes used to reduce cover images,
// either built in or read from RIFF PAL files.
package palette

import (
	"fmt"
	"image/color"
	"image/color/palette"
	"os"
	"sort"
	"strings"
)

var builtin = map[string]func() color.Palette{
	"bw": func() color.Palette {
		return color.Palette{color.Black, color.White}
	},
	"gray16": func() color.Palette {
		pal := make(color.Palette, 16)
		for i := range pal {
			pal[i] = color.Gray{Y: uint8(i * 0x11)}
		}
		return pal
	},
	"vga16": func() color.Palette {
		return color.Palette{
			color.RGBA{0x00, 0x00, 0x00, 0xFF}, color.RGBA{0x00, 0x00, 0xAA, 0xFF},
			color.RGBA{0x00, 0xAA, 0x00, 0xFF}, color.RGBA{0x00, 0xAA, 0xAA, 0xFF},
			color.RGBA{0xAA, 0x00, 0x00, 0xFF}, color.RGBA{0xAA, 0x00, 0xAA, 0xFF},
			color.RGBA{0xAA, 0x55, 0x00, 0xFF}, color.RGBA{0xAA, 0xAA, 0xAA, 0xFF},
			color.RGBA{0x55, 0x55, 0x55, 0xFF}, color.RGBA{0x55, 0x55, 0xFF, 0xFF},
			color.RGBA{0x55, 0xFF, 0x55, 0xFF}, color.RGBA{0x55, 0xFF, 0xFF, 0xFF},
			color.RGBA{0xFF, 0x55, 0x55, 0xFF}, color.RGBA{0xFF, 0x55, 0xFF, 0xFF},
			color.RGBA{0xFF, 0xFF, 0x55, 0xFF}, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		}
	},
	"websafe": func() color.Palette {
		return append(color.Palette(nil), palette.WebSafe...)
	},
	"plan9": func() color.Palette {
		return append(color.Palette(nil), palette.Plan9...)
	},
}

// Names returns the built in palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPalette returns the built in palette called name or, failing that, the
// first palette of the RIFF PAL file at path name.
func LoadPalette(name string) (color.Palette, error) {
	if f, ok := builtin[strings.ToLower(name)]; ok {
		return f(), nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q (built in: %s): %w", name, strings.Join(Names(), ", "), err)
	}
	defer file.Close()

	pals, err := ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("could not read palette file %q: %w", name, err)
	}
	return pals[0], nil
}
