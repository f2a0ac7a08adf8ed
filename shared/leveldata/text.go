package leveldata

import cfg "github.com/automoto/dotjump/config"

// ParseText reads the glyph map. The platform glyph and spaces advance the
// column (the platform is placed after advancing), a newline starts the next
// row, and every other character is ignored.
func ParseText(name, text string) *Level {
	level := &Level{Name: name}

	column, row := 0, 0
	for _, c := range text {
		switch c {
		case cfg.Level.PlatformGlyph:
			column++
			level.Platforms = append(level.Platforms, CellPosition(column, row))
		case ' ':
			column++
		case '\n':
			row++
			column = 0
		}
	}
	return level
}
