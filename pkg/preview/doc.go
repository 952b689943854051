// Package preview renders the sample article on a character-cell display.
//
// The renderer maps a [style.Derived] onto terminal cells:
//
//   - colors are the theme hex colors, titles in the accent
//   - the column width in ch becomes the wrap width in cells
//   - line height adds blank rows between wrapped lines
//   - paragraph spacing adds blank rows between sections
//   - letter spacing of 0.05em or more adds a cell between letters
//   - the font choice picks a face (regular, italic, bold)
//   - soft edges draw a rounded border with a drop shadow
//   - the reading guide tints bands of rows with the accent
//
// Render fails only when the derived style carries a malformed color. The
// error belongs to the preview region; controls stay usable.
package preview
