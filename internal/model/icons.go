package model

// Centralized glyphs for the text renderings of a maze
// Cell and horizontal wall glyphs are three columns wide, corners and
// vertical walls one, so rows line up
const (
	GlyphCorner  = "+"
	GlyphWallH   = "---"
	GlyphWallV   = "|"
	GlyphOpenH   = "   "
	GlyphOpenV   = " "
	GlyphEmpty   = "   "
	GlyphPath    = " * " // Cell on the revealed solution path
	GlyphEntry   = " S " // Entry cell
	GlyphExit    = " E " // Exit cell
	GlyphCurrent = " @ " // Generator position while carving
)
