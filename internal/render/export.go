package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"mazepath/internal/model"
)

// Decorate rasterizes a maze picture and adds arrows leading into the entry
// cell and out of the exit cell. The maze is shifted one tile to the right to
// make room for the entry arrow.
func Decorate(snap model.Snapshot, tile int, palette Palette,
	gradient bool) (*image.RGBA, error) {
	mazePic := image_utils.ToRGBA(NewPicture(snap, tile, palette, gradient))
	decorated := image_utils.NewCompositeImage()
	e := decorated.AddImage(mazePic, image.Pt(tile, 0))
	if e != nil {
		return nil, fmt.Errorf("Error setting base maze image: %w", e)
	}
	if len(snap.Cells) == 0 {
		return image_utils.ToRGBA(decorated), nil
	}

	startArrow := image_utils.ResizeImage(
		image_utils.RightArrow(palette.Start), tile, tile)
	e = decorated.AddImage(startArrow, image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("Error adding start arrow: %w", e)
	}
	endArrow := image_utils.ResizeImage(
		image_utils.RightArrow(palette.End), tile, tile)
	e = decorated.AddImage(endArrow, image.Pt(tile*(snap.Cols+1),
		tile*(snap.Rows-1)))
	if e != nil {
		return nil, fmt.Errorf("Error adding end arrow: %w", e)
	}
	return image_utils.ToRGBA(decorated), nil
}

// WritePNG encodes the decorated maze as a PNG image.
func WritePNG(w io.Writer, snap model.Snapshot, tile int, palette Palette,
	gradient bool) error {
	pic, e := Decorate(snap, tile, palette, gradient)
	if e != nil {
		return e
	}
	if e = png.Encode(w, pic); e != nil {
		return fmt.Errorf("Error encoding png: %w", e)
	}
	return nil
}
