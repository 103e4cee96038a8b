package fresnel

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// ShowWindow displays the rendered chart in a window and blocks until the
// user closes it. Fyne insists on the main goroutine, so this must be the
// last step of the pipeline.
func ShowWindow(img image.Image) {
	a := app.New()
	w := a.NewWindow("Fresnel equations")
	pic := canvas.NewImageFromImage(img)
	pic.FillMode = canvas.ImageFillContain
	w.SetContent(pic)
	w.Resize(fyne.NewSize(1200, 600))
	w.CenterOnScreen()
	w.ShowAndRun()
}
