package ui

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/objectfield/assets"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/router"
)

const (
	titleSize = 28
	bodySize  = 16
)

var (
	panelColor  = color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 230}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	hoverColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x66, A: 255}
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// PageActions are the callbacks wired to the page view buttons. Any of them
// may be nil, in which case the button is left out.
type PageActions struct {
	Back     func()
	Navigate func(route string)
	CopyLink func(route string)
}

// NewPageUI builds a centered panel showing page: title, body paragraphs, a
// button per linked route and Back / Copy link buttons.
func NewPageUI(page router.Page, actions PageActions) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Hover:   imageui.NewNineSliceColor(hoverColor),
		Pressed: imageui.NewNineSliceColor(hoverColor),
	}
	btnTextColor := &widget.ButtonTextColor{Idle: textColor}

	titleFace := assets.UIFace(titleSize)
	bodyFace := assets.UIFace(bodySize)

	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 32, Right: 32}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(page.Title, &titleFace, textColor),
		widget.TextOpts.WidgetOpts(center),
	))
	for _, para := range page.Body {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(para, &bodyFace, textColor),
			widget.TextOpts.WidgetOpts(center),
		))
	}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(label, &bodyFace, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
		)
	}

	for _, b := range pageButtons(page, actions) {
		panel.AddChild(button(b.label, b.onClick))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

type pageButton struct {
	label   string
	onClick func()
}

// pageButtons lists the buttons shown under a page. Links inside the app
// navigate; external links can only be copied.
func pageButtons(page router.Page, actions PageActions) []pageButton {
	var out []pageButton
	for _, link := range page.Links {
		link := link
		switch {
		case isExternal(link) && actions.CopyLink != nil:
			out = append(out, pageButton{"Copy " + link, func() { actions.CopyLink(link) }})
		case !isExternal(link) && actions.Navigate != nil:
			out = append(out, pageButton{link, func() { actions.Navigate(link) }})
		}
	}
	if actions.CopyLink != nil && page.Route != "" {
		out = append(out, pageButton{"Copy link", func() { actions.CopyLink(page.Route) }})
	}
	if actions.Back != nil {
		out = append(out, pageButton{"Back", actions.Back})
	}
	return out
}

func isExternal(link string) bool {
	return strings.Contains(link, "://")
}

// Face is the body face, exposed for hosts that draw status text next to
// the page view.
func Face() ebtext.Face {
	return assets.UIFace(bodySize)
}
