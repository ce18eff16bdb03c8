package entity

import (
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/physics"
)

// PotionColor selects a potion's pickup effect.
type PotionColor string

const (
	PotionRed   PotionColor = "red"
	PotionGreen PotionColor = "green"
	PotionBlue  PotionColor = "blue"
)

// ScreenColor returns the color the potion is drawn with.
func (c PotionColor) ScreenColor() core.Color {
	switch c {
	case PotionRed:
		return core.ColorBrightRed
	case PotionGreen:
		return core.ColorBrightGreen
	case PotionBlue:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
	}
}

// Item is a potion waiting to be picked up.
type Item struct {
	Color PotionColor
	Pos   physics.Vec
	W, H  float64
	alive bool
}

// NewItem creates a potion centered on pos.
func NewItem(color PotionColor, pos physics.Vec, w, h float64) *Item {
	return &Item{Color: color, Pos: pos, W: w, H: h, alive: true}
}

func (i *Item) Kind() Kind  { return KindItem }
func (i *Item) Alive() bool { return i.alive }

// HitBox returns the potion's nominal footprint.
func (i *Item) HitBox() physics.Box {
	return physics.BoxAt(i.Pos, i.W, i.H)
}

// PickupBox returns the footprint shrunk by ratio, used for pickup tests.
func (i *Item) PickupBox(ratio float64) physics.Box {
	return i.HitBox().Scale(ratio)
}

// Consume removes the potion from play.
func (i *Item) Consume() {
	i.alive = false
}
