package game

import "fmt"

// Channel tags which primary a Colour lights.
type Channel uint8

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

// Colour is a player's trail colour: one primary channel at a brightness.
// It doubles as the ownership tag of trail cells.
type Colour struct {
	Channel    Channel
	Brightness uint8
}

func Red(brightness uint8) Colour   { return Colour{Channel: ChannelRed, Brightness: brightness} }
func Green(brightness uint8) Colour { return Colour{Channel: ChannelGreen, Brightness: brightness} }
func Blue(brightness uint8) Colour  { return Colour{Channel: ChannelBlue, Brightness: brightness} }

// PlayerColours assigns one colour per player slot.
var PlayerColours = [MaxPlayers]Colour{Red(255), Green(255), Blue(255)}

// WithBrightness returns c with its brightness replaced.
func (c Colour) WithBrightness(brightness uint8) Colour {
	c.Brightness = brightness
	return c
}

// RGB lights the tagged channel and leaves the others at zero.
func (c Colour) RGB() RGB {
	switch c.Channel {
	case ChannelGreen:
		return RGB{G: c.Brightness}
	case ChannelBlue:
		return RGB{B: c.Brightness}
	default:
		return RGB{R: c.Brightness}
	}
}

func (c Colour) String() string {
	switch c.Channel {
	case ChannelGreen:
		return fmt.Sprintf("Green(%d)", c.Brightness)
	case ChannelBlue:
		return fmt.Sprintf("Blue(%d)", c.Brightness)
	default:
		return fmt.Sprintf("Red(%d)", c.Brightness)
	}
}
