package registry

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "classic"

func init() {
	Register(Theme{
		Name:        DefaultTheme,
		Description: "'#' snake and '*' food inside a line border",
		Style:       snake.DefaultStyle(),
	})

	Register(Theme{
		Name:        "block",
		Description: "Solid blocks with a bright head",
		Style: snake.Style{
			Head:       '█',
			Body:       '▓',
			Food:       '●',
			SnakeColor: core.ColorBrightGreen,
			FoodColor:  core.ColorBrightRed,
			WallColor:  core.ColorGray,
			TextColor:  core.ColorBrightYellow,
		},
	})

	Register(Theme{
		Name:        "ascii",
		Description: "Plain ASCII for terminals without Unicode or color",
		Style: snake.Style{
			Head: '@',
			Body: 'o',
			Food: '*',
			Wall: '#',
		},
	})
}
