package commands

import (
	"fmt"
	"math/rand"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"github.com/snakeduel/engine/rules"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snake1Color  = termbox.ColorGreen
	snake2Color  = termbox.ColorBlue
)

func render(state rules.GameState, name1, name2 string) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	var (
		left   = 10
		top    = 2
		bottom = top + int(state.Height) + 1
	)

	renderTitle(left, top, state.Turn)
	renderBoard(state, top, bottom, left)
	renderSnake(left, top, state.Snake1, snake1Color)
	renderSnake(left, top, state.Snake2, snake2Color)
	renderFood(left, top, state.Food)

	panel := left + int(state.Width) + 5
	tbprint(panel, top+1, snake1Color, defaultColor, fmt.Sprintf("%s: %d", name1, state.Score1))
	tbprint(panel, top+3, snake2Color, defaultColor, fmt.Sprintf("%s: %d", name2, state.Score2))

	return termbox.Flush()
}

func renderSnake(left, top int, body []rules.Point, color termbox.Attribute) {
	for _, b := range body {
		termbox.SetCell(left+int(b.X), top+int(b.Y)+1, ' ', color, color)
	}
}

func renderFood(left, top int, food rules.Point) {
	termbox.SetCell(left+int(food.X), top+int(food.Y)+1, getFoodEmoji(food.X, food.Y), defaultColor, bgColor)
}

var foods = map[string]rune{}

func getFoodEmoji(x, y int32) rune {
	key := fmt.Sprintf("(%d, %d)", x, y)
	r, ok := foods[key]
	if !ok {
		r = randomFoodEmoji()
		foods[key] = r
	}
	return r
}

func randomFoodEmoji() rune {
	f := []rune{
		'🍒',
		'🍍',
		'🍑',
		'🍇',
		'🍏',
		'🍌',
		'🍫',
		'🍭',
		'🍕',
		'🍩',
	}
	return f[rand.Intn(len(f))]
}

func renderBoard(state rules.GameState, top, bottom, left int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+int(state.Width), i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+int(state.Width), top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+int(state.Width), bottom, '┘', defaultColor, bgColor)

	fill(left, top, int(state.Width), 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, int(state.Width), 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, turn int64) {
	tbprint(left, top-1, defaultColor, defaultColor, fmt.Sprintf("Snake Duel - Turn %d", turn))
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
