package formatter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders part/whole as a bar like [████░░░░]  45%.
// A non-positive whole renders a dimmed placeholder.
func RenderShare(part, whole decimal.Decimal, width int) string {
	if !whole.IsPositive() {
		return Dim("--")
	}
	if width < 2 {
		width = 2
	}

	ratio := part.Div(whole)
	if ratio.IsNegative() {
		ratio = decimal.Zero
	}
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		ratio = decimal.NewFromInt(1)
	}

	filled := int(ratio.Mul(decimal.NewFromInt(int64(width))).IntPart())
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StylePurple
	if filled == 0 {
		style = StyleDim
	}
	return fmt.Sprintf("[%s] %4s%%", style.Render(bar), ratio.Shift(2).StringFixed(0))
}
