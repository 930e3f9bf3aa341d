package market

import (
	"fmt"
	"strconv"

	"github.com/yanqian/kisan-advisor/internal/domain/tip"
)

const significantChange = 5

var stableTip = tip.New("📊", "Market prices are relatively stable. Good time for planned transactions.")

// Advise emits one tip per record with a significant move, in input order.
// The result is never empty.
func Advise(prices []Price) []tip.Tip {
	var tips []tip.Tip
	for _, p := range prices {
		switch {
		case p.Trend == TrendUp && p.Change > significantChange:
			tips = append(tips, tip.New("📈",
				fmt.Sprintf("%s prices are rising (+%s%%) - Good time to sell!", p.Commodity, formatChange(p.Change))))
		case p.Trend == TrendDown && p.Change < -significantChange:
			tips = append(tips, tip.New("📉",
				fmt.Sprintf("%s prices are falling (%s%%) - Consider holding or buying for future.", p.Commodity, formatChange(p.Change))))
		}
	}
	if len(tips) == 0 {
		return []tip.Tip{stableTip}
	}
	return tips
}

func formatChange(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
