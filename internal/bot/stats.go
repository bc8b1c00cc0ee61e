package bot

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/signcontract/leadbot/internal/lead"
)

const statsDeniedText = "❌ У вас нет доступа к статистике."
const statsFailedText = "❌ Не удалось получить статистику."

var segmentEmoji = map[string]string{
	"ip":     "👨‍💼",
	"lawyer": "⚖️",
	"hr":     "👥",
	"other":  "🔄",
}

var segmentTitle = map[string]string{
	"ip":     "Индивидуальный Предприниматель",
	"lawyer": "Юристы",
	"hr":     "HR",
	"other":  "Другие",
}

var actionEmoji = map[string]string{
	"template": "📄",
	"demo":     "🎯",
}

var actionTitle = map[string]string{
	"template": "Шаблоны",
	"demo":     "Демо",
}

// formatStats renders the admin statistics report. Buckets are sorted by
// key so repeated calls produce identical output.
func formatStats(stats lead.Statistics) string {
	var b strings.Builder
	b.WriteString("📊 <b>Статистика лидов SignContract</b>\n\n")
	fmt.Fprintf(&b, "📈 <b>Общее количество лидов:</b> %d\n\n", stats.Total)

	b.WriteString("👥 <b>По сегментам:</b>\n")
	for _, seg := range sortedKeys(stats.BySegment) {
		emoji, title := segmentEmoji[seg], segmentTitle[seg]
		if emoji == "" {
			emoji = "❓"
		}
		if title == "" {
			title = seg
		}
		fmt.Fprintf(&b, "%s %s: %d\n", emoji, title, stats.BySegment[seg])
	}

	b.WriteString("\n🎯 <b>По действиям:</b>\n")
	for _, act := range sortedKeys(stats.ByAction) {
		emoji, title := actionEmoji[act], actionTitle[act]
		if emoji == "" {
			emoji = "❓"
		}
		if title == "" {
			title = act
		}
		fmt.Fprintf(&b, "%s %s: %d\n", emoji, title, stats.ByAction[act])
	}
	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (a *App) statsReport(ctx context.Context) (string, error) {
	stats, err := a.stats.Statistics(ctx)
	if err != nil {
		return "", err
	}
	return formatStats(stats), nil
}
