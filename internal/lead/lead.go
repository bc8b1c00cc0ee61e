// Package lead defines the captured prospect record and the sink contract it
// is handed to. Concrete backends live in the subpackages.
package lead

import (
	"context"
	"strconv"
	"time"
)

// Row layout constants. The column order below is the de facto contract of
// the spreadsheet this bot has always written to; both backends follow it.
const (
	// StatusNew is the initial status every captured lead gets.
	StatusNew = "Новый"
	// NotesSource marks where the lead came from.
	NotesSource = "Источник: Telegram Bot"

	timestampLayout = "2006-01-02 15:04:05"
)

// Header is the spreadsheet header row, in column order.
var Header = []string{
	"Дата/Время",
	"Имя",
	"Телефон",
	"Сегмент",
	"Действие",
	"Username",
	"User ID",
	"Статус",
	"Примечания",
}

// Lead is a captured prospect handed to external storage for follow-up.
type Lead struct {
	Name       string
	Phone      string
	Segment    string
	Action     string
	Username   string
	UserID     int64
	CapturedAt time.Time
}

// Row renders the lead as a spreadsheet row in the fixed column order:
// timestamp, name, phone, segment, action, username, user id, status, notes.
func (l Lead) Row() []string {
	return []string{
		l.CapturedAt.Format(timestampLayout),
		l.Name,
		l.Phone,
		l.Segment,
		l.Action,
		l.Username,
		strconv.FormatInt(l.UserID, 10),
		StatusNew,
		NotesSource,
	}
}

// Sink receives completed leads. Emit is a single best-effort call: the
// conversation never retries and never blocks the user on the outcome.
type Sink interface {
	Emit(ctx context.Context, l Lead) error
}

// Statistics is a read-only aggregate over all leads ever emitted.
type Statistics struct {
	Total     int
	BySegment map[string]int
	ByAction  map[string]int
}

// StatsProvider exposes the aggregate used by the admin report command.
type StatsProvider interface {
	Statistics(ctx context.Context) (Statistics, error)
}
