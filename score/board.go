package score

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/lixenwraith/ringball/parameter"
)

// Bests is what the HUD shows next to the live score
type Bests struct {
	Personal int
	Daily    int
}

// DailyRecord is the persisted daily best
type DailyRecord struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// Board tracks personal (all-time max) and daily bests in a Store
// Malformed or missing values count as zero; write failures are logged and skipped
type Board struct {
	store  Store
	logger *slog.Logger
	bests  Bests
	daily  DailyRecord
}

// NewBoard creates a board over store
func NewBoard(store Store, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	return &Board{store: store, logger: logger}
}

// DayString formats t the way daily records are keyed
func DayString(t time.Time) string {
	return t.Format(parameter.DailyDateLayout)
}

// Load reads persisted bests, resetting the daily best if it belongs to another day
func (b *Board) Load(now time.Time) Bests {
	b.bests.Personal = b.readPersonal()
	b.daily = b.readDaily()

	today := DayString(now)
	if b.daily.Date != today {
		b.daily = DailyRecord{Date: today}
		b.writeDaily()
	}
	b.bests.Daily = b.daily.Score
	return b.bests
}

// Bests returns the last computed values
func (b *Board) Bests() Bests {
	return b.bests
}

// Update folds the live score into the bests and persists any change
func (b *Board) Update(score int, now time.Time) Bests {
	if stored := b.readPersonal(); stored > b.bests.Personal {
		b.bests.Personal = stored
	}
	if score > b.bests.Personal {
		b.bests.Personal = score
		b.write(parameter.KeyPersonalBest, strconv.Itoa(score))
	}

	today := DayString(now)
	switch {
	case b.daily.Date != today:
		b.daily = DailyRecord{Date: today, Score: score}
		b.writeDaily()
	case score > b.daily.Score:
		b.daily.Score = score
		b.writeDaily()
	}
	b.bests.Daily = b.daily.Score
	return b.bests
}

func (b *Board) readPersonal() int {
	raw, ok := b.store.Read(parameter.KeyPersonalBest)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		b.logger.Debug("ignoring malformed personal best", "value", raw)
		return 0
	}
	return n
}

func (b *Board) readDaily() DailyRecord {
	raw, ok := b.store.Read(parameter.KeyDailyBest)
	if !ok {
		return DailyRecord{}
	}
	var rec DailyRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.Score < 0 {
		b.logger.Debug("ignoring malformed daily best", "value", raw)
		return DailyRecord{}
	}
	return rec
}

func (b *Board) writeDaily() {
	data, err := json.Marshal(b.daily)
	if err != nil {
		b.logger.Warn("encode daily best", "error", err)
		return
	}
	b.write(parameter.KeyDailyBest, string(data))
}

func (b *Board) write(key, value string) {
	if err := b.store.Write(key, value); err != nil {
		b.logger.Warn("persist score", "key", key, "error", err)
	}
}
