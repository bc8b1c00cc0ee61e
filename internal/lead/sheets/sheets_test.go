package sheets

import (
	"testing"
)

func TestAggregate(t *testing.T) {
	rows := [][]interface{}{
		{"2025-03-14 12:00:00", "Иван", "+79991234567", "ip", "template", "ivan", "42", "Новый", "Источник: Telegram Bot"},
		{"2025-03-14 12:05:00", "Анна", "+79991234568", "ip", "demo", "anna", "43", "Новый", "Источник: Telegram Bot"},
		{"2025-03-14 12:10:00", "Олег", "+79991234569", "hr", "template", "oleg", "44", "Новый", "Источник: Telegram Bot"},
	}
	stats := aggregate(rows)
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.BySegment["ip"] != 2 || stats.BySegment["hr"] != 1 {
		t.Errorf("by segment = %v", stats.BySegment)
	}
	if stats.ByAction["template"] != 2 || stats.ByAction["demo"] != 1 {
		t.Errorf("by action = %v", stats.ByAction)
	}
}

func TestAggregateSkipsBlankAndShortRows(t *testing.T) {
	rows := [][]interface{}{
		{},
		{"2025-03-14 12:00:00", "Иван", "+79991234567"},
	}
	stats := aggregate(rows)
	if stats.Total != 1 {
		t.Errorf("total = %d, want 1 (blank row skipped)", stats.Total)
	}
	if stats.BySegment["unknown"] != 1 || stats.ByAction["unknown"] != 1 {
		t.Errorf("short row not counted as unknown: %v / %v", stats.BySegment, stats.ByAction)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := aggregate(nil)
	if stats.Total != 0 {
		t.Errorf("total = %d, want 0", stats.Total)
	}
	if stats.BySegment == nil || stats.ByAction == nil {
		t.Error("maps must be non-nil for empty input")
	}
}
