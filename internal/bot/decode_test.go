package bot

import (
	"strings"
	"testing"

	"github.com/signcontract/leadbot/internal/content"
	"github.com/signcontract/leadbot/internal/conversation"
	"github.com/signcontract/leadbot/internal/lead"
)

func TestDecodeCallback(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		payload string
		want    conversation.Event
	}{
		{"segment", content.KeySegment, "ip", conversation.SelectSegment{Segment: "ip"}},
		{"how it works", content.KeyHowItWorks, "", conversation.OpenScreen{Screen: content.ScreenHowItWorks}},
		{"cases index", content.KeyCases, "", conversation.OpenScreen{Screen: content.ScreenCases}},
		{"case item", content.KeyCase, "education", conversation.OpenScreen{Screen: content.ScreenCaseEdu}},
		{"case unknown payload", content.KeyCase, "mining", conversation.OpenScreen{Screen: ""}},
		{"faq index", content.KeyFAQ, "", conversation.OpenScreen{Screen: content.ScreenFAQ}},
		{"faq item", content.KeyFAQItem, "legal", conversation.OpenScreen{Screen: content.ScreenFAQLegal}},
		{"template", content.KeyTemplate, "", conversation.RequestAction{Action: "template"}},
		{"demo", content.KeyDemo, "", conversation.RequestAction{Action: "demo"}},
		{"back to menu", content.KeyBackToMenu, "", conversation.ShowMenu{}},
		{"exit", content.KeyExit, "", conversation.Exit{}},
		{"garbage key", "subscribe", "x", conversation.Unknown{}},
		{"empty key", "", "", conversation.Unknown{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeCallback(tt.key, tt.payload)
			if got != tt.want {
				t.Fatalf("DecodeCallback(%q, %q) = %#v, want %#v", tt.key, tt.payload, got, tt.want)
			}
		})
	}
}

func TestFormatStats(t *testing.T) {
	stats := lead.Statistics{
		Total:     3,
		BySegment: map[string]int{"ip": 2, "hr": 1},
		ByAction:  map[string]int{"template": 2, "demo": 1},
	}
	got := formatStats(stats)

	for _, want := range []string{
		"Общее количество лидов:</b> 3",
		"👨‍💼 Индивидуальный Предприниматель: 2",
		"👥 HR: 1",
		"📄 Шаблоны: 2",
		"🎯 Демо: 1",
	} {
		if !containsLine(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestFormatStatsUnknownBuckets(t *testing.T) {
	stats := lead.Statistics{
		Total:     1,
		BySegment: map[string]int{"unknown": 1},
		ByAction:  map[string]int{"unknown": 1},
	}
	got := formatStats(stats)
	if !containsLine(got, "❓ unknown: 1") {
		t.Errorf("unknown bucket not rendered:\n%s", got)
	}
}

func containsLine(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
