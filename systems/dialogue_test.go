package systems

import (
	"testing"

	cfg "github.com/automoto/jasmine/config"
)

func TestExchangePlaysInOrder(t *testing.T) {
	e, src := newTestWorld(t)
	lines := cfg.ExchangeTutorial0.Lines()

	PlayExchange(e, cfg.ExchangeTutorial0)
	d := GetOrCreateDialogue(e)

	if !IsExchangePlaying(e) {
		t.Fatal("expected the exchange to be playing")
	}
	if d.Current != lines[0] {
		t.Fatalf("expected first line %+v, got %+v", lines[0], d.Current)
	}

	src.AdvanceMillis(int(cfg.Dialogue.LineDuration))
	UpdateDialogue(e)
	if d.Current != lines[0] {
		t.Errorf("expected the first line to hold for exactly %d ms", cfg.Dialogue.LineDuration)
	}

	src.AdvanceMillis(1)
	UpdateDialogue(e)
	if d.Current != lines[1] {
		t.Errorf("expected second line %+v, got %+v", lines[1], d.Current)
	}

	src.AdvanceMillis(int(cfg.Dialogue.LineDuration) + 1)
	UpdateDialogue(e)
	if IsExchangePlaying(e) || d.Timer.Started() {
		t.Error("expected the sequencer to go idle")
	}
	if d.Current.Text != "" {
		t.Errorf("expected no line on screen, got %q", d.Current.Text)
	}
}

func TestExchangeNotRestarted(t *testing.T) {
	e, src := newTestWorld(t)
	PlayExchange(e, cfg.ExchangeTutorial0)

	src.AdvanceMillis(3000)
	PlayExchange(e, cfg.ExchangeTutorial0)

	d := GetOrCreateDialogue(e)
	if len(d.Queue) != len(cfg.ExchangeTutorial0.Lines())-1 {
		t.Errorf("expected the queue to stay at %d lines, got %d", len(cfg.ExchangeTutorial0.Lines())-1, len(d.Queue))
	}
	if got := d.Timer.Ticks(); got != 3000 {
		t.Errorf("expected the line timer to keep running, got %d ms", got)
	}
}

func TestNoticeRestartsTimer(t *testing.T) {
	e, src := newTestWorld(t)
	PlayNotice(e, cfg.NoticePickUpGold)

	src.AdvanceMillis(4000)
	PlayNotice(e, cfg.NoticePickUpGold)
	src.AdvanceMillis(4000)
	UpdateDialogue(e)

	d := GetOrCreateDialogue(e)
	if !d.NoticePlaying || d.Current.Text != cfg.NoticePickUpGold.Text() {
		t.Errorf("expected the repeated notice to stay up, got %+v", d.Current)
	}
	if len(d.Queue) != 0 {
		t.Errorf("expected a repeat not to queue a second copy, got %d queued", len(d.Queue))
	}
}

func TestNoticeReplacesNotice(t *testing.T) {
	e, _ := newTestWorld(t)
	PlayNotice(e, cfg.NoticePickUpGold)
	PlayNotice(e, cfg.NoticeNotEnoughMana)

	d := GetOrCreateDialogue(e)
	if d.LastNotice != cfg.NoticeNotEnoughMana {
		t.Errorf("expected the latest notice, got %v", d.LastNotice)
	}
	if d.Current.Text != cfg.NoticeNotEnoughMana.Text() {
		t.Errorf("expected %q, got %q", cfg.NoticeNotEnoughMana.Text(), d.Current.Text)
	}
	if d.Current.Narrator != cfg.NarratorNone {
		t.Errorf("expected a notice without narrator, got %v", d.Current.Narrator)
	}
}

func TestNoticeDuringExchange(t *testing.T) {
	e, _ := newTestWorld(t)
	PlayExchange(e, cfg.ExchangeTutorial0)
	PlayNotice(e, cfg.NoticeNoEnemiesNearby)

	d := GetOrCreateDialogue(e)
	if d.NoticePlaying {
		t.Error("expected the notice to be dropped")
	}
	if d.Current != cfg.ExchangeTutorial0.Lines()[0] {
		t.Errorf("expected the exchange to keep the screen, got %+v", d.Current)
	}
}

func TestExchangeInterruptsNotice(t *testing.T) {
	e, _ := newTestWorld(t)
	PlayNotice(e, cfg.NoticeEnterLevel0)
	PlayExchange(e, cfg.ExchangeTutorial0)

	d := GetOrCreateDialogue(e)
	if d.NoticePlaying {
		t.Error("expected the notice to be cleared")
	}
	if d.Current != cfg.ExchangeTutorial0.Lines()[0] {
		t.Errorf("expected the first exchange line, got %+v", d.Current)
	}
}

func TestPausedDialogueHolds(t *testing.T) {
	e, src := newTestWorld(t)
	PlayExchange(e, cfg.ExchangeTutorial0)
	first := cfg.ExchangeTutorial0.Lines()[0]

	src.AdvanceMillis(1000)
	PauseDialogue(e)
	src.AdvanceMillis(60000)
	UpdateDialogue(e)

	d := GetOrCreateDialogue(e)
	if d.Current != first {
		t.Fatalf("expected the line to hold while paused, got %+v", d.Current)
	}

	ResumeDialogue(e)
	src.AdvanceMillis(int(cfg.Dialogue.LineDuration) - 1000)
	UpdateDialogue(e)
	if d.Current != first {
		t.Errorf("expected the paused time not to count, got %+v", d.Current)
	}

	src.AdvanceMillis(1)
	UpdateDialogue(e)
	if d.Current == first {
		t.Error("expected the next line once the full duration has run")
	}
}

func TestQueuedLinesKeepCurrentTimer(t *testing.T) {
	e, src := newTestWorld(t)
	PlayExchange(e, cfg.ExchangeTutorial0)
	first := cfg.ExchangeTutorial0.Lines()[0]

	src.AdvanceMillis(3000)
	d := GetOrCreateDialogue(e)
	queued := len(d.Queue)
	enqueueLines(d, cfg.Line{Narrator: cfg.NarratorNone, Text: "later"})

	if d.Current != first {
		t.Fatalf("expected the showing line to stay, got %+v", d.Current)
	}
	if len(d.Queue) != queued+1 {
		t.Errorf("expected %d queued lines, got %d", queued+1, len(d.Queue))
	}
	if got := d.Timer.Ticks(); got != 3000 {
		t.Errorf("expected the showing line's timer to keep running, got %d ms", got)
	}
}

func TestNoticeWhilePausedStaysPaused(t *testing.T) {
	e, src := newTestWorld(t)
	PauseDialogue(e)
	PlayNotice(e, cfg.NoticePickUpGold)

	d := GetOrCreateDialogue(e)
	if !d.Timer.Started() || !d.Timer.Paused() {
		t.Fatal("expected the notice timer to start paused")
	}

	src.AdvanceMillis(60000)
	UpdateDialogue(e)
	if !d.NoticePlaying || d.Current.Text != cfg.NoticePickUpGold.Text() {
		t.Fatalf("expected the notice to hold while paused, got %+v", d.Current)
	}

	// A repeat restarts the line without unfreezing it.
	PlayNotice(e, cfg.NoticePickUpGold)
	if !d.Timer.Paused() {
		t.Error("expected a repeated notice to stay paused")
	}

	ResumeDialogue(e)
	src.AdvanceMillis(int(cfg.Dialogue.LineDuration) + 1)
	UpdateDialogue(e)
	if d.NoticePlaying || d.Timer.Started() {
		t.Error("expected the notice to expire once resumed")
	}
}
