package components

import (
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/clock"
	"github.com/yohamta/donburi"
)

// DialogueData is the dialogue sequencer state (singleton component).
// Current is the line on screen; Queue holds the lines still to come.
type DialogueData struct {
	Current    cfg.Line
	Queue      []cfg.Line
	Expression cfg.Expression
	Timer      clock.Timer

	ExchangePlaying bool
	NoticePlaying   bool
	LastExchange    cfg.Exchange
	LastNotice      cfg.Notice

	// Paused holds across lines: a line started while paused starts frozen.
	Paused bool
}

var Dialogue = donburi.NewComponentType[DialogueData]()
