package systems

import (
	"github.com/automoto/jasmine/assets"
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/fonts"
	"github.com/automoto/jasmine/shared/clock"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// PlayNotice shows a one-line system message. Repeating the notice on
// screen only restarts its timer; a running exchange is never interrupted.
func PlayNotice(e *ecs.ECS, notice cfg.Notice) {
	d := GetOrCreateDialogue(e)
	if notice == cfg.NoNotice || d.ExchangePlaying {
		return
	}

	if d.NoticePlaying && d.LastNotice == notice {
		restartLine(d)
		return
	}

	d.NoticePlaying = true
	d.LastNotice = notice
	d.Timer.Stop()
	d.Queue = d.Queue[:0]

	enqueueLines(d, cfg.Line{Narrator: cfg.NarratorNone, Text: notice.Text()})
}

// PlayExchange starts a scripted conversation, replacing any notice.
// Starting the exchange that is already playing does nothing.
func PlayExchange(e *ecs.ECS, exchange cfg.Exchange) {
	d := GetOrCreateDialogue(e)

	if d.NoticePlaying {
		d.NoticePlaying = false
		d.Queue = d.Queue[:0]
		d.Timer.Stop()
	}

	if d.ExchangePlaying && d.LastExchange == exchange {
		return
	}

	lines := exchange.Lines()
	if len(lines) == 0 {
		return
	}

	d.ExchangePlaying = true
	d.LastExchange = exchange
	enqueueLines(d, lines...)
}

// enqueueLines appends lines in order. An idle sequencer shows the first one
// straight away; a busy one leaves the current line's timer alone.
func enqueueLines(d *components.DialogueData, lines ...cfg.Line) {
	d.Queue = append(d.Queue, lines...)
	if d.Timer.Started() || len(d.Queue) == 0 {
		return
	}
	d.Current = d.Queue[0]
	d.Queue = d.Queue[1:]
	restartLine(d)
}

// restartLine times the current line from zero, frozen if dialogue is paused.
func restartLine(d *components.DialogueData) {
	d.Timer.Start()
	if d.Paused {
		d.Timer.Pause()
	}
}

// IsExchangePlaying reports whether a conversation is on screen.
func IsExchangePlaying(e *ecs.ECS) bool {
	return GetOrCreateDialogue(e).ExchangePlaying
}

// UpdateDialogue advances to the next line once the current one has been up
// long enough, and goes idle when the queue runs dry.
func UpdateDialogue(e *ecs.ECS) {
	d := GetOrCreateDialogue(e)
	if d.Paused || !d.Timer.Started() || d.Timer.Ticks() <= cfg.Dialogue.LineDuration {
		return
	}

	if len(d.Queue) == 0 {
		d.Timer.Stop()
		d.ExchangePlaying = false
		d.NoticePlaying = false
		d.Current = cfg.Line{}
		return
	}

	d.Current = d.Queue[0]
	d.Queue = d.Queue[1:]
	restartLine(d)
}

// PauseDialogue freezes the line timer.
func PauseDialogue(e *ecs.ECS) {
	d := GetOrCreateDialogue(e)
	d.Paused = true
	d.Timer.Pause()
}

// ResumeDialogue continues a paused line timer.
func ResumeDialogue(e *ecs.ECS) {
	d := GetOrCreateDialogue(e)
	d.Paused = false
	d.Timer.Resume()
}

// DrawDialogue renders the current line above the skill bar. Exchanges also
// get a backing box, the narrator's portrait and name.
func DrawDialogue(e *ecs.ECS, screen *ebiten.Image) {
	d := GetOrCreateDialogue(e)
	if !d.Timer.Started() {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	dc := cfg.Dialogue

	if d.ExchangePlaying {
		boxH := float32(dc.PortraitHeight / 2)
		vector.FillRect(screen, 0, float32(height)-boxH, float32(width), boxH, dc.BoxColor, false)

		x := 0
		if d.Current.Narrator.PortraitOnRight() {
			x = width - dc.PortraitWidth
		}
		if portrait := assets.Portrait(d.Current.Narrator, d.Expression); portrait != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(height-dc.PortraitHeight))
			screen.DrawImage(portrait, op)
		}

		name := d.Current.Narrator.String()
		nameFont := fonts.Narrator.Get()
		bounds := text.BoundString(nameFont, name) //nolint:staticcheck // TODO: migrate to text/v2
		nx := width/2 - bounds.Dx()/2
		ny := height - dc.TextBaseline - 14
		text.Draw(screen, name, nameFont, nx, ny, dc.NarratorColor) //nolint:staticcheck // TODO: migrate to text/v2
	}

	lineFont := fonts.Dialogue.Get()
	bounds := text.BoundString(lineFont, d.Current.Text) //nolint:staticcheck // TODO: migrate to text/v2
	tx := width/2 - bounds.Dx()/2
	ty := height - dc.TextBaseline
	text.Draw(screen, d.Current.Text, lineFont, tx, ty, dc.TextColor) //nolint:staticcheck // TODO: migrate to text/v2
}

// GetOrCreateDialogue returns the singleton dialogue sequencer.
func GetOrCreateDialogue(e *ecs.ECS) *components.DialogueData {
	entry, ok := components.Dialogue.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Dialogue))
		components.Dialogue.SetValue(entry, components.DialogueData{
			Timer:      clock.NewTimer(ClockSource(e)),
			Expression: cfg.ExpressionSad,
		})
	}
	return components.Dialogue.Get(entry)
}
