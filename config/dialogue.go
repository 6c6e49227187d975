package config

import "fmt"

// Notice is a one-line system message shown without a portrait.
type Notice int

const (
	NoNotice Notice = iota
	NoticeNotEnoughMana
	NoticeFireBallAttack
	NoticePickUpGold
	NoticeNoEnemiesNearby
	NoticeEnterLevel0
	NoticeEnterLevel1
	NoticeEnterLevel2
	NoticeEnterLevel3
	NoticeEnterLevel4
	NoticeEnterLevel5
)

var noticeText = map[Notice]string{
	NoticeNotEnoughMana:   "You lack enough mana to use this skill!",
	NoticeFireBallAttack:  "Fire Ball! Burn thy enemies to dust!",
	NoticePickUpGold:      "Try to do your best today, okay?",
	NoticeNoEnemiesNearby: "There are no enemies close enough to attack!",
	NoticeEnterLevel0:     "You have entered level 0: Tutorial",
	NoticeEnterLevel1:     "You have entered level 1: Town",
	NoticeEnterLevel2:     "You have entered level 2: Grasslands",
	NoticeEnterLevel3:     "You have entered level 3: Future",
	NoticeEnterLevel4:     "You have entered level 4: Dungeons",
	NoticeEnterLevel5:     "You have entered level 5: << Final Battle >>",
}

// Text returns the message of the notice, or "" for NoNotice.
func (n Notice) Text() string {
	return noticeText[n]
}

// EnterLevelNotice returns the notice announcing level, if there is one.
func EnterLevelNotice(level int) (Notice, bool) {
	if level < 0 || level > 5 {
		return NoNotice, false
	}
	return NoticeEnterLevel0 + Notice(level), true
}

// Exchange is a scripted conversation between narrators.
type Exchange int

const (
	NoExchange Exchange = iota
	ExchangeTutorial0
)

// Narrator is a speaking character. The value is its portrait row.
type Narrator int

const (
	Taina Narrator = iota
	Elizabeth
	Roderick
	Ronin
	Marcos
	Anders
	Jasmine
	Philip
	Tan
	Aurora
	Alia
	Joseph
	Anna
	Tanya
	Kora
	Misty
	Sia
	Bella
	Malcom
	Tiffany
	Athena
	Alan
	Henry
	George
	NarratorNone
)

var narratorNames = [...]string{
	"Taina", "Elizabeth", "Roderick", "Ronin", "Marcos", "Anders", "Jasmine",
	"Philip", "Tan", "Aurora", "Alia", "Joseph", "Anna", "Tanya", "Kora",
	"Misty", "Sia", "Bella", "Malcom", "Tiffany", "Athena", "Alan", "Henry",
	"George",
}

// String returns the display name. NarratorNone has none.
func (n Narrator) String() string {
	if n < 0 || int(n) >= len(narratorNames) {
		return ""
	}
	return narratorNames[n]
}

// PortraitOnRight reports whether the narrator's portrait is drawn at the
// right edge of the dialogue box.
func (n Narrator) PortraitOnRight() bool {
	switch n {
	case Taina, Ronin, Elizabeth, Anders, Philip, Tan, Aurora, Anna, Kora, Misty, Sia, Bella:
		return true
	}
	return false
}

// Expression selects the portrait column.
type Expression int

const (
	ExpressionSad Expression = iota
	ExpressionNormal
	ExpressionHappy
	ExpressionAngry
)

// Line is one queued dialogue entry.
type Line struct {
	Narrator Narrator
	Text     string
}

var exchangeLines = map[Exchange][]Line{
	ExchangeTutorial0: {
		{Narrator: Malcom, Text: "This is a gold bar! This is also an example of a dialogue!"},
		{Narrator: Jasmine, Text: "Understood!"},
	},
}

// Lines returns the scripted lines of the exchange in speaking order.
func (e Exchange) Lines() []Line {
	return exchangeLines[e]
}

func (e Exchange) String() string {
	if e == ExchangeTutorial0 {
		return "tutorial_0"
	}
	return fmt.Sprintf("exchange(%d)", int(e))
}
