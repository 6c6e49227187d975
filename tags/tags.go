package tags

import "github.com/yohamta/donburi"

var (
	Actor  = donburi.NewTag().SetName("Actor")
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	NPC    = donburi.NewTag().SetName("NPC")
)

// Resolv tags for the collision space
const (
	ResolvActor  = "actor"
	ResolvPlayer = "player"
	ResolvProbe  = "probe"
)
