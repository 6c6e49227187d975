package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the resolv broadphase holding every actor's bounding box.
var Space = donburi.NewComponentType[resolv.Space]()
