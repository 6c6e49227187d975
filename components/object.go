package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an actor's bounding box in the collision space.
type ObjectData struct {
	*resolv.Object
}

// Follow moves the box onto the actor's sprite rectangle.
func (o ObjectData) Follow(a *ActorData) {
	o.X = a.Position.X
	o.Y = a.Position.Y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
