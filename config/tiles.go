package config

// Foreground tile ids with gameplay meaning.
var (
	GoldBarTiles = []int{295, 343, 391, 342, 390, 389, 388, 439}
	DoorTiles    = []int{3004, 3035}
)

// IsGoldBar reports whether a foreground tile id is a collectible gold bar.
func IsGoldBar(id int) bool {
	for _, g := range GoldBarTiles {
		if g == id {
			return true
		}
	}
	return false
}

// IsDoor reports whether a foreground tile id leads to the next level.
func IsDoor(id int) bool {
	for _, d := range DoorTiles {
		if d == id {
			return true
		}
	}
	return false
}
