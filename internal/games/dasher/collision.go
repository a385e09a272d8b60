package dasher

import "github.com/vovakirdan/dapper-dasher/internal/core"

// Hitbox returns an obstacle's collision rectangle: its frame at its current
// position, inset by pad on every side so the sheet's transparent margins
// don't count.
func Hitbox(o Sprite, pad float64) core.Rect {
	return o.Bounds().Inset(pad)
}

// CheckCollision reports whether the player's full frame overlaps any
// obstacle hitbox. Touching edges do not count.
func CheckCollision(obstacles []Sprite, player Sprite, pad float64) bool {
	playerRect := player.Bounds()
	for _, o := range obstacles {
		if Hitbox(o, pad).Overlaps(playerRect) {
			return true
		}
	}
	return false
}
