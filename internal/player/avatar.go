package player

import "strings"

// BaseAvatars are available to every player from the start.
var BaseAvatars = []string{
	"avatar_cat.png",
	"avatar_dog.png",
	"avatar_fox.png",
	"avatar_panda.png",
	"avatar_lion.png",
	"avatar_tiger.png",
	"avatar_penguin.png",
	"avatar_frog.png",
	"avatar_monkey.png",
	"avatar_unicorn.png",
}

// Unlockable is an avatar granted once cumulative points reach Points.
type Unlockable struct {
	Points int
	Avatar string
}

// Unlockables are ordered by ascending threshold.
var Unlockables = []Unlockable{
	{Points: 50, Avatar: "avatar_dragon.png"},
	{Points: 100, Avatar: "avatar_crown.png"},
	{Points: 150, Avatar: "avatar_rocket.png"},
	{Points: 200, Avatar: "avatar_star.png"},
}

// NextUnlock returns the next avatar the player can earn and whether one
// remains.
func NextUnlock(points int) (Unlockable, bool) {
	for _, u := range Unlockables {
		if u.Points > points {
			return u, true
		}
	}
	return Unlockable{}, false
}

// AvatarName returns a short display name, e.g. "panda" for "avatar_panda.png".
func AvatarName(id string) string {
	name := strings.TrimPrefix(id, "avatar_")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name
}

// AvatarIcon returns the terminal glyph for an avatar.
func AvatarIcon(id string) string {
	switch AvatarName(id) {
	case "cat":
		return "🐱"
	case "dog":
		return "🐶"
	case "fox":
		return "🦊"
	case "panda":
		return "🐼"
	case "lion":
		return "🦁"
	case "tiger":
		return "🐯"
	case "penguin":
		return "🐧"
	case "frog":
		return "🐸"
	case "monkey":
		return "🐵"
	case "unicorn":
		return "🦄"
	case "dragon":
		return "🐲"
	case "crown":
		return "👑"
	case "rocket":
		return "🚀"
	case "star":
		return "⭐"
	default:
		return "✦"
	}
}
