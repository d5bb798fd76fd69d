package tui

import (
	"fmt"

	"github.com/sadopc/keepsake/internal/engine"
)

var bubbleCaptions = []struct {
	text  string
	emoji string
	turn  int
}{
	{"My Cutie", "🥰", 0},
	{"My Babe", "😘", 0},
	{"My Love", "❤️", 0},
	{"My Everything", "🌞", 0},
	{"My Heart", "💓", 0},
	{"My Soulmate", "💕", 0},
	{"My Angel", "😇", 0},
	{"My Princess", "👑", 0},
	{"My Queen", "👑", 0},
	{"My Sweetheart", "💞", 0},
	{"My Joy", "😂", 0},
	{"My Happiness", "😊", 0},
	{"My Dream", "💭", 270},
	{"My World", "🌎", 0},
	{"My Baby", "👼", 0},
	{"My Darling", "😗", 0},
	{"My Miracle", "🪄", 0},
	{"My Hotie", "❤️‍🔥", 0},
	{"My Life", "💗", 270},
}

var flowerMessages = []struct {
	color   string
	message string
}{
	{"#ff8a80", "Your laugh is my favorite song 🎵"},
	{"#ea80fc", "You make life colorful 🌈"},
	{"#8c9eff", "My comfort person 🧸"},
	{"#ffd180", "The best adventure buddy 🗺️"},
	{"#ff5252", "I love you infinitely ❤️"},
}

// DefaultReveals is the board shown in the bubbles and garden views.
func DefaultReveals() []engine.RevealSpec {
	specs := make([]engine.RevealSpec, 0, len(bubbleCaptions)+len(flowerMessages))
	for i, b := range bubbleCaptions {
		specs = append(specs, engine.RevealSpec{
			ID:      fmt.Sprintf("bubble-%d", i),
			Kind:    engine.RevealBubble,
			Content: b.emoji + " " + b.text,
			Color:   "#c2f2ff",
			Rotate:  b.turn,
		})
	}
	for i, f := range flowerMessages {
		specs = append(specs, engine.RevealSpec{
			ID:      fmt.Sprintf("flower-%d", i),
			Kind:    engine.RevealFlower,
			Content: f.message,
			Color:   f.color,
		})
	}
	return specs
}

const (
	gatePrompt      = "Halt! Speak the secret date!"
	gatePlaceholder = "XX"
	gateButton      = "Enter Kingdom 🏰"

	dashboardTitle = "Happy 2nd Anniversary!"
	counterTitle   = "Time Since We Said Hello:"

	bubblesTitle = "✨ My Cutie ✨"
	bubblesHint  = "Pop the bubbles to see!"
	gardenTitle  = "🌱 Water the Love Garden 🌱"
	gardenHint   = "Water a sprout to let it bloom."

	gameTitle = "⚠️ DANGER: LOVE OVERLOAD ⚠️"
	gameHint  = "Click rapidly!"

	letterGreeting = "My Dearest Love,"
	letterSignoff  = "Forever Yours,"
)

var letterParagraphs = []string{
	"Happy 2nd Anniversary!",
	"These past two years have been the most magical adventure of my life. " +
		"Every day with you feels like a walk in the clouds.",
	"Thank you for being my player two 🎮, my best friend 👫, and the love of my life 💖. " +
		"I can't wait for all the levels we have yet to unlock together!",
	"I know there were ups and downs along the way. I know I have made a lot of mistakes, " +
		"and I am sure I will make more in the future as well... but please know it is never " +
		"my intention to hurt you. I am so sorry for everything.",
	"I promise to be better and to always be there for you no matter what. " +
		"I will be there if you need anything or want anything. " +
		"I will always be here for you. I will try to improve myself even more for us.",
	"I loved you, I love you, and I will always love you in the future ⏳❤️. " +
		"You can't even imagine how much I love you! 🌌🥰",
}
