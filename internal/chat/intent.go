// Package chat turns free-text dinner questions into service calls. Intent
// detection is keyword based; the first matching intent wins.
package chat

import (
	"strings"

	"github.com/alexanderramin/recipebot/internal/domain"
)

type Intent string

const (
	IntentNutrition Intent = "nutrition"
	IntentPantry    Intent = "pantry"
	IntentLog       Intent = "log"
	IntentAnother   Intent = "another"
	IntentRecommend Intent = "recommend"
)

// QuickCapMinutes bounds the time budget when the user asks for something
// quick.
const QuickCapMinutes = 30

var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentNutrition, []string{"nutrition", "macro", "progress", "goal", "how am i"}},
	{IntentPantry, []string{"pantry", "ingredients", "what do i have"}},
	{IntentLog, []string{"log", "cooked", "i made", "i'll cook"}},
	{IntentAnother, []string{"another", "skip", "different", "next"}},
}

func DetectIntent(text string) Intent {
	lower := strings.ToLower(text)
	for _, ik := range intentKeywords {
		if containsAny(lower, ik.keywords) {
			return ik.intent
		}
	}
	return IntentRecommend
}

// DetectEmphasis picks a weight profile from keywords. capMin is
// QuickCapMinutes for the quick profile and zero otherwise.
func DetectEmphasis(text string) (emphasis domain.Emphasis, capMin int) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "protein"):
		return domain.EmphasisProtein, 0
	case containsAny(lower, []string{"quick", "fast", "30"}):
		return domain.EmphasisQuick, QuickCapMinutes
	case containsAny(lower, []string{"comfort", "favorite"}):
		return domain.EmphasisComfort, 0
	case containsAny(lower, []string{"pantry", "what i have"}):
		return domain.EmphasisPantry, 0
	}
	return domain.EmphasisNone, 0
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// StarterPrompts are offered before the first message.
var StarterPrompts = []string{
	"What to cook?",
	"Something quick",
	"High protein",
	"Something new",
}
