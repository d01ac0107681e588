package domain

import (
	"fmt"
	"strings"
)

// fallbackTemplates maps a normalized occasion key to pre-written messages
// parameterized by recipient name. The first entry of a category is the
// primary message; the rest become suggestions.
var fallbackTemplates = map[string][]string{
	"birthday": {
		"Happy Birthday, %s! 🎉 Wishing you a day filled with joy, laughter, and all the things that make you smile. May this year bring you endless happiness and amazing adventures!",
		"🎂 Happy Birthday to an amazing person! %s, may your special day be as wonderful as you are. Here's to another year of great memories and success!",
		"Warmest birthday wishes to you, %s! May this year be your best one yet, filled with love, prosperity, and unforgettable moments. Celebrate big! 🎈",
	},
	"congratulations": {
		"Congratulations, %s! 🎊 Your hard work and dedication have truly paid off. This achievement is well-deserved, and I'm so proud of you!",
		"Way to go, %s! This is a huge accomplishment, and you should be incredibly proud. Here's to your continued success! 🌟",
		"Fantastic news, %s! Your achievement is inspiring, and I can't wait to see what you accomplish next. Congratulations! 🎉",
	},
	"thankyou": {
		"Thank you so much, %s! Your kindness and generosity mean the world to me. I'm truly grateful for everything you've done. 🙏",
		"Dear %s, I wanted to express my heartfelt thanks. Your support has made such a difference, and I'm incredibly appreciative!",
		"A big thank you to you, %s! Your thoughtfulness never goes unnoticed, and I'm so lucky to have you in my life. 💙",
	},
	"anniversary": {
		"Happy Anniversary, %s! 💕 Celebrating the beautiful journey you've shared. Here's to many more years of love and happiness!",
		"Congratulations on your anniversary, %s! May your love continue to grow stronger with each passing year. 💑",
		"Wishing you both a very Happy Anniversary! %s, your love story is truly inspiring. Cheers to forever! 🥂",
	},
	"getwell": {
		"Get well soon, %s! 💐 Sending healing thoughts your way. Hope you feel better soon and are back on your feet in no time!",
		"Thinking of you, %s! Wishing you a speedy recovery. Take care and rest up! 🌺",
		"Sending you positive vibes and warm wishes, %s! Get well soon! 💪",
	},
}

// fallbackDefaultCategory receives every occasion without a template category.
const fallbackDefaultCategory = "birthday"

// NormalizeOccasion turns a free-text occasion into a template lookup key:
// lowercased with spaces stripped. "Get Well" and "getwell" are the same key.
func NormalizeOccasion(occasion string) string {
	return strings.ReplaceAll(strings.ToLower(occasion), " ", "")
}

// FallbackMessage resolves a generation request against the template table.
// Unknown occasions resolve to the birthday category. The result is never empty.
func FallbackMessage(req MessageGenerationRequest) MessageGenerationResult {
	templates, ok := fallbackTemplates[NormalizeOccasion(req.Occasion)]
	if !ok {
		templates = fallbackTemplates[fallbackDefaultCategory]
	}

	messages := make([]string, len(templates))
	for i, t := range templates {
		messages[i] = fmt.Sprintf(t, req.RecipientName)
	}

	return MessageGenerationResult{
		Message:     messages[0],
		Suggestions: messages[1:],
	}
}

// ParseSuggestions splits generated variant text into discrete suggestions.
// It is a best-effort heuristic: split on line breaks, drop blank or very
// short lines, keep at most max entries.
func ParseSuggestions(content string, max int) []string {
	var suggestions []string
	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= 20 {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) == max {
			break
		}
	}
	return suggestions
}
