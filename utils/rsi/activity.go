package rsi

import (
	"strings"

	"github.com/Aashish23092/rsi-career-extraction/dto"
	"github.com/Aashish23092/rsi-career-extraction/utils"
)

type activityRule struct {
	keywords []string
	activity dto.ActivityType
}

// Complementary scheme names come before the sector keywords so that a
// scheme mention is never overridden by a stray "etat" or "civile".
var activityRules = []activityRule{
	{[]string{"agirc", "arrco"}, dto.ActivityPrivate},
	{[]string{"rci"}, dto.ActivityLiberal},
	{[]string{"msa"}, dto.ActivityMSA},
	{[]string{"cnav", "salari", "urssaf"}, dto.ActivityPrivate},
	{[]string{"fonction", "civile", "etat", "territoriale"}, dto.ActivityPublic},
}

// ClassifyActivity maps a regime label to an activity type. It always
// returns one of the four types and defaults to private.
func ClassifyActivity(regime string) dto.ActivityType {
	t := utils.NormalizeLabel(regime)
	for _, rule := range activityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.activity
			}
		}
	}
	return dto.ActivityPrivate
}
