package rsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSchemeKnownSchemes(t *testing.T) {
	cases := map[string]string{
		"AGIRC-ARRCO":         SchemeAgircArrco,
		"Agirc Arrco":         SchemeAgircArrco,
		"agirc-arrco":         SchemeAgircArrco,
		"ＡＧＩＲＣ－ＡＲＲＣＯ":         SchemeAgircArrco,
		"Points Arrco":        SchemeAgircArrco,
		"Ircantec":            SchemeIrcantec,
		"RCI":                 SchemeRCI,
		"Agirc TB":            SchemeAgircTB,
		"Agirc - TC":          SchemeAgircTC,
		"CNRACL":              SchemeCNRACL,
		"RPF":                 SchemeRPF,
		"RAFP":                SchemeRAFP,
	}

	for label, want := range cases {
		key, ok := NormalizeScheme(label)
		assert.True(t, ok, label)
		assert.Equal(t, want, key, label)
	}
}

func TestNormalizeSchemeMatchesInsideLongerLabels(t *testing.T) {
	key, ok := NormalizeScheme("Retraite additionnelle de la fonction publique RAFP")
	assert.True(t, ok)
	assert.Equal(t, SchemeRAFP, key)
}

func TestNormalizeSchemeIsDeterministic(t *testing.T) {
	first, _ := NormalizeScheme("Agirc-Arrco")
	for i := 0; i < 5; i++ {
		key, ok := NormalizeScheme("Agirc-Arrco")
		assert.True(t, ok)
		assert.Equal(t, first, key)
	}
}

func TestNormalizeSchemeDiscardsBaseRegime(t *testing.T) {
	key, ok := NormalizeScheme("L'Assurance retraite")

	assert.False(t, ok)
	assert.Empty(t, key)
}

func TestNormalizeSchemeSlugFallback(t *testing.T) {
	key, ok := NormalizeScheme("Points Cavimac")
	assert.True(t, ok)
	assert.Equal(t, "pointscavimac", key)

	key, ok = NormalizeScheme("Caisse de retraite des professions libérales")
	assert.True(t, ok)
	assert.Equal(t, "caissederetraitedesprofe", key)
	assert.Len(t, key, 24)

	key, ok = NormalizeScheme("' -")
	assert.False(t, ok)
	assert.Empty(t, key)
}

func TestSanitizeLabel(t *testing.T) {
	assert.Equal(t, "Agirc-Arrco", SanitizeLabel("  Agirc-Arrco  "))
	assert.Equal(t, "Points Ircantec", SanitizeLabel("- Points   Ircantec "))
}
