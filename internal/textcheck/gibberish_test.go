package textcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_StripsDiacriticsAndPunctuation(t *testing.T) {
	assert.Equal(t, "developpeur", Normalize("Développeur"))
	assert.Equal(t, "jeandupont gmailcom", Normalize("Jean.Dupont gmail.com"))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize(""))
}

func TestFold_KeepsPunctuation(t *testing.T) {
	assert.Equal(t, "c++ / ingenierie", Fold("C++ / Ingénierie"))
	assert.Equal(t, "中文", Fold("中文"))
}

func TestIsGibberish_KeyboardMash(t *testing.T) {
	c := New()
	assert.True(t, c.IsGibberish("qwertyuiop"))
	assert.True(t, c.IsGibberish("AZERTY"))
	assert.True(t, c.IsGibberish("my code is 123456"))
}

func TestIsGibberish_RealWords(t *testing.T) {
	c := New()
	for _, text := range []string{
		"Jean",
		"Dupont",
		"développeur",
		"Müller",
		"Kubernetes",
		"Software Engineer",
		"Chef de projet",
		"Increased revenue by 1000 units",
		"Université Paris-Saclay",
	} {
		assert.False(t, c.IsGibberish(text), text)
	}
}

func TestIsGibberish_TooShort(t *testing.T) {
	c := New()
	assert.False(t, c.IsGibberish("xz"))
	assert.False(t, c.IsGibberish("!!"))
	assert.False(t, c.IsGibberish(""))
}

func TestIsGibberish_LowVowelRatio(t *testing.T) {
	assert.True(t, New().IsGibberish("bcdfgh"))
}

func TestIsGibberish_ConsonantRun(t *testing.T) {
	assert.True(t, New().IsGibberish("abcdfgae"))
}

func TestIsGibberish_RepeatedCharacters(t *testing.T) {
	c := New()
	assert.True(t, c.IsGibberish("aaaaaaa"))
	assert.True(t, c.IsGibberish("hellooo"))
}

func TestIsGibberish_DigitsDoNotRepeatTrigger(t *testing.T) {
	assert.False(t, New().IsGibberish("2000"))
}

func TestIsGibberish_RareBigram(t *testing.T) {
	assert.True(t, New().IsGibberish("tazjo"))
}

func TestIsGibberish_NoAffixWithConsonantCluster(t *testing.T) {
	assert.True(t, New().IsGibberish("bartkvol"))
}

func TestIsGibberish_UnpronounceableSingleWord(t *testing.T) {
	assert.True(t, New().IsGibberish("bakomilu"))
}

func TestLongestConsonantRun(t *testing.T) {
	assert.Equal(t, 0, longestConsonantRun(""))
	assert.Equal(t, 4, longestConsonantRun("schmidt"))
	assert.Equal(t, 2, longestConsonantRun("ab cd ef"))
}

func TestIsGibberishText_LongTextToleratesOddTokens(t *testing.T) {
	c := New()
	assert.False(t, c.IsGibberishText("Built the design system in CSS/SCSS and React for 3 products"))
	assert.False(t, c.IsGibberishText("Développement d'applications web pour des clients grands comptes"))
}

func TestIsGibberishText_MostlyNoise(t *testing.T) {
	c := New()
	assert.True(t, c.IsGibberishText("bcdfgh xkcdfg plmnbv trzzzk done"))
	assert.True(t, c.IsGibberishText("hello there this is a qwerty test"))
}

func TestIsGibberishText_ShortFragment(t *testing.T) {
	c := New()
	assert.True(t, c.IsGibberishText("asdfgh"))
	assert.False(t, c.IsGibberishText("Lead developer"))
}
