package strutil_test

import (
	"testing"

	"github.com/Alexkhokhlow/core-go-101/strutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcat(t *testing.T) {
	assert.Equal(t, "aabb", strutil.Concat("aa", "bb"))
	assert.Equal(t, "aa", strutil.Concat("aa", ""))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0, strutil.Length(""))
	assert.Equal(t, 5, strutil.Length("Hello"))
	assert.Equal(t, 2, strutil.Length("A♣"))
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hello, John Doe!", strutil.Greeting("John", "Doe"))
}

func TestExtractName(t *testing.T) {
	assert.Equal(t, "John Doe", strutil.ExtractName("Hello, John Doe!"))
	assert.Equal(t, "Chuck Norris", strutil.ExtractName("Hello, Chuck Norris!"))
}

func TestFirstChar(t *testing.T) {
	assert.Equal(t, "J", strutil.FirstChar("John Doe"))
	assert.Equal(t, "♠", strutil.FirstChar("♠K"))
	assert.Equal(t, "", strutil.FirstChar(""))
}

func TestTrimWhitespace(t *testing.T) {
	assert.Equal(t, "Abracadabra", strutil.TrimWhitespace("  Abracadabra"))
	assert.Equal(t, "cat", strutil.TrimWhitespace("cat\t"))
	assert.Equal(t, "Hello, World!", strutil.TrimWhitespace("\tHello, World! "))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, "AAAAA", strutil.Repeat("A", 5))
	assert.Equal(t, "catcatcat", strutil.Repeat("cat", 3))
	assert.Equal(t, "", strutil.Repeat("x", 0))
}

func TestRemoveFirst(t *testing.T) {
	assert.Equal(t, "To be or to be", strutil.RemoveFirst("To be or not to be", " not"))
	assert.Equal(t, "I like legends", strutil.RemoveFirst("I like legends", "end#"))
	assert.Equal(t, "ABABAB", strutil.RemoveFirst("ABABAB", "BA"))
}

func TestUnbracketTag(t *testing.T) {
	assert.Equal(t, "div", strutil.UnbracketTag("<div>"))
	assert.Equal(t, "span", strutil.UnbracketTag("<span>"))
	assert.Equal(t, "a href=\"page.html\"", strutil.UnbracketTag("<a href=\"page.html\">"))
}

func TestUpper(t *testing.T) {
	assert.Equal(t, "THUNDERSTRUCK", strutil.Upper("Thunderstruck"))
	assert.Equal(t, "ABCDEFGH", strutil.Upper("abcdefgh"))
}

func TestExtractEmails(t *testing.T) {
	assert.Equal(t,
		[]string{"angus.young@gmail.com", "brian.johnson@hotmail.com", "bon.scott@yahoo.com"},
		strutil.ExtractEmails("angus.young@gmail.com;brian.johnson@hotmail.com;bon.scott@yahoo.com"),
	)
	assert.Equal(t, []string{"info@gmail.com"}, strutil.ExtractEmails("info@gmail.com"))
	assert.Empty(t, strutil.ExtractEmails(""))
}

func TestRot13(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"hello", "uryyb"},
		{"Why did the chicken cross the road?", "Jul qvq gur puvpxra pebff gur ebnq?"},
		{"Gb trg gb gur bgure fvqr!", "To get to the other side!"},
		{"NOPQRSTUVWXYZABCDEFGHIJKLM", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, strutil.Rot13(c.in))
	}
}

func TestRot13RoundTrips(t *testing.T) {
	in := "Hello, World! 123 ♠"
	assert.Equal(t, in, strutil.Rot13(strutil.Rot13(in)))
}

func TestIsString(t *testing.T) {
	assert.True(t, strutil.IsString("test"))
	assert.True(t, strutil.IsString(""))
	assert.False(t, strutil.IsString(nil))
	assert.False(t, strutil.IsString(42))
	assert.False(t, strutil.IsString([]string{"test"}))
}

func TestRectangleString(t *testing.T) {
	got, err := strutil.RectangleString(4, 3)
	require.NoError(t, err)
	assert.Equal(t, "┌──┐\n│  │\n└──┘\n", got)

	got, err = strutil.RectangleString(6, 4)
	require.NoError(t, err)
	assert.Equal(t, "┌────┐\n│    │\n│    │\n└────┘\n", got)

	got, err = strutil.RectangleString(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "┌┐\n└┘\n", got)

	_, err = strutil.RectangleString(1, 5)
	assert.ErrorIs(t, err, strutil.ErrRectangleTooSmall)
}

func TestCardID(t *testing.T) {
	cases := []struct {
		card string
		want int
	}{
		{"A♣", 0},
		{"2♣", 1},
		{"K♣", 12},
		{"A♦", 13},
		{"10♥", 35},
		{"Q♠", 50},
		{"K♠", 51},
		{"Z♣", -1},
		{"A♧", -1},
		{"", -1},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, strutil.CardID(c.card), "card %q", c.card)
	}
}
