package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileArgs(t *testing.T) {
	profile, err := parseProfileArgs("Alex | teal | red panda | ramen | retro hardware, synthwave")
	require.NoError(t, err)

	assert.Equal(t, "Alex", profile.Name)
	assert.Equal(t, "teal", profile.FavoriteColor)
	assert.Equal(t, "red panda", profile.FavoriteAnimal)
	assert.Equal(t, "ramen", profile.FavoriteFood)
	assert.Equal(t, "retro hardware, synthwave", profile.Interests)
}

func TestParseProfileArgsRejectsWrongFieldCount(t *testing.T) {
	_, err := parseProfileArgs("Alex | teal | red panda")
	assert.Error(t, err)

	_, err = parseProfileArgs("a | b | c | d | e | f")
	assert.Error(t, err)

	_, err = parseProfileArgs("")
	assert.Error(t, err)
}

func TestParseProfileArgsRejectsEmptyField(t *testing.T) {
	_, err := parseProfileArgs("Alex | | red panda | ramen | games")
	assert.Error(t, err)
}
