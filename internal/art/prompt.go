package art

import (
	"fmt"
	"math/rand"

	"netchan/internal/storage"
)

var cuteAdjectives = []string{
	"fluffy", "sparkly", "adorable", "sweet", "charming", "gentle", "playful",
	"soft", "lovely", "cute", "happy", "bright", "snuggly", "fuzzy", "cheerful",
	"whimsical", "delightful", "tender", "shiny", "rosy", "warm", "peppy",
	"breezy", "magical", "giddy", "colorful", "lovable", "bouncy", "calm",
	"pretty", "cozy", "glowy", "smiley", "sparkling", "friendly", "graceful",
	"carefree", "dazzling", "snug", "dreamy", "sunny", "puffy", "jolly", "mellow",
}

var cuteNouns = []string{
	"kitten", "puppy", "bunny", "cloud", "star", "bear", "butterfly", "cupcake",
	"flower", "chick", "cookie", "birdie", "deer", "panda", "frog", "koala",
	"rainbow", "daisy", "lamb", "honeybee", "squirrel", "sunflower", "pony",
	"snowflake", "sparkle", "dream", "lollipop", "rose", "buttercup", "jellybean",
	"puddle", "treasure", "snail",
}

var cuteObjects = []string{
	"heart", "balloon", "cupcake", "cookie", "star", "cloud", "teddy bear",
	"rainbow", "flower", "blanket", "butterfly", "headband", "paintbrush",
	"camera", "bookmark", "scarf", "bowtie", "sticker", "guitar", "mug",
	"glitter", "note", "book", "keychain", "coin", "bracelet", "flowerpot",
	"diary", "mirror", "snow globe", "painting", "clock",
}

// profileOdds is the chance a slot keeps a random word rather than the
// user's favourite.
const profileOdds = 0.7

// BuildPrompt assembles the kawaii art prompt, mixing in the user's
// favourites when a profile exists.
func BuildPrompt(profile *storage.Profile, rng *rand.Rand) string {
	adjective := cuteAdjectives[rng.Intn(len(cuteAdjectives))]
	noun := cuteNouns[rng.Intn(len(cuteNouns))]
	object := cuteObjects[rng.Intn(len(cuteObjects))]

	if profile != nil {
		if rng.Float64() >= profileOdds && profile.FavoriteColor != "" {
			adjective = profile.FavoriteColor
		}
		if rng.Float64() >= profileOdds && profile.FavoriteAnimal != "" {
			noun = profile.FavoriteAnimal
		}
		if rng.Float64() >= profileOdds && profile.FavoriteFood != "" {
			object = profile.FavoriteFood
		}
	}

	return fmt.Sprintf("a %s %s with a %s in a very kawaii style", adjective, noun, object)
}
