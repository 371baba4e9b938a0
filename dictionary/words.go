package dictionary

// Size is the number of words in a dictionary, one per byte value.
const Size = 256

// Words is the fixed byteword dictionary. Words[b] is the word for byte value b.
//
// The first and last letters of every word form a unique pair, which makes the
// two-letter minimal form and the reverse Index unambiguous.
var Words = [Size]string{
	"able", "acid", "also", "apex", "aqua", "arch", "atom", "aunt", "away", "axis", "back", "bald", "barn", "belt", "beta", "bias", // 0x00
	"blue", "body", "brag", "brew", "bulb", "buzz", "calm", "cash", "cats", "chef", "city", "claw", "code", "cola", "cook", "cost", // 0x10
	"crux", "curl", "cusp", "cyan", "dark", "data", "days", "deli", "dice", "diet", "door", "down", "draw", "drop", "drum", "dull", // 0x20
	"duty", "each", "easy", "echo", "edge", "epic", "even", "exam", "exit", "eyes", "fact", "fair", "fern", "figs", "film", "fish", // 0x30
	"fizz", "flap", "flew", "flux", "foxy", "free", "frog", "fuel", "fund", "gala", "game", "gear", "gems", "gift", "girl", "glow", // 0x40
	"good", "gray", "grim", "guru", "gush", "gyro", "half", "hang", "hard", "hawk", "heat", "help", "high", "hill", "holy", "hope", // 0x50
	"horn", "huts", "iced", "idea", "idle", "inch", "inky", "into", "iris", "iron", "item", "jade", "jazz", "join", "jolt", "jowl", // 0x60
	"judo", "jugs", "jump", "junk", "jury", "keep", "keno", "kept", "keys", "kick", "kiln", "king", "kite", "kiwi", "knob", "lamb", // 0x70
	"lava", "lazy", "leaf", "legs", "liar", "list", "limp", "lion", "logo", "loud", "love", "luau", "luck", "lung", "main", "many", // 0x80
	"math", "maze", "memo", "menu", "meow", "mild", "mint", "miss", "monk", "nail", "navy", "need", "news", "next", "noon", "note", // 0x90
	"numb", "obey", "oboe", "omit", "onyx", "open", "oval", "owls", "paid", "part", "peck", "play", "plus", "poem", "pool", "pose", // 0xa0
	"puff", "puma", "purr", "quad", "quiz", "race", "ramp", "real", "redo", "rich", "road", "rock", "roof", "ruby", "ruin", "runs", // 0xb0
	"rust", "safe", "saga", "scar", "sets", "silk", "skew", "slot", "soap", "solo", "song", "stub", "surf", "swan", "taco", "task", // 0xc0
	"taxi", "tent", "tied", "time", "tiny", "toil", "tomb", "toys", "trip", "tuna", "twin", "ugly", "undo", "unit", "urge", "user", // 0xd0
	"vast", "very", "veto", "vial", "vibe", "view", "visa", "void", "vows", "wall", "wand", "warm", "wasp", "wave", "waxy", "webs", // 0xe0
	"what", "when", "whiz", "wolf", "work", "yank", "yawn", "yell", "yoga", "yurt", "zaps", "zest", "zinc", "zone", "zoom", "zero", // 0xf0
}

// Word returns the four-letter word for b.
func Word(b byte) string {
	return Words[b]
}

// MinimalWord returns the two-letter minimal form of b: the first and last letters of its word.
func MinimalWord(b byte) string {
	w := Words[b]

	return w[:1] + w[3:]
}
