package emojis

// This file has been generated -- you probably should NOT EDIT IT !
//
// Generated by internal/generator from:
//    https://unicode.org/Public/emoji/13.1/emoji-test.txt
//    https://github.com/github/gemoji/raw/v4.0.0.rc3/db/emoji.json

// The CLDR emoji groups, in source order. The synthetic group
// "Component" is excluded from the table and gets no constant.
const (
	SmileysAndEmotion Group = iota
	PeopleAndBody
	AnimalsAndNature
	FoodAndDrink
	TravelAndPlaces
	Activities
	Objects
	Symbols
	Flags
)

var groupNames = [...]string{
	"Smileys & Emotion",
	"People & Body",
	"Animals & Nature",
	"Food & Drink",
	"Travel & Places",
	"Activities",
	"Objects",
	"Symbols",
	"Flags",
}

var emojiTable = [...]Emoji{

	// Smileys & Emotion
	{emoji: "\U0001f600", name: "grinning face", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"grinning"}},
	{emoji: "\U0001f603", name: "grinning face with big eyes", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"smiley"}},
	{emoji: "\U0001f604", name: "grinning face with smiling eyes", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"smile"}},
	{emoji: "\U0001f601", name: "beaming face with smiling eyes", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"grin"}},
	{emoji: "\U0001f606", name: "grinning squinting face", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"laughing", "satisfied"}},
	{emoji: "\U0001f605", name: "grinning face with sweat", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"sweat_smile"}},
	{emoji: "\U0001f923", name: "rolling on the floor laughing", version: UnicodeVersion{3, 0}, group: SmileysAndEmotion, aliases: []string{"rofl"}},
	{emoji: "\U0001f602", name: "face with tears of joy", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"joy"}},
	{emoji: "\U0001f642", name: "slightly smiling face", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"slightly_smiling_face"}},
	{emoji: "\U0001f643", name: "upside-down face", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"upside_down_face"}},
	{emoji: "\U0001f609", name: "winking face", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"wink"}},
	{emoji: "\U0001f60a", name: "smiling face with smiling eyes", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"blush"}},
	{emoji: "\U0001f607", name: "smiling face with halo", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"innocent"}},
	{emoji: "\U0001f970", name: "smiling face with hearts", version: UnicodeVersion{11, 0}, group: SmileysAndEmotion, aliases: []string{"smiling_face_with_three_hearts"}},
	{emoji: "\U0001f60d", name: "smiling face with heart-eyes", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"heart_eyes"}},
	{emoji: "\U0001f929", name: "star-struck", version: UnicodeVersion{5, 0}, group: SmileysAndEmotion, aliases: []string{"star_struck"}},
	{emoji: "\U0001f618", name: "face blowing a kiss", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"kissing_heart"}},
	{emoji: "\u263a\ufe0f", name: "smiling face", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"relaxed"}},
	{emoji: "\U0001f60b", name: "face savoring food", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"yum"}},
	{emoji: "\U0001f61b", name: "face with tongue", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"stuck_out_tongue"}},
	{emoji: "\U0001f917", name: "hugging face", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"hugs"}},
	{emoji: "\U0001f914", name: "thinking face", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"thinking"}},
	{emoji: "\U0001f610", name: "neutral face", version: UnicodeVersion{0, 7}, group: SmileysAndEmotion, aliases: []string{"neutral_face"}},
	{emoji: "\U0001f644", name: "face with rolling eyes", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"roll_eyes"}},
	{emoji: "\U0001f634", name: "sleeping face", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"sleeping"}},
	{emoji: "\U0001f912", name: "face with thermometer", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"face_with_thermometer"}},
	{emoji: "\U0001f920", name: "cowboy hat face", version: UnicodeVersion{3, 0}, group: SmileysAndEmotion, aliases: []string{"cowboy_hat_face"}},
	{emoji: "\U0001f60e", name: "smiling face with sunglasses", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"sunglasses"}},
	{emoji: "\U0001f913", name: "nerd face", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"nerd_face"}},
	{emoji: "\U0001f9d0", name: "face with monocle", version: UnicodeVersion{5, 0}, group: SmileysAndEmotion, aliases: []string{"monocle_face"}},
	{emoji: "\U0001f615", name: "confused face", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"confused"}},
	{emoji: "\U0001f641", name: "slightly frowning face", version: UnicodeVersion{1, 0}, group: SmileysAndEmotion, aliases: []string{"slightly_frowning_face"}},
	{emoji: "\u2639\ufe0f", name: "frowning face", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"frowning_face"}},
	{emoji: "\U0001f621", name: "pouting face", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"rage", "pout"}},
	{emoji: "\U0001f620", name: "angry face", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"angry"}},
	{emoji: "\U0001f921", name: "clown face", version: UnicodeVersion{3, 0}, group: SmileysAndEmotion, aliases: []string{"clown_face"}},
	{emoji: "\U0001f4a9", name: "pile of poo", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"hankey", "poop", "shit"}},
	{emoji: "\U0001f63a", name: "grinning cat", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"smiley_cat"}},
	{emoji: "\U0001f648", name: "see-no-evil monkey", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"see_no_evil"}},
	{emoji: "\U0001f48b", name: "kiss mark", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"kiss"}},
	{emoji: "\u2764\ufe0f", name: "red heart", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"heart"}},
	{emoji: "\U0001f494", name: "broken heart", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"broken_heart"}},
	{emoji: "\U0001f4af", name: "hundred points", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"100"}},
	{emoji: "\U0001f4a5", name: "collision", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"boom", "collision"}},
	{emoji: "\U0001f4ab", name: "dizzy", version: UnicodeVersion{0, 6}, group: SmileysAndEmotion, aliases: []string{"dizzy"}},

	// People & Body
	{emoji: "\U0001f44b", name: "waving hand", version: UnicodeVersion{0, 6}, group: PeopleAndBody, family: skinFamily{base: 45, size: 6, tone: Default}, aliases: []string{"wave"}},
	{emoji: "\U0001f44b\U0001f3fb", name: "waving hand: light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 45, size: 6, tone: Light}},
	{emoji: "\U0001f44b\U0001f3fc", name: "waving hand: medium-light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 45, size: 6, tone: MediumLight}},
	{emoji: "\U0001f44b\U0001f3fd", name: "waving hand: medium skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 45, size: 6, tone: Medium}},
	{emoji: "\U0001f44b\U0001f3fe", name: "waving hand: medium-dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 45, size: 6, tone: MediumDark}},
	{emoji: "\U0001f44b\U0001f3ff", name: "waving hand: dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 45, size: 6, tone: Dark}},
	{emoji: "\u270b", name: "raised hand", version: UnicodeVersion{0, 6}, group: PeopleAndBody, family: skinFamily{base: 51, size: 6, tone: Default}, aliases: []string{"hand", "raised_hand"}},
	{emoji: "\u270b\U0001f3fb", name: "raised hand: light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 51, size: 6, tone: Light}},
	{emoji: "\u270b\U0001f3fc", name: "raised hand: medium-light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 51, size: 6, tone: MediumLight}},
	{emoji: "\u270b\U0001f3fd", name: "raised hand: medium skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 51, size: 6, tone: Medium}},
	{emoji: "\u270b\U0001f3fe", name: "raised hand: medium-dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 51, size: 6, tone: MediumDark}},
	{emoji: "\u270b\U0001f3ff", name: "raised hand: dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 51, size: 6, tone: Dark}},
	{emoji: "\U0001f596", name: "vulcan salute", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 57, size: 6, tone: Default}, aliases: []string{"vulcan_salute"}},
	{emoji: "\U0001f596\U0001f3fb", name: "vulcan salute: light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 57, size: 6, tone: Light}},
	{emoji: "\U0001f596\U0001f3fc", name: "vulcan salute: medium-light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 57, size: 6, tone: MediumLight}},
	{emoji: "\U0001f596\U0001f3fd", name: "vulcan salute: medium skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 57, size: 6, tone: Medium}},
	{emoji: "\U0001f596\U0001f3fe", name: "vulcan salute: medium-dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 57, size: 6, tone: MediumDark}},
	{emoji: "\U0001f596\U0001f3ff", name: "vulcan salute: dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 57, size: 6, tone: Dark}},
	{emoji: "\U0001f44d", name: "thumbs up", version: UnicodeVersion{0, 6}, group: PeopleAndBody, family: skinFamily{base: 63, size: 6, tone: Default}, aliases: []string{"+1", "thumbsup"}},
	{emoji: "\U0001f44d\U0001f3fb", name: "thumbs up: light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 63, size: 6, tone: Light}},
	{emoji: "\U0001f44d\U0001f3fc", name: "thumbs up: medium-light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 63, size: 6, tone: MediumLight}},
	{emoji: "\U0001f44d\U0001f3fd", name: "thumbs up: medium skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 63, size: 6, tone: Medium}},
	{emoji: "\U0001f44d\U0001f3fe", name: "thumbs up: medium-dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 63, size: 6, tone: MediumDark}},
	{emoji: "\U0001f44d\U0001f3ff", name: "thumbs up: dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 63, size: 6, tone: Dark}},
	{emoji: "\U0001f44e", name: "thumbs down", version: UnicodeVersion{0, 6}, group: PeopleAndBody, family: skinFamily{base: 69, size: 6, tone: Default}, aliases: []string{"-1", "thumbsdown"}},
	{emoji: "\U0001f44e\U0001f3fb", name: "thumbs down: light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 69, size: 6, tone: Light}},
	{emoji: "\U0001f44e\U0001f3fc", name: "thumbs down: medium-light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 69, size: 6, tone: MediumLight}},
	{emoji: "\U0001f44e\U0001f3fd", name: "thumbs down: medium skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 69, size: 6, tone: Medium}},
	{emoji: "\U0001f44e\U0001f3fe", name: "thumbs down: medium-dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 69, size: 6, tone: MediumDark}},
	{emoji: "\U0001f44e\U0001f3ff", name: "thumbs down: dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 69, size: 6, tone: Dark}},
	{emoji: "\U0001f44f", name: "clapping hands", version: UnicodeVersion{0, 6}, group: PeopleAndBody, family: skinFamily{base: 75, size: 6, tone: Default}, aliases: []string{"clap"}},
	{emoji: "\U0001f44f\U0001f3fb", name: "clapping hands: light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 75, size: 6, tone: Light}},
	{emoji: "\U0001f44f\U0001f3fc", name: "clapping hands: medium-light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 75, size: 6, tone: MediumLight}},
	{emoji: "\U0001f44f\U0001f3fd", name: "clapping hands: medium skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 75, size: 6, tone: Medium}},
	{emoji: "\U0001f44f\U0001f3fe", name: "clapping hands: medium-dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 75, size: 6, tone: MediumDark}},
	{emoji: "\U0001f44f\U0001f3ff", name: "clapping hands: dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 75, size: 6, tone: Dark}},
	{emoji: "\U0001f64c", name: "raising hands", version: UnicodeVersion{0, 6}, group: PeopleAndBody, family: skinFamily{base: 81, size: 6, tone: Default}, aliases: []string{"raised_hands"}},
	{emoji: "\U0001f64c\U0001f3fb", name: "raising hands: light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 81, size: 6, tone: Light}},
	{emoji: "\U0001f64c\U0001f3fc", name: "raising hands: medium-light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 81, size: 6, tone: MediumLight}},
	{emoji: "\U0001f64c\U0001f3fd", name: "raising hands: medium skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 81, size: 6, tone: Medium}},
	{emoji: "\U0001f64c\U0001f3fe", name: "raising hands: medium-dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 81, size: 6, tone: MediumDark}},
	{emoji: "\U0001f64c\U0001f3ff", name: "raising hands: dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 81, size: 6, tone: Dark}},
	{emoji: "\U0001f91d", name: "handshake", version: UnicodeVersion{3, 0}, group: PeopleAndBody, aliases: []string{"handshake"}},
	{emoji: "\U0001f64f", name: "folded hands", version: UnicodeVersion{0, 6}, group: PeopleAndBody, family: skinFamily{base: 88, size: 6, tone: Default}, aliases: []string{"pray"}},
	{emoji: "\U0001f64f\U0001f3fb", name: "folded hands: light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 88, size: 6, tone: Light}},
	{emoji: "\U0001f64f\U0001f3fc", name: "folded hands: medium-light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 88, size: 6, tone: MediumLight}},
	{emoji: "\U0001f64f\U0001f3fd", name: "folded hands: medium skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 88, size: 6, tone: Medium}},
	{emoji: "\U0001f64f\U0001f3fe", name: "folded hands: medium-dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 88, size: 6, tone: MediumDark}},
	{emoji: "\U0001f64f\U0001f3ff", name: "folded hands: dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 88, size: 6, tone: Dark}},
	{emoji: "\U0001f4aa", name: "flexed biceps", version: UnicodeVersion{0, 6}, group: PeopleAndBody, family: skinFamily{base: 94, size: 6, tone: Default}, aliases: []string{"muscle"}},
	{emoji: "\U0001f4aa\U0001f3fb", name: "flexed biceps: light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 94, size: 6, tone: Light}},
	{emoji: "\U0001f4aa\U0001f3fc", name: "flexed biceps: medium-light skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 94, size: 6, tone: MediumLight}},
	{emoji: "\U0001f4aa\U0001f3fd", name: "flexed biceps: medium skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 94, size: 6, tone: Medium}},
	{emoji: "\U0001f4aa\U0001f3fe", name: "flexed biceps: medium-dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 94, size: 6, tone: MediumDark}},
	{emoji: "\U0001f4aa\U0001f3ff", name: "flexed biceps: dark skin tone", version: UnicodeVersion{1, 0}, group: PeopleAndBody, family: skinFamily{base: 94, size: 6, tone: Dark}},
	{emoji: "\U0001f9d1\u200d\U0001f91d\u200d\U0001f9d1", name: "people holding hands", version: UnicodeVersion{12, 0}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: Default}, aliases: []string{"people_holding_hands"}},
	{emoji: "\U0001f9d1\U0001f3fb\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fb", name: "people holding hands: light skin tone", version: UnicodeVersion{12, 0}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: Light}},
	{emoji: "\U0001f9d1\U0001f3fc\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fc", name: "people holding hands: medium-light skin tone", version: UnicodeVersion{12, 0}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumLight}},
	{emoji: "\U0001f9d1\U0001f3fd\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fd", name: "people holding hands: medium skin tone", version: UnicodeVersion{12, 0}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: Medium}},
	{emoji: "\U0001f9d1\U0001f3fe\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fe", name: "people holding hands: medium-dark skin tone", version: UnicodeVersion{12, 0}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumDark}},
	{emoji: "\U0001f9d1\U0001f3ff\u200d\U0001f91d\u200d\U0001f9d1\U0001f3ff", name: "people holding hands: dark skin tone", version: UnicodeVersion{12, 0}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: Dark}},
	{emoji: "\U0001f9d1\U0001f3fb\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fc", name: "people holding hands: light skin tone, medium-light skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: LightAndMediumLight}},
	{emoji: "\U0001f9d1\U0001f3fb\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fd", name: "people holding hands: light skin tone, medium skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: LightAndMedium}},
	{emoji: "\U0001f9d1\U0001f3fb\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fe", name: "people holding hands: light skin tone, medium-dark skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: LightAndMediumDark}},
	{emoji: "\U0001f9d1\U0001f3fb\u200d\U0001f91d\u200d\U0001f9d1\U0001f3ff", name: "people holding hands: light skin tone, dark skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: LightAndDark}},
	{emoji: "\U0001f9d1\U0001f3fc\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fb", name: "people holding hands: medium-light skin tone, light skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumLightAndLight}},
	{emoji: "\U0001f9d1\U0001f3fc\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fd", name: "people holding hands: medium-light skin tone, medium skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumLightAndMedium}},
	{emoji: "\U0001f9d1\U0001f3fc\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fe", name: "people holding hands: medium-light skin tone, medium-dark skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumLightAndMediumDark}},
	{emoji: "\U0001f9d1\U0001f3fc\u200d\U0001f91d\u200d\U0001f9d1\U0001f3ff", name: "people holding hands: medium-light skin tone, dark skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumLightAndDark}},
	{emoji: "\U0001f9d1\U0001f3fd\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fb", name: "people holding hands: medium skin tone, light skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumAndLight}},
	{emoji: "\U0001f9d1\U0001f3fd\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fc", name: "people holding hands: medium skin tone, medium-light skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumAndMediumLight}},
	{emoji: "\U0001f9d1\U0001f3fd\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fe", name: "people holding hands: medium skin tone, medium-dark skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumAndMediumDark}},
	{emoji: "\U0001f9d1\U0001f3fd\u200d\U0001f91d\u200d\U0001f9d1\U0001f3ff", name: "people holding hands: medium skin tone, dark skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumAndDark}},
	{emoji: "\U0001f9d1\U0001f3fe\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fb", name: "people holding hands: medium-dark skin tone, light skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumDarkAndLight}},
	{emoji: "\U0001f9d1\U0001f3fe\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fc", name: "people holding hands: medium-dark skin tone, medium-light skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumDarkAndMediumLight}},
	{emoji: "\U0001f9d1\U0001f3fe\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fd", name: "people holding hands: medium-dark skin tone, medium skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumDarkAndMedium}},
	{emoji: "\U0001f9d1\U0001f3fe\u200d\U0001f91d\u200d\U0001f9d1\U0001f3ff", name: "people holding hands: medium-dark skin tone, dark skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: MediumDarkAndDark}},
	{emoji: "\U0001f9d1\U0001f3ff\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fb", name: "people holding hands: dark skin tone, light skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: DarkAndLight}},
	{emoji: "\U0001f9d1\U0001f3ff\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fc", name: "people holding hands: dark skin tone, medium-light skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: DarkAndMediumLight}},
	{emoji: "\U0001f9d1\U0001f3ff\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fd", name: "people holding hands: dark skin tone, medium skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: DarkAndMedium}},
	{emoji: "\U0001f9d1\U0001f3ff\u200d\U0001f91d\u200d\U0001f9d1\U0001f3fe", name: "people holding hands: dark skin tone, medium-dark skin tone", version: UnicodeVersion{12, 1}, group: PeopleAndBody, family: skinFamily{base: 100, size: 26, tone: DarkAndMediumDark}},

	// Animals & Nature
	{emoji: "\U0001f435", name: "monkey face", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"monkey_face"}},
	{emoji: "\U0001f412", name: "monkey", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"monkey"}},
	{emoji: "\U0001f98d", name: "gorilla", version: UnicodeVersion{3, 0}, group: AnimalsAndNature, aliases: []string{"gorilla"}},
	{emoji: "\U0001f436", name: "dog face", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"dog"}},
	{emoji: "\U0001f415", name: "dog", version: UnicodeVersion{0, 7}, group: AnimalsAndNature, aliases: []string{"dog2"}},
	{emoji: "\U0001f429", name: "poodle", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"poodle"}},
	{emoji: "\U0001f43a", name: "wolf", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"wolf"}},
	{emoji: "\U0001f98a", name: "fox", version: UnicodeVersion{3, 0}, group: AnimalsAndNature, aliases: []string{"fox_face"}},
	{emoji: "\U0001f431", name: "cat face", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"cat"}},
	{emoji: "\U0001f408", name: "cat", version: UnicodeVersion{0, 7}, group: AnimalsAndNature, aliases: []string{"cat2"}},
	{emoji: "\U0001f981", name: "lion", version: UnicodeVersion{1, 0}, group: AnimalsAndNature, aliases: []string{"lion"}},
	{emoji: "\U0001f42e", name: "cow face", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"cow"}},
	{emoji: "\U0001f414", name: "chicken", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"chicken"}},
	{emoji: "\U0001f427", name: "penguin", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"penguin"}},
	{emoji: "\U0001f985", name: "eagle", version: UnicodeVersion{3, 0}, group: AnimalsAndNature, aliases: []string{"eagle"}},
	{emoji: "\U0001f41b", name: "bug", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"bug"}},
	{emoji: "\U0001f98b", name: "butterfly", version: UnicodeVersion{3, 0}, group: AnimalsAndNature, aliases: []string{"butterfly"}},
	{emoji: "\U0001f339", name: "rose", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"rose"}},
	{emoji: "\U0001f33b", name: "sunflower", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"sunflower"}},
	{emoji: "\U0001f332", name: "evergreen tree", version: UnicodeVersion{1, 0}, group: AnimalsAndNature, aliases: []string{"evergreen_tree"}},
	{emoji: "\U0001f340", name: "four leaf clover", version: UnicodeVersion{0, 6}, group: AnimalsAndNature, aliases: []string{"four_leaf_clover"}},

	// Food & Drink
	{emoji: "\U0001f347", name: "grapes", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"grapes"}},
	{emoji: "\U0001f348", name: "melon", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"melon"}},
	{emoji: "\U0001f349", name: "watermelon", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"watermelon"}},
	{emoji: "\U0001f34a", name: "tangerine", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"tangerine", "orange", "mandarin"}},
	{emoji: "\U0001f34b", name: "lemon", version: UnicodeVersion{1, 0}, group: FoodAndDrink, aliases: []string{"lemon"}},
	{emoji: "\U0001f34c", name: "banana", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"banana"}},
	{emoji: "\U0001f34d", name: "pineapple", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"pineapple"}},
	{emoji: "\U0001f96d", name: "mango", version: UnicodeVersion{11, 0}, group: FoodAndDrink, aliases: []string{"mango"}},
	{emoji: "\U0001f34e", name: "red apple", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"apple"}},
	{emoji: "\U0001f354", name: "hamburger", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"hamburger"}},
	{emoji: "\U0001f355", name: "pizza", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"pizza"}},
	{emoji: "\U0001f363", name: "sushi", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"sushi"}},
	{emoji: "\U0001f382", name: "birthday cake", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"birthday"}},
	{emoji: "\u2615", name: "hot beverage", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"coffee"}},
	{emoji: "\U0001f37a", name: "beer mug", version: UnicodeVersion{0, 6}, group: FoodAndDrink, aliases: []string{"beer"}},

	// Travel & Places
	{emoji: "\U0001f30d", name: "globe showing Europe-Africa", version: UnicodeVersion{0, 7}, group: TravelAndPlaces, aliases: []string{"earth_africa"}},
	{emoji: "\U0001f30e", name: "globe showing Americas", version: UnicodeVersion{0, 7}, group: TravelAndPlaces, aliases: []string{"earth_americas"}},
	{emoji: "\U0001f30f", name: "globe showing Asia-Australia", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"earth_asia"}},
	{emoji: "\U0001f5fa\ufe0f", name: "world map", version: UnicodeVersion{0, 7}, group: TravelAndPlaces, aliases: []string{"world_map"}},
	{emoji: "\U0001f3e0", name: "house", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"house"}},
	{emoji: "\U0001f3e5", name: "hospital", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"hospital"}},
	{emoji: "\u26ea", name: "church", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"church"}},
	{emoji: "\U0001f682", name: "locomotive", version: UnicodeVersion{1, 0}, group: TravelAndPlaces, aliases: []string{"steam_locomotive"}},
	{emoji: "\U0001f683", name: "railway car", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"railway_car"}},
	{emoji: "\U0001f697", name: "automobile", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"car", "red_car"}},
	{emoji: "\U0001f6b2", name: "bicycle", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"bike"}},
	{emoji: "\u26f5", name: "sailboat", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"boat", "sailboat"}},
	{emoji: "\U0001f6a2", name: "ship", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"ship"}},
	{emoji: "\u2708\ufe0f", name: "airplane", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"airplane"}},
	{emoji: "\U0001f681", name: "helicopter", version: UnicodeVersion{1, 0}, group: TravelAndPlaces, aliases: []string{"helicopter"}},
	{emoji: "\U0001f680", name: "rocket", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"rocket"}},
	{emoji: "\U0001f6f8", name: "flying saucer", version: UnicodeVersion{5, 0}, group: TravelAndPlaces, aliases: []string{"flying_saucer"}},
	{emoji: "\u231a", name: "watch", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"watch"}},
	{emoji: "\u23f0", name: "alarm clock", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"alarm_clock"}},
	{emoji: "\U0001f311", name: "new moon", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"new_moon"}},
	{emoji: "\U0001f319", name: "crescent moon", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"crescent_moon"}},
	{emoji: "\u2600\ufe0f", name: "sun", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"sunny"}},
	{emoji: "\U0001fa90", name: "ringed planet", version: UnicodeVersion{12, 0}, group: TravelAndPlaces, aliases: []string{"ringed_planet"}},
	{emoji: "\u2b50", name: "star", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"star"}},
	{emoji: "\U0001f31f", name: "glowing star", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"star2"}},
	{emoji: "\U0001f320", name: "shooting star", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"stars"}},
	{emoji: "\U0001f30c", name: "milky way", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"milky_way"}},
	{emoji: "\u2601\ufe0f", name: "cloud", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"cloud"}},
	{emoji: "\u26c5", name: "sun behind cloud", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"partly_sunny"}},
	{emoji: "\U0001f308", name: "rainbow", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"rainbow"}},
	{emoji: "\u2614", name: "umbrella with rain drops", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"umbrella"}},
	{emoji: "\u26a1", name: "high voltage", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"zap"}},
	{emoji: "\u2744\ufe0f", name: "snowflake", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"snowflake"}},
	{emoji: "\u2603\ufe0f", name: "snowman", version: UnicodeVersion{0, 7}, group: TravelAndPlaces, aliases: []string{"snowman_with_snow"}},
	{emoji: "\u26c4", name: "snowman without snow", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"snowman"}},
	{emoji: "\U0001f525", name: "fire", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"fire"}},
	{emoji: "\U0001f4a7", name: "droplet", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"droplet"}},
	{emoji: "\U0001f30a", name: "water wave", version: UnicodeVersion{0, 6}, group: TravelAndPlaces, aliases: []string{"ocean"}},

	// Activities
	{emoji: "\U0001f383", name: "jack-o-lantern", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"jack_o_lantern"}},
	{emoji: "\U0001f384", name: "Christmas tree", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"christmas_tree"}},
	{emoji: "\U0001f386", name: "fireworks", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"fireworks"}},
	{emoji: "\U0001f388", name: "balloon", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"balloon"}},
	{emoji: "\U0001f389", name: "party popper", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"tada"}},
	{emoji: "\U0001f3c6", name: "trophy", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"trophy"}},
	{emoji: "\u26bd", name: "soccer ball", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"soccer"}},
	{emoji: "\u26be", name: "baseball", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"baseball"}},
	{emoji: "\U0001f3c0", name: "basketball", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"basketball"}},
	{emoji: "\U0001f3be", name: "tennis", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"tennis"}},
	{emoji: "\U0001f3af", name: "direct hit", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"dart"}},
	{emoji: "\U0001f3ae", name: "video game", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"video_game"}},
	{emoji: "\U0001f3b2", name: "game die", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"game_die"}},
	{emoji: "\u265f\ufe0f", name: "chess pawn", version: UnicodeVersion{11, 0}, group: Activities, aliases: []string{"chess_pawn"}},
	{emoji: "\U0001f3a8", name: "artist palette", version: UnicodeVersion{0, 6}, group: Activities, aliases: []string{"art"}},

	// Objects
	{emoji: "\U0001f453", name: "glasses", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"eyeglasses"}},
	{emoji: "\U0001f451", name: "crown", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"crown"}},
	{emoji: "\U0001f3b5", name: "musical note", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"musical_note"}},
	{emoji: "\U0001f3b8", name: "guitar", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"guitar"}},
	{emoji: "\U0001f4f1", name: "mobile phone", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"iphone"}},
	{emoji: "\u260e\ufe0f", name: "telephone", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"phone", "telephone"}},
	{emoji: "\U0001f4bb", name: "laptop", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"computer"}},
	{emoji: "\u2328\ufe0f", name: "keyboard", version: UnicodeVersion{1, 0}, group: Objects, aliases: []string{"keyboard"}},
	{emoji: "\U0001f4a1", name: "light bulb", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"bulb"}},
	{emoji: "\U0001f4f7", name: "camera", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"camera"}},
	{emoji: "\U0001f4da", name: "books", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"books"}},
	{emoji: "\U0001f4d6", name: "open book", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"book", "open_book"}},
	{emoji: "\U0001f4b0", name: "money bag", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"moneybag"}},
	{emoji: "\u2709\ufe0f", name: "envelope", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"email", "envelope"}},
	{emoji: "\u270f\ufe0f", name: "pencil", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"pencil2"}},
	{emoji: "\U0001f58a\ufe0f", name: "pen", version: UnicodeVersion{0, 7}, group: Objects, aliases: []string{"pen"}},
	{emoji: "\U0001f4ce", name: "paperclip", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"paperclip"}},
	{emoji: "\U0001f512", name: "locked", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"lock"}},
	{emoji: "\U0001f528", name: "hammer", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"hammer"}},
	{emoji: "\U0001f527", name: "wrench", version: UnicodeVersion{0, 6}, group: Objects, aliases: []string{"wrench"}},
	{emoji: "\U0001f52d", name: "telescope", version: UnicodeVersion{1, 0}, group: Objects, aliases: []string{"telescope"}},
	{emoji: "\U0001fa91", name: "chair", version: UnicodeVersion{12, 0}, group: Objects, aliases: []string{"chair"}},

	// Symbols
	{emoji: "\U0001f3e7", name: "ATM sign", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"atm"}},
	{emoji: "\u267f", name: "wheelchair symbol", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"wheelchair"}},
	{emoji: "\u26a0\ufe0f", name: "warning", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"warning"}},
	{emoji: "\u26d4", name: "no entry", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"no_entry"}},
	{emoji: "\U0001f6ab", name: "prohibited", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"no_entry_sign"}},
	{emoji: "\u2b06\ufe0f", name: "up arrow", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"arrow_up"}},
	{emoji: "\u27a1\ufe0f", name: "right arrow", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"arrow_right"}},
	{emoji: "\u2721\ufe0f", name: "star of David", version: UnicodeVersion{0, 7}, group: Symbols, aliases: []string{"star_of_david"}},
	{emoji: "\u262e\ufe0f", name: "peace symbol", version: UnicodeVersion{1, 0}, group: Symbols, aliases: []string{"peace_symbol"}},
	{emoji: "\U0001f52f", name: "dotted six-pointed star", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"six_pointed_star"}},
	{emoji: "\u25b6\ufe0f", name: "play button", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"arrow_forward"}},
	{emoji: "\u2716\ufe0f", name: "multiply", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"heavy_multiplication_x"}},
	{emoji: "\u2049\ufe0f", name: "exclamation question mark", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"interrobang"}},
	{emoji: "\U0001f4b2", name: "heavy dollar sign", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"heavy_dollar_sign"}},
	{emoji: "\u2714\ufe0f", name: "check mark", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"heavy_check_mark"}},
	{emoji: "\u274c", name: "cross mark", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"x"}},
	{emoji: "\u2753", name: "question mark", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"question"}},
	{emoji: "\u2757", name: "exclamation mark", version: UnicodeVersion{0, 6}, group: Symbols, aliases: []string{"exclamation", "heavy_exclamation_mark"}},

	// Flags
	{emoji: "\U0001f3c1", name: "chequered flag", version: UnicodeVersion{0, 6}, group: Flags, aliases: []string{"checkered_flag"}},
	{emoji: "\U0001f6a9", name: "triangular flag", version: UnicodeVersion{0, 6}, group: Flags, aliases: []string{"triangular_flag_on_post"}},
	{emoji: "\U0001f38c", name: "crossed flags", version: UnicodeVersion{0, 6}, group: Flags, aliases: []string{"crossed_flags"}},
	{emoji: "\U0001f3f4", name: "black flag", version: UnicodeVersion{1, 0}, group: Flags, aliases: []string{"black_flag"}},
	{emoji: "\U0001f3f3\ufe0f", name: "white flag", version: UnicodeVersion{0, 7}, group: Flags, aliases: []string{"white_flag"}},
	{emoji: "\U0001f3f3\ufe0f\u200d\U0001f308", name: "rainbow flag", version: UnicodeVersion{4, 0}, group: Flags, aliases: []string{"rainbow_flag"}},
	{emoji: "\U0001f3f4\u200d\u2620\ufe0f", name: "pirate flag", version: UnicodeVersion{11, 0}, group: Flags, aliases: []string{"pirate_flag"}},
	{emoji: "\U0001f1e9\U0001f1ea", name: "flag: Germany", version: UnicodeVersion{0, 6}, group: Flags, aliases: []string{"de"}},
	{emoji: "\U0001f1ec\U0001f1e7", name: "flag: United Kingdom", version: UnicodeVersion{0, 6}, group: Flags, aliases: []string{"gb", "uk"}},
	{emoji: "\U0001f1fa\U0001f1f8", name: "flag: United States", version: UnicodeVersion{0, 6}, group: Flags, aliases: []string{"us"}},
	{emoji: "\U0001f3f4\U000e0067\U000e0062\U000e0065\U000e006e\U000e0067\U000e007f", name: "flag: England", version: UnicodeVersion{5, 0}, group: Flags, aliases: []string{"england"}},
}

// Minimally-qualified and unqualified sequences, keyed to the sequence of
// the fully-qualified record they resolve to.
var emojiVariations = map[string]string{
	"\u263a": "\u263a\ufe0f",
	"\u2639": "\u2639\ufe0f",
	"\u2764": "\u2764\ufe0f",
	"\U0001f5fa": "\U0001f5fa\ufe0f",
	"\u2708": "\u2708\ufe0f",
	"\u2600": "\u2600\ufe0f",
	"\u2601": "\u2601\ufe0f",
	"\u2744": "\u2744\ufe0f",
	"\u2603": "\u2603\ufe0f",
	"\u265f": "\u265f\ufe0f",
	"\u260e": "\u260e\ufe0f",
	"\u2328": "\u2328\ufe0f",
	"\u2709": "\u2709\ufe0f",
	"\u270f": "\u270f\ufe0f",
	"\U0001f58a": "\U0001f58a\ufe0f",
	"\u26a0": "\u26a0\ufe0f",
	"\u2b06": "\u2b06\ufe0f",
	"\u27a1": "\u27a1\ufe0f",
	"\u2721": "\u2721\ufe0f",
	"\u262e": "\u262e\ufe0f",
	"\u25b6": "\u25b6\ufe0f",
	"\u2716": "\u2716\ufe0f",
	"\u2049": "\u2049\ufe0f",
	"\u2714": "\u2714\ufe0f",
	"\U0001f3f3": "\U0001f3f3\ufe0f",
	"\U0001f3f3\u200d\U0001f308": "\U0001f3f3\ufe0f\u200d\U0001f308",
	"\U0001f3f4\u200d\u2620": "\U0001f3f4\u200d\u2620\ufe0f",
}
