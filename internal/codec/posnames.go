package codec

import (
	"strings"

	"github.com/loftafi/praxis-go/internal/parsing"
)

// posNameAliases lists the human-readable part-of-speech tokens the text
// format accepts, keyed by part of speech; the first spelling listed is
// the one FormatPOSName writes. posByNormalizedName re-keys every spelling
// by its lowercase form with spaces and underscores removed ("ProperNoun",
// "Proper Noun" and "proper_noun" all normalize to "propernoun").
var posNameAliases = map[parsing.PartOfSpeech][]string{
	parsing.POSUnknown:                 {"Unknown", ""},
	parsing.POSParticle:                {"Particle"},
	parsing.POSVerb:                    {"Verb"},
	parsing.POSNoun:                    {"Noun"},
	parsing.POSAdjective:               {"Adjective"},
	parsing.POSAdverb:                  {"Adverb"},
	parsing.POSConjunction:             {"Conjunction"},
	parsing.POSProperNoun:              {"ProperNoun", "Proper Noun", "proper_noun"},
	parsing.POSPreposition:             {"Preposition"},
	parsing.POSConditional:             {"Conditional"},
	parsing.POSArticle:                 {"Article"},
	parsing.POSInterjection:            {"Interjection"},
	parsing.POSPronoun:                 {"Pronoun"},
	parsing.POSPersonalPronoun:         {"PersonalPronoun", "Personal Pronoun", "personal_pronoun"},
	parsing.POSPossessivePronoun:       {"PossessivePronoun", "Possessive Pronoun", "possessive_pronoun"},
	parsing.POSRelativePronoun:         {"RelativePronoun", "Relative Pronoun", "relative_pronoun"},
	parsing.POSDemonstrativePronoun:    {"DemonstrativePronoun", "Demonstrative Pronoun", "demonstrative_pronoun"},
	parsing.POSReciprocalPronoun:       {"ReciprocalPronoun", "Reciprocal Pronoun", "reciprocal_pronoun"},
	parsing.POSReflexivePronoun:        {"ReflexivePronoun", "Reflexive Pronoun", "reflexive_pronoun"},
	parsing.POSTransliteration:         {"Transliteration"},
	parsing.POSHebrewTransliteration:   {"HebrewTransliteration", "Hebrew Transliteration", "hebrew_transliteration"},
	parsing.POSAramaicTransliteration:  {"AramaicTransliteration", "Aramaic Transliteration", "aramaic_transliteration"},
	parsing.POSLetter:                  {"Letter"},
	parsing.POSNumeral:                 {"Numeral"},
	parsing.POSSuperlativeAdjective:    {"SuperlativeAdjective", "Superlative Adjective", "superlative_adjective"},
	parsing.POSSuperlativeAdverb:       {"SuperlativeAdverb", "Superlative Adverb", "superlative_adverb"},
	parsing.POSSuperlativeNoun:         {"SuperlativeNoun", "Superlative Noun", "superlative_noun"},
	parsing.POSComparativeAdjective:    {"ComparativeAdjective", "Comparative Adjective", "comparative_adjective"},
	parsing.POSComparativeAdverb:       {"ComparativeAdverb", "Comparative Adverb", "comparative_adverb"},
	parsing.POSComparativeNoun:         {"ComparativeNoun", "Comparative Noun", "comparative_noun"},
}

func normalizePOSName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

var posByNormalizedName = buildPOSNameTable()

func buildPOSNameTable() map[string]parsing.PartOfSpeech {
	m := make(map[string]parsing.PartOfSpeech)
	for pos, names := range posNameAliases {
		for _, n := range names {
			m[normalizePOSName(n)] = pos
		}
	}
	return m
}

// ParsePOSName resolves a human-readable part-of-speech token such as
// "Noun", "ProperNoun", "Proper Noun" or "proper_noun" to its enum value.
func ParsePOSName(s string) (parsing.PartOfSpeech, error) {
	pos, ok := posByNormalizedName[normalizePOSName(s)]
	if !ok {
		return 0, ErrUnknownPOSName
	}
	return pos, nil
}

// FormatPOSName renders pos using its canonical (first-listed) spelling.
func FormatPOSName(pos parsing.PartOfSpeech) string {
	names, ok := posNameAliases[pos]
	if !ok || len(names) == 0 {
		return ""
	}
	return names[0]
}
