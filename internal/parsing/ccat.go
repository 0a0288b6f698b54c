package parsing

import (
	"strings"
)

// ccatPOSCodes maps the coarse part-of-speech categories CCAT tags
// recognise to their CCAT code. CCAT declension/conjugation subtype
// suffixes (the "1T" in "N1T": everything from the first digit on) are a
// CCAT-only annotation with no
// corresponding Parsing field, so they are accepted on parse but dropped on
// format (see DESIGN.md).
var ccatPOSCodes = map[PartOfSpeech]string{
	POSUnknown:              "X",
	POSVerb:                 "V",
	POSNoun:                 "N",
	POSAdjective:            "A",
	POSAdverb:               "ADV",
	POSConjunction:          "C",
	POSPreposition:          "P",
	POSArticle:              "T",
	POSPronoun:              "R",
	POSParticle:             "D",
	POSProperNoun:           "NP",
	POSInterjection:         "I",
	POSNumeral:              "NUM",
}

var ccatPOSByCode = invertStringMap(ccatPOSCodes)

const ccatPlaceholder = '.'

// ParseCCAT parses a CCAT-dialect tag such as "V IAA3..S" or "N1T NSM" into
// a Parsing value. Fields that are empty, "-", "." or a bare space mean
// "unknown".
func ParseCCAT(tag string) (Parsing, error) {
	fields := strings.Fields(tag)
	if len(fields) == 0 {
		return 0, ErrMissingField
	}
	posField := fields[0]
	posCode := posField
	if i := strings.IndexAny(posField, "0123456789"); i > 0 {
		posCode = posField[:i]
	}
	pos, ok := ccatPOSByCode[posCode]
	if !ok {
		return 0, ErrInvalidParsing
	}
	p := Parsing(0).WithPOS(pos)
	if len(fields) < 2 {
		return p, nil
	}

	morph := fields[1]
	if pos == POSVerb {
		return parseCCATVerbMorph(p, morph)
	}
	return parseCCATNominalMorph(p, morph)
}

func ccatRune(s string, i int) (byte, bool) {
	if i >= len(s) {
		return 0, false
	}
	c := s[i]
	if c == ccatPlaceholder || c == '-' || c == ' ' {
		return 0, false
	}
	return c, true
}

func parseCCATVerbMorph(p Parsing, morph string) (Parsing, error) {
	if len(morph) < 7 {
		return 0, ErrIncomplete
	}
	if c, ok := ccatRune(morph, 0); ok {
		tense, found := tenseByCode[string(c)]
		if !found {
			return 0, ErrInvalidParsing
		}
		p = p.WithTense(tense)
	}
	if c, ok := ccatRune(morph, 1); ok {
		voice, found := voiceByCode[c]
		if !found {
			return 0, ErrInvalidParsing
		}
		p = p.WithVoice(voice)
	}
	if c, ok := ccatRune(morph, 2); ok {
		mood, found := ccatMoodByCode[c]
		if !found {
			return 0, ErrInvalidParsing
		}
		p = p.WithMood(mood)
	}
	if c, ok := ccatRune(morph, 3); ok {
		person, err := personFromDigit(c)
		if err != nil {
			return 0, err
		}
		p = p.WithPerson(person)
	}
	if c, ok := ccatRune(morph, 4); ok {
		cs, found := caseByCode[c]
		if !found {
			return 0, ErrInvalidParsing
		}
		p = p.WithCase(cs)
	}
	if c, ok := ccatRune(morph, 5); ok {
		g, found := genderByCode[c]
		if !found {
			return 0, ErrInvalidParsing
		}
		p = p.WithGender(g)
	}
	if c, ok := ccatRune(morph, 6); ok {
		n, found := numberByCode[c]
		if !found {
			return 0, ErrInvalidParsing
		}
		p = p.WithNumber(n)
	}
	return p, nil
}

// ccatMoodByCode maps CCAT's mood letters, which differ from the native
// dialect's (CCAT uses "A" for indicative).
var ccatMoodByCode = map[byte]Mood{
	'A': MoodIndicative, 'S': MoodSubjunctive, 'O': MoodOptative,
	'M': MoodImperative, 'N': MoodInfinitive, 'P': MoodParticiple,
}
var ccatMoodCodes = invertByteMap(ccatMoodByCode)

func parseCCATNominalMorph(p Parsing, morph string) (Parsing, error) {
	if len(morph) < 3 {
		return 0, ErrIncomplete
	}
	if c, ok := ccatRune(morph, 0); ok {
		cs, found := caseByCode[c]
		if !found {
			return 0, ErrInvalidParsing
		}
		p = p.WithCase(cs)
	}
	if c, ok := ccatRune(morph, 1); ok {
		n, found := numberByCode[c]
		if !found {
			return 0, ErrInvalidParsing
		}
		p = p.WithNumber(n)
	}
	if c, ok := ccatRune(morph, 2); ok {
		g, found := genderByCode[c]
		if !found {
			return 0, ErrInvalidParsing
		}
		p = p.WithGender(g)
	}
	return p, nil
}

// FormatCCAT renders p as a CCAT-dialect tag.
func FormatCCAT(p Parsing) (string, error) {
	code, ok := ccatPOSCodes[p.POS()]
	if !ok {
		return "", ErrInvalidParsing
	}
	if p.POS() == POSVerb {
		morph, err := formatCCATVerbMorph(p)
		if err != nil {
			return "", err
		}
		return code + " " + morph, nil
	}
	morph, err := formatCCATNominalMorph(p)
	if err != nil {
		return "", err
	}
	return code + " " + morph, nil
}

func formatCCATVerbMorph(p Parsing) (string, error) {
	var b strings.Builder
	writeOrDot(&b, tenseCodes[p.Tense()], p.Tense() != TenseUnknown)
	writeByteOrDot(&b, voiceCodes[p.Voice()], p.Voice() != VoiceUnknown)
	writeByteOrDot(&b, ccatMoodCodes[p.Mood()], p.Mood() != MoodUnknown)
	if p.Person() != PersonUnknown {
		c, _ := personCode(p.Person())
		b.WriteByte(c)
	} else {
		b.WriteByte(ccatPlaceholder)
	}
	writeByteOrDot(&b, caseCodes[p.Case()], p.Case() != CaseUnknown)
	writeByteOrDot(&b, genderCodes[p.Gender()], p.Gender() != GenderUnknown)
	writeByteOrDot(&b, numberCodes[p.Number()], p.Number() != NumberUnknown)
	return b.String(), nil
}

func formatCCATNominalMorph(p Parsing) (string, error) {
	var b strings.Builder
	writeByteOrDot(&b, caseCodes[p.Case()], p.Case() != CaseUnknown)
	writeByteOrDot(&b, numberCodes[p.Number()], p.Number() != NumberUnknown)
	writeByteOrDot(&b, genderCodes[p.Gender()], p.Gender() != GenderUnknown)
	return b.String(), nil
}

func writeByteOrDot(b *strings.Builder, c byte, present bool) {
	if present {
		b.WriteByte(c)
		return
	}
	b.WriteByte(ccatPlaceholder)
}

func writeOrDot(b *strings.Builder, s string, present bool) {
	if present && s != "" {
		b.WriteString(s[len(s)-1:])
		return
	}
	b.WriteByte(ccatPlaceholder)
}
