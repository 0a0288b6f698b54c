package parsing

import "strings"

// cntrPOSCodes gives the coarse part-of-speech prefix CNTR tags use ahead
// of the 7-character morphology string: one letter, or two for proper
// nouns.
var cntrPOSCodes = map[PartOfSpeech]string{
	POSUnknown:              "-",
	POSVerb:                 "V",
	POSNoun:                 "N",
	POSAdjective:            "J",
	POSAdverb:               "B",
	POSConjunction:          "C",
	POSPreposition:          "R",
	POSArticle:              "E",
	POSPronoun:              "P",
	POSParticle:             "D",
	POSProperNoun:           "NP",
	POSInterjection:         "I",
	POSNumeral:              "A",
}

var cntrPOSByCode = invertStringMap(cntrPOSCodes)

const cntrPlaceholder = '-'

// ParseCNTR parses a CNTR-dialect tag: a single letter (or, for proper
// nouns, two letters) identifying the coarse part of speech, followed by a
// fixed 7-character morphology string in the order mood, tense, voice,
// person, case, gender, number. "-" marks a field not applicable to this
// part of speech.
func ParseCNTR(tag string) (Parsing, error) {
	tag = strings.TrimSpace(tag)
	if len(tag) < 1 {
		return 0, ErrMissingField
	}

	var posCode string
	var morph string
	if strings.HasPrefix(tag, "NP") {
		posCode, morph = "NP", tag[2:]
	} else {
		posCode, morph = tag[:1], tag[1:]
	}

	pos, ok := cntrPOSByCode[posCode]
	if !ok {
		return 0, ErrInvalidParsing
	}
	p := Parsing(0).WithPOS(pos)

	if morph == "" {
		return p, nil
	}
	if len(morph) < 7 {
		return 0, ErrIncomplete
	}
	if morph[0] != cntrPlaceholder {
		mood, ok := moodByCode[morph[0]]
		if !ok {
			return 0, ErrInvalidParsing
		}
		p = p.WithMood(mood)
	}
	if morph[1] != cntrPlaceholder {
		tense, ok := tenseByCode[string(morph[1])]
		if !ok {
			return 0, ErrInvalidParsing
		}
		p = p.WithTense(tense)
	}
	if morph[2] != cntrPlaceholder {
		voice, ok := voiceByCode[morph[2]]
		if !ok {
			return 0, ErrInvalidParsing
		}
		p = p.WithVoice(voice)
	}
	if morph[3] != cntrPlaceholder {
		person, err := personFromDigit(morph[3])
		if err != nil {
			return 0, err
		}
		p = p.WithPerson(person)
	}
	if morph[4] != cntrPlaceholder {
		cs, ok := caseByCode[morph[4]]
		if !ok {
			return 0, ErrInvalidParsing
		}
		p = p.WithCase(cs)
	}
	if morph[5] != cntrPlaceholder {
		g, ok := genderByCode[morph[5]]
		if !ok {
			return 0, ErrInvalidParsing
		}
		p = p.WithGender(g)
	}
	if morph[6] != cntrPlaceholder {
		n, ok := numberByCode[morph[6]]
		if !ok {
			return 0, ErrInvalidParsing
		}
		p = p.WithNumber(n)
	}
	return p, nil
}

// FormatCNTR renders p as a CNTR-dialect tag.
func FormatCNTR(p Parsing) (string, error) {
	code, ok := cntrPOSCodes[p.POS()]
	if !ok {
		return "", ErrInvalidParsing
	}
	var b strings.Builder
	b.WriteString(code)

	if p.Mood() == MoodUnknown && p.Tense() == TenseUnknown && p.Voice() == VoiceUnknown &&
		p.Person() == PersonUnknown && p.Case() == CaseUnknown && p.Gender() == GenderUnknown &&
		p.Number() == NumberUnknown {
		return b.String(), nil
	}

	writeCNTRField(&b, moodCodes[p.Mood()], p.Mood() != MoodUnknown)
	writeCNTRTenseField(&b, p.Tense())
	writeCNTRField(&b, voiceCodes[p.Voice()], p.Voice() != VoiceUnknown)
	if p.Person() != PersonUnknown {
		c, _ := personCode(p.Person())
		b.WriteByte(c)
	} else {
		b.WriteByte(cntrPlaceholder)
	}
	writeCNTRField(&b, caseCodes[p.Case()], p.Case() != CaseUnknown)
	writeCNTRField(&b, genderCodes[p.Gender()], p.Gender() != GenderUnknown)
	writeCNTRField(&b, numberCodes[p.Number()], p.Number() != NumberUnknown)
	return b.String(), nil
}

func writeCNTRField(b *strings.Builder, c byte, present bool) {
	if present {
		b.WriteByte(c)
		return
	}
	b.WriteByte(cntrPlaceholder)
}

// writeCNTRTenseField writes the last letter of the native tense code, so
// a two-letter second-tense code collapses onto its primary tense's letter
// (second aorist is written as aorist).
func writeCNTRTenseField(b *strings.Builder, tense TenseForm) {
	code, ok := tenseCodes[tense]
	if !ok {
		b.WriteByte(cntrPlaceholder)
		return
	}
	b.WriteString(code[len(code)-1:])
}
