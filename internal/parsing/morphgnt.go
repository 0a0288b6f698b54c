package parsing

import "strings"

// morphgntPOSCodes mirrors the native dialect's part-of-speech codes but
// MorphGNT tags carry no field separators, so every code here is
// constrained to a single letter: fixed column widths are what let
// ParseMorphGNT slice a tag without a delimiter to look for.
var morphgntPOSCodes = map[PartOfSpeech]byte{
	POSVerb:                 'V',
	POSNoun:                 'N',
	POSAdjective:            'A',
	POSAdverb:               'B',
	POSConjunction:          'C',
	POSPreposition:          'R',
	POSArticle:              'T',
	POSPronoun:              'P',
	POSParticle:             'D',
	POSProperNoun:           'I',
	POSInterjection:         'J',
	POSNumeral:              'X',
}

var morphgntPOSByCode = invertByteMap(morphgntPOSCodes)

// morphgntTenseCodes collapses the native dialect's two-letter "second
// tense" forms (2nd aorist, 2nd perfect, ...) onto their primary-tense
// letter: MorphGNT's unseparated columns need one byte per field, and the
// distinction is not recoverable from a fixed single-character slot.
var morphgntTenseCodes = map[TenseForm]byte{
	TensePresent: 'P', TenseFuture: 'F', TenseAorist: 'A', TenseImperfect: 'I',
	TensePerfect: 'R', TensePluperfect: 'L',
	TenseSecondFuture: 'F', TenseSecondAorist: 'A',
	TenseSecondPerfect: 'R', TenseSecondPluperfect: 'L',
}

// ParseMorphGNT parses a MorphGNT-dialect tag: the native dialect's fields
// with the separating dashes removed, e.g. "VPAI2P" or "NNSM". Field widths
// are fixed by part of speech, so the tag is sliced positionally rather
// than split on a delimiter.
func ParseMorphGNT(tag string) (Parsing, error) {
	tag = strings.TrimSpace(tag)
	if len(tag) == 0 {
		return 0, ErrMissingField
	}
	pos, ok := morphgntPOSByCode[tag[0]]
	if !ok {
		return 0, ErrInvalidParsing
	}
	p := Parsing(0).WithPOS(pos)
	rest := tag[1:]
	if rest == "" {
		return p, nil
	}

	switch pos {
	case POSVerb:
		return parseMorphGNTVerb(p, rest)
	case POSPronoun:
		return parseMorphGNTPronoun(p, rest)
	default:
		return parseMorphGNTNominal(p, rest)
	}
}

func parseMorphGNTVerb(p Parsing, rest string) (Parsing, error) {
	if len(rest) < 3 {
		return 0, ErrIncomplete
	}
	tense, ok := tenseByCode[string(rest[0])]
	if !ok {
		return 0, ErrInvalidParsing
	}
	voice, ok := voiceByCode[rest[1]]
	if !ok {
		return 0, ErrInvalidParsing
	}
	mood, ok := moodByCode[rest[2]]
	if !ok {
		return 0, ErrInvalidParsing
	}
	p = p.WithTense(tense).WithVoice(voice).WithMood(mood)
	if len(rest) == 3 {
		return p, nil
	}
	if mood == MoodParticiple {
		c, n, g, err := splitCaseNumberGender(rest[3:])
		if err != nil {
			return 0, err
		}
		return p.WithCase(c).WithNumber(n).WithGender(g), nil
	}
	person, number, err := splitPersonNumber(rest[3:])
	if err != nil {
		return 0, err
	}
	return p.WithPerson(person).WithNumber(number), nil
}

func parseMorphGNTPronoun(p Parsing, rest string) (Parsing, error) {
	if len(rest) < 3 {
		return 0, ErrIncomplete
	}
	person, err := personFromDigit(rest[0])
	if err != nil {
		return 0, err
	}
	c, ok := caseByCode[rest[1]]
	if !ok {
		return 0, ErrInvalidParsing
	}
	number, ok := numberByCode[rest[2]]
	if !ok {
		return 0, ErrInvalidParsing
	}
	return p.WithPerson(person).WithCase(c).WithNumber(number), nil
}

func parseMorphGNTNominal(p Parsing, rest string) (Parsing, error) {
	c, n, g, err := splitCaseNumberGender(rest)
	if err != nil {
		return 0, err
	}
	return p.WithCase(c).WithNumber(n).WithGender(g), nil
}

// FormatMorphGNT renders p as a MorphGNT-dialect tag.
func FormatMorphGNT(p Parsing) (string, error) {
	code, ok := morphgntPOSCodes[p.POS()]
	if !ok {
		return "", ErrInvalidParsing
	}
	var b strings.Builder
	b.WriteByte(code)

	switch p.POS() {
	case POSVerb:
		if err := formatMorphGNTVerb(&b, p); err != nil {
			return "", err
		}
	case POSPronoun:
		if err := formatMorphGNTPronoun(&b, p); err != nil {
			return "", err
		}
	default:
		if p.Case() == CaseUnknown && p.Number() == NumberUnknown && p.Gender() == GenderUnknown {
			return b.String(), nil
		}
		if err := formatMorphGNTNominal(&b, p); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func formatMorphGNTVerb(b *strings.Builder, p Parsing) error {
	if p.Tense() == TenseUnknown && p.Mood() == MoodUnknown {
		return nil
	}
	tenseCode, ok := morphgntTenseCodes[p.Tense()]
	if !ok {
		return ErrIncomplete
	}
	voiceCode, ok := voiceCodes[p.Voice()]
	if !ok {
		return ErrIncomplete
	}
	moodCode, ok := moodCodes[p.Mood()]
	if !ok {
		return ErrIncomplete
	}
	b.WriteByte(tenseCode)
	b.WriteByte(voiceCode)
	b.WriteByte(moodCode)

	if p.Mood() == MoodParticiple {
		return formatMorphGNTNominal(b, p)
	}
	personCode, ok := personCode(p.Person())
	if !ok {
		return ErrIncomplete
	}
	numberCode, ok := numberCodes[p.Number()]
	if !ok {
		return ErrIncomplete
	}
	b.WriteByte(personCode)
	b.WriteByte(numberCode)
	return nil
}

func formatMorphGNTPronoun(b *strings.Builder, p Parsing) error {
	personCode, ok := personCode(p.Person())
	if !ok {
		return ErrIncomplete
	}
	caseCode, ok := caseCodes[p.Case()]
	if !ok {
		return ErrIncomplete
	}
	numberCode, ok := numberCodes[p.Number()]
	if !ok {
		return ErrIncomplete
	}
	b.WriteByte(personCode)
	b.WriteByte(caseCode)
	b.WriteByte(numberCode)
	return nil
}

func formatMorphGNTNominal(b *strings.Builder, p Parsing) error {
	caseCode, ok := caseCodes[p.Case()]
	if !ok {
		return ErrIncomplete
	}
	numberCode, ok := numberCodes[p.Number()]
	if !ok {
		return ErrIncomplete
	}
	genderCode, ok := genderCodes[p.Gender()]
	if !ok {
		return ErrIncomplete
	}
	b.WriteByte(caseCode)
	b.WriteByte(numberCode)
	b.WriteByte(genderCode)
	return nil
}
