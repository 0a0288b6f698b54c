package parsing

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// nativeTokenRE extracts the leading run of letters/digits/dashes from a raw
// tag, so that bracketing characters, punctuation and whitespace act as
// record terminators: "[N-NSM]" and "N-NSM." both yield "N-NSM".
var nativeTokenRE = regexp2.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)*`, regexp2.None)

var nativePOSCodes = map[PartOfSpeech]string{
	POSUnknown:                "-",
	POSParticle:                "PRT",
	POSVerb:                    "V",
	POSNoun:                    "N",
	POSAdjective:               "A",
	POSAdverb:                  "ADV",
	POSConjunction:             "CONJ",
	POSProperNoun:              "NPRI",
	POSPreposition:             "PREP",
	POSConditional:             "COND",
	POSArticle:                 "T",
	POSInterjection:            "INJ",
	POSPronoun:                 "PRON",
	POSPersonalPronoun:         "P",
	POSPossessivePronoun:       "S",
	POSRelativePronoun:         "R",
	POSDemonstrativePronoun:    "D",
	POSReciprocalPronoun:       "C",
	POSReflexivePronoun:        "F",
	POSTransliteration:         "X",
	POSHebrewTransliteration:   "HEB",
	POSAramaicTransliteration:  "ARAM",
	POSLetter:                  "LETT",
	POSNumeral:                 "NUM",
	POSSuperlativeAdjective:    "ASUP",
	POSSuperlativeAdverb:       "ADVSUP",
	POSSuperlativeNoun:         "NSUP",
	POSComparativeAdjective:    "ACOMP",
	POSComparativeAdverb:       "ADVCOMP",
	POSComparativeNoun:         "NCOMP",
}

var nativePOSByCode = invertStringMap(nativePOSCodes)

func invertStringMap[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func invertByteMap[K comparable](m map[K]byte) map[byte]K {
	out := make(map[byte]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

var caseCodes = map[Case]byte{
	CaseNominative: 'N', CaseAccusative: 'A', CaseGenitive: 'G',
	CaseDative: 'D', CaseVocative: 'V',
}
var caseByCode = invertByteMap(caseCodes)

var numberCodes = map[Number]byte{NumberSingular: 'S', NumberPlural: 'P', NumberDual: 'D'}
var numberByCode = invertByteMap(numberCodes)

var genderCodes = map[Gender]byte{GenderMasculine: 'M', GenderFeminine: 'F', GenderNeuter: 'N'}
var genderByCode = invertByteMap(genderCodes)

var tenseCodes = map[TenseForm]string{
	TensePresent: "P", TenseFuture: "F", TenseAorist: "A", TenseImperfect: "I",
	TensePerfect: "R", TensePluperfect: "L",
	TenseSecondFuture: "2F", TenseSecondAorist: "2A",
	TenseSecondPerfect: "2R", TenseSecondPluperfect: "2L",
}
var tenseByCode = invertStringMap(tenseCodes)

var voiceCodes = map[Voice]byte{
	VoiceActive: 'A', VoiceMiddle: 'M', VoicePassive: 'P', VoiceMiddleOrPassive: 'E',
}
var voiceByCode = invertByteMap(voiceCodes)

var moodCodes = map[Mood]byte{
	MoodIndicative: 'I', MoodSubjunctive: 'S', MoodOptative: 'O',
	MoodImperative: 'M', MoodInfinitive: 'N', MoodParticiple: 'P',
}
var moodByCode = invertByteMap(moodCodes)

// ParseNative parses a native (Byzantine-style) textual tag such as
// "N-NSM" or "V-PAI-1P" into a Parsing value.
func ParseNative(tag string) (Parsing, error) {
	tag = strings.TrimLeft(tag, "[({.\"' \t\r\n")
	m, err := nativeTokenRE.FindStringMatch(tag)
	if err != nil || m == nil {
		return 0, ErrInvalidParsing
	}
	token := m.String()

	var flags string
	if idx := strings.LastIndex(token, "-"); idx >= 0 {
		// Flags (K/N/I) are only recognised as a trailing dash segment made
		// solely of flag letters; otherwise treat the whole token as parts.
		candidate := token[idx+1:]
		if isFlagSegment(candidate) {
			flags = candidate
			token = token[:idx]
		}
	}

	parts := strings.Split(token, "-")
	if len(parts) == 0 || parts[0] == "" {
		return 0, ErrInvalidParsing
	}

	pos, ok := nativePOSByCode[parts[0]]
	if !ok {
		return 0, ErrInvalidParsing
	}
	p := Parsing(0).WithPOS(pos)

	rest := parts[1:]
	switch pos {
	case POSVerb:
		p, err = parseVerbMorphemes(p, rest)
	case POSPersonalPronoun, POSPossessivePronoun:
		p, err = parsePronounMorphemes(p, rest)
	default:
		p, err = parseNominalMorphemes(p, rest)
	}
	if err != nil {
		return 0, err
	}

	for _, f := range flags {
		switch f {
		case 'K':
			p = p.WithCrasis(true)
		case 'N':
			p = p.WithNegative(true)
		case 'I':
			p = p.WithInterrogative(true)
		default:
			return 0, ErrInvalidParsing
		}
	}

	return p, nil
}

func isFlagSegment(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != 'K' && c != 'N' && c != 'I' {
			return false
		}
	}
	return true
}

func parseVerbMorphemes(p Parsing, rest []string) (Parsing, error) {
	if len(rest) == 0 {
		return p, nil
	}
	tense, voice, mood, err := splitTenseVoiceMood(rest[0])
	if err != nil {
		return 0, err
	}
	p = p.WithTense(tense).WithVoice(voice).WithMood(mood)

	if len(rest) < 2 {
		return p, nil
	}
	if mood == MoodParticiple {
		// Participles decline like adjectives: case-number-gender instead
		// of person-number.
		c, n, g, err := splitCaseNumberGender(rest[1])
		if err != nil {
			return 0, err
		}
		return p.WithCase(c).WithNumber(n).WithGender(g), nil
	}
	person, number, err := splitPersonNumber(rest[1])
	if err != nil {
		return 0, err
	}
	return p.WithPerson(person).WithNumber(number), nil
}

func splitTenseVoiceMood(s string) (TenseForm, Voice, Mood, error) {
	tenseLen := 1
	if strings.HasPrefix(s, "2") {
		tenseLen = 2
	}
	if len(s) < tenseLen+2 {
		return 0, 0, 0, ErrInvalidParsing
	}
	tense, ok := tenseByCode[s[:tenseLen]]
	if !ok {
		return 0, 0, 0, ErrInvalidParsing
	}
	voice, ok := voiceByCode[s[tenseLen]]
	if !ok {
		return 0, 0, 0, ErrInvalidParsing
	}
	mood, ok := moodByCode[s[tenseLen+1]]
	if !ok {
		return 0, 0, 0, ErrInvalidParsing
	}
	return tense, voice, mood, nil
}

func splitPersonNumber(s string) (Person, Number, error) {
	if len(s) != 2 {
		return 0, 0, ErrInvalidParsing
	}
	person, err := personFromDigit(s[0])
	if err != nil {
		return 0, 0, err
	}
	number, ok := numberByCode[s[1]]
	if !ok {
		return 0, 0, ErrInvalidParsing
	}
	return person, number, nil
}

func personFromDigit(b byte) (Person, error) {
	switch b {
	case '1':
		return PersonFirst, nil
	case '2':
		return PersonSecond, nil
	case '3':
		return PersonThird, nil
	default:
		return 0, ErrInvalidParsing
	}
}

func parsePronounMorphemes(p Parsing, rest []string) (Parsing, error) {
	if len(rest) == 0 {
		return p, nil
	}
	s := rest[0]
	if len(s) != 3 {
		return 0, ErrInvalidParsing
	}
	person, err := personFromDigit(s[0])
	if err != nil {
		return 0, err
	}
	c, ok := caseByCode[s[1]]
	if !ok {
		return 0, ErrInvalidParsing
	}
	number, ok := numberByCode[s[2]]
	if !ok {
		return 0, ErrInvalidParsing
	}
	return p.WithPerson(person).WithCase(c).WithNumber(number), nil
}

func parseNominalMorphemes(p Parsing, rest []string) (Parsing, error) {
	if len(rest) == 0 {
		return p, nil
	}
	c, n, g, err := splitCaseNumberGender(rest[0])
	if err != nil {
		return 0, err
	}
	return p.WithCase(c).WithNumber(n).WithGender(g), nil
}

// splitCaseNumberGender parses a case-number-gender morpheme. A morpheme
// that is a valid but truncated prefix (e.g. "GS", missing gender) is
// reported as ErrIncomplete rather than ErrInvalidParsing, since the
// caller can usefully distinguish "not a tag at all" from "a tag that
// ran out of characters".
func splitCaseNumberGender(s string) (Case, Number, Gender, error) {
	if len(s) == 0 {
		return 0, 0, 0, ErrInvalidParsing
	}
	c, ok := caseByCode[s[0]]
	if !ok {
		return 0, 0, 0, ErrInvalidParsing
	}
	if len(s) < 2 {
		return 0, 0, 0, ErrIncomplete
	}
	n, ok := numberByCode[s[1]]
	if !ok {
		return 0, 0, 0, ErrInvalidParsing
	}
	if len(s) < 3 {
		return 0, 0, 0, ErrIncomplete
	}
	if len(s) > 3 {
		return 0, 0, 0, ErrInvalidParsing
	}
	g, ok := genderByCode[s[2]]
	if !ok {
		return 0, 0, 0, ErrInvalidParsing
	}
	return c, n, g, nil
}

// FormatNative renders p as a native textual tag. Returns ErrIncomplete
// (with IncompletePlaceholder as the conventional display value) when p
// lacks the fields its part of speech requires.
func FormatNative(p Parsing) (string, error) {
	code, ok := nativePOSCodes[p.POS()]
	if !ok {
		return "", ErrInvalidParsing
	}
	var b strings.Builder
	b.WriteString(code)

	switch p.POS() {
	case POSVerb:
		if err := formatVerb(&b, p); err != nil {
			return "", err
		}
	case POSPersonalPronoun, POSPossessivePronoun:
		if err := formatPronoun(&b, p); err != nil {
			return "", err
		}
	case POSNoun, POSAdjective, POSArticle, POSProperNoun, POSPronoun,
		POSRelativePronoun, POSDemonstrativePronoun, POSReciprocalPronoun, POSReflexivePronoun:
		if err := formatNominal(&b, p); err != nil {
			return "", err
		}
	}

	var flags strings.Builder
	if p.Crasis() {
		flags.WriteByte('K')
	}
	if p.Negative() {
		flags.WriteByte('N')
	}
	if p.Interrogative() {
		flags.WriteByte('I')
	}
	if flags.Len() > 0 {
		b.WriteByte('-')
		b.WriteString(flags.String())
	}

	return b.String(), nil
}

func formatVerb(b *strings.Builder, p Parsing) error {
	if p.Tense() == TenseUnknown && p.Mood() == MoodUnknown {
		return nil
	}
	tenseCode, ok := tenseCodes[p.Tense()]
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
	b.WriteByte('-')
	b.WriteString(tenseCode)
	b.WriteByte(voiceCode)
	b.WriteByte(moodCode)

	if p.Mood() == MoodParticiple {
		return formatNominal(b, p)
	}

	personCode, ok := personCode(p.Person())
	if !ok {
		return ErrIncomplete
	}
	numberCode, ok := numberCodes[p.Number()]
	if !ok {
		return ErrIncomplete
	}
	b.WriteByte('-')
	b.WriteByte(personCode)
	b.WriteByte(numberCode)
	return nil
}

func personCode(p Person) (byte, bool) {
	switch p {
	case PersonFirst:
		return '1', true
	case PersonSecond:
		return '2', true
	case PersonThird:
		return '3', true
	default:
		return 0, false
	}
}

func formatPronoun(b *strings.Builder, p Parsing) error {
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
	b.WriteByte('-')
	b.WriteByte(personCode)
	b.WriteByte(caseCode)
	b.WriteByte(numberCode)
	return nil
}

func formatNominal(b *strings.Builder, p Parsing) error {
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
	b.WriteByte('-')
	b.WriteByte(caseCode)
	b.WriteByte(numberCode)
	b.WriteByte(genderCode)
	return nil
}
