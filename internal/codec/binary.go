package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/loftafi/praxis-go/internal/lexicon"
	"github.com/loftafi/praxis-go/internal/parsing"
	"github.com/loftafi/praxis-go/internal/reference"
	"github.com/loftafi/praxis-go/internal/search"
)

// BinaryIndexes bundles the three uid-referencing search indexes the
// binary format persists (by_lexeme is never serialized — it is
// trivially rebuilt by sorting the lexeme list itself).
type BinaryIndexes struct {
	ByForm            *search.Index[*lexicon.Form]
	ByGloss           *search.Index[*lexicon.Form]
	ByTransliteration *search.Index[*lexicon.Form]
}

type binaryWriter struct {
	w   *bufio.Writer
	err error
}

func (bw *binaryWriter) writeU8(v uint8) {
	if bw.err != nil {
		return
	}
	bw.err = bw.w.WriteByte(v)
}

func (bw *binaryWriter) writeU16(v uint16) {
	if bw.err != nil {
		return
	}
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, bw.err = bw.w.Write(buf[:])
}

func (bw *binaryWriter) writeU24(v uint32) {
	if bw.err != nil {
		return
	}
	var buf [3]byte
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	_, bw.err = bw.w.Write(buf[:])
}

func (bw *binaryWriter) writeU32(v uint32) {
	if bw.err != nil {
		return
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, bw.err = bw.w.Write(buf[:])
}

func (bw *binaryWriter) writeBytesUS(s string) {
	if bw.err != nil {
		return
	}
	_, bw.err = bw.w.WriteString(s)
	if bw.err == nil {
		bw.err = bw.w.WriteByte(unitSeparator)
	}
}

func (bw *binaryWriter) writeGlosses(glosses []lexicon.Gloss) {
	bw.writeU16(uint16(len(glosses)))
	for _, g := range glosses {
		bw.writeU8(uint8(g.Lang))
		for _, e := range g.Entries {
			bw.writeBytesUS(e)
		}
		if bw.err == nil {
			bw.err = bw.w.WriteByte(recordSeparator)
		}
	}
}

func (bw *binaryWriter) writeReferences(refs []reference.ModuleReference) error {
	bw.writeU32(uint32(len(refs)))
	for _, r := range refs {
		mod, ok := reference.ModuleIndex(r.Module)
		if !ok {
			return fmt.Errorf("%w: unknown module %q", ErrMalformedLine, r.Module)
		}
		book, ok := reference.BookIndex(r.Book)
		if !ok {
			return fmt.Errorf("%w: unknown book %q", ErrMalformedLine, r.Book)
		}
		bw.writeU16(mod)
		bw.writeU16(book)
		bw.writeU16(r.Chapter)
		bw.writeU16(r.Verse)
		bw.writeU16(r.Word)
	}
	return nil
}

// WriteBinary serializes lexemes and the three persisted search indexes
// in the binary format: magic, lexeme records (each with its forms
// inline), a file separator, then the three indexes each terminated by a
// file separator.
func WriteBinary(w io.Writer, lexemes []*lexicon.Lexeme, idx BinaryIndexes) error {
	bw := &binaryWriter{w: bufio.NewWriter(w)}
	bw.writeU8(BinaryMagic[0])
	bw.writeU8(BinaryMagic[1])
	bw.writeU32(uint32(len(lexemes)))

	for _, lex := range lexemes {
		bw.writeU24(lex.UID)
		bw.writeBytesUS(lex.Word)
		bw.writeU8(uint8(lex.Lang))
		bw.writeU32(uint32(lex.POS))
		bw.writeU8(uint8(lex.Article))
		bw.writeGlosses(lex.Glosses)
		bw.writeU8(uint8(len(lex.Tags)))
		for _, t := range lex.Tags {
			bw.writeBytesUS(t)
		}
		bw.writeU8(uint8(len(lex.Strongs)))
		for _, s := range lex.Strongs {
			bw.writeU16(s)
		}

		bw.writeU16(uint16(len(lex.Forms)))
		for _, f := range lex.Forms {
			bw.writeU24(f.UID)
			bw.writeU32(uint32(f.Parsing))
			var flags uint8
			if f.Preferred {
				flags |= 1
			}
			if f.Incorrect {
				flags |= 1 << 4
			}
			bw.writeU8(flags)
			bw.writeBytesUS(f.Word)
			bw.writeGlosses(f.Glosses)
			if bw.err != nil {
				return bw.err
			}
			if err := bw.writeReferences(f.References); err != nil {
				return err
			}
		}
	}
	if bw.err != nil {
		return bw.err
	}
	if err := bw.w.WriteByte(fileSeparator); err != nil {
		return err
	}

	for _, index := range []*search.Index[*lexicon.Form]{idx.ByForm, idx.ByGloss, idx.ByTransliteration} {
		if err := writeIndex(bw, index); err != nil {
			return err
		}
	}
	return bw.w.Flush()
}

func writeIndex(bw *binaryWriter, index *search.Index[*lexicon.Form]) error {
	keywords := index.Keywords()
	bw.writeU32(uint32(len(keywords)))
	for _, kw := range keywords {
		result, _ := index.Get(kw)
		bw.writeBytesUS(kw)
		if err := writeEntries(bw, result.ExactAccented); err != nil {
			return err
		}
		if err := writeEntries(bw, result.ExactUnaccented); err != nil {
			return err
		}
		if err := writeEntries(bw, result.PartialMatch); err != nil {
			return err
		}
	}
	if bw.err != nil {
		return bw.err
	}
	return bw.w.WriteByte(fileSeparator)
}

func writeEntries(bw *binaryWriter, entries []*lexicon.Form) error {
	if len(entries) > 255 {
		return ErrIndexTooLarge
	}
	n := len(entries)
	if n > MaxBucketEntries {
		n = MaxBucketEntries
	}
	bw.writeU8(uint8(n))
	for _, e := range entries[:n] {
		bw.writeU24(e.UID)
	}
	return bw.err
}

// --- reading ---

type binaryReader struct {
	r   *bufio.Reader
	err error
}

func (br *binaryReader) readU8() uint8 {
	if br.err != nil {
		return 0
	}
	b, err := br.r.ReadByte()
	if err != nil {
		br.err = ErrTruncated
		return 0
	}
	return b
}

func (br *binaryReader) readU16() uint16 {
	var buf [2]byte
	br.readFull(buf[:])
	return binary.LittleEndian.Uint16(buf[:])
}

func (br *binaryReader) readU24() uint32 {
	var buf [3]byte
	br.readFull(buf[:])
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16
}

func (br *binaryReader) readU32() uint32 {
	var buf [4]byte
	br.readFull(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

func (br *binaryReader) readFull(buf []byte) {
	if br.err != nil {
		return
	}
	if _, err := io.ReadFull(br.r, buf); err != nil {
		br.err = ErrTruncated
	}
}

func (br *binaryReader) readBytesUS() string {
	if br.err != nil {
		return ""
	}
	s, err := br.r.ReadString(unitSeparator)
	if err != nil {
		br.err = ErrTruncated
		return ""
	}
	return s[:len(s)-1]
}

func (br *binaryReader) expectByte(want byte) {
	if br.err != nil {
		return
	}
	got, err := br.r.ReadByte()
	if err != nil {
		br.err = ErrTruncated
		return
	}
	if got != want {
		br.err = fmt.Errorf("%w: expected 0x%02x, got 0x%02x", ErrMalformedLine, want, got)
	}
}

func (br *binaryReader) readGlosses() []lexicon.Gloss {
	count := br.readU16()
	if count == 0 || br.err != nil {
		return nil
	}
	out := make([]lexicon.Gloss, 0, count)
	for i := uint16(0); i < count; i++ {
		lang := lexicon.Language(br.readU8())
		var entries []string
		for {
			if br.err != nil {
				break
			}
			b, err := br.r.ReadByte()
			if err != nil {
				br.err = ErrTruncated
				break
			}
			if b == recordSeparator {
				break
			}
			br.err = br.r.UnreadByte()
			if br.err != nil {
				break
			}
			entries = append(entries, br.readBytesUS())
		}
		out = append(out, lexicon.Gloss{Lang: lang, Entries: entries})
	}
	return out
}

func (br *binaryReader) readReferences() []reference.ModuleReference {
	count := br.readU32()
	if br.err != nil {
		return nil
	}
	out := make([]reference.ModuleReference, 0, count)
	for i := uint32(0); i < count; i++ {
		modIdx := br.readU16()
		bookIdx := br.readU16()
		chapter := br.readU16()
		verse := br.readU16()
		word := br.readU16()
		if br.err != nil {
			return out
		}
		module, ok := reference.ModuleByIndex(modIdx)
		if !ok {
			br.err = fmt.Errorf("%w: unknown module index %d", ErrMalformedLine, modIdx)
			return out
		}
		book, ok := reference.BookByIndex(bookIdx)
		if !ok {
			br.err = fmt.Errorf("%w: unknown book index %d", ErrMalformedLine, bookIdx)
			return out
		}
		out = append(out, reference.ModuleReference{
			Module:    module,
			Reference: reference.Reference{Book: book, Chapter: chapter, Verse: verse},
			Word:      word,
		})
	}
	return out
}

// ReadBinary parses the binary format, returning the lexeme list (each
// owning its forms) and the uid lists backing the three persisted search
// indexes. Resolving those uid lists into Form references is the
// caller's job (typically via a uid->*Form map built while reading the
// lexemes), matching the load-time division of labour described for
// binary import.
func ReadBinary(r io.Reader) ([]*lexicon.Lexeme, RawIndexes, error) {
	br := &binaryReader{r: bufio.NewReader(r)}
	var magic [2]byte
	magic[0] = br.readU8()
	magic[1] = br.readU8()
	if br.err == nil && magic != BinaryMagic {
		br.err = ErrBadMagic
	}
	if br.err != nil {
		return nil, RawIndexes{}, br.err
	}

	count := br.readU32()
	lexemes := make([]*lexicon.Lexeme, 0, count)
	for i := uint32(0); i < count && br.err == nil; i++ {
		lex := &lexicon.Lexeme{}
		lex.UID = br.readU24()
		lex.Word = br.readBytesUS()
		lex.Lang = lexicon.Language(br.readU8())
		lex.POS = parsing.Parsing(br.readU32())
		lex.Article = lexicon.Article(br.readU8())
		lex.Glosses = br.readGlosses()

		tagCount := br.readU8()
		lex.Tags = make([]string, 0, tagCount)
		for t := uint8(0); t < tagCount; t++ {
			lex.Tags = append(lex.Tags, br.readBytesUS())
		}

		strongsCount := br.readU8()
		lex.Strongs = make([]uint16, 0, strongsCount)
		for s := uint8(0); s < strongsCount; s++ {
			lex.Strongs = append(lex.Strongs, br.readU16())
		}

		formCount := br.readU16()
		for f := uint16(0); f < formCount && br.err == nil; f++ {
			form := &lexicon.Form{}
			form.UID = br.readU24()
			form.Parsing = parsing.Parsing(br.readU32())
			flags := br.readU8()
			form.Preferred = flags&1 != 0
			form.Incorrect = flags&(1<<4) != 0
			form.Word = br.readBytesUS()
			form.Glosses = br.readGlosses()
			form.References = br.readReferences()
			lex.AddForm(form)
		}
		lexemes = append(lexemes, lex)
	}
	if br.err != nil {
		return nil, RawIndexes{}, br.err
	}

	br.expectByte(fileSeparator)

	raw := RawIndexes{}
	raw.ByForm = br.readRawIndex()
	raw.ByGloss = br.readRawIndex()
	raw.ByTransliteration = br.readRawIndex()
	if br.err != nil {
		return nil, RawIndexes{}, br.err
	}
	return lexemes, raw, nil
}

// RawUIDResult mirrors search.Result but holds bare uids instead of
// resolved entity references, since the binary format stores only uids
// and leaves resolution to the caller.
type RawUIDResult struct {
	Keyword         string
	ExactAccented   []uint32
	ExactUnaccented []uint32
	PartialMatch    []uint32
}

// RawIndex is an ordered list of RawUIDResult buckets as read from the
// binary format.
type RawIndex []RawUIDResult

// RawIndexes bundles the three raw (unresolved) indexes read from a
// binary stream.
type RawIndexes struct {
	ByForm            RawIndex
	ByGloss           RawIndex
	ByTransliteration RawIndex
}

func (br *binaryReader) readRawIndex() RawIndex {
	count := br.readU32()
	if br.err != nil {
		return nil
	}
	out := make(RawIndex, 0, count)
	for i := uint32(0); i < count; i++ {
		kw := br.readBytesUS()
		out = append(out, RawUIDResult{
			Keyword:         kw,
			ExactAccented:   br.readUIDList(),
			ExactUnaccented: br.readUIDList(),
			PartialMatch:    br.readUIDList(),
		})
		if br.err != nil {
			return out
		}
	}
	br.expectByte(fileSeparator)
	return out
}

func (br *binaryReader) readUIDList() []uint32 {
	n := br.readU8()
	out := make([]uint32, 0, n)
	for i := uint8(0); i < n; i++ {
		out = append(out, br.readU24())
	}
	return out
}
