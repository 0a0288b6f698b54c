package codec

import "errors"

// Sentinel errors returned by the text and binary codecs.
var (
	ErrMalformedLine   = errors.New("codec: malformed line")
	ErrUnknownFormat   = errors.New("codec: neither text nor binary magic matched")
	ErrBadMagic        = errors.New("codec: bad binary magic")
	ErrIndexTooLarge   = errors.New("codec: a keyword bucket would need more than 255 entries")
	ErrUnknownPOSName  = errors.New("codec: unknown part-of-speech name")
	ErrUnknownLanguage = errors.New("codec: unknown language code")
	ErrUnknownArticle  = errors.New("codec: unknown article spelling")
	ErrTruncated       = errors.New("codec: binary stream ended unexpectedly")
)

// MaxBucketEntries is the per-list cap a binary-exported SearchResult
// bucket is silently truncated to.
const MaxBucketEntries = 60

// BinaryMagic is the two-byte header that identifies the binary format.
var BinaryMagic = [2]byte{99, 1}

const (
	unitSeparator   byte = 0x1F
	recordSeparator byte = 0x1E
	fileSeparator   byte = 0x1C
)
