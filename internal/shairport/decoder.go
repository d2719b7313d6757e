package shairport

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"airframe/internal/domain"
)

// ErrMalformedItem reports an item whose type or code markup could not
// be located. Callers should log it and keep reading; it never
// invalidates the rest of the stream.
var ErrMalformedItem = errors.New("malformed metadata item")

const (
	itemTerminator = "</item>"

	// maxItemBytes bounds a single item. Cover art arrives base64
	// encoded inside one item, so the bound has to fit a large JPEG
	// plus encoding overhead.
	maxItemBytes = 8 * 1024 * 1024
)

var (
	typePattern   = regexp.MustCompile(`<type>([0-9a-fA-F]{8})</type>`)
	codePattern   = regexp.MustCompile(`<code>([0-9a-fA-F]{8})</code>`)
	lengthPattern = regexp.MustCompile(`<length>([0-9]+)</length>`)
	dataPattern   = regexp.MustCompile(`(?s)<data encoding="base64">(.*?)</data>`)
)

// Decoder reads framed records from a shairport-sync metadata stream.
//
// Each item on the wire looks like
//
//	<item><type>73736e63</type><code>50494354</code><length>N</length>
//	<data encoding="base64">...</data></item>
//
// where type and code are the hex encodings of four character ASCII
// tags and the data element is omitted when the length is zero. Items
// may arrive in arbitrary chunks; the literal "</item>" terminator is
// safe framing because the base64 alphabet contains no '<'.
type Decoder struct {
	scanner *bufio.Scanner
}

// NewDecoder returns a Decoder reading from r. Decoder state is tied to
// one connection; reopening the stream requires a fresh Decoder.
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxItemBytes)
	scanner.Split(splitItems)
	return &Decoder{scanner: scanner}
}

// splitItems is a bufio.SplitFunc that tokenizes the stream on the item
// terminator. A partial item at end of stream is dropped, so a stream
// cut mid-record surfaces as a clean end, never as a truncated record.
func splitItems(data []byte, atEOF bool) (int, []byte, error) {
	if i := bytes.Index(data, []byte(itemTerminator)); i >= 0 {
		end := i + len(itemTerminator)
		return end, data[:end], nil
	}
	return 0, nil, nil
}

// Next blocks until one complete item has been read and returns it as a
// Record. It returns io.EOF when the stream ends and ErrMalformedItem
// (wrapped) for items missing their type or code markup.
func (d *Decoder) Next() (domain.Record, error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return domain.Record{}, fmt.Errorf("read metadata stream: %w", err)
		}
		return domain.Record{}, io.EOF
	}
	return parseItem(d.scanner.Bytes())
}

func parseItem(item []byte) (domain.Record, error) {
	typeMatch := typePattern.FindSubmatch(item)
	codeMatch := codePattern.FindSubmatch(item)
	if typeMatch == nil || codeMatch == nil {
		return domain.Record{}, fmt.Errorf("%w: missing type or code", ErrMalformedItem)
	}

	rec := domain.Record{
		Type: decodeTag(string(typeMatch[1])),
		Code: decodeTag(string(codeMatch[1])),
	}

	if lengthMatch := lengthPattern.FindSubmatch(item); lengthMatch != nil {
		// The pattern only admits digits; a failed parse means overflow
		// and zero is the safe answer either way.
		rec.Length, _ = strconv.Atoi(string(lengthMatch[1]))
	}

	if dataMatch := dataPattern.FindSubmatch(item); dataMatch != nil {
		transfer := compactBase64(dataMatch[1])
		decoded, err := base64.StdEncoding.DecodeString(string(transfer))
		if err != nil {
			// Known senders emit broken base64 for some fields. Surface
			// the raw transfer bytes instead of dropping the record.
			rec.Data = transfer
		} else {
			rec.Data = decoded
		}
	}

	return rec, nil
}

// decodeTag turns an 8 hex digit tag into its four character ASCII
// form. Tags that do not decode to printable ASCII are passed through
// as the raw hex string; classification is the session's concern.
func decodeTag(hexDigits string) string {
	raw, err := hex.DecodeString(hexDigits)
	if err != nil || len(raw) != 4 {
		return hexDigits
	}
	for _, b := range raw {
		if b < 0x20 || b > 0x7e {
			return hexDigits
		}
	}
	return string(raw)
}

// compactBase64 strips the line breaks senders insert into long base64
// payloads. Go's decoder rejects non-alphabet bytes outright.
func compactBase64(raw []byte) []byte {
	compact := make([]byte, 0, len(raw))
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
		default:
			compact = append(compact, b)
		}
	}
	return compact
}
