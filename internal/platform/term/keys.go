package term

import (
	"bufio"
	"io"
)

// keyBuffer is how many unread key presses are kept before new ones are dropped.
const keyBuffer = 64

// KeyReader turns a blocking byte stream into a non-blocking key source.
// A background goroutine decodes runes and queues them; PollKey never waits.
type KeyReader struct {
	keys chan rune
	done chan struct{}
}

// NewKeyReader starts reading r until it returns an error.
func NewKeyReader(r io.Reader) *KeyReader {
	kr := &KeyReader{
		keys: make(chan rune, keyBuffer),
		done: make(chan struct{}),
	}
	go kr.read(bufio.NewReader(r))
	return kr
}

func (kr *KeyReader) read(br *bufio.Reader) {
	defer close(kr.done)
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			return
		}
		select {
		case kr.keys <- r:
		default:
			// Queue full: the loop is not keeping up, drop the press.
		}
	}
}

// PollKey returns the oldest pending key, or false if none is queued.
func (kr *KeyReader) PollKey() (rune, bool) {
	select {
	case r := <-kr.keys:
		return r, true
	default:
		return 0, false
	}
}

// Done is closed once the underlying reader is exhausted.
func (kr *KeyReader) Done() <-chan struct{} {
	return kr.done
}
