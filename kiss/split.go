package kiss

import (
	"bufio"
	"bytes"
)

// splitFrames returns a bufio.SplitFunc producing one token per KISS
// frame: the unescaped command octet followed by the unescaped
// payload. Spans still open after maxSpan octets are treated as
// corrupt and dropped, so an oversized or unterminated frame can never
// wedge the scanner.
//
// The framer is deliberately tolerant. Bytes ahead of the first FEND
// are noise and discarded; zero length spans between consecutive FEND
// markers (used by some modems as a preamble) produce no frame; a
// span containing an invalid escape sequence is dropped and scanning
// resumes at the next delimiter. The closing FEND of each frame is
// left in the input so adjacent frames may share a single delimiter.
func splitFrames(maxSpan int) bufio.SplitFunc {
	discarding := false
	return func(b []byte, atEOF bool) (advance int, token []byte, err error) {
		for advance < len(b) {
			rest := b[advance:]
			if discarding {
				i := bytes.IndexByte(rest, FEND)
				if i < 0 {
					return len(b), nil, nil
				}
				// resynchronized; the delimiter opens the next frame
				discarding = false
				advance += i
				continue
			}
			start := bytes.IndexByte(rest, FEND)
			if start < 0 {
				// no delimiter in sight; everything so far is noise
				return len(b), nil, nil
			}
			end := bytes.IndexByte(rest[start+1:], FEND)
			if end < 0 {
				if atEOF {
					// trailing partial frame
					return len(b), nil, nil
				}
				if len(rest)-(start+1) > maxSpan {
					// the open span can no longer fit in the buffer;
					// drop it rather than let the scanner overflow
					discarding = true
					return len(b), nil, nil
				}
				// hold the opening FEND until the frame completes
				return advance + start, nil, nil
			}
			span := rest[start+1 : start+1+end]
			advance += start + 1 + end
			if len(span) == 0 {
				continue
			}
			if token, ok := unescape(span); ok {
				return advance, token, nil
			}
			// invalid escape sequence: resynchronize by dropping the span
		}
		return advance, nil, nil
	}
}
