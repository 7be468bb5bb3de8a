package middleware

import (
	"bytes"
	"io"
	"net/http"
)

// MaxLoggedBodyBytes caps how much of a request body the logging middleware buffers
const MaxLoggedBodyBytes = 64 << 10

type replayReader struct {
	io.Reader
	io.Closer
}

// replayBody reads up to limit bytes of the request body for logging and puts the
// whole stream back on the request, so handlers still receive every byte.
func replayBody(req *http.Request, limit int64) (captured []byte, truncated bool) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, false
	}

	captured, _ = io.ReadAll(io.LimitReader(req.Body, limit+1))
	req.Body = replayReader{
		Reader: io.MultiReader(bytes.NewReader(captured), req.Body),
		Closer: req.Body,
	}

	if int64(len(captured)) > limit {
		return captured[:limit], true
	}
	return captured, false
}
