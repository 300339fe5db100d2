package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// CompressionConfig holds configuration for the compression middleware
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes before compression is applied
	MinSize int
	// CompressibleTypes is a list of content types that should be compressed
	CompressibleTypes []string
}

// DefaultCompressionConfig returns the defaults used for snapshot responses
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		CompressibleTypes: []string{
			"application/json",
			"application/yaml",
			"text/plain",
		},
	}
}

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		w, _ := gzip.NewWriterLevel(io.Discard, gzip.DefaultCompression)
		return w
	},
}

// gzipResponseWriter buffers up to MinSize bytes before deciding whether
// the response is worth compressing.
type gzipResponseWriter struct {
	http.ResponseWriter
	config     CompressionConfig
	gzipWriter *gzip.Writer
	buffer     []byte
	statusCode int
	decided    bool
	compress   bool
}

func newGzipResponseWriter(w http.ResponseWriter, config CompressionConfig) *gzipResponseWriter {
	return &gzipResponseWriter{
		ResponseWriter: w,
		config:         config,
		statusCode:     http.StatusOK,
		buffer:         make([]byte, 0, config.MinSize+1),
	}
}

func (g *gzipResponseWriter) WriteHeader(statusCode int) {
	if !g.decided {
		g.statusCode = statusCode
	}
}

func (g *gzipResponseWriter) Write(data []byte) (int, error) {
	if g.decided {
		if g.compress {
			return g.gzipWriter.Write(data)
		}
		return g.ResponseWriter.Write(data)
	}

	g.buffer = append(g.buffer, data...)
	if len(g.buffer) > g.config.MinSize {
		if err := g.decide(); err != nil {
			return 0, err
		}
	}
	return len(data), nil
}

func (g *gzipResponseWriter) compressible() bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(g.Header().Get("Content-Type"), ";")[0]))
	for _, t := range g.config.CompressibleTypes {
		if mediaType == t {
			return true
		}
	}
	return false
}

// decide writes the status line and flushes the buffer, compressed or not
func (g *gzipResponseWriter) decide() error {
	if g.decided {
		return nil
	}
	g.decided = true
	g.compress = len(g.buffer) >= g.config.MinSize && g.compressible()

	buffered := g.buffer
	g.buffer = nil

	if !g.compress {
		g.ResponseWriter.WriteHeader(g.statusCode)
		_, err := g.ResponseWriter.Write(buffered)
		return err
	}

	g.Header().Del("Content-Length")
	g.Header().Set("Content-Encoding", "gzip")
	g.Header().Add("Vary", "Accept-Encoding")

	g.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
	g.gzipWriter.Reset(g.ResponseWriter)

	g.ResponseWriter.WriteHeader(g.statusCode)
	_, err := g.gzipWriter.Write(buffered)
	return err
}

// Close flushes anything still buffered and returns the gzip writer to the pool
func (g *gzipResponseWriter) Close() error {
	if err := g.decide(); err != nil {
		return err
	}
	if g.gzipWriter == nil {
		return nil
	}
	err := g.gzipWriter.Close()
	gzipWriterPool.Put(g.gzipWriter)
	g.gzipWriter = nil
	return err
}

func (g *gzipResponseWriter) Flush() {
	_ = g.decide()
	if g.gzipWriter != nil {
		_ = g.gzipWriter.Flush()
	}
	if flusher, ok := g.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Compression returns a middleware that gzips large compressible responses
// for clients that accept it.
func Compression(config CompressionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			gzw := newGzipResponseWriter(w, config)
			defer func() { _ = gzw.Close() }()

			next.ServeHTTP(gzw, r)
		})
	}
}
