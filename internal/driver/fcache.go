package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"mofmt/internal/format"
)

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

// Bump when the rule set changes in a way that invalidates recorded
// fixed points.
const formatCacheSchemaVersion uint16 = 1

// FormatCache records content digests known to be fixed points of the
// formatting pipeline, so clean files skip it on later runs.
// Thread-safe for concurrent access.
type FormatCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema     uint16
	TabWidth   uint8
	PrintWidth uint16
}

// OpenFormatCache initializes a cache at the standard location.
func OpenFormatCache(app string) (*FormatCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FormatCache{dir: dir}, nil
}

func (c *FormatCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "fmt", hex.EncodeToString(key[:])+".mp")
}

func payloadFor(opt format.Options) (cachePayload, error) {
	tw, err := safecast.Conv[uint8](opt.TabWidth)
	if err != nil {
		return cachePayload{}, err
	}
	pw, err := safecast.Conv[uint16](opt.PrintWidth)
	if err != nil {
		return cachePayload{}, err
	}
	return cachePayload{Schema: formatCacheSchemaVersion, TabWidth: tw, PrintWidth: pw}, nil
}

// Record stores key as a known fixed point under the given options.
func (c *FormatCache) Record(key Digest, opt format.Options) error {
	if c == nil {
		return nil
	}
	payload, err := payloadFor(opt)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replacement.
	return os.Rename(f.Name(), p)
}

// IsFormatted reports whether key was recorded as a fixed point under
// the same schema and options. Any read or decode failure counts as a
// miss.
func (c *FormatCache) IsFormatted(key Digest, opt format.Options) bool {
	if c == nil {
		return false
	}
	want, err := payloadFor(opt)
	if err != nil {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	var got cachePayload
	if err := msgpack.NewDecoder(f).Decode(&got); err != nil {
		return false
	}
	return got == want
}

// DropAll invalidates the cache, useful after rule changes.
func (c *FormatCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
