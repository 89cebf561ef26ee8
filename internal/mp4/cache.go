package mp4

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/lanikai/mediatest"
)

// Test suites tend to open the same fixture files over and over. Intern
// the resulting formats so every open of the same track hands out the
// same *Format, which keeps pointer-equality assertions meaningful
// across streams.
var formatCache = struct {
	sync.Mutex
	*lru.Cache
}{Cache: lru.New(32)}

func internFormat(f *mediatest.Format) *mediatest.Format {
	key := fingerprint(f)

	formatCache.Lock()
	defer formatCache.Unlock()

	if cached, ok := formatCache.Get(key); ok {
		return cached.(*mediatest.Format)
	}
	formatCache.Add(key, f)
	return f
}

func fingerprint(f *mediatest.Format) string {
	h := fnv.New64a()
	for _, init := range f.InitData {
		h.Write(init)
	}
	return fmt.Sprintf("%s/%dx%d/%016x", f.MimeType, f.Width, f.Height, h.Sum64())
}
