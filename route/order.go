package route

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/erraggy/routemcp/internal/pathutil"
)

// anyMethod records a registration that serves every method.
const anyMethod = "*"

type orderKey struct {
	method string
	path   string
}

type mountPoint struct {
	prefix string
	rank   int
}

// Recorder remembers the order in which routes were registered, for routers
// that forget it. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	next   int
	ranks  map[orderKey]int
	mounts []mountPoint
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{ranks: make(map[orderKey]int)}
}

// Record notes a registration of method on path. "*" stands for every
// method. Only the first registration of a method and path counts.
func (r *Recorder) Record(method, path string) {
	key := orderKey{method: strings.ToUpper(method), path: recordedPath(path)}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ranks[key]; ok {
		return
	}
	r.ranks[key] = r.next
	r.next++
}

// recordMount notes a handler mounted under prefix. Every route below the
// prefix that was not recorded itself takes the mount's place.
func (r *Recorder) recordMount(prefix string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mounts = append(r.mounts, mountPoint{prefix: strings.TrimSuffix(recordedPath(prefix), "/"), rank: r.next})
	r.next++
}

// adopt copies the registrations of sub, mounted under prefix, in sub's
// order.
func (r *Recorder) adopt(prefix string, sub *Recorder) {
	if sub == nil || sub == r {
		return
	}
	sub.mu.Lock()
	keys := make([]orderKey, 0, len(sub.ranks))
	for k := range sub.ranks {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b orderKey) int {
		return cmp.Compare(sub.ranks[a], sub.ranks[b])
	})
	sub.mu.Unlock()

	prefix = strings.TrimSuffix(prefix, "/")
	for _, k := range keys {
		r.Record(k.method, prefix+k.path)
	}
}

// rank returns the position of the registration of method on path.
func (r *Recorder) rank(method, path string) (int, bool) {
	path = recordedPath(path)
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.ranks[orderKey{method: method, path: path}]; ok {
		return n, true
	}
	if n, ok := r.ranks[orderKey{method: anyMethod, path: path}]; ok {
		return n, true
	}
	best, found, longest := 0, false, -1
	for _, m := range r.mounts {
		if (path == m.prefix || strings.HasPrefix(path, m.prefix+"/")) && len(m.prefix) > longest {
			best, found, longest = m.rank, true, len(m.prefix)
		}
	}
	return best, found
}

// recordedPath reduces a registration pattern to the form the adapters
// report: chi regexp parameters and colon parameters become braces.
func recordedPath(pattern string) string {
	return pathutil.ToBraceTemplate(chiPath(pattern))
}
