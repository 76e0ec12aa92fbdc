package assets

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/prisma/engine/core"
)

const (
	debugVertexName   = "debug.vert"
	debugFragmentName = "debug.frag"
)

// ReloadFunc receives freshly read vertex and fragment sources whenever
// either file changes on disk.
type ReloadFunc func(vertexSource, fragmentSource string)

// ShaderWatcher watches a directory of GLSL sources and pushes the debug
// quad shader pair to a reload callback when one of them is rewritten.
type ShaderWatcher struct {
	dir      string
	onReload ReloadFunc

	mutex    sync.Mutex
	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool

	// editors fire several writes per save; coalesce them
	lastReload time.Time
}

func NewShaderWatcher(dir string) (*ShaderWatcher, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &ShaderWatcher{
		dir:      dir,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

func (sw *ShaderWatcher) OnReload(fn ReloadFunc) {
	sw.onReload = fn
}

func (sw *ShaderWatcher) Start() error {
	if err := sw.fsnotify.Add(sw.dir); err != nil {
		return err
	}
	go sw.start()
	core.LogDebug("watching %s for shader changes", sw.dir)
	return nil
}

func (sw *ShaderWatcher) start() {
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.fsnotify.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if !strings.HasSuffix(name, ".vert") && !strings.HasSuffix(name, ".frag") {
				continue
			}
			sw.reload(name)
		case err, ok := <-sw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("shader watcher: %s", err)
		}
	}
}

func (sw *ShaderWatcher) reload(changed string) {
	sw.mutex.Lock()
	defer sw.mutex.Unlock()

	if time.Since(sw.lastReload) < 100*time.Millisecond {
		return
	}
	sw.lastReload = time.Now()

	vertexSource, err := os.ReadFile(filepath.Join(sw.dir, debugVertexName))
	if err != nil {
		core.LogWarn("shader watcher: %s", err)
		return
	}
	fragmentSource, err := os.ReadFile(filepath.Join(sw.dir, debugFragmentName))
	if err != nil {
		core.LogWarn("shader watcher: %s", err)
		return
	}

	core.LogInfo("shader source %s changed, reloading", changed)
	if sw.onReload != nil {
		sw.onReload(string(vertexSource), string(fragmentSource))
	}
}

func (sw *ShaderWatcher) Close() error {
	sw.mutex.Lock()
	defer sw.mutex.Unlock()

	if sw.isClosed {
		return nil
	}
	sw.isClosed = true
	close(sw.done)
	return sw.fsnotify.Close()
}
