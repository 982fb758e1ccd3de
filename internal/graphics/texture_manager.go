package graphics

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// TextureHandle is a GPU texture name owned by a TextureCache
type TextureHandle uint32

// NoTexture is never returned by a successful Acquire
const NoTexture TextureHandle = 0

// TextureCache uploads each texture file once and hands out the same handle on
// every later request. It is not safe for concurrent use; all access happens on
// the render thread.
type TextureCache struct {
	device  Device
	dir     string
	decode  DecodeFunc
	logger  *log.Logger
	handles map[string]TextureHandle
}

// TextureCacheOption configures a TextureCache
type TextureCacheOption func(*TextureCache)

// WithDecoder replaces DecodeImage, e.g. to count or fake decodes
func WithDecoder(fn DecodeFunc) TextureCacheOption {
	return func(c *TextureCache) { c.decode = fn }
}

// WithLogger sets the logger used for load diagnostics
func WithLogger(l *log.Logger) TextureCacheOption {
	return func(c *TextureCache) { c.logger = l }
}

// NewTextureCache creates an empty cache resolving filenames relative to dir
func NewTextureCache(device Device, dir string, opts ...TextureCacheOption) *TextureCache {
	c := &TextureCache{
		device:  device,
		dir:     dir,
		decode:  DecodeImage,
		logger:  log.New(io.Discard),
		handles: make(map[string]TextureHandle),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the directory textures are loaded from
func (c *TextureCache) Dir() string { return c.dir }

// Acquire returns the handle for name, decoding and uploading the file on first use.
// Names are cleaned first, so "robot.png" and "./robot.png" share a handle.
// Failures are reported as *LoadError and leave the cache unchanged.
func (c *TextureCache) Acquire(name string) (TextureHandle, error) {
	key := filepath.Clean(name)
	if tex, ok := c.handles[key]; ok {
		return tex, nil
	}

	path := filepath.Join(c.dir, key)
	img, err := c.decode(path)
	if err != nil {
		c.logger.Error("texture load failed", "path", path, "err", err)
		return NoTexture, &LoadError{Path: path, Err: err}
	}

	tex, err := c.device.CreateTexture(img)
	if err != nil {
		c.logger.Error("texture upload failed", "path", path, "err", err)
		return NoTexture, &LoadError{Path: path, Err: err}
	}

	handle := TextureHandle(tex)
	c.handles[key] = handle
	c.logger.Debug("texture loaded", "name", key, "id", tex, "w", img.Rect.Dx(), "h", img.Rect.Dy())
	return handle, nil
}

// Len reports how many textures are cached
func (c *TextureCache) Len() int { return len(c.handles) }

// ReleaseAll deletes every cached texture and empties the cache.
// Nothing may render with a handle from this cache afterwards.
func (c *TextureCache) ReleaseAll() {
	for name, tex := range c.handles {
		c.device.DeleteTexture(uint32(tex))
		delete(c.handles, name)
	}
}
