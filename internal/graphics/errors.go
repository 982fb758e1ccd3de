package graphics

import (
	"fmt"
	"strings"
)

// ShaderCompileError reports a shader stage that failed to compile
type ShaderCompileError struct {
	Stage string // "vertex" or "fragment"
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n "))
}

// ShaderLinkError reports a program that failed to link
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", strings.TrimRight(e.Log, "\x00\n "))
}

// LoadError reports a texture that could not be read, decoded or uploaded
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load texture %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
