package opengl

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader"
)

func TestGLStage(t *testing.T) {
	tests := []struct {
		kind shader.StageKind
		want uint32
	}{
		{shader.StageVertex, gl.VERTEX_SHADER},
		{shader.StageTessControl, gl.TESS_CONTROL_SHADER},
		{shader.StageTessEvaluation, gl.TESS_EVALUATION_SHADER},
		{shader.StageGeometry, gl.GEOMETRY_SHADER},
		{shader.StageFragment, gl.FRAGMENT_SHADER},
	}
	for _, tt := range tests {
		got, ok := glStage(tt.kind)
		if !ok || got != tt.want {
			t.Errorf("glStage(%s) = %#x, %v; want %#x", tt.kind, got, ok, tt.want)
		}
	}
	if _, ok := glStage(0); ok {
		t.Error("glStage(0) should not map to a GL stage")
	}
}

// fakeLog mimics glGetShaderInfoLog: it copies at most size-1 bytes and a
// terminating NUL, and reports the copied length without the NUL.
func fakeLog(text string) func(size int32, length *int32, buf *uint8) {
	return func(size int32, length *int32, buf *uint8) {
		dst := unsafe.Slice(buf, size)
		n := copy(dst[:size-1], text)
		dst[n] = 0
		*length = int32(n)
	}
}

func TestInfoLog(t *testing.T) {
	got := infoLog(fakeLog("0:3(1): error: syntax error, unexpected '}'\n"))
	if got != "0:3(1): error: syntax error, unexpected '}'" {
		t.Errorf("infoLog = %q", got)
	}
}

func TestInfoLogTruncates(t *testing.T) {
	got := infoLog(fakeLog(strings.Repeat("x", 4*MaxLogLength)))
	if len(got) != MaxLogLength-1 {
		t.Errorf("len(infoLog) = %d, want %d", len(got), MaxLogLength-1)
	}
}
