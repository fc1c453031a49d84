// Example opens a window, builds the shader programs listed in a manifest
// and draws a full-screen triangle with one of them.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Flags select another manifest or program:
//
//	go run ./example/ --manifest example/shaders/demo.yaml --program plasma -v
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
	"github.com/go-theft-auto/shader/manifest"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type options struct {
	manifest string
	program  string
	width    int
	height   int
	verbose  bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "example",
		Short:         "Draw a full-screen pass with a program from a shader manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.manifest, "manifest", "m", "example/shaders/demo.toml", "shader manifest (.toml or .yaml)")
	f.StringVarP(&opts.program, "program", "p", "", "program to draw (default: the manifest's \"use\" entry)")
	f.IntVar(&opts.width, "width", 800, "window width")
	f.IntVar(&opts.height, "height", 600, "window height")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log shader lifecycle events")
	return cmd
}

func run(opts options) error {
	shader.SetVerbose(opts.verbose)

	mf, err := manifest.Load(opts.manifest)
	if err != nil {
		return err
	}
	name := opts.program
	if name == "" {
		name = mf.Use
	}
	if name == "" && len(mf.Programs) > 0 {
		name = mf.Programs[0].Name
	}

	window, err := opengl.NewWindow(opengl.WindowConfig{
		Width:  opts.width,
		Height: opts.height,
		Title:  "shader example",
		VSync:  true,
	})
	if err != nil {
		return err
	}
	defer window.Close()

	sm := shader.NewManager(opengl.NewDriver())
	defer sm.Delete()

	if err := mf.Build(sm); err != nil {
		return fmt.Errorf("build shaders: %w", err)
	}
	if err := mf.ApplyUniforms(sm, name); err != nil {
		if errors.Is(err, shader.ErrNotFound) {
			return err
		}
		// Unused uniforms are optimized out by the driver; keep drawing.
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	// Core profile needs a bound VAO even when the vertex shader generates
	// its own positions from gl_VertexID.
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	defer gl.DeleteVertexArrays(1, &vao)

	start := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := setOptional(sm, "time", shader.Scalar(float32(glfw.GetTime()-start))); err != nil {
			return err
		}
		if err := setOptional(sm, "resolution", shader.Vector(float32(w), float32(h))); err != nil {
			return err
		}

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		window.SwapBuffers()
	}

	return nil
}

// setOptional sets a uniform the program may not declare.
func setOptional(sm *shader.Manager, name string, v shader.Value) error {
	err := sm.SetUniform(name, v)
	if errors.Is(err, shader.ErrUnknownUniform) {
		return nil
	}
	return err
}
