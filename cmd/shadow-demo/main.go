package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"shadow-demo/internal/config"
	"shadow-demo/internal/game"
	"shadow-demo/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	fps := flag.Int("fps", 0, "frame rate cap on top of vsync, 0 for none")
	ambient := flag.Float64("ambient", float64(config.GetAmbientFactor()), "ambient light factor")
	flag.Parse()

	config.SetFPSLimit(*fps)
	config.SetAmbientFactor(float32(*ambient))

	closer.Bind(func() {
		log.Println("shadow-demo: shut down")
	})

	if err := run(); err != nil {
		closer.Fatalln("shadow-demo:", err)
	}
	closer.Close()
}

// run owns every GL object; deferred cleanup happens here on the locked
// main thread before closer takes over.
func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow()
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	im := input.NewInputManager()
	im.Attach(window)

	app, err := game.NewApp(window, im)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run()
}
