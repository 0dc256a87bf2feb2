package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-mt/internal/config"
	"mini-mt/internal/game"
	"mini-mt/internal/graphics"
	"mini-mt/internal/profiling"
	"mini-mt/internal/worldgen"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "settings.yml", "settings file")
	seed := flag.Int64("seed", 1337, "demo world seed")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow("mini-mt")
	if err != nil {
		log.Fatal(err)
	}

	session := game.NewSession(cfg, "assets/media")
	defer session.Cleanup()

	// Local demo world: the same delivery path a server would drive.
	session.DeliverNodeDefs(worldgen.Defs())
	if err := session.DeliverMedia(worldgen.MediaFiles(), true); err != nil {
		log.Fatal(err)
	}

	cam := graphics.NewCamera(window.GetFramebufferSize())
	cam.Position[1] = 24

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
		cam.SetViewport(w, h)
	})
	installMouseLook(window, cam)

	streamer := newStreamer(worldgen.NewGenerator(*seed), session, cfg.RenderDistance)
	limiter := game.NewFPSLimiter(cfg.FPSLimit)

	lastTime := time.Now()
	lastTitle := time.Now()
	frames := 0

	for !window.ShouldClose() {
		profiling.ResetFrame()
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		glfw.PollEvents()
		handleMovement(window, cam, float32(dt))

		streamer.step(cam.Position)
		session.Update()

		gl.ClearColor(0.53, 0.70, 0.92, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		if err := session.Render(cam); err != nil {
			if errors.Is(err, graphics.ErrOutOfMemory) {
				log.Printf("device out of memory, shutting down")
				window.SetShouldClose(true)
			} else {
				log.Printf("render: %v", err)
			}
		}

		window.SwapBuffers()

		if d := time.Since(frameStart); d > 16*time.Millisecond {
			log.Printf("slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
		}

		frames++
		if time.Since(lastTitle) >= 500*time.Millisecond {
			c := session.Counts()
			fps := float64(frames) / time.Since(lastTitle).Seconds()
			window.SetTitle(fmt.Sprintf(
				"mini-mt | %.0f fps | blocks %d (%d deferred) | models %d | drawn %d+%d | jobs %d",
				fps, c.Blocks, c.Deferred, c.Models, c.DrawnOpaque, c.DrawnBlend, c.QueuedJobs))
			lastTitle = time.Now()
			frames = 0
		}

		limiter.Wait()
	}
}
