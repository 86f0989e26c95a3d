package devour

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Exporter persists generated instances. Each instance gets its own
// directory under Dir containing first_frame.png, final_frame.png,
// prompt.txt, and (when the instance carries an animation plan)
// solution.gif plus solution.mp4 if ffmpeg is available.
type Exporter struct {
	Dir string

	// FFmpeg is the path of the ffmpeg binary used for MP4 muxing. Empty
	// disables MP4 output; the GIF is always written.
	FFmpeg string
}

// NewExporter creates an exporter rooted at dir. MP4 output is enabled when
// ffmpeg is found on PATH.
func NewExporter(dir string) *Exporter {
	e := &Exporter{Dir: dir}
	if path, err := exec.LookPath("ffmpeg"); err == nil {
		e.FFmpeg = path
	}
	return e
}

// Export writes every artifact for one instance. MP4 muxing failures are
// non-fatal (the GIF already holds the solution video); everything else
// aborts with an error and may leave a partial directory behind for the
// caller to clean up.
func (e *Exporter) Export(inst *Instance, r *Renderer) error {
	dir := filepath.Join(e.Dir, sanitizeTaskID(inst.TaskID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export %s: %w", inst.TaskID, err)
	}

	first := r.Render(inst.InitialScene())
	final := r.Render(inst.FinalScene())
	if err := writePNG(filepath.Join(dir, "first_frame.png"), first); err != nil {
		return fmt.Errorf("export %s: %w", inst.TaskID, err)
	}
	if err := writePNG(filepath.Join(dir, "final_frame.png"), final); err != nil {
		return fmt.Errorf("export %s: %w", inst.TaskID, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prompt.txt"), []byte(inst.Prompt+"\n"), 0o644); err != nil {
		return fmt.Errorf("export %s: prompt: %w", inst.TaskID, err)
	}

	if inst.Plan == nil {
		return nil
	}

	frames := make([]*image.NRGBA, len(inst.Plan.Frames))
	for i := range inst.Plan.Frames {
		frames[i] = r.Render(inst.Plan.Scene(i))
	}
	if err := writeGIF(filepath.Join(dir, "solution.gif"), frames, inst.Plan.FPS); err != nil {
		return fmt.Errorf("export %s: %w", inst.TaskID, err)
	}
	if e.FFmpeg != "" {
		if err := e.writeMP4(filepath.Join(dir, "solution.mp4"), frames, inst.Plan.FPS); err != nil {
			// GIF output already succeeded; note and move on.
			fmt.Fprintf(os.Stderr, "[devour] export %s: mp4: %v\n", inst.TaskID, err)
		}
	}
	return nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// scenePalette covers the task's colors: white, ramps toward black and red
// for anti-aliased disc edges.
func scenePalette() color.Palette {
	p := make(color.Palette, 0, 33)
	p = append(p, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	for i := 1; i <= 16; i++ {
		t := uint8(255 - i*255/16)
		p = append(p, color.NRGBA{R: t, G: t, B: t, A: 255})
		p = append(p, color.NRGBA{R: 255, G: t, B: t, A: 255})
	}
	return p
}

// writeGIF encodes the frame sequence as an animated GIF at the given fps.
func writeGIF(path string, frames []*image.NRGBA, fps int) error {
	pal := scenePalette()
	delay := 100 / fps // GIF delays are in hundredths of a second
	if delay < 1 {
		delay = 1
	}

	anim := &gif.GIF{}
	for _, frame := range frames {
		paletted := image.NewPaletted(frame.Bounds(), pal)
		draw.Draw(paletted, frame.Bounds(), frame, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// writeMP4 pipes the frames as PNGs into ffmpeg. yuv420p keeps the output
// playable in stock players.
func (e *Exporter) writeMP4(path string, frames []*image.NRGBA, fps int) error {
	var buf bytes.Buffer
	for _, frame := range frames {
		if err := png.Encode(&buf, frame); err != nil {
			return fmt.Errorf("encode frame: %w", err)
		}
	}

	cmd := exec.Command(e.FFmpeg,
		"-y",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-r", strconv.Itoa(fps),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		path,
	)
	cmd.Stdin = &buf
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, firstLine(out))
	}
	return nil
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

// sanitizeTaskID replaces characters that are unsafe in file names with
// underscores and falls back to "task" for empty strings.
func sanitizeTaskID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return "task"
	}
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
