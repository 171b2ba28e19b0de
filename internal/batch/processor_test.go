package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"softfb/internal/imageio"
	"softfb/internal/scene"
)

func square(name string) *scene.Scene {
	return &scene.Scene{
		Name: name, Width: 6, Height: 4, Background: "white",
		Shapes: []scene.Shape{{Type: scene.KindRect, Points: []int{1, 1, 2, 2}, Fill: "red"}},
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "from-file.json")
	if err := os.WriteFile(srcPath, []byte(`{"width":3,"height":3,"background":"black"}`), 0644); err != nil {
		t.Fatal(err)
	}

	jobs := []Job{
		{Scene: square("alpha")},
		{Scene: square("beta")},
		{Source: srcPath},
		{Scene: &scene.Scene{Name: "broken", Width: 0, Height: 1}},
		{Source: filepath.Join(dir, "missing.json")},
	}
	cfg := Config{OutputDir: filepath.Join(dir, "out"), Format: imageio.FormatPNG, Supersample: 1, Workers: 3}
	results := Run(context.Background(), cfg, jobs)

	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, want := range []bool{true, true, true, false, false} {
		if results[i].Success != want {
			t.Errorf("job %d (%s) success = %v, want %v: %s", i, results[i].Name, results[i].Success, want, results[i].Error)
		}
	}

	if got := results[0].Output; got != filepath.Join(dir, "out", "alpha.png") {
		t.Errorf("output path = %q", got)
	}
	if got := results[2].Output; got != filepath.Join(dir, "out", "from-file.png") {
		t.Errorf("file job output path = %q", got)
	}
	img, err := imageio.Load(results[0].Output)
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := img.GetPixel(1, 1); p.R != 255 || p.G != 0 {
		t.Errorf("(1,1) = %v, want red", p)
	}
	if results[0].Width != 6 || results[0].Height != 4 {
		t.Errorf("dims = %dx%d", results[0].Width, results[0].Height)
	}
	if results[3].Name != "broken" || results[3].Error == "" {
		t.Errorf("failure result = %+v", results[3])
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := make([]Job, 50)
	for i := range jobs {
		jobs[i] = Job{Scene: square("s")}
	}
	cfg := Config{OutputDir: t.TempDir(), Format: imageio.FormatPPM, Workers: 1}
	results := Run(ctx, cfg, jobs)

	failed := 0
	for _, r := range results {
		if !r.Success {
			if r.Error != context.Canceled.Error() {
				t.Fatalf("unexpected error %q", r.Error)
			}
			failed++
		}
	}
	if failed == 0 {
		t.Fatal("no job observed the cancellation")
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Name: "a", Output: filepath.Join(dir, "a.ppm"), Width: 2, Height: 3, Success: true},
		{Name: "b", Error: "boom"},
	}
	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, results); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Image != "a.ppm" || entries[0].Height != 3 {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestOutputStem(t *testing.T) {
	tests := map[string]string{
		"scenes/tri.json": "tri",
		"my scene":        "my_scene",
		"":                "scene",
		"a:b":             "a_b",
	}
	for in, want := range tests {
		if got := outputStem(in); got != want {
			t.Errorf("outputStem(%q) = %q, want %q", in, got, want)
		}
	}
}
