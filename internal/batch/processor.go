package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"softfb/internal/imageio"
	"softfb/internal/scene"
)

// Config holds the shared settings for a batch run.
type Config struct {
	OutputDir   string
	Format      imageio.Format
	Supersample int
	Workers     int
	Logger      *slog.Logger

	// ProgressEvery is the progress log interval; zero means two seconds.
	ProgressEvery time.Duration
}

// Job is one scene to render. When Scene is nil it is loaded from Source.
type Job struct {
	Source string
	Scene  *scene.Scene
}

// Result holds the outcome of processing one job.
type Result struct {
	Name    string
	Source  string
	Output  string
	Width   uint32
	Height  uint32
	Success bool
	Error   string
}

// Run renders all jobs on a pool of cfg.Workers goroutines. Each worker
// owns the buffers it renders into. Jobs not yet dispatched when ctx is
// cancelled fail with the context's error.
func Run(ctx context.Context, cfg Config, jobs []Job) []Result {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	every := cfg.ProgressEvery
	if every <= 0 {
		every = 2 * time.Second
	}

	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Info("progress", "done", p, "total", total, "scenes_per_sec", fmt.Sprintf("%.1f", rate))
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, idx, jobs[idx])
				if !results[idx].Success {
					logger.Error("render failed", "scene", results[idx].Name, "error", results[idx].Error)
				} else {
					logger.Debug("rendered", "scene", results[idx].Name, "output", results[idx].Output)
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	sent := 0
dispatch:
	for ; sent < total; sent++ {
		select {
		case <-ctx.Done():
			break dispatch
		case jobChan <- sent:
		}
	}
	close(jobChan)

	wg.Wait()
	close(done)

	for i := sent; i < total; i++ {
		results[i] = Result{
			Name:   jobName(i, jobs[i]),
			Source: jobs[i].Source,
			Error:  ctx.Err().Error(),
		}
	}

	return results
}

func processJob(cfg Config, idx int, job Job) Result {
	res := Result{Name: jobName(idx, job), Source: job.Source}

	sc := job.Scene
	if sc == nil {
		loaded, err := scene.Load(job.Source)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		sc = &loaded
	}

	img, err := scene.Render(*sc, cfg.Supersample)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Output = filepath.Join(cfg.OutputDir, outputStem(res.Name)+cfg.Format.Ext())
	if err := imageio.Save(res.Output, img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Width, res.Height = img.Width(), img.Height()
	res.Success = true
	return res
}

func jobName(idx int, job Job) string {
	switch {
	case job.Scene != nil && job.Scene.Name != "":
		return job.Scene.Name
	case job.Source != "":
		return job.Source
	}
	return fmt.Sprintf("scene-%d", idx)
}

// outputStem turns a scene name or path into a file name without extension.
func outputStem(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, base)
	if base == "" || base == "." {
		return "scene"
	}
	return base
}
