package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

/***** STRUCT **********************************/

// output collects the lines of one task that go to the same place. An empty
// path means stdout.
type output struct {
	path  string
	lines bytes.Buffer
	num   int
}

/***** VARIABLE ********************************/

// mutexDir serialises directory creation and writes to stdout.
var mutexDir sync.Mutex

/***** FUNCTION ********************************/

// renderTask formats every instant of task's arc with its pattern. Its
// output path may hold directives too; each instant's line goes to the path
// rendered for that instant. Outputs come back in order of first use, and
// lines within an output in time order.
func renderTask(ctx context.Context, job *Job, task Task) ([]*output, error) {
	ts, te := job.Arc(task)
	index := make(map[string]*output)
	var outs []*output

	for t, n := ts, 0; t.Le(te); t, n = t.Add(job.Interval), n+1 {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		var path string

		if task.Output != "" {
			path = t.Format(task.Output)
		}

		o, ok := index[path]

		if !ok {
			o = &output{path: path}
			index[path] = o
			outs = append(outs, o)
		}

		o.lines.WriteString(t.Format(task.Pattern))
		o.lines.WriteByte('\n')
		o.num++
	}

	return outs, nil
}

/***********************************************/

// writeOutput stores o. An existing file is left alone and os.ErrExist
// returned, unless force is set.
func writeOutput(o *output, force bool, stdout io.Writer) (err error) {
	if o.path == "" {
		mutexDir.Lock()
		defer mutexDir.Unlock()

		_, err = stdout.Write(o.lines.Bytes())
		return
	}

	if _, err = os.Stat(o.path); err == nil && !force {
		return os.ErrExist
	}

	dir := filepath.Dir(o.path)

	mutexDir.Lock()
	err = os.MkdirAll(dir, 0775)
	mutexDir.Unlock()

	if err != nil {
		return
	}

	return os.WriteFile(o.path, o.lines.Bytes(), 0664)
}

/***********************************************/

// process runs the tasks of job, at most job.Workers at a time. The first
// failing task cancels the ones not yet finished.
func process(ctx context.Context, job *Job, stdout io.Writer) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(min(len(job.Tasks), job.Workers))

	for _, task := range job.Tasks {
		task := task
		g.Go(func() error {
			outs, err := renderTask(ctx, job, task)

			if err != nil {
				return errors.Wrapf(err, "task %s", task.Name)
			}

			for _, o := range outs {
				err = writeOutput(o, task.IfForce, stdout)

				if errors.Is(err, os.ErrExist) {
					slog.Info("output already exists", "task", task.Name, "path", o.path)
					continue
				} else if err != nil {
					return errors.Wrapf(err, "task %s", task.Name)
				}

				slog.Debug("wrote output", "task", task.Name, "path", o.path, "instants", o.num)
			}

			slog.Info("finished task", "task", task.Name, "outputs", len(outs))
			return nil
		})
	}

	return g.Wait()
}

/***********************************************/
