package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"ever/datetime"
)

/***** CONSTANT ********************************/

const (
	MIN_WORKER_NUM = 1
	MAX_WORKER_NUM = 999
)

/***** STRUCT **********************************/

type Task struct {
	Name     string `json:"name" toml:"name" yaml:"name"`
	Pattern  string `json:"pattern" toml:"pattern" yaml:"pattern"`
	Output   string `json:"output" toml:"output" yaml:"output"`
	Backward int64  `json:"backward" toml:"backward" yaml:"backward"`
	Forward  int64  `json:"forward" toml:"forward" yaml:"forward"`
	IfForce  bool   `json:"force" toml:"force" yaml:"force"`
}

/***********************************************/

type tJob struct {
	StTime   string `json:"start time" toml:"start time" yaml:"start time"`
	EdTime   string `json:"end time" toml:"end time" yaml:"end time"`
	Interval int64  `json:"interval" toml:"interval" yaml:"interval"`
	Workers  int    `json:"workers" toml:"workers" yaml:"workers"`
	Tasks    []Task `json:"tasks" toml:"tasks" yaml:"tasks"`
}

/***********************************************/

// Job is a checked job file: every task renders the instants from StTime
// to EdTime, both included, Interval seconds apart.
type Job struct {
	StTime   datetime.Instant
	EdTime   datetime.Instant
	Interval int64
	Workers  int
	Tasks    []Task
}

/***** FUNCTION ********************************/

// decodeJobFile picks the decoder from the file extension: .toml, .yaml or
// .yml, and JSON for everything else.
func decodeJobFile(jobFile string, tj *tJob) error {
	data, err := os.ReadFile(jobFile)

	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(jobFile)) {
	case ".toml":
		_, err = toml.Decode(string(data), tj)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, tj)
	default:
		dcr := json.NewDecoder(bytes.NewReader(data))

		for dcr.More() {
			if err = dcr.Decode(tj); err != nil {
				break
			}
		}
	}

	return err
}

/***** METHOD **********************************/

// ParseFile reads and checks jobFile. A job file without "workers" runs
// with defWorkers; a task without "pattern" uses defPattern.
func (job *Job) ParseFile(jobFile string, defPattern string, defWorkers int) error {
	var tj tJob

	if err := decodeJobFile(jobFile, &tj); err != nil {
		return errors.Wrapf(err, "decode %s", jobFile)
	}

	// check if keywords are specified
	if tj.StTime == "" {
		return errors.Wrap(ErrConfig, `no "start time"`)
	} else if tj.EdTime == "" {
		return errors.Wrap(ErrConfig, `no "end time"`)
	} else if tj.Interval == 0 {
		return errors.Wrap(ErrConfig, `no "interval"`)
	} else if len(tj.Tasks) == 0 {
		return errors.Wrap(ErrConfig, `no "tasks"`)
	}

	// check the arc
	var err error

	if job.StTime, err = datetime.Parse(datetime.DEFAULT_PATTERN, tj.StTime); err != nil {
		return errors.Wrap(err, `invalid "start time"`)
	}

	if job.EdTime, err = datetime.Parse(datetime.DEFAULT_PATTERN, tj.EdTime); err != nil {
		return errors.Wrap(err, `invalid "end time"`)
	}

	if job.EdTime.Lt(job.StTime) {
		return errors.Wrap(ErrConfig, "invalid arc")
	}

	if tj.Interval < 0 {
		return errors.Wrap(ErrConfig, `value in "interval" must be positive`)
	}

	job.Interval = tj.Interval

	// check the worker num
	if tj.Workers == 0 {
		tj.Workers = defWorkers
	}

	if tj.Workers < MIN_WORKER_NUM || tj.Workers > MAX_WORKER_NUM {
		return errors.Wrapf(ErrConfig, `value in "workers" must be in %d-%d`, MIN_WORKER_NUM, MAX_WORKER_NUM)
	}

	job.Workers = tj.Workers

	// check tasks
	job.Tasks = make([]Task, 0, len(tj.Tasks))
	names := make(map[string]int)

	for idx, task := range tj.Tasks {
		if task.Name == "" {
			return errors.Wrapf(ErrConfig, `no "name" of the %d-th task specified in "tasks"`, idx+1)
		}

		if names[task.Name]++; names[task.Name] > 1 {
			return errors.Wrapf(ErrConfig, `duplicated "name" of the %d-th task specified in "tasks"`, idx+1)
		}

		if task.Backward < 0 {
			return errors.Wrapf(ErrConfig, `invalid "backward" of the %d-th task specified in "tasks"`, idx+1)
		}

		if task.Forward < 0 {
			return errors.Wrapf(ErrConfig, `invalid "forward" of the %d-th task specified in "tasks"`, idx+1)
		}

		if task.Pattern == "" {
			task.Pattern = defPattern
		}

		task.Output = filepath.ToSlash(task.Output)
		job.Tasks = append(job.Tasks, task)
	}

	return nil
}

/***********************************************/

// Arc returns the first and last instant of task: the job's arc widened by
// the task's backward and forward seconds.
func (job *Job) Arc(task Task) (datetime.Instant, datetime.Instant) {
	return job.StTime.Sub(task.Backward), job.EdTime.Add(task.Forward)
}

/***********************************************/

// Count returns the number of instants rendered by all tasks.
func (job *Job) Count() (num int64) {
	for _, task := range job.Tasks {
		ts, te := job.Arc(task)
		num += te.Diff(ts)/job.Interval + 1
	}

	return
}

/***********************************************/
