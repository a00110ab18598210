package pipeline

import (
	"crypto/sha256"
	"fmt"
	"slices"
	"sync"
	"time"
)

// JobStatus represents the state of a render job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusParsing   JobStatus = "parsing"
	StatusRendering JobStatus = "rendering"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job tracks the state of a single document conversion.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`
	Title    string    `json:"title"`
	Language string    `json:"language"`

	Progress Progress `json:"progress"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	result   []byte
	errors   []string
}

// Progress tracks processing progress.
type Progress struct {
	Nodes       int      `json:"nodes"`
	OutputBytes int      `json:"output_bytes"`
	RenderMs    int64    `json:"render_ms"`
	Warnings    []string `json:"warnings"`
	Errors      []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Len returns the number of tracked jobs.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Cleanup removes expired jobs and returns how many were dropped.
func (s *JobStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	n := 0
	for id, job := range s.jobs {
		job.mu.Lock()
		expired := now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if expired {
			delete(s.jobs, id)
			n++
		}
	}
	return n
}

// NewJob creates a queued job for an uploaded file.
func NewJob(filename, title, language string, data []byte) *Job {
	now := time.Now()
	return &Job{
		ID:        newJobID(),
		Status:    StatusQueued,
		Phase:     "queued",
		Filename:  filename,
		Title:     title,
		Language:  language,
		CreatedAt: now,
		UpdatedAt: now,
		fileData:  data,
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// AddWarning records a recoverable diagnostic raised while rendering.
func (j *Job) AddWarning(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Warnings = append(j.Progress.Warnings, msg)
	j.UpdatedAt = time.Now()
}

// SetNodes records the size of the parsed document tree.
func (j *Job) SetNodes(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Nodes = n
	j.UpdatedAt = time.Now()
}

// SetResult stores the rendered document and releases the upload.
func (j *Job) SetResult(rtf []byte, elapsed time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = rtf
	j.fileData = nil
	j.ContentHash = ContentHashHex(rtf)
	j.Progress.OutputBytes = len(rtf)
	j.Progress.RenderMs = elapsed.Milliseconds()
	j.UpdatedAt = time.Now()
}

// Result returns the rendered document, or nil until the job completes.
func (j *Job) Result() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string    `json:"job_id"`
	Status      JobStatus `json:"status"`
	Phase       string    `json:"phase"`
	Filename    string    `json:"filename"`
	Title       string    `json:"title"`
	Language    string    `json:"language"`
	ContentHash string    `json:"content_hash,omitempty"`
	Progress    Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	warns := j.Progress.Warnings
	if warns == nil {
		warns = []string{}
	}
	return JobSnapshot{
		ID:          j.ID,
		Status:      j.Status,
		Phase:       j.Phase,
		Filename:    j.Filename,
		Title:       j.Title,
		Language:    j.Language,
		ContentHash: j.ContentHash,
		Progress: Progress{
			Nodes:       j.Progress.Nodes,
			OutputBytes: j.Progress.OutputBytes,
			RenderMs:    j.Progress.RenderMs,
			Warnings:    slices.Clone(warns),
			Errors:      slices.Clone(errs),
		},
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
