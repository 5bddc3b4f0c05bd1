package resume

import (
	"errors"
	"fmt"
	"sync"
)

// ErrResumeNotFound is returned when an identifier does not match any resume
var ErrResumeNotFound = errors.New("resume not found")

// Resume is one uploaded resume version
type Resume struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	UploadDate  string   `json:"uploadDate"`
	FileSize    string   `json:"fileSize"`
	IsDefault   bool     `json:"isDefault"`
	JobsApplied int      `json:"jobsApplied"`
	Tags        []string `json:"tags"`
}

// Library holds resumes in display order
type Library struct {
	mu      sync.RWMutex
	resumes []Resume
}

// NewLibrary creates a library holding the given resumes
func NewLibrary(resumes []Resume) *Library {
	l := &Library{resumes: make([]Resume, 0, len(resumes))}
	for _, r := range resumes {
		l.resumes = append(l.resumes, clone(r))
	}
	return l
}

// List returns a copy of all resumes
func (l *Library) List() []Resume {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Resume, 0, len(l.resumes))
	for _, r := range l.resumes {
		out = append(out, clone(r))
	}
	return out
}

// SetDefault marks id as the default and clears the flag everywhere else
func (l *Library) SetDefault(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.indexOf(id) < 0 {
		return fmt.Errorf("failed to set default resume %q: %w", id, ErrResumeNotFound)
	}
	for i := range l.resumes {
		l.resumes[i].IsDefault = l.resumes[i].ID == id
	}
	return nil
}

// Delete removes the resume. Deleting the default leaves no default.
func (l *Library) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("failed to delete resume %q: %w", id, ErrResumeNotFound)
	}
	l.resumes = append(l.resumes[:i:i], l.resumes[i+1:]...)
	return nil
}

func (l *Library) indexOf(id string) int {
	for i := range l.resumes {
		if l.resumes[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(r Resume) Resume {
	r.Tags = append([]string(nil), r.Tags...)
	return r
}

// MockResumes returns the demo resumes
func MockResumes() []Resume {
	return []Resume{
		{
			ID:          "1",
			Name:        "Software Engineer - Tech Focus",
			Version:     "v2.1",
			UploadDate:  "2024-01-15",
			FileSize:    "245 KB",
			IsDefault:   true,
			JobsApplied: 12,
			Tags:        []string{"Frontend", "React", "JavaScript"},
		},
		{
			ID:          "2",
			Name:        "Full Stack Developer",
			Version:     "v1.3",
			UploadDate:  "2024-01-10",
			FileSize:    "238 KB",
			JobsApplied: 8,
			Tags:        []string{"Full Stack", "Node.js", "MongoDB"},
		},
		{
			ID:          "3",
			Name:        "UI/UX Developer",
			Version:     "v1.0",
			UploadDate:  "2024-01-05",
			FileSize:    "251 KB",
			JobsApplied: 5,
			Tags:        []string{"UI/UX", "Design", "Figma"},
		},
	}
}
