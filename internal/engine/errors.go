package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryChange indicates the newly created project root could not be entered.
	ErrDirectoryChange = errors.New("could not enter project directory")

	// ErrProjectCreation indicates the package manager failed to create the project.
	ErrProjectCreation = errors.New("project creation failed")

	// ErrFileWrite indicates a generated file could not be written.
	ErrFileWrite = errors.New("file write failed")

	// ErrDependencyAdd indicates the package manager failed to add a dependency.
	ErrDependencyAdd = errors.New("dependency add failed")
)

// FileError records which generated file could not be written.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFileWrite, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	return target == ErrFileWrite
}

// DependencyError records which dependency could not be added.
type DependencyError struct {
	Name string
	Err  error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDependencyAdd, e.Name, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func (e *DependencyError) Is(target error) bool {
	return target == ErrDependencyAdd
}
