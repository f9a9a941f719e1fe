package file

import "fmt"

// -- Read File --

type ReadFileRequest struct {
	WorkingDirectory string `mapstructure:"working_directory"`
	FilePath         string `mapstructure:"file_path"`
}

func (r *ReadFileRequest) Validate() error {
	if r.FilePath == "" {
		return ErrPathRequired
	}
	return nil
}

// Path is the path as the caller supplied it.
type ReadFileResponse struct {
	Content   string
	Path      string
	Truncated bool
	Limit     int
}

// String renders the response as the text handed back to the model.
func (r *ReadFileResponse) String() string {
	if !r.Truncated {
		return r.Content
	}
	return fmt.Sprintf("%s[...File %q truncated at %d characters]", r.Content, r.Path, r.Limit)
}

// -- Write File --

type WriteFileRequest struct {
	WorkingDirectory string `mapstructure:"working_directory"`
	FilePath         string `mapstructure:"file_path"`
	Content          string `mapstructure:"content"`
}

func (r *WriteFileRequest) Validate() error {
	if r.FilePath == "" {
		return ErrPathRequired
	}
	return nil
}

type WriteFileResponse struct {
	Path         string
	AbsolutePath string
	CharsWritten int
}

func (r *WriteFileResponse) String() string {
	return fmt.Sprintf("Successfully wrote to %q (%d characters written)", r.Path, r.CharsWritten)
}
