package models

import (
	"fmt"
	"time"
)

// Category classifies a staged file and determines its destination directory.
type Category string

const (
	APIDocumentation Category = "apiDocumentation"
	CodeExamples     Category = "codeExamples"
)

// Categories lists every valid category in a stable order.
var Categories = []Category{APIDocumentation, CodeExamples}

// ParseCategory maps the CLI spellings onto a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "api", "apiDocumentation":
		return APIDocumentation, nil
	case "code", "codeExamples":
		return CodeExamples, nil
	default:
		return "", fmt.Errorf("unknown category %q (expected 'api' or 'code')", s)
	}
}

// SourceFileReference describes one staged file. It is synthesized from live
// filesystem metadata and never mutated after creation.
type SourceFileReference struct {
	ID        string
	FileName  string
	FilePath  string
	Size      int64
	Hash      uint64
	Category  Category
	CreatedAt time.Time
}
