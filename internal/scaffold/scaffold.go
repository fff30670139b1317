package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/romanpravda/scormpack/pkg/scormpack"
)

//go:embed all:templates
var templatesFS embed.FS

// DefaultTemplate is used when init is given no --template.
const DefaultTemplate = "basic"

// Project describes the course a template is rendered for.
type Project struct {
	Name       string
	Identifier string
	Version    scormpack.Version
}

// Scaffolder handles project initialization from templates
type Scaffolder struct {
	logger scormpack.Logger
}

// NewScaffolder creates a new Scaffolder instance.
// Panics if logger is nil.
func NewScaffolder(logger scormpack.Logger) *Scaffolder {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scaffolder{logger: logger}
}

// CreateProject creates a new course content root from a template.
// An empty Identifier is derived from the project name.
func (s *Scaffolder) CreateProject(project Project, templateName, targetPath string) error {
	templatePath := "templates/" + templateName
	if _, err := templatesFS.ReadDir(templatePath); err != nil {
		return fmt.Errorf("template '%s' not found: %w", templateName, err)
	}

	isEmpty, err := isDirectoryEmpty(targetPath)
	if err != nil {
		return fmt.Errorf("failed to check target directory: %w", err)
	}
	if !isEmpty {
		return fmt.Errorf("target directory '%s' is not empty\n\nscormpack init requires an empty directory to avoid overwriting existing files.\n\nOptions:\n• Choose a different location\n• Remove existing files manually\n• Use a new directory name", targetPath)
	}

	if project.Identifier == "" {
		project.Identifier = Slug(project.Name)
	}

	if err := os.MkdirAll(targetPath, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	s.logger.Verbose("Creating SCORM %s course '%s' at %s with template '%s'", project.Version, project.Name, targetPath, templateName)

	if err := s.copyTemplateFiles(templatePath, targetPath, project); err != nil {
		return fmt.Errorf("failed to copy template files: %w", err)
	}

	s.logger.Verbose("Project created successfully")
	return nil
}

func (s *Scaffolder) copyTemplateFiles(templatePath, targetPath string, project Project) error {
	return fs.WalkDir(templatesFS, templatePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == templatePath {
			return nil
		}

		relPath := filepath.FromSlash(strings.TrimPrefix(path, templatePath+"/"))
		targetFilePath := filepath.Join(targetPath, relPath)

		if d.IsDir() {
			s.logger.Verbose("Creating directory: %s", relPath)
			return os.MkdirAll(targetFilePath, 0755)
		}

		content, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		s.logger.Verbose("Creating file: %s", relPath)
		if err := os.WriteFile(targetFilePath, []byte(processTemplate(string(content), project)), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetFilePath, err)
		}

		return nil
	})
}

// processTemplate replaces template variables in content
func processTemplate(content string, project Project) string {
	return strings.NewReplacer(
		"{{PROJECT_NAME}}", project.Name,
		"{{IDENTIFIER}}", project.Identifier,
		"{{SCORM_VERSION}}", project.Version.String(),
	).Replace(content)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a course name into an identifier: lower case ASCII letters and
// digits joined by single dashes.
func Slug(name string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return "course"
	}
	return slug
}

// ListTemplates returns available template names
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			templates = append(templates, entry.Name())
		}
	}

	return templates, nil
}

// ignoredEntries may exist in a directory that is still considered empty.
var ignoredEntries = map[string]bool{
	".git":       true,
	".gitignore": true,
	".env":       true,
}

// isDirectoryEmpty checks if a directory is empty or doesn't exist.
// Returns (true, nil) if directory doesn't exist or holds only ignoredEntries.
// Returns (false, nil) if directory exists and contains files/subdirectories.
// Returns (false, error) if there's an error checking the directory.
func isDirectoryEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check directory: %w", err)
	}

	if !info.IsDir() {
		return false, fmt.Errorf("path exists but is not a directory")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		if !ignoredEntries[entry.Name()] {
			return false, nil
		}
	}
	return true, nil
}

// BuildFileTree creates a visual tree representation of the directory structure.
func BuildFileTree(rootPath string) (string, error) {
	var sb strings.Builder

	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		absPath = rootPath
	}
	sb.WriteString(absPath + "/\n")

	if err := writeTree(&sb, rootPath, ""); err != nil {
		return "", fmt.Errorf("failed to build file tree: %w", err)
	}
	return sb.String(), nil
}

func writeTree(sb *strings.Builder, dir, indent string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		last := i == len(entries)-1

		branch, childIndent := "├── ", indent+"│   "
		if last {
			branch, childIndent = "└── ", indent+"    "
		}

		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		sb.WriteString(indent + branch + name + "\n")

		if entry.IsDir() {
			if err := writeTree(sb, filepath.Join(dir, entry.Name()), childIndent); err != nil {
				return err
			}
		}
	}
	return nil
}
