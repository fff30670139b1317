package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romanpravda/scormpack/internal/scaffold"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// setInitFlags sets the init globals and restores the defaults afterwards.
func setInitFlags(t *testing.T, template, title, version string) {
	t.Helper()
	t.Setenv("SCORMPACK_NON_INTERACTIVE", "1")
	initTemplate, initTitle, initIdentifier, initScormVersion = template, title, "", version
	initList, initNoWizard = false, true
	t.Cleanup(func() {
		initTemplate, initTitle, initIdentifier, initScormVersion = scaffold.DefaultTemplate, "", "", "1.2"
		initList, initNoWizard = false, false
	})
}

func newInitTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "init"}
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().String("scorm-version", "1.2", "")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func TestRunInit_NoWizard(t *testing.T) {
	setInitFlags(t, "api-wrapper", "My Course", "2004.4")
	target := filepath.Join(t.TempDir(), "my-course")

	cmd, _, errOut := newInitTestCommand()
	require.NoError(t, runInit(cmd, []string{target}))

	yaml, err := os.ReadFile(filepath.Join(target, "scormpack.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(yaml), `title: "My Course"`)
	assert.Contains(t, string(yaml), `identifier: "my-course"`)
	assert.Contains(t, string(yaml), `scorm_version: "2004.4"`)

	_, err = os.Stat(filepath.Join(target, "js", "scorm-api.js"))
	require.NoError(t, err)

	assert.Contains(t, errOut.String(), "Created structure:")
	assert.Contains(t, errOut.String(), "scormpack build .")
}

func TestRunInit_DefaultTitleFromDirectory(t *testing.T) {
	setInitFlags(t, scaffold.DefaultTemplate, "", "1.2")
	target := filepath.Join(t.TempDir(), "safety-101")

	cmd, _, _ := newInitTestCommand()
	require.NoError(t, runInit(cmd, []string{target}))

	yaml, err := os.ReadFile(filepath.Join(target, "scormpack.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(yaml), `title: "safety-101"`)
}

func TestRunInit_Errors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		version  string
		args     func(t *testing.T) []string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "missing path",
			template: scaffold.DefaultTemplate,
			version:  "1.2",
			args:     func(t *testing.T) []string { return nil },
			wantCode: scormpack.ExitUsageError,
			wantMsg:  "missing required argument",
		},
		{
			name:     "unknown template",
			template: "nope",
			version:  "1.2",
			args:     func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "c")} },
			wantCode: scormpack.ExitGeneralError,
			wantMsg:  "invalid template 'nope'",
		},
		{
			name:     "unsupported version",
			template: scaffold.DefaultTemplate,
			version:  "2004",
			args:     func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "c")} },
			wantCode: scormpack.ExitUnsupportedVersion,
			wantMsg:  "2004",
		},
		{
			name:     "non-empty target",
			template: scaffold.DefaultTemplate,
			version:  "1.2",
			args: func(t *testing.T) []string {
				dir := t.TempDir()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("x"), 0o644))
				return []string{dir}
			},
			wantCode: scormpack.ExitGeneralError,
			wantMsg:  "is not empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setInitFlags(t, tt.template, "Course", tt.version)
			cmd, _, _ := newInitTestCommand()

			err := runInit(cmd, tt.args(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, tt.wantCode, scormpack.ExitCodeForError(err))
		})
	}
}

func TestRunInit_List(t *testing.T) {
	setInitFlags(t, scaffold.DefaultTemplate, "", "1.2")
	initList = true

	cmd, out, _ := newInitTestCommand()
	require.NoError(t, runInit(cmd, nil))

	assert.Contains(t, out.String(), "Available templates:")
	assert.Contains(t, out.String(), "basic")
	assert.Contains(t, out.String(), "api-wrapper")
}

func TestDefaultProjectName(t *testing.T) {
	assert.Equal(t, "intro", defaultProjectName("./courses/intro"))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(cwd), defaultProjectName("."))
}
