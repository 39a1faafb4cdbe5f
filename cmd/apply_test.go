package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/strmut/internal/domain"
	domainmocks "gooze.dev/pkg/strmut/internal/domain/mocks"
	m "gooze.dev/pkg/strmut/internal/model"
)

func runApply(t *testing.T, mockWorkflow *domainmocks.MockWorkflow, args ...string) error {
	t.Helper()

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(newApplyCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"apply"}, args...))

	return cmd.Execute()
}

func TestApplyCmd_PassesFileAndIndex(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Apply", mock.Anything, domain.ApplyArgs{
		Path:  m.Path("pkg/greeting.go"),
		Index: 2,
	}).Return(nil)

	require.NoError(t, runApply(t, mockWorkflow, "pkg/greeting.go", "2"))
}

func TestApplyCmd_WriteTo(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Apply", mock.Anything, domain.ApplyArgs{
		Path:   m.Path("pkg/greeting.go"),
		Index:  0,
		Output: m.Path("mutants"),
	}).Return(nil)

	require.NoError(t, runApply(t, mockWorkflow, "pkg/greeting.go", "0", "--write-to", "mutants"))
}

func TestApplyCmd_RejectsBadArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing index", []string{"pkg/greeting.go"}},
		{"non numeric index", []string{"pkg/greeting.go", "first"}},
		{"negative index", []string{"pkg/greeting.go", "-1"}},
		{"too many args", []string{"a.go", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			require.Error(t, runApply(t, mockWorkflow, tt.args...))
		})
	}
}
