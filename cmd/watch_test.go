package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/skua-bio/fastascan/internal/domain"
	m "github.com/skua-bio/fastascan/internal/model"
)

func TestWatchCmd_PrintsInitialReportAndStops(t *testing.T) {
	resetFlags()
	mockWorkflow := swapWorkflow(t)

	root := t.TempDir()

	mockWorkflow.On("Scan", mock.MatchedBy(func(args domain.ScanArgs) bool {
		return args.Root == m.Path(root)
	})).Return(sampleScanReport(root), nil)

	cmd := newWatchCmd()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{root})

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(300 * time.Millisecond)
		cancel()
	}()

	err := cmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("ExecuteContext() error = %v", err)
	}

	if !strings.Contains(out.String(), "OVERALL RESULTS") {
		t.Fatalf("missing initial report\noutput:\n%s", out.String())
	}
}

func TestWatchCmd_EmptyRootKeepsWaiting(t *testing.T) {
	resetFlags()
	mockWorkflow := swapWorkflow(t)

	root := t.TempDir()

	mockWorkflow.On("Scan", mock.Anything).
		Return(m.ScanReport{}, fmt.Errorf("%w in %s", domain.ErrNoCandidates, root))

	cmd := newWatchCmd()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{root})

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(300 * time.Millisecond)
		cancel()
	}()

	// A root without candidates must not abort the watch session.
	err := cmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("ExecuteContext() error = %v", err)
	}

	if strings.Contains(out.String(), "OVERALL RESULTS") {
		t.Fatalf("no report expected for an empty root\noutput:\n%s", out.String())
	}
}

func TestWatchCmd_BadConfigPath(t *testing.T) {
	resetFlags()

	cmd := newWatchCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	configFlag = "/nonexistent/config.yaml"

	t.Cleanup(resetFlags)

	cmd.SetArgs([]string{t.TempDir()})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
