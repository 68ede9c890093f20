package lview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// captureLogger swaps in a logger writing to a buffer for the test.
func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() {
		SetLogger(orig)
		globalDebug = false
	})
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	SetLogger(l)
	return &buf
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	custom := logrus.New()
	SetLogger(custom)
	if Logger() != custom {
		t.Fatal("Logger should return the custom logger")
	}
	SetLogger(nil)
	if Logger() == custom || Logger() == nil {
		t.Error("SetLogger(nil) should install a fresh default logger")
	}
	if Logger().GetLevel() != logrus.WarnLevel {
		t.Errorf("default level = %v, want warn", Logger().GetLevel())
	}
}

func TestDebugCheckTreeDepth(t *testing.T) {
	buf := captureLogger(t)

	shallow := sampleTree()
	debugCheckTreeDepth(shallow)
	if buf.Len() != 0 {
		t.Errorf("shallow tree should not warn, got %q", buf.String())
	}

	deep := NewView("deep")
	cur := deep
	for i := 0; i < debugMaxTreeDepth; i++ {
		next := NewView("")
		cur.AddChild(next)
		cur = next
	}
	debugCheckTreeDepth(deep)
	out := buf.String()
	if !strings.Contains(out, "depth exceeds threshold") || !strings.Contains(out, "root=deep") {
		t.Errorf("deep tree should warn, got %q", out)
	}
}

func TestDebugCheckChildCountOnAddChild(t *testing.T) {
	buf := captureLogger(t)
	wide := NewView("wide")
	for i := 0; i < debugMaxChildCount+1; i++ {
		wide.AddChild(NewView(""))
	}
	if buf.Len() != 0 {
		t.Error("child count should not be checked outside debug mode")
	}

	globalDebug = true
	wide.AddChild(NewView(""))
	if !strings.Contains(buf.String(), "too many children") {
		t.Errorf("expected child count warning, got %q", buf.String())
	}
}

func TestDebugDumpTreeDisabledByZeroInterval(t *testing.T) {
	buf := captureLogger(t)
	e, _ := newTestEngine(t, sampleTree())
	e.SetDebugMode(true)
	e.DumpInterval = 0
	e.frame = 300
	e.debugDumpTree()
	if strings.Contains(buf.String(), "view tree") {
		t.Error("zero DumpInterval should disable dumps")
	}
}
