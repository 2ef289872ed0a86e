package btree

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpDOTContainsEveryValue(t *testing.T) {
	tree := newIntTree(t, 3)
	for _, v := range []int{10, 20, 30, 40, 50, 60} {
		tree.InsertUnique(v)
	}
	var buf bytes.Buffer
	tree.DumpDOT(&buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("DumpDOT missing digraph header: %q", out[:min(40, len(out))])
	}
	for _, v := range []string{"10", "20", "30", "40", "50", "60"} {
		if !strings.Contains(out, v) {
			t.Fatalf("DumpDOT output missing value %s:\n%s", v, out)
		}
	}
}

func TestDumpDOTEmptyTree(t *testing.T) {
	tree := newIntTree(t, 3)
	var buf bytes.Buffer
	tree.DumpDOT(&buf)
	if !strings.Contains(buf.String(), "(empty)") {
		t.Fatalf("DumpDOT of empty tree: got %q", buf.String())
	}
}

func TestDumpToNonTerminalWriterIsUncolored(t *testing.T) {
	tree := newIntTree(t, 3)
	for _, v := range []int{1, 2, 3, 4, 5} {
		tree.InsertUnique(v)
	}
	var buf bytes.Buffer
	tree.Dump(&buf)
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("Dump to a bytes.Buffer should not emit ANSI color codes: %q", buf.String())
	}
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		if !strings.Contains(buf.String(), v) {
			t.Fatalf("Dump output missing value %s", v)
		}
	}
}
