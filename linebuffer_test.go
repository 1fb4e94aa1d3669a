package consoleink

import "testing"

func TestLineBufferSplitsOnLF(t *testing.T) {
	var got []string
	lb := newLineBuffer(func(l []byte) { got = append(got, string(l)) })
	lb.WriteString("a\nb\n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v", got)
	}
}

func TestLineBufferCRLFCollapsesToOneBoundary(t *testing.T) {
	var got []string
	lb := newLineBuffer(func(l []byte) { got = append(got, string(l)) })
	lb.WriteString("a\r\nb\r\n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v", got)
	}
}

func TestLineBufferBareCRTerminatesLine(t *testing.T) {
	var got []string
	lb := newLineBuffer(func(l []byte) { got = append(got, string(l)) })
	lb.WriteString("a\rb\r")
	lb.Complete()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v", got)
	}
}

func TestLineBufferCompleteFlushesPartialLine(t *testing.T) {
	var got []string
	lb := newLineBuffer(func(l []byte) { got = append(got, string(l)) })
	lb.WriteString("no newline here")
	lb.Complete()
	if len(got) != 1 || got[0] != "no newline here" {
		t.Fatalf("got %v", got)
	}
}
