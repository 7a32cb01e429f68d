package errs

import (
	"fmt"
	"strings"
	"testing"
)

func TestMessageKnownCode(t *testing.T) {
	text, suffix := Message(CodeBadArgs)
	if text != "invalid arguments in function call" {
		t.Errorf("Message(CodeBadArgs) = %q, want %q", text, "invalid arguments in function call")
	}
	if suffix != "" {
		t.Errorf("Message(CodeBadArgs) appl suffix = %q, want empty", suffix)
	}
}

func TestMessageUnknownCode(t *testing.T) {
	const unknown int16 = 0x1234
	text, suffix := Message(unknown)
	if text != codeText[CodeBug] {
		t.Errorf("Message(unknown) text = %q, want bug message %q", text, codeText[CodeBug])
	}
	want := fmt.Sprintf("code=0x%04X", uint16(unknown))
	if suffix != want {
		t.Errorf("Message(unknown) suffix = %q, want %q", suffix, want)
	}
}

func TestErrorString(t *testing.T) {
	e := New(KindData, CodeErrRange, "empty/invalid data range").WithAppl("begin=%d end=%d", 10, 5)
	s := e.Error()
	if !strings.HasPrefix(s, "ERROR:") {
		t.Errorf("Error() = %q, want ERROR: prefix", s)
	}
	if !strings.Contains(s, "begin=10 end=5") {
		t.Errorf("Error() = %q, want appl message included", s)
	}
}

func TestWarningString(t *testing.T) {
	e := New(KindWarning, WarnRawForm, codeText[WarnRawForm])
	if !strings.HasPrefix(e.Error(), "WARNING:") {
		t.Errorf("Error() = %q, want WARNING: prefix", e.Error())
	}
	if !IsWarning(e) {
		t.Errorf("IsWarning(e) = false, want true")
	}
}

func TestDefaultChannel(t *testing.T) {
	c := NewDefaultChannel()
	if c.Last() != nil {
		t.Fatalf("new channel Last() = %v, want nil", c.Last())
	}
	e := New(KindFile, CodeMissing, "file does not exist")
	c.Set(e)
	if c.Last() == nil || c.Last().Code != CodeMissing {
		t.Fatalf("Last() = %v, want code %v", c.Last(), CodeMissing)
	}
	c.Clear()
	if c.Last() != nil {
		t.Fatalf("after Clear, Last() = %v, want nil", c.Last())
	}
}

func TestDefaultChannelTruncatesApplMessage(t *testing.T) {
	c := NewDefaultChannel()
	long := strings.Repeat("x", MaxApplMessage+100)
	c.Set(New(KindBug, CodeBug, "bug").WithAppl(long))
	if len(c.Last().ApplMessage) != MaxApplMessage {
		t.Fatalf("ApplMessage len = %d, want %d", len(c.Last().ApplMessage), MaxApplMessage)
	}
}
