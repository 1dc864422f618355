package chats

import (
	"strings"
	"testing"
)

func TestCanAccess(t *testing.T) {
	if !CanAccess("u1", "u1", []string{"client"}) {
		t.Error("booking owner must have access")
	}
	if !CanAccess("u1", "u9", []string{"admin"}) {
		t.Error("admin must have access to any booking chat")
	}
	if CanAccess("u1", "u2", []string{"client"}) {
		t.Error("another client must not have access")
	}
	if CanAccess("u1", "v1", []string{"vendor"}) {
		t.Error("vendors coordinate through tasks, not chat")
	}
}

func TestNormalizeText(t *testing.T) {
	if got, ok := NormalizeText("  hello  "); !ok || got != "hello" {
		t.Fatalf("NormalizeText trim = %q, %v", got, ok)
	}
	if _, ok := NormalizeText("   "); ok {
		t.Error("whitespace-only message must be rejected")
	}
	if _, ok := NormalizeText(""); ok {
		t.Error("empty message must be rejected")
	}
	if _, ok := NormalizeText(strings.Repeat("a", maxMessageLen+1)); ok {
		t.Error("oversized message must be rejected")
	}
	if got, ok := NormalizeText(strings.Repeat("a", maxMessageLen)); !ok || len(got) != maxMessageLen {
		t.Error("message at the size limit must pass")
	}
}
