package appstatus_test

import (
	"testing"

	"github.com/joblinkhq/joblink/internal/appstatus"
)

// ── Parse ──────────────────────────────────────────────────────────────────

func TestParse_ValidValues(t *testing.T) {
	valid := []string{"submitted", "viewed", "shortlisted", "rejected"}
	for _, s := range valid {
		got, err := appstatus.Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("Parse(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParse_InvalidValue(t *testing.T) {
	for _, s := range []string{"SUBMITTED", "pending", "accepted", ""} {
		if _, err := appstatus.Parse(s); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", s)
		}
	}
}

// ── CanTransition — valid transitions ─────────────────────────────────────

func TestCanTransition_Valid(t *testing.T) {
	cases := []struct {
		from appstatus.Status
		to   appstatus.Status
	}{
		{appstatus.StatusSubmitted, appstatus.StatusViewed},
		{appstatus.StatusViewed, appstatus.StatusShortlisted},
		{appstatus.StatusViewed, appstatus.StatusRejected},
	}
	for _, c := range cases {
		if !appstatus.CanTransition(c.from, c.to) {
			t.Errorf("CanTransition(%s → %s) should be true", c.from, c.to)
		}
	}
}

// ── CanTransition — terminal states have no outgoing transitions ──────────

func TestCanTransition_FromTerminal(t *testing.T) {
	terminals := []appstatus.Status{appstatus.StatusShortlisted, appstatus.StatusRejected}
	targets := []appstatus.Status{
		appstatus.StatusSubmitted,
		appstatus.StatusViewed,
		appstatus.StatusShortlisted,
		appstatus.StatusRejected,
	}
	for _, from := range terminals {
		for _, to := range targets {
			if appstatus.CanTransition(from, to) {
				t.Errorf("CanTransition(%s → %s) should be false (terminal state)", from, to)
			}
		}
	}
}

// ── CanTransition — skipping the viewed state is forbidden ────────────────

func TestCanTransition_SkipViewed(t *testing.T) {
	cases := []appstatus.Status{appstatus.StatusShortlisted, appstatus.StatusRejected}
	for _, to := range cases {
		if appstatus.CanTransition(appstatus.StatusSubmitted, to) {
			t.Errorf("CanTransition(submitted → %s) should be false (skips viewed)", to)
		}
	}
}

// ── CanTransition — backwards and self movements are forbidden ────────────

func TestCanTransition_BackwardsAndSelf(t *testing.T) {
	all := []appstatus.Status{
		appstatus.StatusSubmitted, appstatus.StatusViewed,
		appstatus.StatusShortlisted, appstatus.StatusRejected,
	}
	for _, s := range all {
		if appstatus.CanTransition(s, s) {
			t.Errorf("CanTransition(%s → %s) should be false (self)", s, s)
		}
	}
	if appstatus.CanTransition(appstatus.StatusViewed, appstatus.StatusSubmitted) {
		t.Error("CanTransition(viewed → submitted) should be false (backwards)")
	}
}

// ── Terminal ───────────────────────────────────────────────────────────────

func TestTerminal(t *testing.T) {
	if appstatus.Terminal(appstatus.StatusSubmitted) || appstatus.Terminal(appstatus.StatusViewed) {
		t.Error("submitted and viewed are not terminal")
	}
	if !appstatus.Terminal(appstatus.StatusShortlisted) || !appstatus.Terminal(appstatus.StatusRejected) {
		t.Error("shortlisted and rejected are terminal")
	}
}

// ── IsDecision ─────────────────────────────────────────────────────────────

func TestIsDecision(t *testing.T) {
	if !appstatus.IsDecision(appstatus.StatusShortlisted) {
		t.Error("IsDecision(shortlisted) should be true")
	}
	if !appstatus.IsDecision(appstatus.StatusRejected) {
		t.Error("IsDecision(rejected) should be true")
	}
	if appstatus.IsDecision(appstatus.StatusSubmitted) || appstatus.IsDecision(appstatus.StatusViewed) {
		t.Error("submitted and viewed are not decision targets")
	}
}

// ── ParseJobStatus ─────────────────────────────────────────────────────────

func TestParseJobStatus(t *testing.T) {
	for _, s := range []string{"draft", "published", "archived"} {
		got, err := appstatus.ParseJobStatus(s)
		if err != nil {
			t.Errorf("ParseJobStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseJobStatus(%q) = %q, want %q", s, got, s)
		}
	}
	if _, err := appstatus.ParseJobStatus("expired"); err == nil {
		t.Error("ParseJobStatus(\"expired\") expected error, got nil")
	}
}
