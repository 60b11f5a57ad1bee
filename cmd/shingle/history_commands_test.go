package main

import (
	"encoding/json"
	"testing"

	"shingle/internal/api"
	"shingle/internal/testsupport"
)

func TestHistoryListShowPrune(t *testing.T) {
	env := setupCLITestEnv(t)
	first := testsupport.WriteText(t, env.cfg, "a.txt", catsText)
	second := testsupport.WriteText(t, env.cfg, "b.txt", "Кошка живёт одна.")

	out, _, err := runCLI(t, []string{"history", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "No comparisons recorded")

	out, _, err = runCLI(t, []string{"compare", "--json", first, second}, env.configPath, "")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	var compared api.CompareResponse
	if err := json.Unmarshal([]byte(out), &compared); err != nil {
		t.Fatalf("decode compare: %v", err)
	}

	out, _, err = runCLI(t, []string{"history", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, compared.ID[:8])
	requireContains(t, out, "a.txt")

	out, _, err = runCLI(t, []string{"history", "list", "--json"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history list --json: %v", err)
	}
	var list api.HistoryListResponse
	if err := json.Unmarshal([]byte(out), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].ID != compared.ID {
		t.Fatalf("unexpected history list %+v", list)
	}

	out, _, err = runCLI(t, []string{"history", "show", compared.ID}, env.configPath, "")
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	requireContains(t, out, "Comparison "+compared.ID)
	requireContains(t, out, "Window 7, minimum match 4")

	if _, _, err := runCLI(t, []string{"history", "show", "missing"}, env.configPath, ""); err == nil {
		t.Fatalf("expected missing id to fail")
	}

	out, _, err = runCLI(t, []string{"history", "prune", "--days", "1"}, env.configPath, "")
	if err != nil {
		t.Fatalf("history prune: %v", err)
	}
	requireContains(t, out, "Removed 0 comparisons")
}

func TestHistoryDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithHistoryDisabled())
	_, _, err := runCLI(t, []string{"history", "list"}, env.configPath, "")
	if err == nil {
		t.Fatalf("expected error with history disabled")
	}
	requireContains(t, err.Error(), "history is disabled")
}
