package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.WorldWidth != 2048 || c.WorldHeight != 2048 || c.LeaderboardSize != 10 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("ABSORB_WORLD_WIDTH", "512")
	t.Setenv("ABSORB_TPS", "30")
	t.Setenv("ABSORB_SEED", "99")
	t.Setenv("ABSORB_AUTOPILOT", "true")

	c := Default()
	if err := c.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if c.WorldWidth != 512 || c.TPS != 30 || c.Seed != 99 || !c.Autopilot {
		t.Fatalf("env not applied: %+v", c)
	}
	if c.WorldHeight != 2048 {
		t.Fatalf("unset key changed: height=%.0f", c.WorldHeight)
	}
}

func TestApplyEnv_BadValue(t *testing.T) {
	t.Setenv("ABSORB_VIEW_WIDTH", "wide")

	c := Default()
	err := c.ApplyEnv()
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if !strings.Contains(err.Error(), "ABSORB_VIEW_WIDTH") {
		t.Fatalf("error should name the key, got %v", err)
	}
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("missing dotenv should be ignored, got %v", err)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	body := "ABSORB_LEADERBOARD=5\nABSORB_FEED_SIZE=3\nABSORB_SEED=11\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	// godotenv.Load sets variables directly; register cleanup for them.
	for _, k := range []string{"ABSORB_LEADERBOARD", "ABSORB_FEED_SIZE"} {
		t.Cleanup(func() { os.Unsetenv(k) })
	}
	// Already-set variables beat the file.
	t.Setenv("ABSORB_SEED", "12")

	c, err := Load("test", path, []string{"-feed", "4", "-world-width", "100"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LeaderboardSize != 5 {
		t.Errorf("dotenv leaderboard: got %d want 5", c.LeaderboardSize)
	}
	if c.Seed != 12 {
		t.Errorf("env should beat dotenv: seed got %d want 12", c.Seed)
	}
	if c.FeedSize != 4 {
		t.Errorf("flag should beat dotenv: feed got %d want 4", c.FeedSize)
	}
	if c.WorldWidth != 100 {
		t.Errorf("flag world width: got %.0f want 100", c.WorldWidth)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	if _, err := Load("test", filepath.Join(t.TempDir(), "none"), []string{"-tps", "0"}); err == nil {
		t.Fatalf("expected tps=0 to be rejected")
	}
}
