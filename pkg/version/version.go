package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = "1.0.0"
var Commit = ""
var BuildTime = ""

// ReleaseURL is the GitHub endpoint describing the latest published release.
var ReleaseURL = "https://api.github.com/repos/gabriellafis/data-report-cli/releases/latest"

// populateFromBuildInfo preenche Commit/BuildTime usando as informações embedadas pelo Go.
// Valores definidos via ldflags não são sobrescritos.
func populateFromBuildInfo() {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}

	get := func(key string) (string, bool) {
		for _, s := range bi.Settings {
			if s.Key == key {
				return s.Value, true
			}
		}
		return "", false
	}

	// vcs.revision: commit full SHA; usamos curto (7 chars)
	if Commit == "" {
		if rev, ok := get("vcs.revision"); ok && len(rev) >= 7 {
			Commit = rev[:7]
		}
	}

	if BuildTime == "" {
		if t, ok := get("vcs.time"); ok && t != "" {
			if ts, err := time.Parse(time.RFC3339, t); err == nil {
				BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
			}
		}
	}

	if m, ok := get("vcs.modified"); ok && strings.EqualFold(m, "true") && !strings.HasSuffix(Version, "-dirty") {
		Version = Version + "-dirty"
	}
}

func init() {
	populateFromBuildInfo()
}

// LatestRelease fetches the tag of the latest published release, without the "v" prefix.
func LatestRelease(ctx context.Context, client *http.Client, url string) (string, error) {
	if client == nil {
		client = &http.Client{Timeout: 3 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("error creating release request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected release status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading release response: %w", err)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return "", fmt.Errorf("error decoding release response: %w", err)
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}

// CheckLatestVersion verifica se uma versão mais recente está disponível.
// Falhas de rede são ignoradas silenciosamente.
func CheckLatestVersion(ctx context.Context, currentVersion string) {
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	latest, err := LatestRelease(ctx, nil, ReleaseURL)
	if err != nil || latest == "" {
		return
	}

	if IsNewer(latest, currentVersion) {
		pterm.Warning.Println(fmt.Sprintf("A new version of Data Report CLI is available: %s", latest))
		pterm.Info.Println("Please update using: go install github.com/gabriellafis/data-report-cli/cmd/data-report@latest")
	}
}

// IsNewer reports whether candidate is a later dotted version than current.
// Non-numeric segments and suffixes such as "-dirty" are ignored.
func IsNewer(candidate, current string) bool {
	a := parseSegments(candidate)
	b := parseSegments(current)
	for i := 0; i < len(a) || i < len(b); i++ {
		var x, y int
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if x != y {
			return x > y
		}
	}
	return false
}

func parseSegments(v string) []int {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		out = append(out, n)
	}
	return out
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	if Commit == "" && BuildTime == "" {
		return fmt.Sprintf("%s (development)", ver)
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}

	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}

	return fmt.Sprintf("%s (commit: %s)", ver, commit)
}
