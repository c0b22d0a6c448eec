package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// resolvePath expands p and anchors it at root when it is still relative.
// An empty path stays empty.
func resolvePath(p, root string) string {
	p = expandPath(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// expandPath expands a leading ~ and environment variables ($VAR, ${VAR},
// and %VAR% on Windows).
func expandPath(p string) string {
	if p == "" {
		return p
	}

	p = os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		p = expandPercentVars(p)
	}

	rest, ok := trimHome(p)
	if !ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}

// trimHome strips "~", "~/" (or "~\" on Windows) and reports whether p was
// home-relative.
func trimHome(p string) (string, bool) {
	if p == "~" {
		return "", true
	}
	if strings.HasPrefix(p, "~/") {
		return p[2:], true
	}
	if runtime.GOOS == "windows" && strings.HasPrefix(p, `~\`) {
		return p[2:], true
	}
	return "", false
}

// expandPercentVars replaces %VAR% with its value. Unset variables are left
// as written, and "%%" collapses to a single "%".
func expandPercentVars(p string) string {
	if !strings.Contains(p, "%") {
		return p
	}
	var b strings.Builder
	for {
		before, after, found := strings.Cut(p, "%")
		b.WriteString(before)
		if !found {
			return b.String()
		}
		key, tail, closed := strings.Cut(after, "%")
		switch {
		case !closed:
			b.WriteByte('%')
			b.WriteString(after)
			return b.String()
		case key == "":
			b.WriteByte('%')
		default:
			if val, ok := os.LookupEnv(key); ok {
				b.WriteString(val)
			} else {
				b.WriteString("%" + key + "%")
			}
		}
		p = tail
	}
}
