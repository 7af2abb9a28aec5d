// Package corpus holds the built-in list of common queries used to seed the
// prediction engine, plus a loader for an optional
// operator-supplied extension file.
package corpus

import (
	"bufio"
	"os"
	"strings"
)

// Base is the built-in ordered list of common queries. It is intentionally
// small and general-purpose; the prediction engine extends it at
// initialisation with bang names and triggers.
var Base = []string{
	"weather", "weather today", "weather tomorrow", "weather forecast",
	"news", "local news", "world news", "breaking news",
	"restaurants near me", "coffee near me", "gas station near me",
	"time", "time zone converter", "calculator",
	"translate", "translate english to spanish", "translate to french",
	"maps", "directions", "traffic",
	"recipe", "recipes for dinner", "chicken recipe", "pasta recipe",
	"movies", "movies near me", "movie times", "new movies",
	"youtube", "youtube music", "youtube trending",
	"github", "github repo", "github issues",
	"stack overflow", "javascript error", "python error",
	"wikipedia", "wikipedia article",
	"amazon", "amazon order", "amazon returns",
	"reddit", "reddit front page",
	"twitter", "twitter trending",
	"npm install", "npm package", "pip install",
	"golang", "golang tutorial", "go programming language",
	"javascript", "javascript tutorial", "typescript",
	"docker", "docker compose", "kubernetes",
	"flight status", "flight tracker", "cheap flights",
	"hotel booking", "hotels near me",
	"sports scores", "nba scores", "nfl scores",
	"stock price", "stock market today",
	"email login", "gmail login",
	"password generator", "random password",
	"unit converter", "currency converter",
	"covid cases", "vaccine near me",
	"job search", "remote jobs",
	"used cars", "car insurance",
}

// LoadExtra reads newline-delimited corpus words from path, skipping blank
// lines. It is the operational affordance named in SPEC_FULL.md's
// "Supplemented features": operators can seed common queries without a
// recompile. A missing path is not an error; it yields an empty list.
func LoadExtra(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// BangExtensions returns the extension strings (bang triggers and names, as
// base corpus) derived from a bang registry-like source. Accepts a
// slice of (trigger, name) pairs to avoid an import cycle with internal/bang.
func BangExtensions(pairs [][2]string) []string {
	out := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		out = append(out, strings.ToLower(p[0]), strings.ToLower(p[1]))
	}
	return out
}
