package deploy

import (
	"path"
	"strings"

	"github.com/google/shlex"
)

// GoBuild is a `go build` invocation found in a RUN instruction.
type GoBuild struct {
	// Output is the -o path resolved against the stage working directory.
	Output string
	// LinkerFlags is the raw -ldflags value.
	LinkerFlags string
	Line        int
}

// Sets reports whether the linker flags contain `-X symbol=value`.
func (b GoBuild) Sets(assignment string) bool {
	words, err := shlex.Split(b.LinkerFlags)
	if err != nil {
		return false
	}
	for i, w := range words {
		switch {
		case w == "-X" && i+1 < len(words) && words[i+1] == assignment:
			return true
		case w == "-X="+assignment, w == "--X="+assignment:
			return true
		}
	}
	return false
}

var shellSeparators = map[string]bool{"&&": true, "||": true, ";": true, "|": true}

// GoBuilds lists the `go build` commands run in the stage.
func (s Stage) GoBuilds() []GoBuild {
	var builds []GoBuild
	dir := baseWorkdir(s.Base)
	for _, inst := range s.Instructions {
		switch inst.Command {
		case "workdir":
			if len(inst.Args) > 0 {
				dir = s.resolve(dir, inst.Args[0])
			}
		case "run":
			words, err := inst.Words()
			if err != nil {
				continue
			}
			for _, b := range parseGoBuilds(words) {
				if b.Output != "" {
					b.Output = s.resolve(dir, b.Output)
				}
				b.Line = inst.Line
				builds = append(builds, b)
			}
		}
	}
	return builds
}

func parseGoBuilds(words []string) []GoBuild {
	var builds []GoBuild
	for i := 0; i+1 < len(words); i++ {
		if path.Base(words[i]) != "go" || words[i+1] != "build" {
			continue
		}
		b := GoBuild{}
		for j := i + 2; j < len(words) && !shellSeparators[words[j]]; j++ {
			w := words[j]
			switch {
			case w == "-o" && j+1 < len(words):
				j++
				b.Output = words[j]
			case strings.HasPrefix(w, "-o="):
				b.Output = strings.TrimPrefix(w, "-o=")
			case (w == "-ldflags" || w == "--ldflags") && j+1 < len(words):
				j++
				b.LinkerFlags = words[j]
			case strings.HasPrefix(w, "-ldflags="):
				b.LinkerFlags = strings.TrimPrefix(w, "-ldflags=")
			}
		}
		builds = append(builds, b)
	}
	return builds
}
