package deploy

import (
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/moby/buildkit/frontend/dockerfile/parser"
)

// lambdaTaskRoot is the working directory of the AWS Lambda base images.
const lambdaTaskRoot = "/var/task"

// Dockerfile is a parsed container build file split into build stages.
type Dockerfile struct {
	Stages []Stage
}

// Stage is everything from one FROM instruction to the next.
type Stage struct {
	Index        int
	Name         string
	Base         string
	Instructions []Instruction
}

// Instruction is a single Dockerfile instruction. Command is lower case.
type Instruction struct {
	Command string
	Flags   []string
	Args    []string
	JSON    bool
	Line    int
}

// Flag returns the value of a `--name=value` flag.
func (i Instruction) Flag(name string) (string, bool) {
	prefix := "--" + name + "="
	for _, f := range i.Flags {
		if strings.HasPrefix(f, prefix) {
			return strings.TrimPrefix(f, prefix), true
		}
	}
	return "", false
}

// Words returns the arguments as an argv. Shell form arguments are split
// with shell quoting rules.
func (i Instruction) Words() ([]string, error) {
	if i.JSON {
		return i.Args, nil
	}
	return shlex.Split(strings.Join(i.Args, " "))
}

// ParseDockerfile parses a Dockerfile. Instructions before the first FROM
// (global ARGs) are ignored.
func ParseDockerfile(r io.Reader) (*Dockerfile, error) {
	result, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse dockerfile: %w", err)
	}
	d := &Dockerfile{}
	for _, node := range result.AST.Children {
		inst := Instruction{
			Command: strings.ToLower(node.Value),
			Flags:   node.Flags,
			JSON:    node.Attributes["json"],
			Line:    node.StartLine,
		}
		for n := node.Next; n != nil; n = n.Next {
			inst.Args = append(inst.Args, n.Value)
		}
		if inst.Command == "from" {
			if len(inst.Args) == 0 {
				return nil, fmt.Errorf("line %d: FROM without an image", inst.Line)
			}
			stage := Stage{Index: len(d.Stages), Base: inst.Args[0]}
			if len(inst.Args) == 3 && strings.EqualFold(inst.Args[1], "as") {
				stage.Name = strings.ToLower(inst.Args[2])
			}
			d.Stages = append(d.Stages, stage)
			continue
		}
		if len(d.Stages) == 0 {
			continue
		}
		last := &d.Stages[len(d.Stages)-1]
		last.Instructions = append(last.Instructions, inst)
	}
	if len(d.Stages) == 0 {
		return nil, fmt.Errorf("parse dockerfile: no FROM instruction")
	}
	return d, nil
}

// LoadDockerfile reads and parses the Dockerfile at path.
func LoadDockerfile(p string) (*Dockerfile, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseDockerfile(f)
}

// Final returns the stage that produces the image.
func (d *Dockerfile) Final() Stage {
	return d.Stages[len(d.Stages)-1]
}

// Stage finds a stage by name or by numeric index, the two forms accepted
// by `COPY --from`.
func (d *Dockerfile) Stage(ref string) (Stage, bool) {
	ref = strings.ToLower(ref)
	for _, s := range d.Stages {
		if s.Name != "" && s.Name == ref {
			return s, true
		}
	}
	if i, err := strconv.Atoi(ref); err == nil && i >= 0 && i < len(d.Stages) {
		return d.Stages[i], true
	}
	return Stage{}, false
}

// Workdir returns the working directory in effect at the end of the stage.
func (s Stage) Workdir() string {
	dir := baseWorkdir(s.Base)
	for _, inst := range s.Instructions {
		if inst.Command == "workdir" && len(inst.Args) > 0 {
			dir = s.resolve(dir, inst.Args[0])
		}
	}
	return dir
}

// Entrypoint returns the argv the image starts with. ENTRYPOINT wins over
// CMD when both are present.
func (s Stage) Entrypoint() ([]string, error) {
	var entry, cmd *Instruction
	for i := range s.Instructions {
		switch s.Instructions[i].Command {
		case "entrypoint":
			entry = &s.Instructions[i]
		case "cmd":
			cmd = &s.Instructions[i]
		}
	}
	if entry == nil {
		entry = cmd
	}
	if entry == nil {
		return nil, nil
	}
	return entry.Words()
}

// Copies returns the COPY instructions that pull from another stage.
func (s Stage) Copies() []Instruction {
	var out []Instruction
	for _, inst := range s.Instructions {
		if inst.Command != "copy" {
			continue
		}
		if _, ok := inst.Flag("from"); ok {
			out = append(out, inst)
		}
	}
	return out
}

// baseWorkdir is the WORKDIR inherited from well known base images.
func baseWorkdir(base string) string {
	switch {
	case strings.HasPrefix(base, "public.ecr.aws/lambda/"), strings.HasPrefix(base, "amazon/aws-lambda-"):
		return lambdaTaskRoot
	case strings.HasPrefix(base, "golang:"), base == "golang":
		return "/go"
	default:
		return "/"
	}
}

func (s Stage) resolve(dir string, p string) string {
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(dir, p)
}
