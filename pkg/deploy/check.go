package deploy

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// DefaultBuildModeAssignment is the linker assignment that makes the binary
// hand itself to the Lambda runtime instead of serving HTTP.
const DefaultBuildModeAssignment = "github.com/asecurityteam/scaffold.BuildMode=lambda"

// Problem is a single failed check.
type Problem struct {
	// Subject names the descriptor element or file the problem is about.
	Subject string
	Message string
}

func (p Problem) String() string {
	return p.Subject + ": " + p.Message
}

// ValidationError collects every Problem found by a check run.
type ValidationError struct {
	Problems []Problem
}

func (e ValidationError) Error() string {
	lines := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		lines = append(lines, p.String())
	}
	return fmt.Sprintf("%d deployment problem(s): %s", len(e.Problems), strings.Join(lines, "; "))
}

// Checker verifies that the deployment artifacts fit together.
type Checker struct {
	// BuildModeAssignment is the `-X` value the image build must pass.
	// Defaults to DefaultBuildModeAssignment.
	BuildModeAssignment string
}

// CheckDescriptor verifies the descriptor on its own: required provider
// settings, image references, and gateway route coverage.
func (c *Checker) CheckDescriptor(d *Descriptor) []Problem {
	var problems []Problem
	if d.Service == "" {
		problems = append(problems, Problem{Subject: "service", Message: "service name is empty"})
	}
	if !strings.EqualFold(d.Provider.Name, "aws") {
		problems = append(problems, Problem{Subject: "provider.name", Message: fmt.Sprintf("expected aws, found %q", d.Provider.Name)})
	}
	if d.Provider.Region == "" {
		problems = append(problems, Problem{Subject: "provider.region", Message: "region is empty"})
	}
	if len(d.Functions) == 0 {
		problems = append(problems, Problem{Subject: "functions", Message: "no functions declared"})
	}

	var routes []Route
	for _, name := range d.FunctionNames() {
		fn := d.Functions[name]
		subject := "functions." + name
		switch {
		case fn.Image.Name == "" && fn.Image.URI == "":
			problems = append(problems, Problem{Subject: subject + ".image", Message: "no image reference"})
		case fn.Image.IsURI():
		default:
			if _, ok := d.Provider.ECR.Images[fn.Image.Name]; !ok {
				problems = append(problems, Problem{
					Subject: subject + ".image",
					Message: fmt.Sprintf("image %q is not declared under provider.ecr.images", fn.Image.Name),
				})
			}
		}
		routes = append(routes, fn.Routes()...)
	}
	problems = append(problems, checkCoverage(routes)...)
	return problems
}

// checkCoverage requires the two routes that together match every request
// API Gateway can receive: `ANY /` for the root path and `ANY /{name+}` for
// everything below it. Any other route set leaves some path unserved or
// depends on route specificity to reach the application.
func checkCoverage(routes []Route) []Problem {
	if len(routes) == 0 {
		return []Problem{{Subject: "events", Message: "no http routes declared"}}
	}
	var root, greedy bool
	for _, r := range routes {
		if !strings.EqualFold(r.Method, MethodAny) {
			continue
		}
		tmpl := splitPath(r.Path)
		switch {
		case len(tmpl) == 0:
			root = true
		case len(tmpl) == 1 && isGreedy(tmpl[0]):
			greedy = true
		}
	}
	var problems []Problem
	if !root {
		problems = append(problems, Problem{Subject: "events", Message: "no ANY / route; the root path is not served"})
	}
	if !greedy {
		problems = append(problems, Problem{Subject: "events", Message: "no ANY /{proxy+} route; nested paths are not all served"})
	}
	return problems
}

// CheckImage verifies that the image built from df starts the lambda build
// of a binary produced by `go build` in an earlier stage.
func (c *Checker) CheckImage(subject string, df *Dockerfile) []Problem {
	final := df.Final()
	argv, err := final.Entrypoint()
	if err != nil {
		return []Problem{{Subject: subject, Message: fmt.Sprintf("unreadable entrypoint: %v", err)}}
	}
	if len(argv) == 0 {
		return []Problem{{Subject: subject, Message: "final stage has no ENTRYPOINT or CMD"}}
	}
	workdir := final.Workdir()
	exe := final.resolve(workdir, argv[0])

	for _, cp := range final.Copies() {
		words, err := cp.Words()
		if err != nil || len(words) < 2 {
			continue
		}
		srcs, dst := words[:len(words)-1], words[len(words)-1]
		for _, src := range srcs {
			if copyTarget(final, workdir, src, dst) != exe {
				continue
			}
			from, _ := cp.Flag("from")
			return c.checkBuilder(subject, df, from, src)
		}
	}
	return []Problem{{
		Subject: subject,
		Message: fmt.Sprintf("entrypoint %s is not copied from a build stage", exe),
	}}
}

func (c *Checker) checkBuilder(subject string, df *Dockerfile, from string, src string) []Problem {
	stage, ok := df.Stage(from)
	if !ok {
		return []Problem{{Subject: subject, Message: fmt.Sprintf("COPY --from=%s names an unknown stage", from)}}
	}
	want := stage.resolve(stage.Workdir(), src)
	for _, b := range stage.GoBuilds() {
		if b.Output != want {
			continue
		}
		if !b.Sets(c.assignment()) {
			return []Problem{{
				Subject: subject,
				Message: fmt.Sprintf("go build of %s (line %d) does not set -X %s", want, b.Line, c.assignment()),
			}}
		}
		return nil
	}
	return []Problem{{
		Subject: subject,
		Message: fmt.Sprintf("stage %q does not produce %s with go build -o", from, want),
	}}
}

func (c *Checker) assignment() string {
	if c.BuildModeAssignment == "" {
		return DefaultBuildModeAssignment
	}
	return c.BuildModeAssignment
}

func copyTarget(s Stage, workdir string, src string, dst string) string {
	target := s.resolve(workdir, dst)
	if strings.HasSuffix(dst, "/") || dst == "." {
		target = path.Join(target, path.Base(src))
	}
	return target
}

// CheckProject loads the descriptor at descriptorPath together with every
// Dockerfile its functions build from and runs all checks.
func (c *Checker) CheckProject(descriptorPath string) ([]Problem, error) {
	d, err := LoadDescriptor(descriptorPath)
	if err != nil {
		return nil, err
	}
	problems := c.CheckDescriptor(d)
	root := filepath.Dir(descriptorPath)
	checked := make(map[string]bool)
	for _, name := range d.FunctionNames() {
		ref := d.Functions[name].Image
		img, ok := d.Provider.ECR.Images[ref.Name]
		if ref.IsURI() || !ok || checked[ref.Name] {
			continue
		}
		checked[ref.Name] = true
		file := filepath.Join(root, filepath.FromSlash(img.Dockerfile()))
		df, err := LoadDockerfile(file)
		if err != nil {
			problems = append(problems, Problem{Subject: "provider.ecr.images." + ref.Name, Message: err.Error()})
			continue
		}
		problems = append(problems, c.CheckImage(filepath.ToSlash(file), df)...)
	}
	return problems, nil
}
