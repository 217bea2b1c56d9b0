package deploy

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Descriptor is the subset of serverless.yml that the application relies on.
type Descriptor struct {
	Service   string              `yaml:"service"`
	Provider  Provider            `yaml:"provider"`
	Functions map[string]Function `yaml:"functions"`
}

// Provider holds the account and region level settings.
type Provider struct {
	Name    string `yaml:"name"`
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
	Stage   string `yaml:"stage"`
	ECR     ECR    `yaml:"ecr"`
}

// ECR declares the images the framework builds and pushes on deploy.
type ECR struct {
	Images map[string]Image `yaml:"images"`
}

// Image is a locally built image. Path is the build context and File the
// Dockerfile relative to it.
type Image struct {
	Path     string `yaml:"path"`
	File     string `yaml:"file"`
	Platform string `yaml:"platform"`
}

// Dockerfile returns the build file path relative to the descriptor.
func (i Image) Dockerfile() string {
	file := i.File
	if file == "" {
		file = "Dockerfile"
	}
	return path.Join(i.Path, file)
}

// Function is a single compute function.
type Function struct {
	Image  FunctionImage `yaml:"image"`
	Events []Event       `yaml:"events"`
}

// FunctionImage references an image either by the name of a provider.ecr
// image or by a full URI. Both the scalar and the mapping forms are
// accepted.
type FunctionImage struct {
	Name       string   `yaml:"name"`
	URI        string   `yaml:"uri"`
	Command    []string `yaml:"command"`
	EntryPoint []string `yaml:"entryPoint"`
}

// IsURI reports whether the reference points at a prebuilt image instead
// of one declared under provider.ecr.images.
func (f FunctionImage) IsURI() bool {
	return f.URI != "" || strings.Contains(f.Name, "/") || strings.Contains(f.Name, "@sha256:")
}

// UnmarshalYAML accepts `image: appimage` as well as the mapping form.
func (f *FunctionImage) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		f.Name = value.Value
		return nil
	}
	type plain FunctionImage
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*f = FunctionImage(p)
	return nil
}

// Event is a function trigger. Only http events are modelled; other event
// types decode with a nil HTTP field.
type Event struct {
	HTTP *Route `yaml:"http"`
}

// Route is an API Gateway (REST) route.
type Route struct {
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
}

// UnmarshalYAML accepts `http: ANY /{any+}` as well as the mapping form.
func (r *Route) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		method, path, ok := strings.Cut(strings.TrimSpace(value.Value), " ")
		if !ok {
			return fmt.Errorf("line %d: http event %q must be \"METHOD path\"", value.Line, value.Value)
		}
		r.Method = method
		r.Path = strings.TrimSpace(path)
		return nil
	}
	type plain Route
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = Route(p)
	return nil
}

// FunctionNames lists function names in lexical order.
func (d *Descriptor) FunctionNames() []string {
	names := make([]string, 0, len(d.Functions))
	for name := range d.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Routes returns every http route declared by the function.
func (f Function) Routes() []Route {
	var routes []Route
	for _, e := range f.Events {
		if e.HTTP != nil {
			routes = append(routes, *e.HTTP)
		}
	}
	return routes
}

// ParseDescriptor decodes a serverless.yml document.
func ParseDescriptor(b []byte) (*Descriptor, error) {
	d := &Descriptor{}
	if err := yaml.Unmarshal(b, d); err != nil {
		return nil, fmt.Errorf("decode descriptor: %w", err)
	}
	return d, nil
}

// LoadDescriptor reads and decodes the descriptor at path.
func LoadDescriptor(path string) (*Descriptor, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDescriptor(b)
}
