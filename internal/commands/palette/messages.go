package palettecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	generatePalettesMessageType = "palette.generate"
	injectTooltipsMessageType   = "palette.inject_tooltips"
)

// GeneratePalettesCommand converts every category directory under InputDir
// into a palette document written to OutputDir.
type GeneratePalettesCommand struct {
	// InputDir is the icon root; each immediate subdirectory is a category.
	InputDir string `json:"input_dir"`
	// OutputDir receives one document per non-empty category.
	OutputDir string `json:"output_dir"`
}

// Type implements command.Message.
func (GeneratePalettesCommand) Type() string { return generatePalettesMessageType }

// Validate ensures both roots are present before handlers execute.
func (cmd GeneratePalettesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.InputDir, validation.Required, validation.By(notBlank("palette.generate.input_dir_required", "input directory is required"))),
		validation.Field(&cmd.OutputDir, validation.Required, validation.By(notBlank("palette.generate.output_dir_required", "output directory is required"))),
	)
}

// InjectTooltipsCommand assigns Labels, in order, as tooltips of the graph
// nodes found in the document at Path.
type InjectTooltipsCommand struct {
	Path   string   `json:"path"`
	Labels []string `json:"labels"`
}

// Type implements command.Message.
func (InjectTooltipsCommand) Type() string { return injectTooltipsMessageType }

// Validate ensures a document path is present. The label count is checked
// against the document by the injector.
func (cmd InjectTooltipsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(notBlank("palette.inject_tooltips.path_required", "document path is required"))),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
