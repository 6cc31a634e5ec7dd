package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mkalis/restcat/internal/catalog"
	"github.com/mkalis/restcat/internal/model"
)

// Options configures example validation. The defaults match the GitHub REST
// documentation pipeline: a curl sample labeled Shell and an octokit sample
// labeled JavaScript on every operation.
type Options struct {
	// Languages every operation must carry exactly one sample for.
	Languages []string
	// RawHTTPLanguage is the language label checked for Accept headers.
	RawHTTPLanguage string
	// SDKLanguage is the language label checked for call arguments and
	// preview declarations.
	SDKLanguage string
	// BaselineMediaType is the Accept value for operations without
	// required previews.
	BaselineMediaType string
	// PreviewMediaTypeFormat renders a preview name into its media type.
	PreviewMediaTypeFormat string
}

func DefaultOptions() Options {
	return Options{
		Languages:              []string{"Shell", "JavaScript"},
		RawHTTPLanguage:        "Shell",
		SDKLanguage:            "JavaScript",
		BaselineMediaType:      "application/vnd.github.v3+json",
		PreviewMediaTypeFormat: "application/vnd.github.%s-preview+json",
	}
}

var acceptHeaderPattern = regexp.MustCompile(`Accept:\s*([^"\n\\]+)`)

// previewBlockMarker is the token sequence that opens an SDK preview
// declaration. Detection is a structural pattern match against the generator
// template, not a parse of the example.
const previewBlockMarker = "previews: ["

// Examples checks every indexed operation against the per-language example
// contract. The outcome of one operation never depends on another; all
// violations are collected and returned together.
func Examples(idx *catalog.Index, opts Options, log *logrus.Logger) []Violation {
	var violations []Violation

	for _, op := range idx.Operations() {
		for _, lang := range opts.Languages {
			samples := op.Samples(lang)
			if len(samples) == 0 {
				violations = append(violations, Violation{
					Operation: op.Key(),
					Language:  lang,
					Check:     CheckMissingExample,
					Detail:    "no code sample for language",
				})
				continue
			}
			if len(samples) > 1 {
				violations = append(violations, Violation{
					Operation: op.Key(),
					Language:  lang,
					Check:     CheckDuplicateExample,
					Detail:    fmt.Sprintf("%d code samples for language, want exactly one", len(samples)),
				})
			}
			sample := samples[0]

			switch lang {
			case opts.RawHTTPLanguage:
				violations = append(violations, checkAcceptHeader(op, sample, opts)...)
			case opts.SDKLanguage:
				violations = append(violations, checkSDKParameters(op, sample)...)
				violations = append(violations, checkPreviewDeclaration(op, sample)...)
			}
			violations = append(violations, checkRenderedContent(op, sample)...)
		}
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"operations": idx.Len(),
			"violations": len(violations),
		}).Info("validated operation examples")
	}

	return violations
}

// checkAcceptHeader verifies the raw HTTP sample's Accept header against the
// operation's structured preview descriptors. With no required previews the
// header must be exactly the baseline media type; with required previews it
// must name each preview media type and must not fall back to the baseline.
func checkAcceptHeader(op *model.Operation, sample model.CodeSample, opts Options) []Violation {
	match := acceptHeaderPattern.FindStringSubmatch(sample.Source)
	if match == nil {
		return []Violation{{
			Operation: op.Key(),
			Language:  sample.Lang,
			Check:     CheckAcceptHeader,
			Detail:    "no Accept header in example",
		}}
	}
	got := strings.TrimSpace(match[1])

	required := op.RequiredPreviews()
	if len(required) == 0 {
		if got != opts.BaselineMediaType {
			return []Violation{{
				Operation: op.Key(),
				Language:  sample.Lang,
				Check:     CheckAcceptHeader,
				Detail:    fmt.Sprintf("Accept header is %q, want %q", got, opts.BaselineMediaType),
			}}
		}
		return nil
	}

	var violations []Violation
	if strings.Contains(got, opts.BaselineMediaType) {
		violations = append(violations, Violation{
			Operation: op.Key(),
			Language:  sample.Lang,
			Check:     CheckAcceptHeader,
			Detail:    "Accept header falls back to the baseline media type despite required previews",
		})
	}
	for _, p := range required {
		mediaType := fmt.Sprintf(opts.PreviewMediaTypeFormat, p.Name)
		if !strings.Contains(got, mediaType) {
			violations = append(violations, Violation{
				Operation: op.Key(),
				Language:  sample.Lang,
				Check:     CheckAcceptHeader,
				Detail:    fmt.Sprintf("Accept header %q does not carry preview media type %q", got, mediaType),
			})
		}
	}
	return violations
}

// checkSDKParameters verifies that every declared parameter appears as a
// named argument populated with its own name as the placeholder value, and
// that nested parameters expand one representative object the same way.
func checkSDKParameters(op *model.Operation, sample model.CodeSample) []Violation {
	var violations []Violation

	for _, param := range op.Parameters {
		if !strings.Contains(sample.Source, selfDescribingArg(param.Name)) {
			violations = append(violations, Violation{
				Operation: op.Key(),
				Language:  sample.Lang,
				Check:     CheckSDKParameters,
				Detail:    fmt.Sprintf("argument %s: '%s' not present in example", param.Name, param.Name),
			})
		}
		for _, field := range param.Fields {
			if !strings.Contains(sample.Source, selfDescribingArg(field)) {
				violations = append(violations, Violation{
					Operation: op.Key(),
					Language:  sample.Lang,
					Check:     CheckSDKParameters,
					Detail:    fmt.Sprintf("nested field %s of %s not expanded in example", field, param.Name),
				})
			}
		}
	}

	return violations
}

func selfDescribingArg(name string) string {
	return fmt.Sprintf("%s: '%s'", name, name)
}

// checkPreviewDeclaration verifies the SDK sample declares exactly the
// required previews: a declaration block must be present for operations with
// required previews and absent otherwise.
func checkPreviewDeclaration(op *model.Operation, sample model.CodeSample) []Violation {
	required := op.RequiredPreviews()

	if len(required) == 0 {
		if strings.Contains(sample.Source, previewBlockMarker) {
			return []Violation{{
				Operation: op.Key(),
				Language:  sample.Lang,
				Check:     CheckPreviewDeclaration,
				Detail:    "example declares previews but the operation requires none",
			}}
		}
		return nil
	}

	if !strings.Contains(sample.Source, previewBlockMarker) {
		return []Violation{{
			Operation: op.Key(),
			Language:  sample.Lang,
			Check:     CheckPreviewDeclaration,
			Detail:    "example is missing the preview declaration block",
		}}
	}

	var violations []Violation
	for _, p := range required {
		if !strings.Contains(sample.Source, "'"+p.Name+"'") {
			violations = append(violations, Violation{
				Operation: op.Key(),
				Language:  sample.Lang,
				Check:     CheckPreviewDeclaration,
				Detail:    fmt.Sprintf("preview declaration does not name %q", p.Name),
			})
		}
	}
	return violations
}

// checkRenderedContent verifies the presentation form and the plain form are
// content-equivalent: stripping markup from the HTML rendering must yield the
// plain source, modulo leading and trailing whitespace.
func checkRenderedContent(op *model.Operation, sample model.CodeSample) []Violation {
	if sample.SourceHTML == "" {
		return []Violation{{
			Operation: op.Key(),
			Language:  sample.Lang,
			Check:     CheckRenderedContent,
			Detail:    "example has no rendered form",
		}}
	}
	stripped := strings.TrimSpace(StripMarkup(sample.SourceHTML))
	if stripped != strings.TrimSpace(sample.Source) {
		return []Violation{{
			Operation: op.Key(),
			Language:  sample.Lang,
			Check:     CheckRenderedContent,
			Detail:    "stripping markup from the rendered example does not yield the plain source",
		}}
	}
	return nil
}
