package simulation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Problem describes one structural violation in the document.
type Problem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report wire field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every entry of the document against its declared shape and
// reports all violations, not just the first. It performs no cross-reference
// or storage checks.
func Validate(p *Payload) []Problem {
	var problems []Problem

	for i, entry := range p.People {
		problems = append(problems, structProblems(fmt.Sprintf("people[%d]", i), entry)...)
	}
	for i, entry := range p.Organizations {
		problems = append(problems, structProblems(fmt.Sprintf("organizations[%d]", i), entry)...)
	}
	for i, entry := range p.Events {
		problems = append(problems, structProblems(fmt.Sprintf("events[%d]", i), entry)...)
	}
	for i, rel := range p.Relationships {
		problems = append(problems, structProblems(fmt.Sprintf("relationships[%d]", i), rel)...)
	}

	return problems
}

func structProblems(prefix string, entry any) []Problem {
	err := validate.Struct(entry)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Problem{{Field: prefix, Message: err.Error()}}
	}

	problems := make([]Problem, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace starts with the struct type name; replace it with the
		// collection path.
		path := fe.Namespace()
		if idx := strings.Index(path, "."); idx >= 0 {
			path = path[idx+1:]
		}
		problems = append(problems, Problem{
			Field:   prefix + "." + path,
			Message: ruleMessage(fe),
		})
	}
	return problems
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be an ISO-8601 timestamp"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
